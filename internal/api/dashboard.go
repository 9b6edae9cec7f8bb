package api

import (
	"net/http"

	"rentdesk/server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
)

// DashboardSummary returns the recomputed portfolio overview.
func (h *Handler) DashboardSummary(c *gin.Context) {
	claims := currentClaims(c)

	summary, err := h.store.DashboardSummary(claims.UserID)
	if err != nil {
		h.respondError(c, err, "Failed to compute dashboard summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetDashboardCharts returns the saved chart builder layout.
func (h *Handler) GetDashboardCharts(c *gin.Context) {
	claims := currentClaims(c)

	charts, err := h.store.GetDashboardCharts(claims.UserID)
	if err != nil {
		h.respondError(c, err, "Failed to load dashboard layout")
		return
	}
	c.JSON(http.StatusOK, charts)
}

// SaveDashboardCharts replaces the saved layout with the posted entries,
// verbatim. The builder owns positions and sizes; the server only stores
// them.
func (h *Handler) SaveDashboardCharts(c *gin.Context) {
	claims := currentClaims(c)

	var charts []models.DashboardChart
	if err := c.ShouldBindJSON(&charts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid layout payload"})
		return
	}

	if err := h.store.SaveDashboardCharts(claims.UserID, charts); err != nil {
		h.respondError(c, err, "Failed to save dashboard layout")
		return
	}

	saved, err := h.store.GetDashboardCharts(claims.UserID)
	if err != nil {
		h.respondError(c, err, "Failed to load dashboard layout")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// PortfolioMap returns markers for every property with coordinates and
// the bounding box that encloses them.
func (h *Handler) PortfolioMap(c *gin.Context) {
	claims := currentClaims(c)

	properties, err := h.store.ListProperties(claims.UserID)
	if err != nil {
		h.respondError(c, err, "Failed to load properties")
		return
	}

	view := models.MapView{Points: []models.MapPoint{}}
	var multi orb.MultiPoint
	for _, p := range properties {
		if p.Latitude == nil || p.Longitude == nil {
			continue
		}
		view.Points = append(view.Points, models.MapPoint{
			PropertyID: p.ID,
			Name:       p.Name,
			Latitude:   *p.Latitude,
			Longitude:  *p.Longitude,
		})
		multi = append(multi, orb.Point{*p.Longitude, *p.Latitude})
	}

	if len(multi) > 0 {
		bound := multi.Bound()
		view.Bounds = &models.MapBounds{
			MinLatitude:  bound.Min.Y(),
			MinLongitude: bound.Min.X(),
			MaxLatitude:  bound.Max.Y(),
			MaxLongitude: bound.Max.X(),
		}
	}

	c.JSON(http.StatusOK, view)
}
