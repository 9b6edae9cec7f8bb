package api

import (
	"net/http"

	"rentdesk/server/internal/models"

	"github.com/gin-gonic/gin"
)

type propertyRequest struct {
	Name         string   `json:"name" binding:"required"`
	Street       string   `json:"street"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	PostalCode   string   `json:"postal_code"`
	PropertyType string   `json:"property_type"`
	UnitCount    int      `json:"unit_count"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// ListProperties returns the caller's properties with occupancy counts.
func (h *Handler) ListProperties(c *gin.Context) {
	claims := currentClaims(c)

	properties, err := h.store.ListProperties(claims.UserID)
	if err != nil {
		h.respondError(c, err, "Failed to list properties")
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *Handler) GetProperty(c *gin.Context) {
	claims := currentClaims(c)
	id, ok := idParam(c)
	if !ok {
		return
	}

	property, err := h.store.GetProperty(claims.UserID, id)
	if err != nil {
		h.respondError(c, err, "Failed to load property")
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *Handler) CreateProperty(c *gin.Context) {
	claims := currentClaims(c)

	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A property name is required"})
		return
	}

	propertyType := req.PropertyType
	if propertyType == "" {
		propertyType = models.PropertyTypeApartment
	}

	property := &models.Property{
		ManagerID:    claims.UserID,
		Name:         req.Name,
		Street:       req.Street,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		PropertyType: propertyType,
		UnitCount:    req.UnitCount,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}
	if err := h.store.CreateProperty(property); err != nil {
		h.respondError(c, err, "Failed to create property")
		return
	}
	c.JSON(http.StatusCreated, property)
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	claims := currentClaims(c)
	id, ok := idParam(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update payload"})
		return
	}
	// ownership is derived from the token, never from the payload
	delete(updates, "id")
	delete(updates, "manager_id")

	property, err := h.store.UpdateProperty(claims.UserID, id, updates)
	if err != nil {
		h.respondError(c, err, "Failed to update property")
		return
	}
	c.JSON(http.StatusOK, property)
}

// DeleteProperty removes a property unless tenants still reference it.
func (h *Handler) DeleteProperty(c *gin.Context) {
	claims := currentClaims(c)
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.store.DeleteProperty(claims.UserID, id); err != nil {
		h.respondError(c, err, "Failed to delete property")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
