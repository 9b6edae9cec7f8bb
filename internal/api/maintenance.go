package api

import (
	"errors"
	"net/http"

	"rentdesk/server/internal/models"
	"rentdesk/server/internal/store"

	"github.com/gin-gonic/gin"
)

type maintenanceRequest struct {
	PropertyID  *uint  `json:"property_id"`
	TenantID    *uint  `json:"tenant_id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// ListMaintenance returns maintenance requests. Tenant-typed callers are
// pinned to their own record's requests; managers see requests on their
// own properties and from tenants visible to them.
func (h *Handler) ListMaintenance(c *gin.Context) {
	claims := currentClaims(c)

	propertyID, ok := uintQuery(c, "property_id")
	if !ok {
		return
	}
	tenantID, ok := uintQuery(c, "tenant_id")
	if !ok {
		return
	}
	filter := store.MaintenanceFilter{
		PropertyID: propertyID,
		TenantID:   tenantID,
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
	}

	if claims.UserType == models.UserTypeManager {
		filter.ManagerID = claims.UserID
	} else {
		tenant, err := h.store.GetTenantByUser(claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusOK, []models.MaintenanceRequest{})
				return
			}
			h.respondError(c, err, "Failed to load tenant record")
			return
		}
		filter.TenantID = tenant.ID
	}

	requests, err := h.store.ListMaintenance(filter)
	if err != nil {
		h.respondError(c, err, "Failed to list maintenance requests")
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handler) GetMaintenance(c *gin.Context) {
	claims := currentClaims(c)
	id, ok := idParam(c)
	if !ok {
		return
	}

	request, err := h.store.GetMaintenance(claims.UserID, id)
	if err != nil {
		h.respondError(c, err, "Failed to load maintenance request")
		return
	}
	c.JSON(http.StatusOK, request)
}

// CreateMaintenance submits a request. A tenant-typed caller's request is
// attached to their own tenant record and property regardless of payload.
func (h *Handler) CreateMaintenance(c *gin.Context) {
	claims := currentClaims(c)

	var req maintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A title is required"})
		return
	}

	request := &models.MaintenanceRequest{
		PropertyID:  req.PropertyID,
		TenantID:    req.TenantID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	}

	if claims.UserType != models.UserTypeManager {
		tenant, err := h.store.GetTenantByUser(claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "No tenant record is linked to this account"})
				return
			}
			h.respondError(c, err, "Failed to load tenant record")
			return
		}
		request.TenantID = &tenant.ID
		request.PropertyID = tenant.PropertyID
	} else {
		if request.PropertyID != nil {
			if _, err := h.store.GetProperty(claims.UserID, *request.PropertyID); err != nil {
				h.respondError(c, err, "Failed to resolve property")
				return
			}
		}
		if request.TenantID != nil {
			if _, err := h.store.GetTenant(claims.UserID, *request.TenantID); err != nil {
				h.respondError(c, err, "Failed to resolve tenant")
				return
			}
		}
	}

	if err := h.store.CreateMaintenance(request); err != nil {
		h.respondError(c, err, "Failed to submit maintenance request")
		return
	}
	c.JSON(http.StatusCreated, request)
}

// UpdateMaintenance applies manager edits, including free-form status
// transitions.
func (h *Handler) UpdateMaintenance(c *gin.Context) {
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
	delete(updates, "id")
	delete(updates, "submitted_at")

	// reassignment only onto a property the caller owns
	if raw, ok := updates["property_id"]; ok && raw != nil {
		propertyID, ok := raw.(float64)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property_id"})
			return
		}
		if _, err := h.store.GetProperty(claims.UserID, uint(propertyID)); err != nil {
			h.respondError(c, err, "Failed to resolve property")
			return
		}
	}

	request, err := h.store.UpdateMaintenance(claims.UserID, id, updates)
	if err != nil {
		h.respondError(c, err, "Failed to update maintenance request")
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *Handler) DeleteMaintenance(c *gin.Context) {
	claims := currentClaims(c)
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.store.DeleteMaintenance(claims.UserID, id); err != nil {
		h.respondError(c, err, "Failed to delete maintenance request")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
