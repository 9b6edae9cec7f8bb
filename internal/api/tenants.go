package api

import (
	"errors"
	"net/http"
	"time"

	"rentdesk/server/internal/models"
	"rentdesk/server/internal/store"

	"github.com/gin-gonic/gin"
)

type tenantRequest struct {
	Name          string     `json:"name" binding:"required"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	PropertyID    *uint      `json:"property_id"`
	Unit          string     `json:"unit"`
	LeaseStart    *time.Time `json:"lease_start"`
	LeaseEnd      *time.Time `json:"lease_end"`
	MonthlyRent   float64    `json:"monthly_rent"`
	DepositAmount float64    `json:"deposit_amount"`
	Balance       float64    `json:"balance"`
	Status        string     `json:"status"`
}

// ListTenants returns tenants scoped to the manager's properties,
// optionally filtered by property and status.
func (h *Handler) ListTenants(c *gin.Context) {
	claims := currentClaims(c)

	propertyID, ok := uintQuery(c, "property_id")
	if !ok {
		return
	}
	filter := store.TenantFilter{
		PropertyID: propertyID,
		Status:     c.Query("status"),
	}
	tenants, err := h.store.ListTenants(claims.UserID, filter)
	if err != nil {
		h.respondError(c, err, "Failed to list tenants")
		return
	}
	c.JSON(http.StatusOK, tenants)
}

func (h *Handler) GetTenant(c *gin.Context) {
	claims := currentClaims(c)
	id, ok := idParam(c)
	if !ok {
		return
	}

	tenant, err := h.store.GetTenant(claims.UserID, id)
	if err != nil {
		h.respondError(c, err, "Failed to load tenant")
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// GetOwnTenant returns the tenant record linked to the calling account.
// An unlinked account gets an empty-state payload, not an error.
func (h *Handler) GetOwnTenant(c *gin.Context) {
	claims := currentClaims(c)

	tenant, err := h.store.GetTenantByUser(claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"tenant": nil})
			return
		}
		h.respondError(c, err, "Failed to load tenant record")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tenant": tenant})
}

func (h *Handler) CreateTenant(c *gin.Context) {
	claims := currentClaims(c)

	var req tenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A tenant name is required"})
		return
	}

	if req.PropertyID != nil {
		// the property must belong to the caller
		if _, err := h.store.GetProperty(claims.UserID, *req.PropertyID); err != nil {
			h.respondError(c, err, "Failed to resolve property")
			return
		}
	}

	tenant := &models.Tenant{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PropertyID:    req.PropertyID,
		Unit:          req.Unit,
		LeaseStart:    req.LeaseStart,
		LeaseEnd:      req.LeaseEnd,
		MonthlyRent:   req.MonthlyRent,
		DepositAmount: req.DepositAmount,
		Balance:       req.Balance,
		Status:        req.Status,
	}
	if err := h.store.CreateTenant(tenant); err != nil {
		h.respondError(c, err, "Failed to create tenant")
		return
	}
	c.JSON(http.StatusCreated, tenant)
}

func (h *Handler) UpdateTenant(c *gin.Context) {
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
	// the account link is owned by the reconciler, not the edit form
	delete(updates, "user_id")

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

	tenant, err := h.store.UpdateTenant(claims.UserID, id, updates)
	if err != nil {
		h.respondError(c, err, "Failed to update tenant")
		return
	}
	c.JSON(http.StatusOK, tenant)
}

func (h *Handler) DeleteTenant(c *gin.Context) {
	claims := currentClaims(c)
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.store.DeleteTenant(claims.UserID, id); err != nil {
		h.respondError(c, err, "Failed to delete tenant")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
