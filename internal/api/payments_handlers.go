package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"rentdesk/server/internal/models"
	"rentdesk/server/internal/payments"
	"rentdesk/server/internal/store"

	"github.com/gin-gonic/gin"
)

type paymentRequest struct {
	TenantID uint       `json:"tenant_id" binding:"required"`
	Amount   float64    `json:"amount" binding:"required"`
	Date     *time.Time `json:"date"`
	Method   string     `json:"method"`
	Status   string     `json:"status"`
	Notes    string     `json:"notes"`
}

type intentRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
}

// ListPayments returns payments, optionally filtered by tenant and
// status. Tenant-typed callers only ever see their own rows; managers
// only see payments belonging to tenants they can see.
func (h *Handler) ListPayments(c *gin.Context) {
	claims := currentClaims(c)

	tenantID, ok := uintQuery(c, "tenant_id")
	if !ok {
		return
	}
	filter := store.PaymentFilter{
		TenantID: tenantID,
		Status:   c.Query("status"),
	}

	if claims.UserType == models.UserTypeManager {
		tenantIDs, err := h.store.VisibleTenantIDs(claims.UserID)
		if err != nil {
			h.respondError(c, err, "Failed to resolve tenants")
			return
		}
		filter.TenantIDs = tenantIDs
	} else {
		tenant, err := h.store.GetTenantByUser(claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusOK, []models.Payment{})
				return
			}
			h.respondError(c, err, "Failed to load tenant record")
			return
		}
		filter.TenantID = tenant.ID
	}

	paymentRows, err := h.store.ListPayments(filter)
	if err != nil {
		h.respondError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, paymentRows)
}

func (h *Handler) GetPayment(c *gin.Context) {
	claims := currentClaims(c)
	id, ok := idParam(c)
	if !ok {
		return
	}

	payment, err := h.store.GetPayment(claims.UserID, id)
	if err != nil {
		h.respondError(c, err, "Failed to load payment")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// CreatePayment records a payment on behalf of a tenant (manager form).
func (h *Handler) CreatePayment(c *gin.Context) {
	claims := currentClaims(c)

	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tenant and amount are required"})
		return
	}

	// the tenant must be visible to the caller
	if _, err := h.store.GetTenant(claims.UserID, req.TenantID); err != nil {
		h.respondError(c, err, "Failed to resolve tenant")
		return
	}

	method := req.Method
	if method == "" {
		method = models.PaymentMethodCash
	}
	status := req.Status
	if status == "" {
		status = models.PaymentStatusCompleted
	}

	payment := &models.Payment{
		TenantID: req.TenantID,
		Amount:   req.Amount,
		Method:   method,
		Status:   status,
		Notes:    req.Notes,
	}
	if req.Date != nil {
		payment.Date = *req.Date
	}

	if err := h.store.CreatePayment(payment); err != nil {
		h.respondError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// UpdatePayment applies the explicit edit form; only status, amount and
// notes are editable.
func (h *Handler) UpdatePayment(c *gin.Context) {
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

	payment, err := h.store.UpdatePayment(claims.UserID, id, updates)
	if err != nil {
		h.respondError(c, err, "Failed to update payment")
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *Handler) DeletePayment(c *gin.Context) {
	claims := currentClaims(c)
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.store.DeletePayment(claims.UserID, id); err != nil {
		h.respondError(c, err, "Failed to delete payment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// PaymentSummary aggregates the manager's payment totals by status.
// Only completed payments count toward collected rent.
func (h *Handler) PaymentSummary(c *gin.Context) {
	claims := currentClaims(c)

	tenantIDs, err := h.store.VisibleTenantIDs(claims.UserID)
	if err != nil {
		h.respondError(c, err, "Failed to resolve tenants")
		return
	}

	summary, err := h.store.SummarizePayments(tenantIDs)
	if err != nil {
		h.respondError(c, err, "Failed to summarize payments")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CreatePaymentIntent starts a tenant-initiated payment: a pending row is
// written under a fresh reference and the gateway's client secret is
// returned for the hosted payment form.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	claims := currentClaims(c)

	var req intentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A positive amount is required"})
		return
	}

	tenant, err := h.store.GetTenantByUser(claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No tenant record is linked to this account"})
			return
		}
		h.respondError(c, err, "Failed to load tenant record")
		return
	}

	intent, err := h.gateway.CreateIntent(req.Amount, req.Description)
	if err != nil {
		if errors.Is(err, payments.ErrGatewayNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Online payments are not available"})
			return
		}
		h.logger.WithError(err).Error("Failed to create payment intent")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment processor is unavailable"})
		return
	}

	payment := &models.Payment{
		TenantID:  tenant.ID,
		Amount:    req.Amount,
		Method:    models.PaymentMethodCard,
		Status:    models.PaymentStatusPending,
		Reference: intent.Reference,
		Notes:     req.Description,
	}
	if err := h.store.CreatePayment(payment); err != nil {
		h.respondError(c, err, "Failed to record pending payment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"payment":       payment,
		"client_secret": intent.ClientSecret,
	})
}

// PaymentWebhook reconciles a payment's status from the processor's
// signed notification. It is the only unauthenticated mutation route.
func (h *Handler) PaymentWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable payload"})
		return
	}

	event, err := h.gateway.VerifyWebhook(body, c.GetHeader("X-Gateway-Signature"))
	if err != nil {
		if errors.Is(err, payments.ErrBadSignature) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Signature mismatch"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	payment, err := h.store.MarkPaymentStatus(event.Reference, event.Status)
	if err != nil {
		h.respondError(c, err, "Failed to reconcile payment")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"reference": event.Reference,
		"status":    event.Status,
	}).Info("Payment reconciled from webhook")
	c.JSON(http.StatusOK, payment)
}
