package store

import (
	"fmt"
	"time"

	"rentdesk/server/internal/models"
)

// PaymentFilter narrows ListPayments. Zero values mean "no filter".
// TenantIDs is a visibility scope: nil leaves it off, a non-nil slice
// restricts results to those tenants even when it is empty.
type PaymentFilter struct {
	TenantID  uint
	TenantIDs []uint
	Status    string
}

func (s *Store) ListPayments(filter PaymentFilter) ([]models.Payment, error) {
	query := s.db.Preload("Tenant").Order("date DESC, id DESC")
	if filter.TenantIDs != nil {
		query = query.Where("tenant_id IN ?", filter.TenantIDs)
	}
	if filter.TenantID != 0 {
		query = query.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// GetPayment resolves visibility through the payment's tenant: a manager
// sees a payment only when they can see the tenant it belongs to.
func (s *Store) GetPayment(managerID, id uint) (*models.Payment, error) {
	payment, err := s.getPaymentByID(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.GetTenant(managerID, payment.TenantID); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *Store) getPaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.Preload("Tenant").First(&payment, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &payment, nil
}

// GetPaymentByReference looks a payment up by its gateway reference,
// used by the webhook to reconcile status.
func (s *Store) GetPaymentByReference(reference string) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Where("reference = ?", reference).First(&payment).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &payment, nil
}

func (s *Store) CreatePayment(payment *models.Payment) error {
	if payment.Status == "" {
		payment.Status = models.PaymentStatusPending
	}
	if !models.ValidPaymentStatus(payment.Status) {
		return fmt.Errorf("%w: payment status %q", ErrInvalidValue, payment.Status)
	}
	if !models.ValidPaymentMethod(payment.Method) {
		return fmt.Errorf("%w: payment method %q", ErrInvalidValue, payment.Method)
	}
	if payment.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidValue)
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}

	// Tenant must exist before a payment can reference it
	if _, err := s.getTenantByID(payment.TenantID); err != nil {
		return err
	}

	return s.db.Create(payment).Error
}

// UpdatePayment applies the explicit edit form: only status and amount
// (plus notes) are editable after creation.
func (s *Store) UpdatePayment(managerID, id uint, updates map[string]interface{}) (*models.Payment, error) {
	payment, err := s.GetPayment(managerID, id)
	if err != nil {
		return nil, err
	}

	allowed := map[string]interface{}{}
	if status, ok := updates["status"].(string); ok {
		if !models.ValidPaymentStatus(status) {
			return nil, fmt.Errorf("%w: payment status %q", ErrInvalidValue, status)
		}
		allowed["status"] = status
	}
	if amount, ok := updates["amount"].(float64); ok {
		if amount <= 0 {
			return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidValue)
		}
		allowed["amount"] = amount
	}
	if notes, ok := updates["notes"].(string); ok {
		allowed["notes"] = notes
	}

	if len(allowed) == 0 {
		return payment, nil
	}
	if err := s.db.Model(payment).Updates(allowed).Error; err != nil {
		return nil, err
	}
	return s.getPaymentByID(id)
}

func (s *Store) DeletePayment(managerID, id uint) error {
	payment, err := s.GetPayment(managerID, id)
	if err != nil {
		return err
	}
	return s.db.Delete(payment).Error
}

// MarkPaymentStatus sets a payment's status by gateway reference.
func (s *Store) MarkPaymentStatus(reference, status string) (*models.Payment, error) {
	if !models.ValidPaymentStatus(status) {
		return nil, fmt.Errorf("%w: payment status %q", ErrInvalidValue, status)
	}
	payment, err := s.GetPaymentByReference(reference)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(payment).Update("status", status).Error; err != nil {
		return nil, err
	}
	return s.getPaymentByID(payment.ID)
}

// SummarizePayments aggregates amounts by status. Only completed payments
// count as collected rent; pending and failed are reported separately.
func (s *Store) SummarizePayments(tenantIDs []uint) (*models.PaymentSummary, error) {
	summary := &models.PaymentSummary{}

	type row struct {
		Status string
		Total  float64
		Count  int
	}
	var rows []row

	query := s.db.Model(&models.Payment{}).
		Select("status, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Group("status")
	if tenantIDs != nil {
		query = query.Where("tenant_id IN ?", tenantIDs)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, r := range rows {
		switch r.Status {
		case models.PaymentStatusCompleted:
			summary.CollectedTotal = r.Total
			summary.CollectedCount = r.Count
		case models.PaymentStatusPending:
			summary.PendingTotal = r.Total
			summary.PendingCount = r.Count
		case models.PaymentStatusFailed:
			summary.FailedTotal = r.Total
			summary.FailedCount = r.Count
		}
	}
	return summary, nil
}
