package store

import (
	"testing"

	"rentdesk/server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPayment(t *testing.T, s *Store, tenantID uint, amount float64, status string) *models.Payment {
	t.Helper()

	payment := &models.Payment{
		TenantID: tenantID,
		Amount:   amount,
		Method:   models.PaymentMethodCard,
		Status:   status,
	}
	require.NoError(t, s.CreatePayment(payment))
	return payment
}

func TestSummarizePayments_OnlyCompletedCollected(t *testing.T) {
	s := newTestStore(t)
	tenant := seedTenant(t, s, "Ana Ruiz", "ana@example.com", nil, models.TenantStatusActive)

	seedPayment(t, s, tenant.ID, 1200, models.PaymentStatusCompleted)
	seedPayment(t, s, tenant.ID, 1200, models.PaymentStatusCompleted)
	seedPayment(t, s, tenant.ID, 800, models.PaymentStatusPending)
	seedPayment(t, s, tenant.ID, 500, models.PaymentStatusFailed)

	summary, err := s.SummarizePayments([]uint{tenant.ID})
	require.NoError(t, err)
	assert.Equal(t, 2400.0, summary.CollectedTotal)
	assert.Equal(t, 2, summary.CollectedCount)
	assert.Equal(t, 800.0, summary.PendingTotal)
	assert.Equal(t, 500.0, summary.FailedTotal)
}

func TestSummarizePayments_EmptyTenantSet(t *testing.T) {
	s := newTestStore(t)
	tenant := seedTenant(t, s, "Ana Ruiz", "ana@example.com", nil, models.TenantStatusActive)
	seedPayment(t, s, tenant.ID, 1200, models.PaymentStatusCompleted)

	summary, err := s.SummarizePayments([]uint{})
	require.NoError(t, err)
	assert.Zero(t, summary.CollectedTotal)
}

func TestCreatePayment_RequiresTenant(t *testing.T) {
	s := newTestStore(t)

	err := s.CreatePayment(&models.Payment{
		TenantID: 42,
		Amount:   100,
		Method:   models.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePayment_RejectsBadValues(t *testing.T) {
	s := newTestStore(t)
	tenant := seedTenant(t, s, "Ana Ruiz", "ana@example.com", nil, models.TenantStatusActive)

	err := s.CreatePayment(&models.Payment{TenantID: tenant.ID, Amount: -5, Method: models.PaymentMethodCash})
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = s.CreatePayment(&models.Payment{TenantID: tenant.ID, Amount: 100, Method: "barter"})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestUpdatePayment_OnlyStatusAmountNotes(t *testing.T) {
	s := newTestStore(t)
	tenant := seedTenant(t, s, "Ana Ruiz", "ana@example.com", nil, models.TenantStatusActive)
	payment := seedPayment(t, s, tenant.ID, 1200, models.PaymentStatusPending)

	updated, err := s.UpdatePayment(1, payment.ID, map[string]interface{}{
		"status":    models.PaymentStatusCompleted,
		"amount":    1250.0,
		"notes":     "late fee included",
		"tenant_id": uint(999),
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, updated.Status)
	assert.Equal(t, 1250.0, updated.Amount)
	assert.Equal(t, "late fee included", updated.Notes)
	// tenant reference is immutable after creation
	assert.Equal(t, tenant.ID, updated.TenantID)
}

func TestMarkPaymentStatus_ByReference(t *testing.T) {
	s := newTestStore(t)
	tenant := seedTenant(t, s, "Ana Ruiz", "ana@example.com", nil, models.TenantStatusActive)

	payment := &models.Payment{
		TenantID:  tenant.ID,
		Amount:    900,
		Method:    models.PaymentMethodCard,
		Status:    models.PaymentStatusPending,
		Reference: "ref-123",
	}
	require.NoError(t, s.CreatePayment(payment))

	updated, err := s.MarkPaymentStatus("ref-123", models.PaymentStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, updated.Status)

	_, err = s.MarkPaymentStatus("missing-ref", models.PaymentStatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}
