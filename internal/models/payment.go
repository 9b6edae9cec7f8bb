package models

import "time"

// Payment statuses.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment methods.
const (
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "bank_transfer"
	PaymentMethodCash     = "cash"
	PaymentMethodCheck    = "check"
)

// Payment is a rent payment row. Created either by a manager recording a
// payment or by the tenant-initiated gateway flow; after creation only
// status and amount are editable, through the explicit update form.
type Payment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	TenantID uint      `gorm:"index;not null" json:"tenant_id"`
	Amount   float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Date     time.Time `gorm:"not null" json:"date"`
	Method   string    `gorm:"type:varchar(20);not null;default:card" json:"method"`
	Status   string    `gorm:"type:varchar(20);not null;default:pending" json:"status"`

	// Gateway reference for tenant-initiated payments, empty for
	// manager-recorded ones
	Reference string `gorm:"type:varchar(64);index" json:"reference"`

	Notes string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// PaymentSummary aggregates the payment table for the dashboard.
type PaymentSummary struct {
	CollectedTotal float64 `json:"collected_total"`
	PendingTotal   float64 `json:"pending_total"`
	FailedTotal    float64 `json:"failed_total"`
	CollectedCount int     `json:"collected_count"`
	PendingCount   int     `json:"pending_count"`
	FailedCount    int     `json:"failed_count"`
}

// ValidPaymentStatus reports whether s is one of the known payment statuses.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is one of the known payment methods.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCard, PaymentMethodTransfer, PaymentMethodCash, PaymentMethodCheck:
		return true
	}
	return false
}
