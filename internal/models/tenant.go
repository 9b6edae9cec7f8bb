package models

import "time"

// Tenant statuses.
const (
	TenantStatusActive   = "active"
	TenantStatusInactive = "inactive"
	TenantStatusPending  = "pending"
)

// Tenant is a leaseholder record, distinct from the user account that may
// later be linked to it by email match. Balance is an independently
// maintained figure; nothing derives it from payment history.
type Tenant struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"type:varchar(120);not null" json:"name"`
	Email string `gorm:"type:varchar(255);index" json:"email"`
	Phone string `gorm:"type:varchar(30)" json:"phone"`

	PropertyID *uint  `gorm:"index" json:"property_id"`
	Unit       string `gorm:"type:varchar(30)" json:"unit"`

	LeaseStart    *time.Time `json:"lease_start"`
	LeaseEnd      *time.Time `json:"lease_end"`
	MonthlyRent   float64    `gorm:"type:numeric(12,2)" json:"monthly_rent"`
	DepositAmount float64    `gorm:"type:numeric(12,2)" json:"deposit_amount"`
	Balance       float64    `gorm:"type:numeric(12,2)" json:"balance"`

	Status string `gorm:"type:varchar(20);not null;default:pending" json:"status"`

	// Set once when an account with a matching email signs in
	UserID *uint `gorm:"index" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Payments []Payment `gorm:"foreignKey:TenantID" json:"payments,omitempty"`
}

// ValidTenantStatus reports whether s is one of the known tenant statuses.
func ValidTenantStatus(s string) bool {
	switch s {
	case TenantStatusActive, TenantStatusInactive, TenantStatusPending:
		return true
	}
	return false
}
