package models

import "time"

// User types stored on a profile.
const (
	UserTypeManager = "manager"
	UserTypeTenant  = "tenant"
)

// Profile is the per-account record created on first sign-in. For
// tenant-typed users it carries a denormalized snapshot of the linked
// tenant record's lease and financial fields so the portal can render
// without joining through the tenant table.
type Profile struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	UserType string `gorm:"type:varchar(20);not null;default:tenant" json:"user_type"`

	FullName string `gorm:"type:varchar(120)" json:"full_name"`
	Phone    string `gorm:"type:varchar(30)" json:"phone"`

	// Lease/financial snapshot, tenant-typed profiles only
	PropertyID    *uint      `json:"property_id"`
	Unit          string     `gorm:"type:varchar(30)" json:"unit"`
	LeaseStart    *time.Time `json:"lease_start"`
	LeaseEnd      *time.Time `json:"lease_end"`
	MonthlyRent   float64    `gorm:"type:numeric(12,2)" json:"monthly_rent"`
	DepositAmount float64    `gorm:"type:numeric(12,2)" json:"deposit_amount"`
	Balance       float64    `gorm:"type:numeric(12,2)" json:"balance"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}

// IsManager reports whether the profile belongs to a property manager.
func (p *Profile) IsManager() bool {
	return p.UserType == UserTypeManager
}
