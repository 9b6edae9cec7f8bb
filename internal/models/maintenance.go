package models

import "time"

// Maintenance priorities.
const (
	PriorityLow       = "low"
	PriorityMedium    = "medium"
	PriorityHigh      = "high"
	PriorityEmergency = "emergency"
)

// Maintenance statuses. Transitions are manager-driven and unconstrained;
// any status is reachable from any other.
const (
	MaintenanceStatusPending    = "pending"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusCompleted  = "completed"
	MaintenanceStatusCancelled  = "cancelled"
)

type MaintenanceRequest struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	PropertyID  *uint  `gorm:"index" json:"property_id"`
	TenantID    *uint  `gorm:"index" json:"tenant_id"`
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Priority    string `gorm:"type:varchar(20);not null;default:medium" json:"priority"`
	Status      string `gorm:"type:varchar(20);not null;default:pending" json:"status"`

	AssignedTo string   `gorm:"type:varchar(120)" json:"assigned_to"`
	Cost       *float64 `gorm:"type:numeric(12,2)" json:"cost"`

	SubmittedAt time.Time  `gorm:"not null" json:"submitted_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Tenant   *Tenant   `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// ValidMaintenancePriority reports whether p is a known priority.
func ValidMaintenancePriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityEmergency:
		return true
	}
	return false
}

// ValidMaintenanceStatus reports whether s is a known status.
func ValidMaintenanceStatus(s string) bool {
	switch s {
	case MaintenanceStatusPending, MaintenanceStatusInProgress,
		MaintenanceStatusCompleted, MaintenanceStatusCancelled:
		return true
	}
	return false
}
