package models

import "time"

// Property types.
const (
	PropertyTypeApartment  = "apartment"
	PropertyTypeHouse      = "house"
	PropertyTypeDuplex     = "duplex"
	PropertyTypeCommercial = "commercial"
)

type Property struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ManagerID    uint   `gorm:"index;not null" json:"manager_id"`
	Name         string `gorm:"type:varchar(120);not null" json:"name"`
	Street       string `gorm:"type:varchar(255)" json:"street"`
	City         string `gorm:"type:varchar(120)" json:"city"`
	State        string `gorm:"type:varchar(60)" json:"state"`
	PostalCode   string `gorm:"type:varchar(20)" json:"postal_code"`
	PropertyType string `gorm:"type:varchar(20);not null;default:apartment" json:"property_type"`
	UnitCount    int    `gorm:"not null;default:1" json:"unit_count"`

	// Optional coordinates for the portfolio map
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tenants []Tenant `gorm:"foreignKey:PropertyID" json:"tenants,omitempty"`
}

// PropertySummary is a property row in the list view, annotated with
// occupancy derived from active tenants.
type PropertySummary struct {
	Property
	TenantCount int `json:"tenant_count"`
	VacantUnits int `json:"vacant_units"`
}

// ValidPropertyType reports whether t is one of the known property types.
func ValidPropertyType(t string) bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeDuplex, PropertyTypeCommercial:
		return true
	}
	return false
}
