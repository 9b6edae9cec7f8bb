package models

import "time"

// DashboardChart is one entry of a manager's saved chart layout. The
// position and size come straight from the drag-and-drop builder and are
// round-tripped verbatim; nothing validates or snaps them server-side.
type DashboardChart struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OwnerID uint `gorm:"index;not null" json:"-"`

	// Order within the saved layout
	Position int `gorm:"not null" json:"-"`

	ChartType  string  `gorm:"type:varchar(40);not null" json:"chart_type"`
	DataSource string  `gorm:"type:varchar(40);not null" json:"data_source"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// DashboardSummary is the portfolio overview shown on the manager
// dashboard. All figures are recomputed from the current data on every
// request; nothing here is stored.
type DashboardSummary struct {
	TotalProperties  int     `json:"total_properties"`
	TotalUnits       int     `json:"total_units"`
	ActiveTenants    int     `json:"active_tenants"`
	OccupancyRate    float64 `json:"occupancy_rate"`
	MonthlyRentRoll  float64 `json:"monthly_rent_roll"`
	CollectedRent    float64 `json:"collected_rent"`
	PendingRent      float64 `json:"pending_rent"`
	OpenMaintenance  int     `json:"open_maintenance"`
	EmergencyRepairs int     `json:"emergency_repairs"`
}

// MapPoint is a property marker on the portfolio map.
type MapPoint struct {
	PropertyID uint    `json:"property_id"`
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// MapView is the portfolio map payload: markers plus the bounding box
// enclosing them.
type MapView struct {
	Points []MapPoint `json:"points"`
	Bounds *MapBounds `json:"bounds"`
}

type MapBounds struct {
	MinLatitude  float64 `json:"min_latitude"`
	MinLongitude float64 `json:"min_longitude"`
	MaxLatitude  float64 `json:"max_latitude"`
	MaxLongitude float64 `json:"max_longitude"`
}
