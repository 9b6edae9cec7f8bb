package store

import (
	"rentdesk/server/internal/models"

	"gorm.io/gorm"
)

// GetDashboardCharts returns the saved chart layout for an owner, in the
// order it was saved.
func (s *Store) GetDashboardCharts(ownerID uint) ([]models.DashboardChart, error) {
	var charts []models.DashboardChart
	err := s.db.Where("owner_id = ?", ownerID).Order("position").Find(&charts).Error
	if err != nil {
		return nil, err
	}
	return charts, nil
}

// SaveDashboardCharts replaces the owner's layout wholesale. The entries
// are persisted exactly as received so the builder can round-trip them.
func (s *Store) SaveDashboardCharts(ownerID uint, charts []models.DashboardChart) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("owner_id = ?", ownerID).Delete(&models.DashboardChart{}).Error
		if err != nil {
			return err
		}
		for i := range charts {
			charts[i].ID = 0
			charts[i].OwnerID = ownerID
			charts[i].Position = i
			if err := tx.Create(&charts[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DashboardSummary recomputes the portfolio overview from current data.
func (s *Store) DashboardSummary(managerID uint) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}

	properties, err := s.ListProperties(managerID)
	if err != nil {
		return nil, err
	}
	summary.TotalProperties = len(properties)
	for _, p := range properties {
		summary.TotalUnits += p.UnitCount
		summary.ActiveTenants += p.TenantCount
	}
	if summary.TotalUnits > 0 {
		summary.OccupancyRate = float64(summary.ActiveTenants) / float64(summary.TotalUnits)
	}

	propertyIDs := make([]uint, 0, len(properties))
	for _, p := range properties {
		propertyIDs = append(propertyIDs, p.ID)
	}

	tenants, err := s.ListTenants(managerID, TenantFilter{})
	if err != nil {
		return nil, err
	}
	tenantIDs := make([]uint, 0, len(tenants))
	for _, t := range tenants {
		tenantIDs = append(tenantIDs, t.ID)
		if t.Status == models.TenantStatusActive {
			summary.MonthlyRentRoll += t.MonthlyRent
		}
	}

	payments, err := s.SummarizePayments(tenantIDs)
	if err != nil {
		return nil, err
	}
	summary.CollectedRent = payments.CollectedTotal
	summary.PendingRent = payments.PendingTotal

	open, emergencies, err := s.CountOpenMaintenance(propertyIDs)
	if err != nil {
		return nil, err
	}
	summary.OpenMaintenance = open
	summary.EmergencyRepairs = emergencies

	return summary, nil
}
