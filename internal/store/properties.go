package store

import (
	"fmt"

	"rentdesk/server/internal/models"
)

// ListProperties returns the manager's properties annotated with tenant
// counts and remaining vacant units. Vacancy is unit count minus active
// tenants, floored at zero.
func (s *Store) ListProperties(managerID uint) ([]models.PropertySummary, error) {
	var properties []models.Property
	if err := s.db.Where("manager_id = ?", managerID).Order("id").Find(&properties).Error; err != nil {
		return nil, err
	}

	summaries := make([]models.PropertySummary, 0, len(properties))
	for _, p := range properties {
		var count int64
		err := s.db.Model(&models.Tenant{}).
			Where("property_id = ? AND status = ?", p.ID, models.TenantStatusActive).
			Count(&count).Error
		if err != nil {
			return nil, err
		}

		vacant := p.UnitCount - int(count)
		if vacant < 0 {
			vacant = 0
		}
		summaries = append(summaries, models.PropertySummary{
			Property:    p,
			TenantCount: int(count),
			VacantUnits: vacant,
		})
	}
	return summaries, nil
}

func (s *Store) GetProperty(managerID, id uint) (*models.Property, error) {
	var property models.Property
	err := s.db.Where("id = ? AND manager_id = ?", id, managerID).First(&property).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &property, nil
}

func (s *Store) CreateProperty(property *models.Property) error {
	if !models.ValidPropertyType(property.PropertyType) {
		return fmt.Errorf("%w: property type %q", ErrInvalidValue, property.PropertyType)
	}
	if property.UnitCount < 1 {
		property.UnitCount = 1
	}
	return s.db.Create(property).Error
}

func (s *Store) UpdateProperty(managerID, id uint, updates map[string]interface{}) (*models.Property, error) {
	property, err := s.GetProperty(managerID, id)
	if err != nil {
		return nil, err
	}

	if t, ok := updates["property_type"].(string); ok && !models.ValidPropertyType(t) {
		return nil, fmt.Errorf("%w: property type %q", ErrInvalidValue, t)
	}

	if err := s.db.Model(property).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetProperty(managerID, id)
}

// DeleteProperty removes a property, refusing while any tenant still
// references it. The check lives here rather than in the schema.
func (s *Store) DeleteProperty(managerID, id uint) error {
	property, err := s.GetProperty(managerID, id)
	if err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.Tenant{}).Where("property_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %d tenant(s) still assigned", ErrPropertyHasTenants, count)
	}

	return s.db.Delete(property).Error
}

// PropertyIDs returns the IDs of every property owned by the manager,
// used to scope tenant and maintenance queries.
func (s *Store) PropertyIDs(managerID uint) ([]uint, error) {
	var ids []uint
	err := s.db.Model(&models.Property{}).
		Where("manager_id = ?", managerID).
		Pluck("id", &ids).Error
	return ids, err
}
