package store

import (
	"fmt"

	"rentdesk/server/internal/models"
)

// TenantFilter narrows ListTenants. Zero values mean "no filter".
type TenantFilter struct {
	PropertyID uint
	Status     string
}

// ListTenants returns tenants visible to the manager: everyone assigned
// to one of their properties, plus tenants not yet assigned anywhere.
func (s *Store) ListTenants(managerID uint, filter TenantFilter) ([]models.Tenant, error) {
	propertyIDs, err := s.PropertyIDs(managerID)
	if err != nil {
		return nil, err
	}

	query := s.db.Preload("Property").Order("id")
	if len(propertyIDs) > 0 {
		query = query.Where("property_id IN ? OR property_id IS NULL", propertyIDs)
	} else {
		query = query.Where("property_id IS NULL")
	}

	if filter.PropertyID != 0 {
		query = query.Where("property_id = ?", filter.PropertyID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var tenants []models.Tenant
	if err := query.Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// GetTenant returns a tenant visible to the manager: assigned to one of
// their properties or not assigned anywhere. Anything else is reported
// as not found, the same as a missing row.
func (s *Store) GetTenant(managerID, id uint) (*models.Tenant, error) {
	tenant, err := s.getTenantByID(id)
	if err != nil {
		return nil, err
	}

	visible, err := s.tenantVisible(managerID, tenant)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrNotFound
	}
	return tenant, nil
}

// getTenantByID fetches without visibility checks, for internal callers
// that scope by other means.
func (s *Store) getTenantByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.db.Preload("Property").First(&tenant, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &tenant, nil
}

// tenantVisible applies the visibility rule: unassigned tenants are
// visible to every manager, assigned ones only to their property's owner.
func (s *Store) tenantVisible(managerID uint, tenant *models.Tenant) (bool, error) {
	if tenant.PropertyID == nil {
		return true, nil
	}
	var count int64
	err := s.db.Model(&models.Property{}).
		Where("id = ? AND manager_id = ?", *tenant.PropertyID, managerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// VisibleTenantIDs returns the IDs of every tenant the manager can see,
// used to scope payment and document queries.
func (s *Store) VisibleTenantIDs(managerID uint) ([]uint, error) {
	tenants, err := s.ListTenants(managerID, TenantFilter{})
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(tenants))
	for _, t := range tenants {
		ids = append(ids, t.ID)
	}
	return ids, nil
}

// GetTenantByUser returns the tenant record linked to a user account.
func (s *Store) GetTenantByUser(userID uint) (*models.Tenant, error) {
	var tenant models.Tenant
	err := s.db.Preload("Property").Where("user_id = ?", userID).First(&tenant).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &tenant, nil
}

// FindTenantByEmail returns the first tenant record with the given email,
// lowest ID first, matching case-insensitively. Duplicate emails are
// possible; first match wins.
func (s *Store) FindTenantByEmail(email string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := s.db.Where("LOWER(email) = ?", normalizeEmail(email)).Order("id").First(&tenant).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &tenant, nil
}

func (s *Store) CreateTenant(tenant *models.Tenant) error {
	if tenant.Status == "" {
		tenant.Status = models.TenantStatusPending
	}
	if !models.ValidTenantStatus(tenant.Status) {
		return fmt.Errorf("%w: tenant status %q", ErrInvalidValue, tenant.Status)
	}
	return s.db.Create(tenant).Error
}

func (s *Store) UpdateTenant(managerID, id uint, updates map[string]interface{}) (*models.Tenant, error) {
	tenant, err := s.GetTenant(managerID, id)
	if err != nil {
		return nil, err
	}

	if status, ok := updates["status"].(string); ok && !models.ValidTenantStatus(status) {
		return nil, fmt.Errorf("%w: tenant status %q", ErrInvalidValue, status)
	}

	if err := s.db.Model(tenant).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetTenant(managerID, id)
}

func (s *Store) DeleteTenant(managerID, id uint) error {
	tenant, err := s.GetTenant(managerID, id)
	if err != nil {
		return err
	}
	return s.db.Delete(tenant).Error
}

// LinkTenantToUser writes the user ID onto the tenant row only if it is
// still unlinked, in a single conditional update. Returns false when the
// row was already claimed, so concurrent sign-ins cannot double-link.
func (s *Store) LinkTenantToUser(tenantID, userID uint) (bool, error) {
	result := s.db.Model(&models.Tenant{}).
		Where("id = ? AND user_id IS NULL", tenantID).
		Update("user_id", userID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
