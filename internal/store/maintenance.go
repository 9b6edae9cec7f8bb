package store

import (
	"fmt"
	"time"

	"rentdesk/server/internal/models"

	"gorm.io/gorm"
)

// MaintenanceFilter narrows ListMaintenance. Zero values mean "no filter".
// ManagerID, when set, restricts results to requests the manager can see:
// requests on their own properties, plus requests with no property that
// either have no tenant or a tenant visible to them.
type MaintenanceFilter struct {
	ManagerID  uint
	PropertyID uint
	TenantID   uint
	Status     string
	Priority   string
}

func (s *Store) ListMaintenance(filter MaintenanceFilter) ([]models.MaintenanceRequest, error) {
	query := s.db.Preload("Property").Preload("Tenant").Order("submitted_at DESC, id DESC")
	if filter.ManagerID != 0 {
		propertyIDs, err := s.PropertyIDs(filter.ManagerID)
		if err != nil {
			return nil, err
		}
		tenantIDs, err := s.VisibleTenantIDs(filter.ManagerID)
		if err != nil {
			return nil, err
		}
		query = query.Where(
			"property_id IN ? OR (property_id IS NULL AND (tenant_id IS NULL OR tenant_id IN ?))",
			propertyIDs, tenantIDs,
		)
	}
	if filter.PropertyID != 0 {
		query = query.Where("property_id = ?", filter.PropertyID)
	}
	if filter.TenantID != 0 {
		query = query.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	var requests []models.MaintenanceRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// GetMaintenance returns a request visible to the manager, resolving
// visibility through its property when set and its tenant otherwise.
func (s *Store) GetMaintenance(managerID, id uint) (*models.MaintenanceRequest, error) {
	request, err := s.getMaintenanceByID(id)
	if err != nil {
		return nil, err
	}
	visible, err := s.maintenanceVisible(managerID, request)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrNotFound
	}
	return request, nil
}

func (s *Store) getMaintenanceByID(id uint) (*models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	err := s.db.Preload("Property").Preload("Tenant").First(&request, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &request, nil
}

func (s *Store) maintenanceVisible(managerID uint, request *models.MaintenanceRequest) (bool, error) {
	if request.PropertyID != nil {
		var count int64
		err := s.db.Model(&models.Property{}).
			Where("id = ? AND manager_id = ?", *request.PropertyID, managerID).
			Count(&count).Error
		if err != nil {
			return false, err
		}
		return count > 0, nil
	}
	if request.TenantID != nil {
		tenant, err := s.getTenantByID(*request.TenantID)
		if err != nil {
			return false, err
		}
		return s.tenantVisible(managerID, tenant)
	}
	return true, nil
}

func (s *Store) CreateMaintenance(request *models.MaintenanceRequest) error {
	if request.Priority == "" {
		request.Priority = models.PriorityMedium
	}
	if !models.ValidMaintenancePriority(request.Priority) {
		return fmt.Errorf("%w: priority %q", ErrInvalidValue, request.Priority)
	}
	if request.Status == "" {
		request.Status = models.MaintenanceStatusPending
	}
	if !models.ValidMaintenanceStatus(request.Status) {
		return fmt.Errorf("%w: status %q", ErrInvalidValue, request.Status)
	}
	if request.SubmittedAt.IsZero() {
		request.SubmittedAt = time.Now()
	}
	return s.db.Create(request).Error
}

// UpdateMaintenance applies updates. Status transitions are unconstrained;
// moving into completed stamps CompletedAt and moving out clears it.
func (s *Store) UpdateMaintenance(managerID, id uint, updates map[string]interface{}) (*models.MaintenanceRequest, error) {
	request, err := s.GetMaintenance(managerID, id)
	if err != nil {
		return nil, err
	}

	if priority, ok := updates["priority"].(string); ok && !models.ValidMaintenancePriority(priority) {
		return nil, fmt.Errorf("%w: priority %q", ErrInvalidValue, priority)
	}
	if status, ok := updates["status"].(string); ok {
		if !models.ValidMaintenanceStatus(status) {
			return nil, fmt.Errorf("%w: status %q", ErrInvalidValue, status)
		}
		if status == models.MaintenanceStatusCompleted && request.Status != models.MaintenanceStatusCompleted {
			now := time.Now()
			updates["completed_at"] = &now
		} else if status != models.MaintenanceStatusCompleted {
			updates["completed_at"] = nil
		}
	}

	if err := s.db.Model(request).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.getMaintenanceByID(id)
}

func (s *Store) DeleteMaintenance(managerID, id uint) error {
	request, err := s.GetMaintenance(managerID, id)
	if err != nil {
		return err
	}
	return s.db.Delete(request).Error
}

// CountOpenMaintenance returns requests that are neither completed nor
// cancelled, and how many of those are emergencies.
func (s *Store) CountOpenMaintenance(propertyIDs []uint) (open int, emergencies int, err error) {
	openQuery := func() *gorm.DB {
		q := s.db.Model(&models.MaintenanceRequest{}).
			Where("status IN ?", []string{models.MaintenanceStatusPending, models.MaintenanceStatusInProgress})
		if propertyIDs != nil {
			q = q.Where("property_id IN ?", propertyIDs)
		}
		return q
	}

	var total int64
	if err = openQuery().Count(&total).Error; err != nil {
		return 0, 0, err
	}

	var urgent int64
	err = openQuery().Where("priority = ?", models.PriorityEmergency).Count(&urgent).Error
	if err != nil {
		return 0, 0, err
	}
	return int(total), int(urgent), nil
}
