package store

import (
	"time"

	"rentdesk/server/internal/models"
)

// DocumentFilter narrows ListDocuments. Zero values mean "no filter".
type DocumentFilter struct {
	TenantID   uint
	PropertyID uint
}

// ListDocuments returns documents the manager can see: attached to one of
// their properties, attached to a tenant they can see, or attached to
// nothing at all.
func (s *Store) ListDocuments(managerID uint, filter DocumentFilter) ([]models.Document, error) {
	propertyIDs, err := s.PropertyIDs(managerID)
	if err != nil {
		return nil, err
	}
	tenantIDs, err := s.VisibleTenantIDs(managerID)
	if err != nil {
		return nil, err
	}

	query := s.db.Order("uploaded_at DESC, id DESC").
		Where(
			"property_id IN ? OR tenant_id IN ? OR (property_id IS NULL AND tenant_id IS NULL)",
			propertyIDs, tenantIDs,
		)
	if filter.TenantID != 0 {
		query = query.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.PropertyID != 0 {
		query = query.Where("property_id = ?", filter.PropertyID)
	}

	var documents []models.Document
	if err := query.Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

// GetDocument applies the same visibility rule as ListDocuments.
func (s *Store) GetDocument(managerID, id uint) (*models.Document, error) {
	var document models.Document
	if err := s.db.First(&document, id).Error; err != nil {
		return nil, notFound(err)
	}

	visible, err := s.documentVisible(managerID, &document)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrNotFound
	}
	return &document, nil
}

func (s *Store) documentVisible(managerID uint, document *models.Document) (bool, error) {
	if document.PropertyID != nil {
		var count int64
		err := s.db.Model(&models.Property{}).
			Where("id = ? AND manager_id = ?", *document.PropertyID, managerID).
			Count(&count).Error
		if err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	if document.TenantID != nil {
		tenant, err := s.getTenantByID(*document.TenantID)
		if err != nil {
			return false, err
		}
		return s.tenantVisible(managerID, tenant)
	}
	return document.PropertyID == nil, nil
}

func (s *Store) CreateDocument(document *models.Document) error {
	if document.UploadedAt.IsZero() {
		document.UploadedAt = time.Now()
	}
	return s.db.Create(document).Error
}

func (s *Store) DeleteDocument(managerID, id uint) error {
	document, err := s.GetDocument(managerID, id)
	if err != nil {
		return err
	}
	return s.db.Delete(document).Error
}
