package store

import (
	"path/filepath"
	"testing"

	"rentdesk/server/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens a throwaway SQLite database with the full schema.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Property{},
		&models.Tenant{},
		&models.Payment{},
		&models.MaintenanceRequest{},
		&models.Document{},
		&models.DashboardChart{},
	)
	require.NoError(t, err)

	return NewStore(db)
}

// seedProperty creates a property owned by the given manager.
func seedProperty(t *testing.T, s *Store, managerID uint, name string, units int) *models.Property {
	t.Helper()

	property := &models.Property{
		ManagerID:    managerID,
		Name:         name,
		PropertyType: models.PropertyTypeApartment,
		UnitCount:    units,
	}
	require.NoError(t, s.CreateProperty(property))
	return property
}

// seedTenant creates a tenant, optionally assigned to a property.
func seedTenant(t *testing.T, s *Store, name, email string, propertyID *uint, status string) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{
		Name:        name,
		Email:       email,
		PropertyID:  propertyID,
		Status:      status,
		MonthlyRent: 1200,
	}
	require.NoError(t, s.CreateTenant(tenant))
	return tenant
}
