package accounts

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"rentdesk/server/internal/models"
	"rentdesk/server/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestReconciler(t *testing.T) (*Reconciler, *store.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Property{},
		&models.Tenant{},
		&models.Payment{},
	))

	s := store.NewStore(db)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewReconciler(s, log), s
}

func createUser(t *testing.T, s *store.Store, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "supersecret"}
	require.NoError(t, s.CreateUser(user))
	return user
}

func TestReconcile_CreatesDefaultProfile(t *testing.T) {
	r, s := newTestReconciler(t)
	user := createUser(t, s, "nobody@example.com")

	profile := r.Reconcile(user)
	require.NotNil(t, profile)
	assert.Equal(t, models.UserTypeTenant, profile.UserType)
	assert.Nil(t, profile.PropertyID)

	// The profile was persisted, not just returned
	stored, err := s.GetProfileByUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, stored.ID)
}

func TestReconcile_LinksMatchingTenant(t *testing.T) {
	r, s := newTestReconciler(t)

	property := &models.Property{ManagerID: 1, Name: "Maple Court", PropertyType: models.PropertyTypeApartment, UnitCount: 4}
	require.NoError(t, s.CreateProperty(property))

	leaseStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	tenant := &models.Tenant{
		Name:          "Ana Ruiz",
		Email:         "ana@example.com",
		Phone:         "555-0101",
		PropertyID:    &property.ID,
		Unit:          "2B",
		LeaseStart:    &leaseStart,
		MonthlyRent:   1450,
		DepositAmount: 1450,
		Balance:       120,
		Status:        models.TenantStatusActive,
	}
	require.NoError(t, s.CreateTenant(tenant))

	user := createUser(t, s, "ana@example.com")
	profile := r.Reconcile(user)

	// Profile carries the tenant record's lease/financial fields
	require.NotNil(t, profile.PropertyID)
	assert.Equal(t, property.ID, *profile.PropertyID)
	assert.Equal(t, "Ana Ruiz", profile.FullName)
	assert.Equal(t, "2B", profile.Unit)
	assert.Equal(t, 1450.0, profile.MonthlyRent)
	assert.Equal(t, 120.0, profile.Balance)

	// Tenant record now points back at the account
	linked, err := s.GetTenantByUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, linked.ID)
}

func TestReconcile_DoesNotStealLinkedTenant(t *testing.T) {
	r, s := newTestReconciler(t)

	otherUser := createUser(t, s, "other@example.com")
	tenant := &models.Tenant{Name: "Ana Ruiz", Email: "ana@example.com", UserID: &otherUser.ID}
	require.NoError(t, s.CreateTenant(tenant))

	user := createUser(t, s, "ana@example.com")
	profile := r.Reconcile(user)

	// Tenant stays linked to the original account
	assert.Nil(t, profile.PropertyID)
	reloaded, err := s.GetTenant(1, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, otherUser.ID, *reloaded.UserID)
}

func TestReconcile_Rerun_IsStable(t *testing.T) {
	r, s := newTestReconciler(t)

	property := &models.Property{ManagerID: 1, Name: "Maple Court", PropertyType: models.PropertyTypeApartment, UnitCount: 4}
	require.NoError(t, s.CreateProperty(property))
	tenant := &models.Tenant{Name: "Ana Ruiz", Email: "ana@example.com", PropertyID: &property.ID, MonthlyRent: 1450}
	require.NoError(t, s.CreateTenant(tenant))

	user := createUser(t, s, "ana@example.com")
	first := r.Reconcile(user)
	second := r.Reconcile(user)

	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.PropertyID)
	assert.Equal(t, property.ID, *second.PropertyID)
}

func TestReconcile_ManagerProfileUntouched(t *testing.T) {
	r, s := newTestReconciler(t)
	user := createUser(t, s, "boss@example.com")
	require.NoError(t, s.CreateProfile(&models.Profile{UserID: user.ID, UserType: models.UserTypeManager}))

	// A tenant record sharing the email must not get linked to a manager
	tenant := &models.Tenant{Name: "Boss T.", Email: "boss@example.com"}
	require.NoError(t, s.CreateTenant(tenant))

	profile := r.Reconcile(user)
	assert.Equal(t, models.UserTypeManager, profile.UserType)

	reloaded, err := s.GetTenant(1, tenant.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.UserID)
}
