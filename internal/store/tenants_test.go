package store

import (
	"testing"

	"rentdesk/server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTenants_ScopeAndFilters(t *testing.T) {
	s := newTestStore(t)
	mine := seedProperty(t, s, 1, "Maple Court", 4)
	theirs := seedProperty(t, s, 2, "Oak Row", 2)

	seedTenant(t, s, "Ana Ruiz", "ana@example.com", &mine.ID, models.TenantStatusActive)
	seedTenant(t, s, "Bo Chen", "bo@example.com", &theirs.ID, models.TenantStatusActive)
	seedTenant(t, s, "Casey Lee", "casey@example.com", nil, models.TenantStatusPending)

	tenants, err := s.ListTenants(1, TenantFilter{})
	require.NoError(t, err)
	// own property's tenant plus the unassigned one, not the other manager's
	require.Len(t, tenants, 2)

	tenants, err = s.ListTenants(1, TenantFilter{Status: models.TenantStatusPending})
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, "Casey Lee", tenants[0].Name)

	tenants, err = s.ListTenants(1, TenantFilter{PropertyID: mine.ID})
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, "Ana Ruiz", tenants[0].Name)
}

func TestFindTenantByEmail_FirstMatchWins(t *testing.T) {
	s := newTestStore(t)
	first := seedTenant(t, s, "Ana Ruiz", "shared@example.com", nil, models.TenantStatusActive)
	seedTenant(t, s, "Ana R.", "shared@example.com", nil, models.TenantStatusPending)

	found, err := s.FindTenantByEmail("shared@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestLinkTenantToUser_ConditionalUpdate(t *testing.T) {
	s := newTestStore(t)
	tenant := seedTenant(t, s, "Ana Ruiz", "ana@example.com", nil, models.TenantStatusActive)

	linked, err := s.LinkTenantToUser(tenant.ID, 10)
	require.NoError(t, err)
	assert.True(t, linked)

	// A second claim loses; the first link survives
	linked, err = s.LinkTenantToUser(tenant.ID, 11)
	require.NoError(t, err)
	assert.False(t, linked)

	reloaded, err := s.GetTenant(1, tenant.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.UserID)
	assert.Equal(t, uint(10), *reloaded.UserID)
}

func TestGetTenant_OtherManagerNotFound(t *testing.T) {
	s := newTestStore(t)
	property := seedProperty(t, s, 1, "Maple Court", 4)
	assigned := seedTenant(t, s, "Ana Ruiz", "ana@example.com", &property.ID, models.TenantStatusActive)
	unassigned := seedTenant(t, s, "Waitlisted W.", "w@example.com", nil, models.TenantStatusPending)

	_, err := s.GetTenant(2, assigned.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetTenant(1, assigned.ID)
	assert.NoError(t, err)

	// and deletion through the wrong manager leaves the row alone
	err = s.DeleteTenant(2, assigned.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetTenant(1, assigned.ID)
	assert.NoError(t, err)

	// unassigned tenants are visible to every manager
	_, err = s.GetTenant(2, unassigned.ID)
	assert.NoError(t, err)
}

func TestUpdateTenant_RejectsUnknownStatus(t *testing.T) {
	s := newTestStore(t)
	tenant := seedTenant(t, s, "Ana Ruiz", "ana@example.com", nil, models.TenantStatusActive)

	_, err := s.UpdateTenant(1, tenant.ID, map[string]interface{}{"status": "evicted"})
	assert.ErrorIs(t, err, ErrInvalidValue)
}
