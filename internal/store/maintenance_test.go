package store

import (
	"testing"

	"rentdesk/server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateMaintenance_CompletionTimestamp(t *testing.T) {
	s := newTestStore(t)

	request := &models.MaintenanceRequest{Title: "Broken window"}
	require.NoError(t, s.CreateMaintenance(request))
	assert.Equal(t, models.MaintenanceStatusPending, request.Status)
	assert.Equal(t, models.PriorityMedium, request.Priority)
	assert.False(t, request.SubmittedAt.IsZero())
	assert.Nil(t, request.CompletedAt)

	updated, err := s.UpdateMaintenance(1, request.ID, map[string]interface{}{
		"status": models.MaintenanceStatusCompleted,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)

	// Reopening clears the completion timestamp
	updated, err = s.UpdateMaintenance(1, request.ID, map[string]interface{}{
		"status": models.MaintenanceStatusInProgress,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.CompletedAt)
}

func TestUpdateMaintenance_AnyTransitionAllowed(t *testing.T) {
	s := newTestStore(t)

	request := &models.MaintenanceRequest{Title: "Broken window"}
	require.NoError(t, s.CreateMaintenance(request))

	// cancelled straight from pending, then back again
	for _, status := range []string{
		models.MaintenanceStatusCancelled,
		models.MaintenanceStatusInProgress,
		models.MaintenanceStatusPending,
	} {
		updated, err := s.UpdateMaintenance(1, request.ID, map[string]interface{}{"status": status})
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestMaintenanceVisibility(t *testing.T) {
	s := newTestStore(t)
	mine := seedProperty(t, s, 1, "Maple Court", 4)
	theirs := seedProperty(t, s, 2, "Oak Row", 1)

	onMine := &models.MaintenanceRequest{PropertyID: &mine.ID, Title: "Leak"}
	require.NoError(t, s.CreateMaintenance(onMine))
	onTheirs := &models.MaintenanceRequest{PropertyID: &theirs.ID, Title: "Broken lock"}
	require.NoError(t, s.CreateMaintenance(onTheirs))
	loose := &models.MaintenanceRequest{Title: "Lobby bulb"}
	require.NoError(t, s.CreateMaintenance(loose))

	requests, err := s.ListMaintenance(MaintenanceFilter{ManagerID: 1})
	require.NoError(t, err)
	require.Len(t, requests, 2)
	for _, r := range requests {
		assert.NotEqual(t, onTheirs.ID, r.ID)
	}

	_, err = s.GetMaintenance(1, onTheirs.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetMaintenance(1, loose.ID)
	assert.NoError(t, err)

	err = s.DeleteMaintenance(1, onTheirs.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetMaintenance(2, onTheirs.ID)
	assert.NoError(t, err)
}

func TestCountOpenMaintenance(t *testing.T) {
	s := newTestStore(t)
	property := seedProperty(t, s, 1, "Maple Court", 4)

	require.NoError(t, s.CreateMaintenance(&models.MaintenanceRequest{
		PropertyID: &property.ID, Title: "Leak", Priority: models.PriorityEmergency,
	}))
	require.NoError(t, s.CreateMaintenance(&models.MaintenanceRequest{
		PropertyID: &property.ID, Title: "Paint", Priority: models.PriorityLow,
	}))
	require.NoError(t, s.CreateMaintenance(&models.MaintenanceRequest{
		PropertyID: &property.ID, Title: "Done", Status: models.MaintenanceStatusCompleted,
	}))

	open, emergencies, err := s.CountOpenMaintenance([]uint{property.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, open)
	assert.Equal(t, 1, emergencies)
}
