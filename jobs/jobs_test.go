package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"MindHub360/models"
	"MindHub360/services"
	"MindHub360/store"
)

func TestSweepOverdueRequests_TouchesNothing(t *testing.T) {
	st := store.NewMemStore()
	require.NoError(t, st.SaveTherapyRequests([]models.TherapyRequest{
		{ID: "r1", Status: models.StatusPending, Slot: time.Now().Add(-24 * time.Hour)},
		{ID: "r2", Status: models.StatusScheduled, Slot: time.Now().Add(-24 * time.Hour)},
	}))

	SweepOverdueRequests(st)

	// The sweep only reports; it never mutates request state.
	requests := st.GetTherapyRequests()
	require.Equal(t, models.StatusPending, requests[0].Status)
	require.Equal(t, models.StatusScheduled, requests[1].Status)
}

func TestRefreshRosterCache_NilCacheIsNoop(t *testing.T) {
	auth := &services.AuthService{Store: store.NewMemStore()}
	RefreshRosterCache(auth, nil)
}
