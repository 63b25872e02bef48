package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"MindHub360/models"
	"MindHub360/services"
	"MindHub360/store"
)

// StartDailyScheduler runs the overnight sweep: surface therapy requests
// that sat Pending past their slot and rebuild the roster cache.
func StartDailyScheduler(st store.ContentStore, auth *services.AuthService, cache *store.RosterCache) *cron.Cron {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running daily therapy request sweep...")
		SweepOverdueRequests(st)
		RefreshRosterCache(auth, cache)
	})

	c.Start()
	return c
}

func SweepOverdueRequests(st store.ContentStore) {
	now := time.Now()
	overdue := 0
	for _, req := range st.GetTherapyRequests() {
		if req.Status == models.StatusPending && req.Slot.Before(now) {
			overdue++
			log.Println("therapy request", req.ID, "still pending past its slot", req.Slot)
		}
	}
	if overdue > 0 {
		log.Println(overdue, "overdue pending therapy requests need admin attention")
	}
}

func RefreshRosterCache(auth *services.AuthService, cache *store.RosterCache) {
	if cache == nil {
		return
	}
	cache.Invalidate(context.Background())
	doctors := auth.ListDoctors(true)
	log.Println("roster cache refreshed with", len(doctors), "active doctors")
}
