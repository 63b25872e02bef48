package store

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"MindHub360/models"
)

const (
	activeDoctorsKey = "doctors:active"
	rosterTTL        = 10 * time.Minute
)

// RosterCache keeps the active-doctor list in redis. Every method is
// best-effort: a nil cache or an unreachable redis degrades to the store.
type RosterCache struct {
	rdb *redis.Client
}

func NewRosterCache(addr string) *RosterCache {
	if addr == "" {
		return nil
	}
	return &RosterCache{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

func (c *RosterCache) GetActiveDoctors(ctx context.Context) ([]models.Doctor, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, activeDoctorsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var doctors []models.Doctor
	if err := json.Unmarshal(raw, &doctors); err != nil {
		log.Println("discarding corrupt roster cache entry:", err)
		return nil, false
	}
	return doctors, true
}

func (c *RosterCache) SetActiveDoctors(ctx context.Context, doctors []models.Doctor) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(doctors)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, activeDoctorsKey, raw, rosterTTL).Err(); err != nil {
		log.Println("roster cache set failed:", err)
	}
}

// Invalidate drops the cached roster; called after any doctor write.
func (c *RosterCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, activeDoctorsKey).Err(); err != nil {
		log.Println("roster cache invalidation failed:", err)
	}
}
