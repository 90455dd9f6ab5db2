package booking

import (
	"context"
	"encoding/json"
	"time"

	"washbay/models"
	"washbay/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const listCacheKey = "bookings:all"

// ListCache caches the full booking list in Redis for a short interval.
// Every mutation invalidates it, so readers see their own writes. A nil
// cache or an unreachable Redis degrades to the store.
type ListCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewListCache returns a ListCache over the shared Redis client.
func NewListCache(client *redis.Client) *ListCache {
	return &ListCache{Client: client, TTL: 30 * time.Second}
}

// Get returns the cached list, reporting whether a usable entry was found.
func (lc *ListCache) Get() ([]models.Booking, bool) {
	if lc == nil || lc.Client == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := lc.Client.Get(ctx, listCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		utils.GetLogger().Warn("Discarding corrupt booking list cache", zap.Error(err))
		return nil, false
	}
	return bookings, true
}

// Set stores the list with the configured TTL. Failures are logged, not returned.
func (lc *ListCache) Set(bookings []models.Booking) {
	if lc == nil || lc.Client == nil {
		return
	}
	data, err := json.Marshal(bookings)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := lc.Client.Set(ctx, listCacheKey, data, lc.TTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache booking list", zap.Error(err))
	}
}

// Invalidate drops the cached list after a mutation.
func (lc *ListCache) Invalidate() {
	if lc == nil || lc.Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := lc.Client.Del(ctx, listCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate booking list cache", zap.Error(err))
	}
}
