package cache

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/chargefind/chargefind-go/internal/config"
	"github.com/chargefind/chargefind-go/internal/models"
)

// estimateEntry wraps a cached estimate with its expiry
type estimateEntry struct {
	Estimate  models.ChargingEstimate
	ExpiresAt time.Time
}

// EstimateCache memoizes charging estimates per (station, vehicle, percent
// range) with an LRU + TTL layer.
type EstimateCache struct {
	lru    *lru.Cache[string, *estimateEntry]
	ttl    time.Duration
	hits   atomic.Uint64
	misses atomic.Uint64
	now    func() time.Time
}

func NewEstimateCache(cfg *config.SyncConfig) (*EstimateCache, error) {
	if cfg == nil {
		cfg = config.GetSyncConfig()
	}

	lruCache, err := lru.New[string, *estimateEntry](cfg.EstimateLRUSize)
	if err != nil {
		return nil, fmt.Errorf("creating estimate LRU cache: %w", err)
	}

	return &EstimateCache{
		lru: lruCache,
		ttl: cfg.GetEstimateLRUTTL(),
		now: time.Now,
	}, nil
}

// estimateKey identifies one estimate computation. Vehicles carry no id, so
// the key folds in the charging-relevant profile fields.
func estimateKey(station models.StationRecord, vehicle models.VehicleProfile, fromPercent, toPercent float64) string {
	connectors := make([]string, len(vehicle.SupportedConnectors))
	for i, ct := range vehicle.SupportedConnectors {
		connectors[i] = string(ct)
	}
	sort.Strings(connectors)

	return fmt.Sprintf("%s:%.1f:%.1f:%s:%.1f-%.1f",
		station.ID,
		vehicle.BatteryCapacityKWh,
		vehicle.MaxChargingSpeedKW,
		strings.Join(connectors, ","),
		fromPercent,
		toPercent,
	)
}

func (c *EstimateCache) Get(station models.StationRecord, vehicle models.VehicleProfile, fromPercent, toPercent float64) (models.ChargingEstimate, bool) {
	key := estimateKey(station, vehicle, fromPercent, toPercent)
	if entry, ok := c.lru.Get(key); ok {
		if c.now().Before(entry.ExpiresAt) {
			c.hits.Add(1)
			return entry.Estimate, true
		}
		// Entry expired, remove it
		c.lru.Remove(key)
	}
	c.misses.Add(1)
	return models.ChargingEstimate{}, false
}

func (c *EstimateCache) Add(station models.StationRecord, vehicle models.VehicleProfile, fromPercent, toPercent float64, estimate models.ChargingEstimate) {
	key := estimateKey(station, vehicle, fromPercent, toPercent)
	c.lru.Add(key, &estimateEntry{
		Estimate:  estimate,
		ExpiresAt: c.now().Add(c.ttl),
	})
}

// Stats returns hit/miss counters
func (c *EstimateCache) Stats() map[string]uint64 {
	return map[string]uint64{
		"hits":   c.hits.Load(),
		"misses": c.misses.Load(),
	}
}

// Clear removes all entries
func (c *EstimateCache) Clear() {
	c.lru.Purge()
}
