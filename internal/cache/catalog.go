package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/chargefind/chargefind-go/internal/config"
	"github.com/chargefind/chargefind-go/internal/gateway"
	"github.com/chargefind/chargefind-go/internal/models"
)

// StationCatalog caches the full station catalog with a TTL. Refreshes are
// single-flight: concurrent callers attach to the in-flight fetch. A failed
// refresh leaves the previous snapshot untouched.
type StationCatalog struct {
	gw  gateway.StationGateway
	ttl time.Duration

	mu        sync.RWMutex
	stations  []models.StationRecord
	fetchedAt time.Time

	flight singleflight.Group
	now    func() time.Time
}

func NewStationCatalog(gw gateway.StationGateway, cfg *config.SyncConfig) *StationCatalog {
	if cfg == nil {
		cfg = config.GetSyncConfig()
	}
	return &StationCatalog{
		gw:  gw,
		ttl: cfg.GetCatalogTTL(),
		now: time.Now,
	}
}

// Get returns the cached catalog when it is still valid, otherwise refreshes.
func (c *StationCatalog) Get(ctx context.Context, forceRefresh bool) ([]models.StationRecord, error) {
	if !forceRefresh {
		c.mu.RLock()
		if c.isValidLocked() {
			stations := c.stations
			c.mu.RUnlock()
			log.Debug().Msg("Cache HIT for station catalog")
			return stations, nil
		}
		c.mu.RUnlock()
		log.Debug().Msg("Cache MISS for station catalog")
	}

	return c.Refresh(ctx)
}

// IsValid reports whether the snapshot is non-empty and younger than the TTL.
func (c *StationCatalog) IsValid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isValidLocked()
}

func (c *StationCatalog) isValidLocked() bool {
	return len(c.stations) > 0 && c.now().Sub(c.fetchedAt) < c.ttl
}

// Refresh fetches the catalog from the gateway and atomically replaces the
// snapshot. Concurrent calls coalesce into one network fetch.
func (c *StationCatalog) Refresh(ctx context.Context) ([]models.StationRecord, error) {
	v, err, _ := c.flight.Do("catalog", func() (interface{}, error) {
		stations, err := c.gw.FetchAll(ctx)
		if err != nil {
			// Previous snapshot stays in place for stale reads
			return nil, fmt.Errorf("refreshing station catalog: %w", err)
		}

		c.mu.Lock()
		c.stations = stations
		c.fetchedAt = c.now()
		c.mu.Unlock()

		log.Debug().Int("station_count", len(stations)).Msg("Station catalog refreshed")
		return stations, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.StationRecord), nil
}

// Snapshot returns the current snapshot regardless of validity. Consumers
// that can tolerate stale data use this after a failed refresh.
func (c *StationCatalog) Snapshot() []models.StationRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stations
}

// Clear drops the snapshot, used on logout.
func (c *StationCatalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stations = nil
	c.fetchedAt = time.Time{} // Zero time to ensure next fetch
}
