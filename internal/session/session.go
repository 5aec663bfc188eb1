// Package session wires the sync-layer services for one authenticated user.
// A Session is created at login and torn down at logout; nothing in it
// outlives the process.
package session

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/chargefind/chargefind-go/internal/cache"
	"github.com/chargefind/chargefind-go/internal/compat"
	"github.com/chargefind/chargefind-go/internal/config"
	"github.com/chargefind/chargefind-go/internal/favorites"
	"github.com/chargefind/chargefind-go/internal/filter"
	"github.com/chargefind/chargefind-go/internal/gateway"
	"github.com/chargefind/chargefind-go/internal/models"
)

type Session struct {
	Catalog   *cache.StationCatalog
	Favorites *favorites.Store
	Filter    *filter.Engine

	estimates *cache.EstimateCache
	userID    string
}

type Options struct {
	UserID    string
	Stations  gateway.StationGateway
	Favorites gateway.FavoritesGateway
	Config    *config.SyncConfig
}

func New(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.GetSyncConfig()
	}

	estimates, err := cache.NewEstimateCache(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	return &Session{
		Catalog:   cache.NewStationCatalog(opts.Stations, cfg),
		Favorites: favorites.NewStore(opts.Favorites, opts.UserID),
		Filter:    filter.NewEngine(cfg),
		estimates: estimates,
		userID:    opts.UserID,
	}, nil
}

// Start warms the catalog and the favorites set concurrently and seeds the
// filter engine with the fetched catalog.
func (s *Session) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stations, err := s.Catalog.Get(ctx, true)
		if err != nil {
			return err
		}
		s.Filter.UpdateCatalog(stations)
		return nil
	})

	g.Go(func() error {
		return s.Favorites.SyncFromRemote(ctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	log.Info().Str("user_id", s.userID).Msg("Session started")
	return nil
}

// RefreshCatalog refetches the station catalog and reseeds the filter engine.
func (s *Session) RefreshCatalog(ctx context.Context) ([]models.StationRecord, error) {
	stations, err := s.Catalog.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	s.Filter.UpdateCatalog(stations)
	return stations, nil
}

// Estimate computes a charging estimate, memoized per (station, vehicle,
// percent range).
func (s *Session) Estimate(station models.StationRecord, vehicle models.VehicleProfile, fromPercent, toPercent float64) models.ChargingEstimate {
	if estimate, ok := s.estimates.Get(station, vehicle, fromPercent, toPercent); ok {
		return estimate
	}

	estimate := compat.Estimate(station, vehicle, fromPercent, toPercent)
	s.estimates.Add(station, vehicle, fromPercent, toPercent, estimate)
	return estimate
}

// EstimateStats exposes the memo cache hit/miss counters.
func (s *Session) EstimateStats() map[string]uint64 {
	return s.estimates.Stats()
}

// Close clears all session-scoped state, used on logout or user change.
func (s *Session) Close() {
	s.Favorites.Reset()
	s.Catalog.Clear()
	s.estimates.Clear()
	log.Info().Str("user_id", s.userID).Msg("Session closed")
}
