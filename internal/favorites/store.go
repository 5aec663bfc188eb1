package favorites

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/chargefind/chargefind-go/internal/gateway"
	"github.com/chargefind/chargefind-go/internal/models"
)

type ChangeKind string

const (
	ChangeAdded    ChangeKind = "ADDED"
	ChangeRemoved  ChangeKind = "REMOVED"
	ChangeReloaded ChangeKind = "RELOADED"
)

// ChangeEvent is published after every confirmed (non-rolled-back) mutation.
// StationID is empty for full reloads.
type ChangeEvent struct {
	Kind      ChangeKind
	StationID string
}

// Subscription is a handle for one change listener. Cancel releases it.
type Subscription struct {
	id    string
	store *Store
}

func (s *Subscription) Cancel() {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	delete(s.store.subs, s.id)
}

// Store holds the favorited station ids for one authenticated user. Adds and
// removes apply optimistically and roll back when the gateway call fails.
// Operations on the same station id are serialized; different ids proceed
// concurrently.
type Store struct {
	gw     gateway.FavoritesGateway
	userID string

	mu   sync.RWMutex
	ids  map[string]struct{}
	subs map[string]func(ChangeEvent)

	lockMu  sync.Mutex
	idLocks map[string]*sync.Mutex
}

func NewStore(gw gateway.FavoritesGateway, userID string) *Store {
	return &Store{
		gw:      gw,
		userID:  userID,
		ids:     make(map[string]struct{}),
		subs:    make(map[string]func(ChangeEvent)),
		idLocks: make(map[string]*sync.Mutex),
	}
}

func (s *Store) Contains(stationID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[stationID]
	return ok
}

// SyncFromRemote replaces the local set with the server's authoritative list.
func (s *Store) SyncFromRemote(ctx context.Context) error {
	if err := s.requireUser(); err != nil {
		return err
	}

	edges, err := s.gw.List(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("syncing favorites: %w", err)
	}

	ids := make(map[string]struct{}, len(edges))
	for _, edge := range edges {
		ids[edge.StationID] = struct{}{}
	}

	s.mu.Lock()
	s.ids = ids
	s.mu.Unlock()

	log.Debug().Str("user_id", s.userID).Int("favorite_count", len(ids)).Msg("Favorites synced from remote")
	s.notify(ChangeEvent{Kind: ChangeReloaded})
	return nil
}

// Add optimistically inserts the id, then confirms with the gateway. A
// uniqueness conflict means the edge already existed and counts as success.
func (s *Store) Add(ctx context.Context, stationID string) error {
	if err := s.requireUser(); err != nil {
		return err
	}

	idLock := s.lockFor(stationID)
	idLock.Lock()
	defer idLock.Unlock()

	return s.add(ctx, stationID)
}

// Remove optimistically deletes the id, re-inserting it if the gateway fails.
func (s *Store) Remove(ctx context.Context, stationID string) error {
	if err := s.requireUser(); err != nil {
		return err
	}

	idLock := s.lockFor(stationID)
	idLock.Lock()
	defer idLock.Unlock()

	return s.remove(ctx, stationID)
}

// Toggle inverts the local membership and returns the new state. The per-id
// lock is held across the read and the mutation, so two rapid toggles of the
// same station cannot interleave.
func (s *Store) Toggle(ctx context.Context, stationID string) (bool, error) {
	if err := s.requireUser(); err != nil {
		return false, err
	}

	idLock := s.lockFor(stationID)
	idLock.Lock()
	defer idLock.Unlock()

	if s.Contains(stationID) {
		if err := s.remove(ctx, stationID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.add(ctx, stationID); err != nil {
		return false, err
	}
	return true, nil
}

// Subscribe registers a listener for confirmed mutations.
func (s *Store) Subscribe(fn func(ChangeEvent)) *Subscription {
	id := uuid.NewString()
	s.mu.Lock()
	s.subs[id] = fn
	s.mu.Unlock()
	return &Subscription{id: id, store: s}
}

// Reset clears the local set and all pending id locks, used on logout or
// user change. Subscriptions stay registered; a RELOADED event is published.
func (s *Store) Reset() {
	s.mu.Lock()
	s.ids = make(map[string]struct{})
	s.mu.Unlock()

	s.lockMu.Lock()
	s.idLocks = make(map[string]*sync.Mutex)
	s.lockMu.Unlock()

	s.notify(ChangeEvent{Kind: ChangeReloaded})
}

// DecoratedStation pairs a catalog entry with its favorite status.
type DecoratedStation struct {
	models.StationRecord
	Favorited bool
}

// Decorate marks each station with its current favorite status.
func (s *Store) Decorate(stations []models.StationRecord) []DecoratedStation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	decorated := make([]DecoratedStation, len(stations))
	for i, station := range stations {
		_, favorited := s.ids[station.ID]
		decorated[i] = DecoratedStation{StationRecord: station, Favorited: favorited}
	}
	return decorated
}

// add assumes the caller holds the per-id lock for stationID.
func (s *Store) add(ctx context.Context, stationID string) error {
	s.mu.Lock()
	if _, ok := s.ids[stationID]; ok {
		s.mu.Unlock()
		return nil
	}
	s.ids[stationID] = struct{}{}
	s.mu.Unlock()

	if err := s.gw.Add(ctx, s.userID, stationID); err != nil {
		if gateway.IsConflict(err) {
			// The edge already existed remotely; local state is already correct
			log.Debug().Str("station_id", stationID).Msg("Favorite add conflict treated as success")
			s.notify(ChangeEvent{Kind: ChangeAdded, StationID: stationID})
			return nil
		}

		s.mu.Lock()
		delete(s.ids, stationID)
		s.mu.Unlock()
		return fmt.Errorf("adding favorite %s: %w", stationID, err)
	}

	s.notify(ChangeEvent{Kind: ChangeAdded, StationID: stationID})
	return nil
}

// remove assumes the caller holds the per-id lock for stationID.
func (s *Store) remove(ctx context.Context, stationID string) error {
	s.mu.Lock()
	if _, ok := s.ids[stationID]; !ok {
		s.mu.Unlock()
		return nil
	}
	delete(s.ids, stationID)
	s.mu.Unlock()

	if err := s.gw.Remove(ctx, s.userID, stationID); err != nil {
		s.mu.Lock()
		s.ids[stationID] = struct{}{}
		s.mu.Unlock()
		return fmt.Errorf("removing favorite %s: %w", stationID, err)
	}

	s.notify(ChangeEvent{Kind: ChangeRemoved, StationID: stationID})
	return nil
}

func (s *Store) requireUser() error {
	if s.userID == "" {
		return gateway.NewAuthError("favorites require a user context")
	}
	return nil
}

func (s *Store) lockFor(stationID string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	if l, ok := s.idLocks[stationID]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.idLocks[stationID] = l
	return l
}

func (s *Store) notify(event ChangeEvent) {
	s.mu.RLock()
	listeners := make([]func(ChangeEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(event)
	}
}
