package gateway

import (
	"context"

	"github.com/chargefind/chargefind-go/internal/models"
)

// StationGateway exposes the backend's station catalog. FetchAll returns the
// full current catalog; there is no pagination or delta contract.
type StationGateway interface {
	FetchAll(ctx context.Context) ([]models.StationRecord, error)
}

// FavoritesGateway exposes the backend's per-user favorites collection.
type FavoritesGateway interface {
	List(ctx context.Context, userID string) ([]models.FavoriteEdge, error)
	Add(ctx context.Context, userID, stationID string) error
	Remove(ctx context.Context, userID, stationID string) error
}
