package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/chargefind/chargefind-go/internal/models"
	"github.com/chargefind/chargefind-go/pkg/http/client"
)

// HTTPFavoritesGateway drives the backend's per-user favorites collection.
// A 409 on insert maps to ConflictError; 401/403 map to AuthError. A 404 on
// delete means the edge was already gone and is treated as success.
type HTTPFavoritesGateway struct {
	httpClient *client.Client
}

func NewHTTPFavoritesGateway(httpClient *client.Client) *HTTPFavoritesGateway {
	return &HTTPFavoritesGateway{httpClient: httpClient}
}

func (g *HTTPFavoritesGateway) List(ctx context.Context, userID string) ([]models.FavoriteEdge, error) {
	resp, err := g.httpClient.Get(ctx, favoritesPath(userID))
	if err != nil {
		return nil, NewNetworkError("listing favorites", err)
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, NewAuthError("listing favorites rejected")
	default:
		return nil, NewNetworkError("listing favorites", statusError(resp.StatusCode))
	}

	var backendResp struct {
		Favorites []struct {
			ID        string `json:"id"`
			UserID    string `json:"userId"`
			StationID string `json:"stationId"`
			CreatedAt string `json:"createdAt"`
		} `json:"favorites"`
	}

	if err := json.Unmarshal(resp.Body, &backendResp); err != nil {
		return nil, NewDecodeError("decoding favorites list", err)
	}

	edges := make([]models.FavoriteEdge, len(backendResp.Favorites))
	for i, f := range backendResp.Favorites {
		createdAt, err := time.Parse(time.RFC3339, f.CreatedAt)
		if err != nil {
			return nil, NewDecodeError("parsing favorite createdAt", err)
		}
		edges[i] = models.FavoriteEdge{
			ID:        f.ID,
			UserID:    f.UserID,
			StationID: f.StationID,
			CreatedAt: createdAt,
		}
	}

	log.Debug().Str("user_id", userID).Int("favorite_count", len(edges)).Msg("Listed favorites")

	return edges, nil
}

func (g *HTTPFavoritesGateway) Add(ctx context.Context, userID, stationID string) error {
	body := map[string]string{"stationId": stationID}
	resp, err := g.httpClient.Post(ctx, favoritesPath(userID), body)
	if err != nil {
		return NewNetworkError("adding favorite", err)
	}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusConflict:
		return &ConflictError{UserID: userID, StationID: stationID}
	case http.StatusUnauthorized, http.StatusForbidden:
		return NewAuthError("adding favorite rejected")
	default:
		return NewNetworkError("adding favorite", statusError(resp.StatusCode))
	}
}

func (g *HTTPFavoritesGateway) Remove(ctx context.Context, userID, stationID string) error {
	resp, err := g.httpClient.Delete(ctx, favoritesPath(userID)+"/"+stationID)
	if err != nil {
		return NewNetworkError("removing favorite", err)
	}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		// Edge already gone; delete is idempotent
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return NewAuthError("removing favorite rejected")
	default:
		return NewNetworkError("removing favorite", statusError(resp.StatusCode))
	}
}

func favoritesPath(userID string) string {
	return fmt.Sprintf("/v1/users/%s/favorites", userID)
}
