package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chargefind/chargefind-go/pkg/http/client"
)

func newFavoritesGateway(t *testing.T, handler http.HandlerFunc) (*HTTPFavoritesGateway, func()) {
	t.Helper()

	srv := httptest.NewServer(handler)
	httpClient := client.New(client.Options{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
	return NewHTTPFavoritesGateway(httpClient), srv.Close
}

func TestHTTPFavoritesGatewayList(t *testing.T) {
	t.Parallel()

	gw, closeFn := newFavoritesGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/user-1/favorites", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"favorites": [
				{
					"id": "f9f2c0d4-9b3a-4d8f-8a60-1c2b3d4e5f60",
					"userId": "user-1",
					"stationId": "ST001",
					"createdAt": "2025-11-02T10:30:00Z"
				}
			]
		}`))
	})
	defer closeFn()

	edges, err := gw.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, "ST001", edges[0].StationID)
	assert.Equal(t, "user-1", edges[0].UserID)
	assert.Equal(t, time.Date(2025, 11, 2, 10, 30, 0, 0, time.UTC), edges[0].CreatedAt)
}

func TestHTTPFavoritesGatewayListBadTimestamp(t *testing.T) {
	t.Parallel()

	gw, closeFn := newFavoritesGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"favorites": [
				{"id": "x", "userId": "user-1", "stationId": "ST001", "createdAt": "yesterday"}
			]
		}`))
	})
	defer closeFn()

	edges, err := gw.List(context.Background(), "user-1")
	assert.Nil(t, edges)
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
}

func TestHTTPFavoritesGatewayAdd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		wantErr      bool
		wantConflict bool
		wantAuth     bool
	}{
		{name: "created", status: http.StatusCreated},
		{name: "duplicate edge", status: http.StatusConflict, wantErr: true, wantConflict: true},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: true, wantAuth: true},
		{name: "server error", status: http.StatusBadGateway, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gw, closeFn := newFavoritesGateway(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				w.WriteHeader(tt.status)
			})
			defer closeFn()

			err := gw.Add(context.Background(), "user-1", "ST001")
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantConflict, IsConflict(err))
			assert.Equal(t, tt.wantAuth, IsAuthError(err))
		})
	}
}

func TestHTTPFavoritesGatewayRemove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "deleted", status: http.StatusNoContent},
		{name: "already gone", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gw, closeFn := newFavoritesGateway(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/v1/users/user-1/favorites/ST001", r.URL.Path)
				w.WriteHeader(tt.status)
			})
			defer closeFn()

			err := gw.Remove(context.Background(), "user-1", "ST001")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsNetworkError(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}
