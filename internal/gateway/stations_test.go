package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chargefind/chargefind-go/internal/models"
	"github.com/chargefind/chargefind-go/pkg/http/client"
)

func newStationGateway(t *testing.T, handler http.HandlerFunc) (*HTTPStationGateway, func()) {
	t.Helper()

	srv := httptest.NewServer(handler)
	httpClient := client.New(client.Options{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
	return NewHTTPStationGateway(httpClient), srv.Close
}

func TestHTTPStationGatewayFetchAll(t *testing.T) {
	t.Parallel()

	gw, closeFn := newStationGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/stations", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"stations": [
				{
					"id": "ST001",
					"name": "Downtown Supercharger",
					"address": "1 Main St",
					"latitude": 43.238949,
					"longitude": 76.889709,
					"connectorTypes": ["CCS2", "TYPE2"],
					"availability": "AVAILABLE",
					"powerKW": 150,
					"pricePerKWh": 50,
					"provider": "VoltNet",
					"amenities": ["cafe", "wifi"],
					"phoneNumber": "+7 700 000 0000"
				},
				{
					"id": "ST002",
					"name": "Airport AC",
					"address": "2 Airport Rd",
					"latitude": 43.354404,
					"longitude": 77.040514,
					"connectorTypes": ["TYPE2"],
					"availability": "OCCUPIED",
					"provider": "CityCharge",
					"amenities": []
				}
			]
		}`))
	})
	defer closeFn()

	stations, err := gw.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stations, 2)

	assert.Equal(t, "ST001", stations[0].ID)
	assert.Equal(t, "VoltNet", stations[0].Provider)
	assert.True(t, stations[0].HasConnector(models.ConnectorCCS2))
	require.NotNil(t, stations[0].PowerKW)
	assert.Equal(t, 150.0, *stations[0].PowerKW)

	// Missing numeric fields stay nil rather than defaulting
	assert.Nil(t, stations[1].PowerKW)
	assert.Nil(t, stations[1].PricePerKWh)
	assert.Equal(t, models.AvailabilityOccupied, stations[1].Availability)
}

func TestHTTPStationGatewayMalformedPayload(t *testing.T) {
	t.Parallel()

	gw, closeFn := newStationGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"stations": [{`))
	})
	defer closeFn()

	stations, err := gw.FetchAll(context.Background())
	assert.Nil(t, stations)
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
}

func TestHTTPStationGatewayInvalidCoordinates(t *testing.T) {
	t.Parallel()

	gw, closeFn := newStationGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"stations": [
				{
					"id": "ST001",
					"name": "Broken",
					"latitude": 123.0,
					"longitude": 76.9,
					"connectorTypes": ["CCS2"],
					"availability": "AVAILABLE",
					"provider": "VoltNet"
				}
			]
		}`))
	})
	defer closeFn()

	stations, err := gw.FetchAll(context.Background())
	assert.Nil(t, stations)
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
}

func TestHTTPStationGatewayServerError(t *testing.T) {
	t.Parallel()

	gw, closeFn := newStationGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer closeFn()

	stations, err := gw.FetchAll(context.Background())
	assert.Nil(t, stations)
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
}
