package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/chargefind/chargefind-go/internal/models"
	"github.com/chargefind/chargefind-go/pkg/http/client"
)

// HTTPStationGateway fetches the station catalog from the backend REST API.
type HTTPStationGateway struct {
	httpClient *client.Client
	validate   *validator.Validate
}

func NewHTTPStationGateway(httpClient *client.Client) *HTTPStationGateway {
	return &HTTPStationGateway{
		httpClient: httpClient,
		validate:   validator.New(),
	}
}

func (g *HTTPStationGateway) FetchAll(ctx context.Context) ([]models.StationRecord, error) {
	resp, err := g.httpClient.Get(ctx, "/v1/stations")
	if err != nil {
		return nil, NewNetworkError("fetching stations", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, NewNetworkError("fetching stations", statusError(resp.StatusCode))
	}

	var backendResp struct {
		Stations []struct {
			ID             string   `json:"id"`
			Name           string   `json:"name"`
			Address        string   `json:"address"`
			Latitude       float64  `json:"latitude"`
			Longitude      float64  `json:"longitude"`
			ConnectorTypes []string `json:"connectorTypes"`
			Availability   string   `json:"availability"`
			PowerKW        *float64 `json:"powerKW"`
			PricePerKWh    *float64 `json:"pricePerKWh"`
			Provider       string   `json:"provider"`
			Amenities      []string `json:"amenities"`
			PhoneNumber    *string  `json:"phoneNumber"`
		} `json:"stations"`
	}

	if err := json.Unmarshal(resp.Body, &backendResp); err != nil {
		return nil, NewDecodeError("decoding station catalog", err)
	}

	stations := make([]models.StationRecord, len(backendResp.Stations))
	for i, s := range backendResp.Stations {
		connectors := make([]models.ConnectorType, len(s.ConnectorTypes))
		for j, ct := range s.ConnectorTypes {
			connectors[j] = models.ConnectorType(ct)
		}

		stations[i] = models.StationRecord{
			ID:      s.ID,
			Name:    s.Name,
			Address: s.Address,
			Coordinate: models.Coordinate{
				Latitude:  s.Latitude,
				Longitude: s.Longitude,
			},
			ConnectorTypes: connectors,
			Availability:   models.Availability(s.Availability),
			PowerKW:        s.PowerKW,
			PricePerKWh:    s.PricePerKWh,
			Provider:       s.Provider,
			Amenities:      s.Amenities,
			PhoneNumber:    s.PhoneNumber,
		}

		if err := g.validate.Struct(stations[i]); err != nil {
			return nil, NewDecodeError("invalid station record "+s.ID, err)
		}
	}

	log.Debug().Int("station_count", len(stations)).Msg("Fetched station catalog")

	return stations, nil
}
