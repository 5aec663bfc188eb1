package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/chargefind/chargefind-go/internal/config"
	"github.com/chargefind/chargefind-go/internal/filter"
	"github.com/chargefind/chargefind-go/internal/gateway"
	"github.com/chargefind/chargefind-go/internal/session"
	"github.com/chargefind/chargefind-go/pkg/http/client"
)

func main() {
	cfg := config.LoadFromEnv()
	cfg.InitializeLogging()

	userID := os.Getenv("CHARGEFIND_USER")
	if userID == "" {
		log.Fatal().Msg("CHARGEFIND_USER must be set")
	}

	httpClient := client.New(client.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.HTTPTimeout,
	})

	sess, err := session.New(session.Options{
		UserID:    userID,
		Stations:  gateway.NewHTTPStationGateway(httpClient),
		Favorites: gateway.NewHTTPFavoritesGateway(httpClient),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Creating session")
	}
	defer sess.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := sess.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Starting session")
	}

	filtered, err := sess.Filter.ApplyPreset(filter.PresetFastCharging)
	if err != nil {
		log.Fatal().Err(err).Msg("Applying preset")
	}

	for _, station := range sess.Favorites.Decorate(filtered) {
		log.Info().
			Str("station_id", station.ID).
			Str("name", station.Name).
			Str("provider", station.Provider).
			Bool("favorited", station.Favorited).
			Msg("Fast charging station")
	}

	if filter.ShouldRecenterViewport(filtered) {
		region := filter.ComputeViewportRegion(filtered)
		log.Info().
			Float64("center_lat", region.Center.Latitude).
			Float64("center_lon", region.Center.Longitude).
			Float64("lat_span", region.LatitudeSpan).
			Float64("lon_span", region.LongitudeSpan).
			Msg("Viewport recenter hint")
	}
}
