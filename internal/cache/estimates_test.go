package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chargefind/chargefind-go/internal/config"
	"github.com/chargefind/chargefind-go/internal/models"
)

func testVehicle() models.VehicleProfile {
	return models.VehicleProfile{
		BatteryCapacityKWh:  75,
		MaxChargingSpeedKW:  250,
		SupportedConnectors: []models.ConnectorType{models.ConnectorCCS2},
	}
}

func TestEstimateCacheHitAndMiss(t *testing.T) {
	t.Parallel()

	cfg := &config.SyncConfig{
		EstimateLRUSize:       100,
		EstimateLRUTTLMinutes: 15,
	}
	service, err := NewEstimateCache(cfg)
	require.NoError(t, err)

	station := testStations()[0]
	vehicle := testVehicle()

	// Miss before anything is stored
	_, ok := service.Get(station, vehicle, 0, 100)
	assert.False(t, ok)

	estimate := models.ChargingEstimate{
		IsCompatible:      true,
		ChargingTimeHours: 0.36,
		TotalCost:         3947.37,
		EffectivePowerKW:  150,
	}
	service.Add(station, vehicle, 0, 100, estimate)

	got, ok := service.Get(station, vehicle, 0, 100)
	require.True(t, ok)
	assert.Equal(t, estimate, got)

	// A different percent range is a different key
	_, ok = service.Get(station, vehicle, 20, 80)
	assert.False(t, ok)

	stats := service.Stats()
	assert.Equal(t, uint64(1), stats["hits"])
	assert.Equal(t, uint64(2), stats["misses"])
}

func TestEstimateCacheExpiration(t *testing.T) {
	t.Parallel()

	cfg := &config.SyncConfig{
		EstimateLRUSize:       100,
		EstimateLRUTTLMinutes: 1,
	}
	service, err := NewEstimateCache(cfg)
	require.NoError(t, err)

	clock := &fakeClock{now: time.Now()}
	service.now = clock.Now

	station := testStations()[0]
	vehicle := testVehicle()

	service.Add(station, vehicle, 0, 100, models.ChargingEstimate{IsCompatible: true})

	_, ok := service.Get(station, vehicle, 0, 100)
	require.True(t, ok)

	clock.Advance(2 * time.Minute)

	_, ok = service.Get(station, vehicle, 0, 100)
	assert.False(t, ok)
}

func TestEstimateCacheZeroSize(t *testing.T) {
	t.Parallel()

	cfg := &config.SyncConfig{EstimateLRUSize: 0}
	service, err := NewEstimateCache(cfg)
	assert.Error(t, err)
	assert.Nil(t, service)
}

func TestEstimateCacheClear(t *testing.T) {
	t.Parallel()

	cfg := &config.SyncConfig{
		EstimateLRUSize:       100,
		EstimateLRUTTLMinutes: 15,
	}
	service, err := NewEstimateCache(cfg)
	require.NoError(t, err)

	station := testStations()[0]
	vehicle := testVehicle()

	service.Add(station, vehicle, 0, 100, models.ChargingEstimate{IsCompatible: true})
	service.Clear()

	_, ok := service.Get(station, vehicle, 0, 100)
	assert.False(t, ok)
}
