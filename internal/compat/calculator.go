// Package compat computes connector compatibility and charging time/cost
// estimates. All functions are pure and stateless.
package compat

import "github.com/chargefind/chargefind-go/internal/models"

const (
	// Charge-curve slowdown applied above 80% state of charge
	taperThresholdPercent = 80.0
	taperFactor           = 1.20

	// Grid-to-battery transfer efficiency, affects cost only
	transferEfficiency = 0.95
)

// IsCompatible reports whether the station and vehicle share at least one
// connector type.
func IsCompatible(station models.StationRecord, vehicle models.VehicleProfile) bool {
	for _, ct := range station.ConnectorTypes {
		if vehicle.SupportsConnector(ct) {
			return true
		}
	}
	return false
}

// Estimate computes a charging estimate for the given state-of-charge range.
// Incompatible pairs yield a zero estimate without any arithmetic. A station
// with unknown power charges at the vehicle's maximum speed; an unknown
// price yields zero cost.
func Estimate(station models.StationRecord, vehicle models.VehicleProfile, fromPercent, toPercent float64) models.ChargingEstimate {
	if !IsCompatible(station, vehicle) {
		return models.ChargingEstimate{}
	}

	fromPercent = clampPercent(fromPercent)
	toPercent = clampPercent(toPercent)
	if toPercent < fromPercent {
		toPercent = fromPercent
	}

	effectivePower := vehicle.MaxChargingSpeedKW
	if station.PowerKW != nil && *station.PowerKW < effectivePower {
		effectivePower = *station.PowerKW
	}

	energyNeeded := vehicle.BatteryCapacityKWh * (toPercent - fromPercent) / 100

	var hours float64
	if effectivePower > 0 {
		hours = energyNeeded / effectivePower
	}
	if toPercent > taperThresholdPercent {
		hours *= taperFactor
	}

	var cost float64
	if station.PricePerKWh != nil {
		energyFromGrid := energyNeeded / transferEfficiency
		cost = energyFromGrid * *station.PricePerKWh
	}

	return models.ChargingEstimate{
		IsCompatible:      true,
		ChargingTimeHours: hours,
		TotalCost:         cost,
		EffectivePowerKW:  effectivePower,
	}
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
