package models

// VehicleProfile describes the charging-relevant properties of one vehicle.
type VehicleProfile struct {
	BatteryCapacityKWh  float64         `json:"batteryCapacityKWh"`
	MaxChargingSpeedKW  float64         `json:"maxChargingSpeedKW"`
	SupportedConnectors []ConnectorType `json:"supportedConnectors"`
}

func (v VehicleProfile) SupportsConnector(ct ConnectorType) bool {
	for _, c := range v.SupportedConnectors {
		if c == ct {
			return true
		}
	}
	return false
}

// ChargingEstimate is the result of a compatibility/cost calculation. It is
// produced on demand and never stored.
type ChargingEstimate struct {
	IsCompatible      bool    `json:"isCompatible"`
	ChargingTimeHours float64 `json:"chargingTimeHours"`
	TotalCost         float64 `json:"totalCost"`
	EffectivePowerKW  float64 `json:"effectivePowerKW"`
}
