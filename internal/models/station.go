package models

type ConnectorType string

const (
	ConnectorCCS2    ConnectorType = "CCS2"
	ConnectorCHAdeMO ConnectorType = "CHADEMO"
	ConnectorType2   ConnectorType = "TYPE2"
	ConnectorGBT     ConnectorType = "GBT"
	ConnectorNACS    ConnectorType = "NACS"
)

type Availability string

const (
	AvailabilityAvailable    Availability = "AVAILABLE"
	AvailabilityOccupied     Availability = "OCCUPIED"
	AvailabilityOutOfService Availability = "OUT_OF_SERVICE"
	AvailabilityMaintenance  Availability = "MAINTENANCE"
)

type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// StationRecord is an immutable snapshot of one charging station. The whole
// catalog is replaced atomically on refresh, never patched per field.
type StationRecord struct {
	ID             string          `json:"id" validate:"required"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	Coordinate     Coordinate      `json:"coordinate"`
	ConnectorTypes []ConnectorType `json:"connectorTypes"`
	Availability   Availability    `json:"availability"`
	PowerKW        *float64        `json:"powerKW,omitempty"`
	PricePerKWh    *float64        `json:"pricePerKWh,omitempty"`
	Provider       string          `json:"provider"`
	Amenities      []string        `json:"amenities"`
	PhoneNumber    *string         `json:"phoneNumber,omitempty"`
}

func (s StationRecord) HasConnector(ct ConnectorType) bool {
	for _, c := range s.ConnectorTypes {
		if c == ct {
			return true
		}
	}
	return false
}
