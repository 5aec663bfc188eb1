package filter

import "github.com/chargefind/chargefind-go/internal/models"

// Preset names a fixed criteria combination. Presets are enumerated, not
// user-defined.
type Preset string

const (
	PresetFastCharging Preset = "FAST_CHARGING"
	PresetCCSOnly      Preset = "CCS_ONLY"
	PresetType2Only    Preset = "TYPE2_ONLY"
)

// Minimum power for the fast-charging preset
const fastChargingMinPowerKW = 100

// ApplyPreset clears the active criteria, sets the preset's combination and
// returns the re-filtered catalog.
func (e *Engine) ApplyPreset(name Preset) ([]models.StationRecord, error) {
	e.mu.Lock()
	criteria := e.unconstrainedLocked()

	switch name {
	case PresetFastCharging:
		criteria.PowerRange = Range{Min: fastChargingMinPowerKW, Max: e.powerBounds.Max}
		if criteria.PowerRange.Max < fastChargingMinPowerKW {
			criteria.PowerRange.Max = fastChargingMinPowerKW
		}
	case PresetCCSOnly:
		criteria.ConnectorTypes = map[models.ConnectorType]struct{}{
			models.ConnectorCCS2: {},
		}
	case PresetType2Only:
		criteria.ConnectorTypes = map[models.ConnectorType]struct{}{
			models.ConnectorType2: {},
		}
	default:
		e.mu.Unlock()
		return nil, &UnknownPresetError{Name: string(name)}
	}

	e.criteria = criteria
	e.mu.Unlock()

	return e.ApplyCurrent(), nil
}
