package filter

import (
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/chargefind/chargefind-go/internal/config"
	"github.com/chargefind/chargefind-go/internal/models"
)

// Range is a closed interval.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) IsValid() bool {
	return r.Min <= r.Max
}

// covers reports whether r spans the whole of other. A slider pushed to both
// ends of its bounds is an unconstrained criterion.
func (r Range) covers(other Range) bool {
	return r.Min <= other.Min && r.Max >= other.Max
}

// Criteria holds the active filter dimensions. An empty set means
// "unconstrained", never "match nothing".
type Criteria struct {
	ConnectorTypes map[models.ConnectorType]struct{}
	Operators      map[string]struct{}
	PriceRange     Range
	PowerRange     Range
}

// Engine derives filterable option lists and bounds from a station catalog
// and applies criteria to station lists.
type Engine struct {
	mu sync.RWMutex

	catalog  []models.StationRecord
	criteria Criteria

	connectorTypes []models.ConnectorType
	operators      []string
	priceBounds    Range
	powerBounds    Range

	fallbackPrice Range
	fallbackPower Range
}

func NewEngine(cfg *config.SyncConfig) *Engine {
	if cfg == nil {
		cfg = config.GetSyncConfig()
	}

	e := &Engine{
		fallbackPrice: Range{Min: cfg.FallbackMinPrice, Max: cfg.FallbackMaxPrice},
		fallbackPower: Range{Min: cfg.FallbackMinPower, Max: cfg.FallbackMaxPower},
	}
	e.priceBounds = e.fallbackPrice
	e.powerBounds = e.fallbackPower
	e.criteria = e.unconstrainedLocked()
	return e
}

// UpdateCatalog supplies the full list the engine derives bounds from.
func (e *Engine) UpdateCatalog(stations []models.StationRecord) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.catalog = stations

	connectorSet := make(map[models.ConnectorType]struct{})
	operatorSet := make(map[string]struct{})
	var prices, powers []float64

	for _, s := range stations {
		for _, ct := range s.ConnectorTypes {
			connectorSet[ct] = struct{}{}
		}
		if s.Provider != "" {
			operatorSet[s.Provider] = struct{}{}
		}
		if s.PricePerKWh != nil {
			prices = append(prices, *s.PricePerKWh)
		}
		if s.PowerKW != nil {
			powers = append(powers, *s.PowerKW)
		}
	}

	e.connectorTypes = make([]models.ConnectorType, 0, len(connectorSet))
	for ct := range connectorSet {
		e.connectorTypes = append(e.connectorTypes, ct)
	}
	sort.Slice(e.connectorTypes, func(i, j int) bool {
		return e.connectorTypes[i] < e.connectorTypes[j]
	})

	e.operators = make([]string, 0, len(operatorSet))
	for op := range operatorSet {
		e.operators = append(e.operators, op)
	}
	sort.Strings(e.operators)

	e.priceBounds = boundsOrFallback(prices, e.fallbackPrice)
	e.powerBounds = boundsOrFallback(powers, e.fallbackPower)

	log.Debug().
		Int("station_count", len(stations)).
		Int("connector_types", len(e.connectorTypes)).
		Int("operators", len(e.operators)).
		Msg("Filter catalog updated")
}

func boundsOrFallback(values []float64, fallback Range) Range {
	if len(values) == 0 {
		return fallback
	}
	bounds := Range{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		if v < bounds.Min {
			bounds.Min = v
		}
		if v > bounds.Max {
			bounds.Max = v
		}
	}
	return bounds
}

// AvailableConnectorTypes returns the distinct connector types in the
// catalog, sorted for deterministic UI ordering.
func (e *Engine) AvailableConnectorTypes() []models.ConnectorType {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.connectorTypes
}

// AvailableOperators returns the distinct providers in the catalog, sorted.
func (e *Engine) AvailableOperators() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.operators
}

func (e *Engine) PriceBounds() Range {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.priceBounds
}

func (e *Engine) PowerBounds() Range {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.powerBounds
}

// SetCriteria replaces the active criteria. Ranges must satisfy Min <= Max.
func (e *Engine) SetCriteria(c Criteria) error {
	if !c.PriceRange.IsValid() {
		return NewInvalidRangeError("price range min exceeds max")
	}
	if !c.PowerRange.IsValid() {
		return NewInvalidRangeError("power range min exceeds max")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.criteria = c
	return nil
}

func (e *Engine) Criteria() Criteria {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.criteria
}

// ResetCriteria returns the engine to the unconstrained state.
func (e *Engine) ResetCriteria() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.criteria = e.unconstrainedLocked()
}

func (e *Engine) unconstrainedLocked() Criteria {
	return Criteria{
		ConnectorTypes: map[models.ConnectorType]struct{}{},
		Operators:      map[string]struct{}{},
		PriceRange:     e.priceBounds,
		PowerRange:     e.powerBounds,
	}
}

// Apply returns the subset of stations matching every constrained dimension.
// A station with an unknown price or power satisfies the corresponding range
// filter; the filter only constrains stations whose value is known.
func (e *Engine) Apply(c Criteria, stations []models.StationRecord) []models.StationRecord {
	e.mu.RLock()
	priceBounds := e.priceBounds
	powerBounds := e.powerBounds
	e.mu.RUnlock()

	filtered := make([]models.StationRecord, 0, len(stations))
	for _, s := range stations {
		if matches(c, s, priceBounds, powerBounds) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// ApplyCurrent filters the engine's own catalog with the active criteria.
func (e *Engine) ApplyCurrent() []models.StationRecord {
	e.mu.RLock()
	catalog := e.catalog
	criteria := e.criteria
	e.mu.RUnlock()

	return e.Apply(criteria, catalog)
}

func matches(c Criteria, s models.StationRecord, priceBounds, powerBounds Range) bool {
	if len(c.ConnectorTypes) > 0 {
		found := false
		for _, ct := range s.ConnectorTypes {
			if _, ok := c.ConnectorTypes[ct]; ok {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(c.Operators) > 0 {
		if _, ok := c.Operators[s.Provider]; !ok {
			return false
		}
	}

	if !c.PriceRange.covers(priceBounds) && s.PricePerKWh != nil && !c.PriceRange.Contains(*s.PricePerKWh) {
		return false
	}

	if !c.PowerRange.covers(powerBounds) && s.PowerKW != nil && !c.PowerRange.Contains(*s.PowerKW) {
		return false
	}

	return true
}
