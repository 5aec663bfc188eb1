package filter

import "github.com/chargefind/chargefind-go/internal/models"

// Region is a map viewport hint: a center coordinate and a span per axis.
// This layer only computes the hint; rendering belongs to the map view.
type Region struct {
	Center        models.Coordinate
	LatitudeSpan  float64
	LongitudeSpan float64
}

const (
	recenterMaxCount   = 5
	recenterMaxSpread  = 0.05
	viewportMinSpan    = 0.05
	viewportMaxSpan    = 0.15
	viewportSpanMargin = 0.02
)

// ShouldRecenterViewport reports whether a filtered result is small and
// clustered enough for the map to jump to it.
func ShouldRecenterViewport(stations []models.StationRecord) bool {
	if len(stations) == 0 || len(stations) > recenterMaxCount {
		return false
	}

	minLat, maxLat, minLon, maxLon := boundingBox(stations)
	return maxLat-minLat < recenterMaxSpread && maxLon-minLon < recenterMaxSpread
}

// ComputeViewportRegion returns the bounding-box midpoint with a padded,
// clamped span per axis. Only meaningful when ShouldRecenterViewport is true;
// otherwise the caller leaves the viewport alone.
func ComputeViewportRegion(stations []models.StationRecord) Region {
	if len(stations) == 0 {
		return Region{}
	}

	minLat, maxLat, minLon, maxLon := boundingBox(stations)

	return Region{
		Center: models.Coordinate{
			Latitude:  (minLat + maxLat) / 2,
			Longitude: (minLon + maxLon) / 2,
		},
		LatitudeSpan:  clampSpan(maxLat - minLat),
		LongitudeSpan: clampSpan(maxLon - minLon),
	}
}

func boundingBox(stations []models.StationRecord) (minLat, maxLat, minLon, maxLon float64) {
	first := stations[0].Coordinate
	minLat, maxLat = first.Latitude, first.Latitude
	minLon, maxLon = first.Longitude, first.Longitude

	for _, s := range stations[1:] {
		c := s.Coordinate
		if c.Latitude < minLat {
			minLat = c.Latitude
		}
		if c.Latitude > maxLat {
			maxLat = c.Latitude
		}
		if c.Longitude < minLon {
			minLon = c.Longitude
		}
		if c.Longitude > maxLon {
			maxLon = c.Longitude
		}
	}
	return minLat, maxLat, minLon, maxLon
}

func clampSpan(extent float64) float64 {
	span := extent + viewportSpanMargin
	if span < viewportMinSpan {
		return viewportMinSpan
	}
	if span > viewportMaxSpan {
		return viewportMaxSpan
	}
	return span
}
