package internals

import (
	"sort"

	"dining-server/model"
)

// stations farther than 5 km from the query point are never returned
const StationCutoffMeters = 5000.0

const DefaultNearestStationsNumber = 3

// NearestStations selects from stations the limit closest ones to the query
// point, discarding any at or beyond the cutoff. The sort is stable, so ties
// keep the input order. If fewer stations pass the cutoff, fewer are returned.
func NearestStations(stations []model.Station, latitude, longitude float64, limit int) []model.StationDistance {
	if limit <= 0 {
		limit = DefaultNearestStationsNumber
	}

	// compute distances, apply cutoff
	candidates := []model.StationDistance{}
	for _, station := range stations {
		distance := Distance(latitude, longitude, station.Latitude, station.Longitude)
		if distance >= StationCutoffMeters {
			continue
		}
		candidates = append(candidates, model.StationDistance{
			Station:  station,
			Distance: distance,
		})
	}

	// sort ascending by distance
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})

	// truncate to limit
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates
}
