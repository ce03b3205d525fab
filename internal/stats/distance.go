package stats

import (
	"fmt"
	"strconv"

	"github.com/umahmood/haversine"

	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

// DistanceStats holds great-circle distances between start and end stations
// + Counter: trips with complete coordinates
// + TotalKm: sum of distances in kilometres
type DistanceStats struct {
	Counter int
	TotalKm float64
}

func (d DistanceStats) MeanKm() float64 {
	if d.Counter == 0 {
		return 0
	}
	return d.TotalKm / float64(d.Counter)
}

// Distances sums the start-to-end distance of every trip that has station
// coordinates. Files without coordinate columns yield a MissingColumnError.
func Distances(ds *models.Dataset) (DistanceStats, error) {
	if missing := ds.Schema.Missing(models.CoordinateColumns...); len(missing) > 0 {
		return DistanceStats{}, &MissingColumnError{Column: missing[0]}
	}
	if ds.IsEmpty() {
		return DistanceStats{}, ErrEmptyResult
	}

	var acc DistanceStats
	for i, trip := range ds.Trips {
		raw := []string{trip.StartLat, trip.StartLon, trip.EndLat, trip.EndLon}
		if anyBlank(raw) {
			continue
		}

		var coords [4]float64
		for j, cell := range raw {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return DistanceStats{}, fmt.Errorf("trip %d: %s: invalid coordinate %q: %w", i, models.CoordinateColumns[j], cell, err)
			}
			coords[j] = v
		}

		acc.Counter++
		acc.TotalKm += calculateDistance(coords[0], coords[1], coords[2], coords[3])
	}

	if acc.Counter == 0 {
		return DistanceStats{}, ErrEmptyResult
	}
	return acc, nil
}

// calculateDistance returns the distance between two stations using haversine formula
func calculateDistance(latStart, lonStart, latEnd, lonEnd float64) float64 {
	start := haversine.Coord{Lat: latStart, Lon: lonStart}
	end := haversine.Coord{Lat: latEnd, Lon: lonEnd}

	_, km := haversine.Distance(start, end)
	return km
}

func anyBlank(cells []string) bool {
	for _, c := range cells {
		if isBlank(c) {
			return true
		}
	}
	return false
}
