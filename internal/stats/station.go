package stats

import (
	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

// PairSeparator joins start and end station into a trip label
const PairSeparator = " to "

type StationStats struct {
	StartStation string
	EndStation   string
	Trip         string
}

// Stations computes the most used start station, end station and
// start-to-end combination. Ties go to the lexicographically smallest label.
// Blank cells are missing values: they never win, and a pair is only counted
// when both ends are known.
func Stations(ds *models.Dataset) (StationStats, error) {
	if ds.IsEmpty() {
		return StationStats{}, ErrEmptyResult
	}

	starts := make([]string, 0, len(ds.Trips))
	ends := make([]string, 0, len(ds.Trips))
	pairs := make([]string, 0, len(ds.Trips))
	for _, trip := range ds.Trips {
		startKnown := !isBlank(trip.StartStation)
		endKnown := !isBlank(trip.EndStation)
		if startKnown {
			starts = append(starts, trip.StartStation)
		}
		if endKnown {
			ends = append(ends, trip.EndStation)
		}
		if startKnown && endKnown {
			pairs = append(pairs, trip.StartStation+PairSeparator+trip.EndStation)
		}
	}

	start, _, okStart := mode(starts)
	end, _, okEnd := mode(ends)
	pair, _, okPair := mode(pairs)
	if !okStart || !okEnd || !okPair {
		return StationStats{}, ErrEmptyResult
	}

	return StationStats{StartStation: start, EndStation: end, Trip: pair}, nil
}
