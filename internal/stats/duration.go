package stats

import (
	"fmt"
	"math"

	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

// HMS is a whole-second duration split into hours, minutes and seconds.
// Minutes and Seconds are always in [0,60).
type HMS struct {
	Hours   int64
	Minutes int64
	Seconds int64
}

// Decompose splits seconds with two chained divmods:
// seconds -> (minutes, seconds) -> (hours, minutes).
func Decompose(seconds int64) HMS {
	minutes, secs := divmod(seconds, 60)
	hours, minutes := divmod(minutes, 60)
	return HMS{Hours: hours, Minutes: minutes, Seconds: secs}
}

func (h HMS) TotalSeconds() int64 {
	return h.Hours*3600 + h.Minutes*60 + h.Seconds
}

// String drops the hours part when it is zero.
func (h HMS) String() string {
	if h.Hours == 0 {
		return fmt.Sprintf("%d minutes and %d seconds", h.Minutes, h.Seconds)
	}
	return fmt.Sprintf("%d hours, %d minutes and %d seconds", h.Hours, h.Minutes, h.Seconds)
}

// divmod floors like Python's divmod so the remainder keeps the divisor's sign
func divmod(a, b int64) (int64, int64) {
	q, r := a/b, a%b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}
	return q, r
}

type DurationStats struct {
	TotalSeconds int64
	MeanSeconds  int64
	Total        HMS
	Mean         HMS
}

// TripDurations sums and averages trip durations. The mean is rounded to the
// nearest second, half to even.
func TripDurations(ds *models.Dataset) (DurationStats, error) {
	if ds.IsEmpty() {
		return DurationStats{}, ErrEmptyResult
	}

	var sum float64
	for _, trip := range ds.Trips {
		sum += trip.Duration
	}

	total := int64(math.Round(sum))
	mean := int64(math.RoundToEven(sum / float64(len(ds.Trips))))

	return DurationStats{
		TotalSeconds: total,
		MeanSeconds:  mean,
		Total:        Decompose(total),
		Mean:         Decompose(mean),
	}, nil
}
