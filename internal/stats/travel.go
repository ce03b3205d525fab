package stats

import (
	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

// TimeStats holds the most frequent times of travel
type TimeStats struct {
	Month   int    // 1 = January
	Day     int    // 0 = Monday
	DayName string
	Hour    int
}

// TimeOfTravel computes the modes of the derived month, weekday and hour.
func TimeOfTravel(ds *models.Dataset) (TimeStats, error) {
	if ds.IsEmpty() {
		return TimeStats{}, ErrEmptyResult
	}

	months := make([]int, len(ds.Trips))
	days := make([]int, len(ds.Trips))
	hours := make([]int, len(ds.Trips))
	for i, trip := range ds.Trips {
		months[i] = trip.Month()
		days[i] = trip.Weekday()
		hours[i] = trip.Hour()
	}

	month, _, _ := mode(months)
	day, _, _ := mode(days)
	hour, _, _ := mode(hours)

	return TimeStats{
		Month:   month,
		Day:     day,
		DayName: models.DayNames[day],
		Hour:    hour,
	}, nil
}
