package models

import (
	"time"

	"github.com/go-gota/gota/dataframe"
)

// Column names as they appear in the city CSV headers
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColTripDuration = "Trip Duration"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"

	ColStartLat = "Start Station Latitude"
	ColStartLon = "Start Station Longitude"
	ColEndLat   = "End Station Latitude"
	ColEndLon   = "End Station Longitude"
)

// RequiredColumns must be present in every city file
var RequiredColumns = []string{
	ColStartTime,
	ColStartStation,
	ColEndStation,
	ColTripDuration,
	ColUserType,
}

// CoordinateColumns are only present in some exports
var CoordinateColumns = []string{ColStartLat, ColStartLon, ColEndLat, ColEndLon}

type Trip struct {
	StartTime    time.Time
	EndTime      time.Time // zero when the file has no End Time column
	StartStation string
	EndStation   string
	Duration     float64 // seconds
	UserType     string
	Gender       string
	BirthYear    string // raw cell, parsed by the demographics stats
	StartLat     string
	StartLon     string
	EndLat       string
	EndLon       string
}

// Month is the calendar month of StartTime, 1 = January
func (t Trip) Month() int {
	return MonthOf(t.StartTime)
}

// Weekday is the ISO weekday of StartTime, 0 = Monday
func (t Trip) Weekday() int {
	return WeekdayOf(t.StartTime)
}

// Hour is the hour of day of StartTime, 0-23
func (t Trip) Hour() int {
	return HourOf(t.StartTime)
}

// Schema is the set of column names found in a source file header.
type Schema map[string]bool

func NewSchema(names []string) Schema {
	s := make(Schema, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

func (s Schema) Has(column string) bool {
	return s[column]
}

// Missing returns the columns from want that the schema lacks, in order.
func (s Schema) Missing(want ...string) []string {
	var missing []string
	for _, c := range want {
		if !s[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// Dataset holds the filtered trips of one city for one Selection. Rows keeps
// the matching raw rows in file order for paging; Rows.Nrow() == len(Trips).
type Dataset struct {
	City      string
	Selection Selection
	Schema    Schema
	Trips     []Trip
	Rows      dataframe.DataFrame
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Trips)
}

func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}
