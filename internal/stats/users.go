package stats

import (
	"fmt"
	"math"
	"strconv"

	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserStats holds the demographic breakdown. GenderErr and BirthYearErr carry
// the per-section outcome for the optional columns: a *MissingColumnError when
// the file has no such column, ErrEmptyResult when every cell is blank.
type UserStats struct {
	UserTypes    []Count
	Gender       []Count
	GenderErr    error
	BirthYear    BirthYearStats
	BirthYearErr error
}

// Users counts user types, and gender and birth years where the city file
// has those columns. A present column holding an unparseable value fails the
// whole computation.
func Users(ds *models.Dataset) (UserStats, error) {
	if ds.IsEmpty() {
		return UserStats{}, ErrEmptyResult
	}

	var out UserStats

	userTypes := make([]string, len(ds.Trips))
	for i, trip := range ds.Trips {
		userTypes[i] = trip.UserType
	}
	out.UserTypes = valueCounts(userTypes)

	if ds.Schema.Has(models.ColGender) {
		genders := make([]string, len(ds.Trips))
		for i, trip := range ds.Trips {
			genders[i] = trip.Gender
		}
		out.Gender = valueCounts(genders)
		if len(out.Gender) == 0 {
			out.GenderErr = ErrEmptyResult
		}
	} else {
		out.GenderErr = &MissingColumnError{Column: models.ColGender}
	}

	if ds.Schema.Has(models.ColBirthYear) {
		years, err := birthYears(ds.Trips)
		if err != nil {
			return UserStats{}, err
		}
		out.BirthYear, out.BirthYearErr = summarizeYears(years)
	} else {
		out.BirthYearErr = &MissingColumnError{Column: models.ColBirthYear}
	}

	return out, nil
}

// birthYears parses the non-blank Birth Year cells. Cells are whole numbers,
// sometimes written with a trailing ".0".
func birthYears(trips []models.Trip) ([]int, error) {
	years := make([]int, 0, len(trips))
	for i, trip := range trips {
		if isBlank(trip.BirthYear) {
			continue
		}
		v, err := strconv.ParseFloat(trip.BirthYear, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return nil, fmt.Errorf("trip %d: invalid %s %q", i, models.ColBirthYear, trip.BirthYear)
		}
		years = append(years, int(v))
	}
	return years, nil
}

func summarizeYears(years []int) (BirthYearStats, error) {
	if len(years) == 0 {
		return BirthYearStats{}, ErrEmptyResult
	}

	stats := BirthYearStats{Earliest: years[0], MostRecent: years[0]}
	for _, y := range years[1:] {
		stats.Earliest = min(stats.Earliest, y)
		stats.MostRecent = max(stats.MostRecent, y)
	}
	stats.MostCommon, _, _ = mode(years)
	return stats, nil
}
