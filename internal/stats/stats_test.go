package stats

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

var fullSchema = models.NewSchema([]string{
	models.ColStartTime, models.ColEndTime, models.ColTripDuration,
	models.ColStartStation, models.ColEndStation, models.ColUserType,
	models.ColGender, models.ColBirthYear,
})

var washingtonSchema = models.NewSchema([]string{
	models.ColStartTime, models.ColEndTime, models.ColTripDuration,
	models.ColStartStation, models.ColEndStation, models.ColUserType,
})

func at(s string) time.Time {
	t, err := models.ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return t
}

func trip(start, from, to string, duration float64, userType, gender, birthYear string) models.Trip {
	return models.Trip{
		StartTime:    at(start),
		StartStation: from,
		EndStation:   to,
		Duration:     duration,
		UserType:     userType,
		Gender:       gender,
		BirthYear:    birthYear,
	}
}

func dataset(schema models.Schema, trips ...models.Trip) *models.Dataset {
	return &models.Dataset{City: "chicago", Schema: schema, Trips: trips}
}

func sampleDataset() *models.Dataset {
	return dataset(fullSchema,
		trip("2017-01-02 08:00:00", "Canal St", "Clark St", 600, "Subscriber", "Male", "1980.0"),
		trip("2017-01-02 09:30:00", "Canal St", "State St", 300, "Customer", "", ""),
		trip("2017-01-08 17:00:00", "Clark St", "Canal St", 1200, "Subscriber", "Female", "1992.0"),
		trip("2017-02-06 08:15:00", "State St", "Clark St", 600, "Subscriber", "Male", "1975.0"),
		trip("2017-03-07 12:00:00", "Canal St", "Clark St", 1800, "Customer", "", ""),
		trip("2017-06-30 23:59:59", "Canal St", "Clark St", 361, "Subscriber", "Female", "1992.0"),
	)
}

func TestTimeOfTravel(t *testing.T) {
	got, err := TimeOfTravel(sampleDataset())
	require.NoError(t, err)

	assert.Equal(t, TimeStats{Month: 1, Day: 0, DayName: "Monday", Hour: 8}, got)
}

func TestTimeOfTravelTiesPickSmallest(t *testing.T) {
	ds := dataset(fullSchema,
		trip("2017-05-05 22:00:00", "A", "B", 60, "Subscriber", "", ""), // Friday
		trip("2017-03-07 06:00:00", "A", "B", 60, "Subscriber", "", ""), // Tuesday
	)

	got, err := TimeOfTravel(ds)
	require.NoError(t, err)

	assert.Equal(t, 3, got.Month)
	assert.Equal(t, 1, got.Day)
	assert.Equal(t, "Tuesday", got.DayName)
	assert.Equal(t, 6, got.Hour)
}

func TestStations(t *testing.T) {
	got, err := Stations(sampleDataset())
	require.NoError(t, err)

	assert.Equal(t, "Canal St", got.StartStation)
	assert.Equal(t, "Clark St", got.EndStation)
	assert.Equal(t, "Canal St to Clark St", got.Trip)
}

func TestStationsTiesPickSmallestLabel(t *testing.T) {
	ds := dataset(fullSchema,
		trip("2017-01-02 08:00:00", "Zeta", "Beta", 60, "Subscriber", "", ""),
		trip("2017-01-02 08:00:00", "Alpha", "Gamma", 60, "Subscriber", "", ""),
	)

	got, err := Stations(ds)
	require.NoError(t, err)

	assert.Equal(t, "Alpha", got.StartStation)
	assert.Equal(t, "Beta", got.EndStation)
	assert.Equal(t, "Alpha to Gamma", got.Trip)
}

func TestStationsSkipMissingCells(t *testing.T) {
	ds := dataset(fullSchema,
		trip("2017-01-02 08:00:00", "Clark St, North", "NaN", 60, "Subscriber", "", ""),
		trip("2017-01-02 08:00:00", "Clark St, North", "", 60, "Subscriber", "", ""),
		trip("2017-01-02 08:00:00", "B", "C", 60, "Subscriber", "", ""),
	)

	got, err := Stations(ds)
	require.NoError(t, err)

	assert.Equal(t, "Clark St, North", got.StartStation)
	assert.Equal(t, "C", got.EndStation)
	assert.Equal(t, "B to C", got.Trip)
}

func TestStationsAllMissingIsEmpty(t *testing.T) {
	ds := dataset(fullSchema,
		trip("2017-01-02 08:00:00", "A", "NaN", 60, "Subscriber", "", ""),
		trip("2017-01-02 08:00:00", "", "B", 60, "Subscriber", "", ""),
	)

	_, err := Stations(ds)
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestAggregatorsAreIdempotent(t *testing.T) {
	ds := sampleDataset()

	t1, _ := TimeOfTravel(ds)
	t2, _ := TimeOfTravel(ds)
	assert.Equal(t, t1, t2)

	s1, _ := Stations(ds)
	s2, _ := Stations(ds)
	assert.Equal(t, s1, s2)

	d1, _ := TripDurations(ds)
	d2, _ := TripDurations(ds)
	assert.Equal(t, d1, d2)

	u1, _ := Users(ds)
	u2, _ := Users(ds)
	assert.Equal(t, u1, u2)
}

func TestTripDurations(t *testing.T) {
	got, err := TripDurations(sampleDataset())
	require.NoError(t, err)

	// 600+300+1200+600+1800+361 = 4861
	assert.Equal(t, int64(4861), got.TotalSeconds)
	assert.Equal(t, HMS{Hours: 1, Minutes: 21, Seconds: 1}, got.Total)
	// 4861/6 = 810.17
	assert.Equal(t, int64(810), got.MeanSeconds)
	assert.Equal(t, HMS{Minutes: 13, Seconds: 30}, got.Mean)
	assert.Equal(t, "13 minutes and 30 seconds", got.Mean.String())
}

func TestMeanRoundsHalfToEven(t *testing.T) {
	ds := dataset(washingtonSchema,
		trip("2017-01-02 08:00:00", "A", "B", 60, "Registered", "", ""),
		trip("2017-01-02 08:00:00", "A", "B", 61, "Registered", "", ""),
	)

	got, err := TripDurations(ds)
	require.NoError(t, err)
	assert.Equal(t, int64(60), got.MeanSeconds)
}

func TestLongMeanKeepsMinutesBelowSixty(t *testing.T) {
	for _, seconds := range []float64{3600, 3661, 7199.6, 86399, 90000} {
		ds := dataset(fullSchema,
			trip("2017-01-02 08:00:00", "A", "B", seconds, "Subscriber", "", ""),
		)

		got, err := TripDurations(ds)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, got.Mean.Hours, int64(1))
		assert.Less(t, got.Mean.Minutes, int64(60))
		assert.Less(t, got.Mean.Seconds, int64(60))
		assert.Contains(t, got.Mean.String(), "hours")
	}
}

func TestDecomposeRoundTrip(t *testing.T) {
	for _, total := range []int64{0, 1, 59, 60, 61, 3599, 3600, 3601, 86399, 123456789} {
		hms := Decompose(total)
		assert.Equal(t, total, hms.TotalSeconds(), "total %d", total)
		assert.Less(t, hms.Minutes, int64(60))
		assert.Less(t, hms.Seconds, int64(60))
	}
}

func TestDivmodFloors(t *testing.T) {
	q, r := divmod(-61, 60)
	assert.Equal(t, int64(-2), q)
	assert.Equal(t, int64(59), r)
}

func TestUsers(t *testing.T) {
	got, err := Users(sampleDataset())
	require.NoError(t, err)

	assert.Equal(t, []Count{{Label: "Subscriber", Count: 4}, {Label: "Customer", Count: 2}}, got.UserTypes)
	assert.NoError(t, got.GenderErr)
	assert.Equal(t, []Count{{Label: "Female", Count: 2}, {Label: "Male", Count: 2}}, got.Gender)
	assert.NoError(t, got.BirthYearErr)
	assert.Equal(t, BirthYearStats{Earliest: 1975, MostRecent: 1992, MostCommon: 1992}, got.BirthYear)
}

func TestUsersWithoutDemographicColumns(t *testing.T) {
	ds := dataset(washingtonSchema,
		trip("2017-01-02 08:00:00", "A", "B", 60, "Registered", "", ""),
		trip("2017-01-02 08:00:00", "A", "B", 60, "Casual", "", ""),
	)

	got, err := Users(ds)
	require.NoError(t, err)

	assert.Len(t, got.UserTypes, 2)
	assert.True(t, IsMissingColumn(got.GenderErr))
	assert.True(t, IsMissingColumn(got.BirthYearErr))

	var mc *MissingColumnError
	require.True(t, errors.As(got.BirthYearErr, &mc))
	assert.Equal(t, models.ColBirthYear, mc.Column)
}

func TestUsersBlankDemographicsAreEmptyNotMissing(t *testing.T) {
	ds := dataset(fullSchema,
		trip("2017-01-02 08:00:00", "A", "B", 60, "Customer", "", ""),
		trip("2017-01-02 08:00:00", "A", "B", 60, "Customer", "NaN", "NaN"),
	)

	got, err := Users(ds)
	require.NoError(t, err)

	assert.ErrorIs(t, got.GenderErr, ErrEmptyResult)
	assert.ErrorIs(t, got.BirthYearErr, ErrEmptyResult)
	assert.False(t, IsMissingColumn(got.GenderErr))
}

func TestUsersBadBirthYearIsHardError(t *testing.T) {
	ds := dataset(fullSchema,
		trip("2017-01-02 08:00:00", "A", "B", 60, "Subscriber", "Male", "nineteen eighty"),
	)

	_, err := Users(ds)
	require.Error(t, err)
	assert.False(t, IsMissingColumn(err))
	assert.NotErrorIs(t, err, ErrEmptyResult)
}

func TestEmptyDatasetReportsNoData(t *testing.T) {
	ds := dataset(fullSchema)

	_, err := TimeOfTravel(ds)
	assert.ErrorIs(t, err, ErrEmptyResult)

	_, err = Stations(ds)
	assert.ErrorIs(t, err, ErrEmptyResult)

	_, err = TripDurations(ds)
	assert.ErrorIs(t, err, ErrEmptyResult)

	_, err = Users(ds)
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestDistances(t *testing.T) {
	schema := models.NewSchema(append([]string{models.ColStartTime}, models.CoordinateColumns...))
	ds := dataset(schema,
		models.Trip{StartTime: at("2017-01-02 08:00:00"), StartLat: "40.7128", StartLon: "-74.0060", EndLat: "40.7128", EndLon: "-74.0060"},
		models.Trip{StartTime: at("2017-01-02 08:00:00"), StartLat: "40.0", StartLon: "-74.0", EndLat: "41.0", EndLon: "-74.0"},
		models.Trip{StartTime: at("2017-01-02 08:00:00")},
	)

	got, err := Distances(ds)
	require.NoError(t, err)

	assert.Equal(t, 2, got.Counter)
	// one degree of latitude is about 111 km
	assert.InDelta(t, 111.2, got.TotalKm, 0.5)
	assert.InDelta(t, 55.6, got.MeanKm(), 0.5)
}

func TestDistancesWithoutCoordinates(t *testing.T) {
	_, err := Distances(sampleDataset())
	assert.True(t, IsMissingColumn(err))
}

func TestDistancesBadCoordinate(t *testing.T) {
	schema := models.NewSchema(models.CoordinateColumns)
	ds := dataset(schema,
		models.Trip{StartTime: at("2017-01-02 08:00:00"), StartLat: "north", StartLon: "-74.0", EndLat: "41.0", EndLon: "-74.0"},
	)

	_, err := Distances(ds)
	require.Error(t, err)
	assert.False(t, IsMissingColumn(err))
}

func TestModeEmpty(t *testing.T) {
	_, _, ok := mode([]int{})
	assert.False(t, ok)
}
