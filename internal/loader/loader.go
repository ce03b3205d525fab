package loader

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/bikeshare-explorer/internal/common/config"
	"github.com/bikeshare-explorer/internal/common/logger"
	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

type Loader struct {
	cities config.CityTable
	logger logger.Logger
}

func New(cities config.CityTable, logger logger.Logger) *Loader {
	return &Loader{cities: cities, logger: logger}
}

// Load reads the file for sel.City, parses every row and keeps the rows that
// match the month and day filters. Any unparseable row fails the whole load.
func (l *Loader) Load(ctx context.Context, sel models.Selection) (*models.Dataset, error) {
	city := config.NormalizeCity(sel.City)
	path, ok := l.cities.Lookup(city)
	if !ok {
		return nil, &DataSourceError{City: city, Err: ErrUnknownCity}
	}

	started := time.Now()
	l.logger.Info("Loading dataset", "city", city, "path", path, "month", sel.Month.String(), "day", sel.Day.String())

	frame, header, err := readFrame(path)
	if err != nil {
		return nil, &DataSourceError{City: city, Path: path, Err: err}
	}

	schema := models.NewSchema(header)
	if missing := schema.Missing(models.RequiredColumns...); len(missing) > 0 {
		return nil, &DataSourceError{
			City: city,
			Path: path,
			Err:  fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", ")),
		}
	}

	cols := columnMap(frame, schema)
	nrows := frame.Nrow()

	trips := make([]models.Trip, 0, nrows)
	keep := make([]int, 0, nrows)
	for i := 0; i < nrows; i++ {
		if i%10000 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		trip, err := parseTrip(cols, i)
		if err != nil {
			// header is line 1
			return nil, &DataSourceError{City: city, Path: path, Err: fmt.Errorf("line %d: %w", i+2, err)}
		}

		if !matches(trip, sel) {
			continue
		}
		trips = append(trips, trip)
		keep = append(keep, i)
	}

	rows := frame
	switch {
	case len(keep) == 0:
		rows = dataframe.DataFrame{}
	case len(keep) < nrows:
		rows = frame.Subset(keep)
		if rows.Err != nil {
			return nil, &DataSourceError{City: city, Path: path, Err: fmt.Errorf("selecting rows: %w", rows.Err)}
		}
	}

	l.logger.Info("Dataset loaded",
		"city", city,
		"rows_read", nrows,
		"rows_kept", len(trips),
		"elapsed", time.Since(started).String(),
	)

	return &models.Dataset{
		City:      city,
		Selection: models.Selection{City: city, Month: sel.Month, Day: sel.Day},
		Schema:    schema,
		Trips:     trips,
		Rows:      rows,
	}, nil
}

// readFrame loads the whole file as string columns and returns it with its
// header. A file with a header and no data rows yields an empty frame.
func readFrame(path string) (dataframe.DataFrame, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dataframe.DataFrame{}, nil, fmt.Errorf("opening file: %w", err)
	}

	header, hasRows, err := peekHeader(data)
	if err != nil {
		return dataframe.DataFrame{}, nil, err
	}
	if !hasRows {
		return dataframe.DataFrame{}, header, nil
	}

	frame := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if frame.Err != nil {
		return dataframe.DataFrame{}, nil, fmt.Errorf("reading csv: %w", frame.Err)
	}
	return frame, frame.Names(), nil
}

// peekHeader reads the header record and reports whether a data record follows.
func peekHeader(data []byte) ([]string, bool, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, false, fmt.Errorf("reading header: file is empty")
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	_, err = reader.Read()
	if err == io.EOF {
		return header, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading record: %w", err)
	}
	return header, true, nil
}

// columnMap extracts the raw cells of every known column present in schema.
func columnMap(frame dataframe.DataFrame, schema models.Schema) map[string][]string {
	known := []string{
		models.ColStartTime, models.ColEndTime,
		models.ColStartStation, models.ColEndStation,
		models.ColTripDuration, models.ColUserType,
		models.ColGender, models.ColBirthYear,
		models.ColStartLat, models.ColStartLon, models.ColEndLat, models.ColEndLon,
	}

	cols := make(map[string][]string, len(known))
	if frame.Nrow() == 0 {
		return cols
	}
	for _, name := range known {
		if schema.Has(name) {
			cols[name] = frame.Col(name).Records()
		}
	}
	return cols
}

// Helper to safely get a cell; absent columns read as blank
func getString(cols map[string][]string, field string, row int) string {
	if values, ok := cols[field]; ok && row < len(values) {
		return strings.TrimSpace(values[row])
	}
	return ""
}

func parseTrip(cols map[string][]string, row int) (models.Trip, error) {
	start, err := models.ParseTimestamp(getString(cols, models.ColStartTime, row))
	if err != nil {
		return models.Trip{}, fmt.Errorf("%w: %s: %v", ErrMalformedRow, models.ColStartTime, err)
	}

	var end time.Time
	if raw := getString(cols, models.ColEndTime, row); raw != "" {
		end, err = models.ParseTimestamp(raw)
		if err != nil {
			return models.Trip{}, fmt.Errorf("%w: %s: %v", ErrMalformedRow, models.ColEndTime, err)
		}
	}

	rawDuration := getString(cols, models.ColTripDuration, row)
	duration, err := strconv.ParseFloat(rawDuration, 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return models.Trip{}, fmt.Errorf("%w: %s: invalid value %q", ErrMalformedRow, models.ColTripDuration, rawDuration)
	}

	return models.Trip{
		StartTime:    start,
		EndTime:      end,
		StartStation: getString(cols, models.ColStartStation, row),
		EndStation:   getString(cols, models.ColEndStation, row),
		Duration:     duration,
		UserType:     getString(cols, models.ColUserType, row),
		Gender:       getString(cols, models.ColGender, row),
		BirthYear:    getString(cols, models.ColBirthYear, row),
		StartLat:     getString(cols, models.ColStartLat, row),
		StartLon:     getString(cols, models.ColStartLon, row),
		EndLat:       getString(cols, models.ColEndLat, row),
		EndLon:       getString(cols, models.ColEndLon, row),
	}, nil
}

func matches(trip models.Trip, sel models.Selection) bool {
	if !sel.Month.IsAll() && trip.Month() != int(sel.Month) {
		return false
	}
	if !sel.Day.IsAll() && trip.Weekday() != int(sel.Day) {
		return false
	}
	return true
}
