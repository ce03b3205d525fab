package loader

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCity    = errors.New("unknown city")
	ErrMissingColumns = errors.New("missing required columns")
	ErrMalformedRow   = errors.New("malformed row")
)

// DataSourceError reports a city file that is missing or cannot be parsed.
// It aborts the current load.
type DataSourceError struct {
	City string
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("data source for %q: %v", e.City, e.Err)
	}
	return fmt.Sprintf("data source for %q (%s): %v", e.City, e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}
