package stats

import (
	"errors"
	"fmt"
)

// ErrEmptyResult is returned when a dataset has no rows to aggregate.
var ErrEmptyResult = errors.New("no data for this selection")

// MissingColumnError reports an optional column that the city file lacks.
// It is distinct from a failure while computing over a present column.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not present", e.Column)
}

func IsMissingColumn(err error) bool {
	var mc *MissingColumnError
	return errors.As(err, &mc)
}
