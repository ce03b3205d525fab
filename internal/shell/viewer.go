package shell

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

// PageSize is the number of raw rows shown per "yes"
const PageSize = 5

// offerRawData pages through the dataset's raw rows. The first question is
// repeated until answered yes or no; after that any answer other than yes
// stops paging. The offset only grows within one dataset.
func (s *Shell) offerRawData(ctx context.Context, ds *models.Dataset) error {
	for {
		answer, err := s.ask(ctx, "\nDo you want to view the raw data? Enter yes or no.\n")
		if err != nil {
			return err
		}
		if isYes(answer) {
			break
		}
		if strings.EqualFold(answer, "no") {
			s.printf("%s\n", separator)
			return nil
		}
		s.printf("\nPlease check your input again.\n")
	}

	offset := 0
	for {
		if offset >= ds.Len() {
			s.printf("\nNo more rows to display.\n")
			break
		}

		end := min(offset+PageSize, ds.Len())
		if err := s.printRows(ds, offset, end); err != nil {
			return err
		}
		offset = end
		s.logger.Debug("Displayed raw rows", "city", ds.City, "offset", offset)

		if offset >= ds.Len() {
			s.printf("\nNo more rows to display.\n")
			break
		}

		answer, err := s.ask(ctx, "\nDo you want to view more raw data? Enter yes or no.\n")
		if err != nil {
			return err
		}
		if !isYes(answer) {
			break
		}
	}

	s.printf("%s\n", separator)
	return nil
}

// printRows writes rows [from,to) of the raw frame as an aligned table.
// The first column is the row position within the filtered dataset.
func (s *Shell) printRows(ds *models.Dataset, from, to int) error {
	indexes := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		indexes = append(indexes, i)
	}

	page := ds.Rows.Subset(indexes)
	if page.Err != nil {
		return fmt.Errorf("selecting rows %d-%d: %w", from, to, page.Err)
	}
	records := page.Records()

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	for i, record := range records {
		label := ""
		if i > 0 {
			label = fmt.Sprint(from + i - 1)
		}
		fmt.Fprintf(w, "%s\t%s\n", label, strings.Join(record, "\t"))
	}
	return w.Flush()
}
