package shell

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/bikeshare-explorer/internal/common/config"
	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

func (s *Shell) askCity(ctx context.Context) (string, error) {
	prompt := fmt.Sprintf("\nWhich city do you want to get the data from, %s?\n", joinChoices(titleAll(s.cities.Names()), "or"))
	for {
		answer, err := s.ask(ctx, prompt)
		if err != nil {
			return "", err
		}
		if _, ok := s.cities.Lookup(answer); ok {
			return config.NormalizeCity(answer), nil
		}
		s.rejected("city", answer, fmt.Errorf("%w: unknown city %q", ErrInvalidSelection, answer))
		s.printf("Please check the city or the format you entered!\n")
	}
}

func (s *Shell) askMonth(ctx context.Context) (models.MonthFilter, error) {
	choices := append(titleAll(models.MonthNames), "all (no filter)")
	prompt := fmt.Sprintf("\nWhich month do you want to filter by, %s?\n", joinChoices(choices, "or"))
	for {
		answer, err := s.ask(ctx, prompt)
		if err != nil {
			return models.AllMonths, err
		}
		month, err := models.ParseMonthFilter(answer)
		if err == nil {
			return month, nil
		}
		s.rejected("month", answer, fmt.Errorf("%w: %v", ErrInvalidSelection, err))
		s.printf("Please check the month or the format you entered!\n")
	}
}

func (s *Shell) askDay(ctx context.Context) (models.DayFilter, error) {
	const prompt = "\nWhich day, or all (no filter)? Please enter your response as integer (e.g. 0=Monday, 6=Sunday)\n"
	for {
		answer, err := s.ask(ctx, prompt)
		if err != nil {
			return models.AllDays, err
		}
		day, err := models.ParseDayFilter(answer)
		if err == nil {
			return day, nil
		}
		s.rejected("day", answer, fmt.Errorf("%w: %v", ErrInvalidSelection, err))
		s.printf("Please check the day or the format you entered!\n")
	}
}

func (s *Shell) rejected(field, answer string, err error) {
	s.logger.Debug("Rejected answer", "field", field, "answer", answer, "error", err)
}

// joinChoices renders "a, b, or c"
func joinChoices(items []string, conj string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", " + conj + " " + items[len(items)-1]
}

func titleAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = title(w)
	}
	return out
}

func title(s string) string {
	parts := strings.Fields(s)
	for i, p := range parts {
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
