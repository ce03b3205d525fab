package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bikeshare-explorer/internal/common/config"
	"github.com/bikeshare-explorer/internal/common/logger"
	"github.com/bikeshare-explorer/internal/loader"
	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

// ErrInvalidSelection marks an answer outside the accepted set. It never
// leaves the shell: the prompt is repeated instead.
var ErrInvalidSelection = errors.New("invalid selection")

// errEndOfInput ends the session when stdin is exhausted
var errEndOfInput = errors.New("end of input")

const separator = "----------------------------------------"

// DatasetLoader builds the Dataset for one selection
type DatasetLoader interface {
	Load(ctx context.Context, sel models.Selection) (*models.Dataset, error)
}

type state int

const (
	stateAskCity state = iota
	stateAskMonth
	stateAskDay
	stateLoadAndReport
	stateOfferRawData
	stateAskRestart
	stateDone
)

func (s state) String() string {
	switch s {
	case stateAskCity:
		return "askCity"
	case stateAskMonth:
		return "askMonth"
	case stateAskDay:
		return "askDay"
	case stateLoadAndReport:
		return "loadAndReport"
	case stateOfferRawData:
		return "offerRawData"
	case stateAskRestart:
		return "askRestart"
	case stateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Shell drives one interactive session over in/out.
type Shell struct {
	in     io.Reader
	lines  <-chan inputLine
	out    io.Writer
	loader DatasetLoader
	cities config.CityTable
	logger logger.Logger
}

// session is the per-iteration state, discarded on restart
type session struct {
	selection models.Selection
	dataset   *models.Dataset
}

func New(in io.Reader, out io.Writer, loader DatasetLoader, cities config.CityTable, logger logger.Logger) *Shell {
	return &Shell{
		in:     in,
		out:    out,
		loader: loader,
		cities: cities,
		logger: logger,
	}
}

// Run executes the session until the user declines a restart or input ends.
// A DataSourceError is printed and returned so the caller can exit non-zero.
// Cancelling ctx interrupts a pending prompt and Run returns ctx.Err().
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.lines = readLines(ctx, s.in)

	s.printf("Hello! Let's explore some US bikeshare data!\n")

	current := stateAskCity
	var sess session

	for current != stateDone {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := s.step(ctx, current, &sess)
		if errors.Is(err, errEndOfInput) {
			s.logger.Debug("Input closed", "state", current.String())
			s.printf("\n")
			return nil
		}
		if err != nil {
			return err
		}

		s.logger.Debug("Shell transition", "from", current.String(), "to", next.String())
		current = next
	}

	s.logger.Info("Session finished")
	return nil
}

func (s *Shell) step(ctx context.Context, current state, sess *session) (state, error) {
	switch current {
	case stateAskCity:
		*sess = session{}
		city, err := s.askCity(ctx)
		if err != nil {
			return stateDone, err
		}
		sess.selection.City = city
		return stateAskMonth, nil

	case stateAskMonth:
		month, err := s.askMonth(ctx)
		if err != nil {
			return stateDone, err
		}
		sess.selection.Month = month
		return stateAskDay, nil

	case stateAskDay:
		day, err := s.askDay(ctx)
		if err != nil {
			return stateDone, err
		}
		sess.selection.Day = day
		s.printf("%s\n", separator)
		return stateLoadAndReport, nil

	case stateLoadAndReport:
		s.printf("\nLoading data...\n")
		ds, err := s.loader.Load(ctx, sess.selection)
		if err != nil {
			var dsErr *loader.DataSourceError
			if errors.As(err, &dsErr) {
				s.logger.Error("Failed to load dataset", "city", dsErr.City, "path", dsErr.Path, "error", err)
				s.printf("\nCould not load data for %s: %v\n", dsErr.City, dsErr.Err)
			}
			return stateDone, err
		}
		sess.dataset = ds

		if err := s.report(ds); err != nil {
			s.logger.Error("Statistics pass aborted", "city", ds.City, "error", err)
			s.printf("\nStatistics could not be completed: %v\n%s\n", err, separator)
			return stateAskRestart, nil
		}
		return stateOfferRawData, nil

	case stateOfferRawData:
		if err := s.offerRawData(ctx, sess.dataset); err != nil {
			return stateDone, err
		}
		return stateAskRestart, nil

	case stateAskRestart:
		answer, err := s.ask(ctx, "\nWould you like to restart? Enter yes or no.\n")
		if err != nil {
			return stateDone, err
		}
		if isYes(answer) {
			return stateAskCity, nil
		}
		return stateDone, nil
	}

	return stateDone, fmt.Errorf("unknown shell state %s", current)
}

// ask prints prompt and returns the next input line without surrounding
// whitespace.
func (s *Shell) ask(ctx context.Context, prompt string) (string, error) {
	s.printf("%s", prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		switch {
		case !ok, errors.Is(line.err, io.EOF):
			return "", errEndOfInput
		case line.err != nil:
			return "", fmt.Errorf("reading input: %w", line.err)
		}
		return strings.TrimSpace(line.text), nil
	}
}

func (s *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func isYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}
