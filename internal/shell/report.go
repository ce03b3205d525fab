package shell

import (
	"errors"
	"time"

	"github.com/bikeshare-explorer/internal/stats"
	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

type section struct {
	title string
	run   func(s *Shell, ds *models.Dataset) error
}

var sections = []section{
	{title: "Calculating The Most Frequent Times of Travel...", run: (*Shell).printTimeStats},
	{title: "Calculating The Most Popular Stations and Trip...", run: (*Shell).printStationStats},
	{title: "Calculating Trip Duration...", run: (*Shell).printDurationStats},
	{title: "Calculating User Stats...", run: (*Shell).printUserStats},
}

// report runs every section in order. An empty dataset is reported per
// section and does not stop the pass; any other error does.
func (s *Shell) report(ds *models.Dataset) error {
	for _, sec := range sections {
		s.printf("\n%s\n\n", sec.title)
		started := time.Now()

		err := sec.run(s, ds)
		switch {
		case errors.Is(err, stats.ErrEmptyResult):
			s.logger.Warn("Empty selection", "section", sec.title, "city", ds.City)
			s.printf("No data for this selection.\n")
		case err != nil:
			return err
		}

		s.printf("\nThis took %v seconds.\n%s\n", time.Since(started).Seconds(), separator)
	}
	return nil
}

func (s *Shell) printTimeStats(ds *models.Dataset) error {
	ts, err := stats.TimeOfTravel(ds)
	if err != nil {
		return err
	}
	s.printf("Most Popular Month (1 = January,...,6 = June): %d\n", ts.Month)
	s.printf("\nMost Popular Day: %s\n", ts.DayName)
	s.printf("\nMost Popular Start Hour: %d\n", ts.Hour)
	return nil
}

func (s *Shell) printStationStats(ds *models.Dataset) error {
	st, err := stats.Stations(ds)
	if err != nil {
		return err
	}
	s.printf("The most commonly used start station: %s\n", st.StartStation)
	s.printf("The most commonly used end station: %s\n", st.EndStation)
	s.printf("\nThe most frequent combination of trips are from %s.\n", st.Trip)

	dist, err := stats.Distances(ds)
	switch {
	case stats.IsMissingColumn(err):
		s.logger.Debug("Skipping trip distances", "city", ds.City, "reason", err.Error())
		return nil
	case errors.Is(err, stats.ErrEmptyResult):
		s.printf("\nNo station coordinates for this selection.\n")
		return nil
	case err != nil:
		return err
	}
	s.printf("\nThe total distance between start and end stations is %.2f km over %d trips.\n", dist.TotalKm, dist.Counter)
	s.printf("The average distance between start and end stations is %.2f km.\n", dist.MeanKm())
	return nil
}

func (s *Shell) printDurationStats(ds *models.Dataset) error {
	d, err := stats.TripDurations(ds)
	if err != nil {
		return err
	}
	s.printf("The total trip duration is %d hours, %d minutes and %d seconds.\n", d.Total.Hours, d.Total.Minutes, d.Total.Seconds)
	s.printf("\nThe average trip duration is %s.\n", d.Mean)
	return nil
}

func (s *Shell) printUserStats(ds *models.Dataset) error {
	u, err := stats.Users(ds)
	if err != nil {
		return err
	}

	s.printf("The types of users by number are :\n")
	s.printCounts(u.UserTypes)

	switch {
	case stats.IsMissingColumn(u.GenderErr):
		s.printf("\nThere is no 'Gender' column in the file.\n")
	case u.GenderErr != nil:
		s.printf("\nNo gender data for this selection.\n")
	default:
		s.printf("\nThe types of users by gender are :\n")
		s.printCounts(u.Gender)
	}

	switch {
	case stats.IsMissingColumn(u.BirthYearErr):
		s.printf("\nThere is no 'Birth Year' column in the file.\n")
	case u.BirthYearErr != nil:
		s.printf("\nNo birth year data for this selection.\n")
	default:
		s.printf("\nThe earliest year of birth: %d\n", u.BirthYear.Earliest)
		s.printf("\nThe most recent year of birth: %d\n", u.BirthYear.MostRecent)
		s.printf("\nThe most common year of birth: %d\n", u.BirthYear.MostCommon)
	}
	return nil
}

func (s *Shell) printCounts(counts []stats.Count) {
	for _, c := range counts {
		s.printf("%-12s %d\n", c.Label, c.Count)
	}
}
