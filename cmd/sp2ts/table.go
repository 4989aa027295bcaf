package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/SheffieldSolar/sp2ts/settlement"
	"github.com/spf13/cobra"
)

var (
	tableFromYear int
	tableToYear   int
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Regenerate the GB clock change table from the IANA timezone database",
	Long: `Derives the spring-forward and fall-back days for each year from the Europe/London
entry of the system's IANA timezone database and prints them as Go source, ready to
be pasted into the settlement package.

Always review the output carefully against the current table before committing it, in
case the timezone database on this machine is stale or its behaviour has changed.`,
	RunE: runTable,
}

func init() {
	tableCmd.Flags().IntVar(&tableFromYear, "from", 1990, "first year to include")
	tableCmd.Flags().IntVar(&tableToYear, "to", 2037, "last year to include")
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	london, err := time.LoadLocation("Europe/London")
	if err != nil {
		return fmt.Errorf("load london tz: %w", err)
	}
	if tableFromYear > tableToYear {
		return fmt.Errorf("--from year %d is after --to year %d", tableFromYear, tableToYear)
	}

	fmt.Println("var transitionDates = []transitionEntry{")
	for year := tableFromYear; year <= tableToYear; year++ {
		spring, fall, err := clockChangeDays(year, london)
		if err != nil {
			return err
		}
		slog.Debug("Found clock change days", "year", year, "spring", spring, "fall", fall)
		fmt.Printf("\t{%d, %d}, // %d: %s, %s\n", spring.UTCMidnight(), fall.UTCMidnight(), year, spring, fall)
	}
	fmt.Println("}")
	return nil
}

// clockChangeDays returns the civil dates on which the given year's two clock changes
// occur, found by probing the UTC offset at noon local time on consecutive days. An
// offset that grows is the spring change, one that shrinks is the fall change.
func clockChangeDays(year int, location *time.Location) (spring, fall settlement.Date, err error) {
	var haveSpring, haveFall bool

	_, prevOffset := time.Date(year, time.January, 1, 12, 0, 0, 0, location).Zone()
	for day := time.Date(year, time.January, 2, 12, 0, 0, 0, location); day.Year() == year; day = day.AddDate(0, 0, 1) {
		_, offset := day.Zone()
		switch {
		case offset > prevOffset:
			spring = settlement.DateFromTime(day)
			haveSpring = true
		case offset < prevOffset:
			fall = settlement.DateFromTime(day)
			haveFall = true
		}
		prevOffset = offset
	}

	if !haveSpring || !haveFall {
		return settlement.Date{}, settlement.Date{}, fmt.Errorf("no clock changes found in year %d", year)
	}
	return spring, fall, nil
}
