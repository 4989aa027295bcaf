package main

import (
	"fmt"
	"time"

	"github.com/SheffieldSolar/sp2ts/settlement"
	timeutils "github.com/SheffieldSolar/sp2ts/time_utils"
	"github.com/spf13/cobra"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Show the current settlement period",
	Long: `Shows the settlement period that the current time falls in, along with the period's
end time and how long is left until it.`,
	RunE: runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)
}

func runNow(cmd *cobra.Command, args []string) error {
	now := time.Now().UTC()

	// The current period is the one whose right edge is the next half-hour boundary
	periodEnd := timeutils.FloorHH(now).Add(timeutils.ThirtyMins)
	date, sp, err := settlement.DatetimeToDateAndPeriod(periodEnd)
	if err != nil {
		return err
	}

	remaining := timeutils.DurationLeftOfSP(now).Round(time.Second)
	fmt.Printf("%s SP%d (ends %s, %s remaining)\n", date, sp, periodEnd.Format(time.RFC3339), remaining)
	return nil
}
