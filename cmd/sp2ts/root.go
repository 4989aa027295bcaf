package main

import (
	"fmt"
	"time"

	"github.com/SheffieldSolar/sp2ts/config"
	"github.com/SheffieldSolar/sp2ts/settlement"
	timeutils "github.com/SheffieldSolar/sp2ts/time_utils"
	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	dateStr     string
	period      int
	timestamp   int64
	datetimeStr string
	timezone    string
	boundary    string
)

var rootCmd = &cobra.Command{
	Use:   "sp2ts",
	Short: "Convert between GB settlement periods, Unix timestamps and datetimes",
	Long: `sp2ts converts between the settlement periods used by the GB electricity industry,
Unix timestamps and datetimes.

Give it a date and settlement period, a timestamp, or a datetime, and it prints the
converted counterpart. Settlement periods are closed on the right: SP 1 covers the
interval 00:00:00 < t <= 00:30:00 local time.`,
	RunE:          runConvert,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sp2ts.yaml)")
	rootCmd.Flags().StringVarP(&dateStr, "date", "d", "", "date as <yyyy-mm-dd> (use only in conjunction with -p/--settlement-period)")
	rootCmd.Flags().IntVarP(&period, "settlement-period", "p", 0, "settlement period as <[1..50]> (use only in conjunction with -d/--date)")
	rootCmd.Flags().Int64VarP(&timestamp, "timestamp", "t", 0, "Unix timestamp as <seconds since epoch> (all other options will be ignored)")
	rootCmd.Flags().StringVar(&datetimeStr, "datetime", "", "datetime as <yyyy-mm-ddTHH:MM:SS> (optionally also specify --timezone)")
	rootCmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone used to interpret a zone-less --datetime (default from config, else UTC)")
	rootCmd.Flags().StringVar(&boundary, "boundary", "", "which edge of the settlement period to report: right, left or middle (default from config, else right)")
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	tz := timezone
	if tz == "" {
		tz = cfg.Timezone
	}
	if tz == "" {
		tz = "UTC"
	}

	bd := settlement.Boundary(boundary)
	if bd == "" {
		bd = settlement.Boundary(cfg.Boundary)
	}
	if bd == "" {
		bd = settlement.BoundaryRight
	}

	switch {
	case cmd.Flags().Changed("timestamp"):
		date, sp, err := settlement.TimestampToDateAndPeriod(timestamp)
		if err != nil {
			return err
		}
		instant, err := timeutils.FromUnixtime(timestamp, "")
		if err != nil {
			return err
		}
		fmt.Printf("%d (%s)  ->  %s SP%d\n", timestamp, instant.Format(time.RFC3339), date, sp)

	case dateStr != "" && cmd.Flags().Changed("settlement-period"):
		date, err := settlement.ParseDate(dateStr)
		if err != nil {
			return err
		}
		ts, err := settlement.DateAndPeriodToTimestamp(date, period, bd)
		if err != nil {
			return err
		}
		instant := time.Unix(ts, 0).UTC()
		fmt.Printf("%s SP%d  ->  %d (%s)\n", date, period, ts, instant.Format(time.RFC3339))

	case datetimeStr != "":
		instant, err := timeutils.ParseDatetime(datetimeStr, tz)
		if err != nil {
			return err
		}
		date, sp, err := settlement.DatetimeToDateAndPeriod(instant)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)  ->  %s SP%d\n", datetimeStr, tz, date, sp)

	default:
		return cmd.Help()
	}
	return nil
}
