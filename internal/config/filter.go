package config

import (
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/moodlift/internal/timeutil"
)

// FilterConfig represents a configuration to filter session records
// in the database by their start time, end time, and assigned tags.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
	Tags      []string
}

// getTimeRange returns the start and end time according to the
// specified time period.
func getTimeRange(period timeutil.Period) (start, end time.Time) {
	now := time.Now()

	start = timeutil.RoundToStart(now)

	end = timeutil.RoundToEnd(now)

	switch period {
	case timeutil.PeriodToday:
		return
	case timeutil.PeriodYesterday:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
		end = timeutil.RoundToEnd(start)

		return
	case timeutil.PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
	}

	return
}

// Filter builds a FilterConfig from command-line arguments.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	filterCfg := &FilterConfig{}

	if ctx.String("tag") != "" {
		filterCfg.Tags = splitAndTrimTags(ctx.String("tag"))
	}

	period := timeutil.Period(strings.TrimSpace(ctx.String("period")))

	if period != "" && !slices.Contains(timeutil.PeriodCollection, period) {
		return nil, errInvalidPeriod
	}

	if period != "" {
		filterCfg.StartTime, filterCfg.EndTime = getTimeRange(period)

		return filterCfg, nil
	}

	filterCfg.StartTime = timeutil.RoundToStart(time.Now())
	filterCfg.EndTime = time.Now()

	start := ctx.String("since")
	if start != "" {
		dateTime, err := timeutil.FromStr(start)
		if err != nil {
			return nil, errInvalidSince.Fmt(start, err)
		}

		filterCfg.StartTime = dateTime
	}

	end := ctx.String("until")
	if end != "" {
		dateTime, err := timeutil.FromStr(end)
		if err != nil {
			return nil, errInvalidSince.Fmt(end, err)
		}

		filterCfg.EndTime = dateTime
	}

	if filterCfg.EndTime.Before(filterCfg.StartTime) {
		return nil, errInvalidDateRange
	}

	return filterCfg, nil
}
