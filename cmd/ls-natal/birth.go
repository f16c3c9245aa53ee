package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-natal/internal/chart"
)

var errNoBirthData = errors.New("no birth data: pass --profile or --date")

// addBirthFlags registers the flags that describe a birth moment.
func addBirthFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "birth date, YYYY-MM-DD")
	cmd.Flags().String("time", "", "local birth time, HH:MM")
	cmd.Flags().Float64("lat", 0, "latitude in degrees, north positive")
	cmd.Flags().Float64("lon", 0, "longitude in degrees, east positive")
	cmd.Flags().Float64("tz", 0, "UTC offset in hours, e.g. -4 or 5.5")
}

// birthFromFlags builds birth data from whichever birth flags were given.
// Only --date is required; the rest stay unknown unless set.
func birthFromFlags(cmd *cobra.Command) (chart.BirthData, error) {
	flags := cmd.Flags()
	if !flags.Changed("date") {
		return chart.BirthData{}, errNoBirthData
	}

	dateStr, _ := flags.GetString("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return chart.BirthData{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", dateStr)
	}
	day := date.Day()
	b := chart.BirthData{Year: date.Year(), Month: int(date.Month()), Day: &day}

	if flags.Changed("time") {
		timeStr, _ := flags.GetString("time")
		tm, err := time.Parse("15:04", timeStr)
		if err != nil {
			return chart.BirthData{}, fmt.Errorf("invalid --time %q: want HH:MM", timeStr)
		}
		hour, minute := tm.Hour(), tm.Minute()
		b.Hour, b.Minute = &hour, &minute
	}

	for _, f := range []struct {
		name string
		dst  **float64
		lim  float64
	}{
		{"lat", &b.Latitude, 90},
		{"lon", &b.Longitude, 180},
		{"tz", &b.Timezone, 14},
	} {
		if !flags.Changed(f.name) {
			continue
		}
		v, _ := flags.GetFloat64(f.name)
		if v < -f.lim || v > f.lim {
			return chart.BirthData{}, fmt.Errorf("--%s %v out of range [-%v, %v]", f.name, v, f.lim, f.lim)
		}
		*f.dst = &v
	}

	return b, nil
}
