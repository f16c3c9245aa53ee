package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/litescript/ls-natal/internal/chart"
	"github.com/litescript/ls-natal/internal/config"
	"github.com/litescript/ls-natal/internal/profile"
)

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Compute a natal chart",
		Long: `Compute a natal chart for a saved profile or for birth data given on the
command line, and print it as a text table or JSON.`,
		Example: `  ls-natal chart --profile nyc-1990
  ls-natal chart --date 1990-06-15 --time 14:30 --lat 40.7128 --lon -74.006 --tz -4 --format json`,
		Args: cobra.NoArgs,
		RunE: runChart,
	}
	cmd.Flags().String("profile", "", "profile name from the profiles file")
	cmd.Flags().String("format", "", "output format: text or json")
	addBirthFlags(cmd)
	return cmd
}

func runChart(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlag("format", cmd.Flags().Lookup("format")); err != nil {
		return err
	}
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	title, b, err := resolveBirth(cmd, cfg)
	if err != nil {
		return err
	}

	c, err := chart.Calculate(b)
	if err != nil {
		return fmt.Errorf("chart for %s: %w", title, err)
	}
	log.Debug("computed chart for %s at JD %.5f", title, c.JulianDay)

	out := cmd.OutOrStdout()
	if cfg.Format == config.FormatJSON {
		return chart.WriteJSON(out, c)
	}
	chart.WriteSummary(out, title, c)
	return nil
}

// resolveBirth picks the birth data for a command: birth flags win, then
// --profile, then the configured default profile.
func resolveBirth(cmd *cobra.Command, cfg config.Config) (string, chart.BirthData, error) {
	if cmd.Flags().Changed("date") {
		b, err := birthFromFlags(cmd)
		return "command line", b, err
	}

	name, _ := cmd.Flags().GetString("profile")
	if name == "" {
		name = cfg.DefaultProfile
	}
	if name == "" {
		return "", chart.BirthData{}, errNoBirthData
	}

	profiles, err := profile.Load(cfg.ProfilesPath)
	if err != nil {
		return "", chart.BirthData{}, err
	}
	p, err := profile.Find(profiles, name)
	if err != nil {
		return "", chart.BirthData{}, err
	}
	return p.Name, p.BirthData, nil
}
