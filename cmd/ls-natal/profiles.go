package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-natal/internal/chart"
	"github.com/litescript/ls-natal/internal/profile"
)

func newProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List and edit saved birth profiles",
		Args:  cobra.NoArgs,
		RunE:  runProfilesList,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		RunE:  runProfilesList,
	}

	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Add or replace a profile",
		Long: `Add a profile to the profiles file, replacing any profile with the same
name. Only --date is required; a profile without time or place can be
saved but not charted.`,
		Example: `  ls-natal profiles add nyc-1990 --date 1990-06-15 --time 14:30 --lat 40.7128 --lon -74.006 --tz -4`,
		Args:    cobra.ExactArgs(1),
		RunE:    runProfilesAdd,
	}
	addBirthFlags(add)

	cmd.AddCommand(list, add)
	return cmd
}

func runProfilesList(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	profiles, err := profile.Load(cfg.ProfilesPath)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles yet (%s does not exist)\n", cfg.ProfilesPath)
		return nil
	}
	if err != nil {
		return err
	}

	nameWidth := len("NAME")
	for _, p := range profiles {
		nameWidth = max(nameWidth, len(p.Name))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-*s  %-10s  %-11s  %s\n", nameWidth, "NAME", "BORN", "SUN", "CHART")
	fmt.Fprintln(out, strings.Repeat("─", nameWidth+40))
	for _, p := range profiles {
		born := fmt.Sprintf("%04d-%02d", p.Year, p.Month)
		sun := "-"
		if p.Day != nil {
			born += fmt.Sprintf("-%02d", *p.Day)
			sun = chart.SunSignByDate(p.Month, *p.Day).Title()
		}
		status := "ready"
		if err := p.Validate(); err != nil {
			var mf *chart.MissingFieldError
			if errors.As(err, &mf) {
				status = "needs " + mf.Field
			} else {
				status = err.Error()
			}
		}
		fmt.Fprintf(out, "%-*s  %-10s  %-11s  %s\n", nameWidth, p.Name, born, sun, status)
	}
	return nil
}

func runProfilesAdd(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	b, err := birthFromFlags(cmd)
	if err != nil {
		return err
	}

	profiles, err := profile.Load(cfg.ProfilesPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	profiles = profile.Upsert(profiles, profile.Profile{Name: args[0], BirthData: b})

	if err := profile.Save(cfg.ProfilesPath, profiles); err != nil {
		return err
	}
	log.Info("saved profile %s to %s", args[0], cfg.ProfilesPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d profiles)\n", args[0], len(profiles))
	return nil
}
