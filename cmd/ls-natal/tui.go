package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-natal/internal/logging"
	"github.com/litescript/ls-natal/internal/profile"
	"github.com/litescript/ls-natal/internal/state"
	"github.com/litescript/ls-natal/internal/ui"
)

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse charts interactively",
		Long: `Open the chart viewer. Step the chart through time, switch between
profiles and reveal the chart one placement at a time. The profiles file is
reloaded when it changes on disk (unless watch is disabled in the config).`,
		Args: cobra.NoArgs,
		RunE: runTUI,
	}
	cmd.Flags().String("profile", "", "profile to open (default: default_profile or the first)")
	return cmd
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("ls-natal tui requires a TTY (terminal)")
	}

	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	profiles, err := profile.Load(cfg.ProfilesPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	stateCfg := state.DefaultConfig()
	stateCfg.TimeStep = time.Duration(cfg.TimeStepMinutes) * time.Minute
	stateMgr := state.NewManager(stateCfg)
	stateMgr.SetProfiles(profiles)

	name, _ := cmd.Flags().GetString("profile")
	if name == "" {
		name = cfg.DefaultProfile
	}
	if name != "" {
		if err := stateMgr.Select(name); err != nil {
			return err
		}
	}

	var reloads <-chan profile.Reload
	if cfg.Watch {
		w, err := profile.NewWatcher(cfg.ProfilesPath, log)
		if err != nil {
			return fmt.Errorf("watching profiles: %w", err)
		}
		if err := w.Start(); err != nil {
			log.Warn("not watching %s: %v", cfg.ProfilesPath, err)
		} else {
			defer w.Stop()
			reloads = w.Reloads
		}
	}

	// Keep log output to errors while the alt screen is up.
	log.SetLevel(max(log.Level(), logging.LevelError))

	p := tea.NewProgram(ui.New(stateMgr, reloads, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
