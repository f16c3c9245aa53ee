package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/litescript/ls-natal/internal/config"
	"github.com/litescript/ls-natal/internal/logging"
)

// newRootCmd builds the command tree. Each call returns fresh commands and
// flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ls-natal",
		Short:         "Natal chart calculator",
		Long:          "ls-natal computes planetary positions, houses and aspects for a birth moment and lets you explore the chart in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "config file (default .ls-natal.yaml)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("profiles", "", "profiles file (default profiles.toml)")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		initConfig(root)
		if err := viper.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level")); err != nil {
			return err
		}
		return viper.BindPFlag("profiles_path", root.PersistentFlags().Lookup("profiles"))
	}

	root.AddCommand(
		newChartCmd(),
		newSunSignCmd(),
		newProfilesCmd(),
		newTUICmd(),
		newVersionCmd(),
	)
	return root
}

func initConfig(root *cobra.Command) {
	if cfgFile, _ := root.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".ls-natal")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("LSNATAL")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// loadConfig reads the merged configuration and builds the root logger.
func loadConfig(cmd *cobra.Command) (config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}
	log := logging.New(cfg.Level())
	log.SetOutput(cmd.ErrOrStderr())
	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("config file %s", used)
	}
	return cfg, log, nil
}
