package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-natal/internal/chart"
)

func newSunSignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sunsign MONTH DAY",
		Short: "Look up the Sun sign for a birthday by calendar date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := strconv.Atoi(args[0])
			if err != nil || month < 1 || month > 12 {
				return fmt.Errorf("invalid month %q", args[0])
			}
			day, err := strconv.Atoi(args[1])
			if err != nil || day < 1 || day > 31 {
				return fmt.Errorf("invalid day %q", args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), chart.SunSignByDate(month, day).Title())
			return nil
		},
	}
}
