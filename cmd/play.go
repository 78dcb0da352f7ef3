package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open a weekly lesson directly",
	RunE: func(cmd *cobra.Command, args []string) error {
		week, _ := cmd.Flags().GetInt("week")
		if week <= 0 {
			return fmt.Errorf("--week must be a positive week number")
		}
		return runApp(cmd, week)
	},
}

func init() {
	playCmd.Flags().Int("week", 0, "Week number of the lesson card (required)")
	_ = playCmd.MarkFlagRequired("week")
}
