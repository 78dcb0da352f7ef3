package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsaleh/durus/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the saved position for a week",
	Long:  "Delete the saved lesson position so the week starts over. Completion records and certificates are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		week, _ := cmd.Flags().GetInt("week")
		if week <= 0 {
			return fmt.Errorf("--week must be a positive week number")
		}
		studentID := resolveStudentID(cmd)

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ProgressRepo().Reset(cmd.Context(), studentID, week); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Printf("Week %d reset for %s.\n", week, studentID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Int("week", 0, "Week number to reset (required)")
	_ = resetCmd.MarkFlagRequired("week")
}
