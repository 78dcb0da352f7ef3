package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsaleh/durus/internal/store"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show saved positions and completed lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
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

		rows, err := st.ProgressRepo().List(ctx, studentID)
		if err != nil {
			return fmt.Errorf("list progress: %w", err)
		}
		completions, err := st.EventRepo().Completions(ctx, studentID)
		if err != nil {
			return fmt.Errorf("list completions: %w", err)
		}

		if len(rows) == 0 && len(completions) == 0 {
			fmt.Printf("No saved lessons for %s yet.\n", studentID)
			return nil
		}

		if len(rows) > 0 {
			fmt.Printf("Saved positions for %s:\n", studentID)
			for _, p := range rows {
				status := fmt.Sprintf("at %s", p.Stage)
				if p.Completed {
					status = "completed"
				}
				fmt.Printf("  week %-3d %-10s updated %s\n",
					p.Week, status, p.UpdatedAt.Format("2006-01-02 15:04"))
			}
		}

		if len(completions) > 0 {
			fmt.Printf("\nCompleted lessons:\n")
			for _, c := range completions {
				fmt.Printf("  week %-3d %-24s %d/%d (%d%%)  certificate %s\n",
					c.Week, c.LessonTitle, c.Score, c.Total, c.Percent, c.CertificateID)
			}
		}
		return nil
	},
}
