package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsaleh/durus/internal/app"
	"github.com/hsaleh/durus/internal/lesson"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Walk a lesson card without a database",
	Long: `Play a single lesson card straight from a file.

This is a stateless authoring tool — no database, no saved progress, no
events. Useful for checking a draft card before publishing it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		doc, err := lesson.LoadFile(path)
		if err != nil {
			return fmt.Errorf("load lesson card: %w", err)
		}
		return app.Run(app.Options{
			StudentID:  "preview",
			PreviewDoc: doc,
		})
	},
}

func init() {
	previewCmd.Flags().String("file", "", "Path to a lesson card JSON file (required)")
	_ = previewCmd.MarkFlagRequired("file")
}
