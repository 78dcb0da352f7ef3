package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsaleh/durus/internal/app"
	"github.com/hsaleh/durus/internal/completion"
	"github.com/hsaleh/durus/internal/lesson"
	"github.com/hsaleh/durus/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// week == 0 opens the lesson picker.
func runApp(cmd *cobra.Command, week ...int) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	progressRepo := st.ProgressRepo()
	eventRepo := st.EventRepo()

	opts := app.Options{
		Library:   lesson.NewLibrary(resolveLessonsDir(cmd)),
		StudentID: resolveStudentID(cmd),
		Progress:  progressRepo,
		Events:    eventRepo,
		Recorder: &completion.StoreRecorder{
			Events:   eventRepo,
			Progress: progressRepo,
		},
	}
	if len(week) > 0 {
		opts.Week = week[0]
	}

	return app.Run(opts)
}

// resolveLessonsDir returns the lessons directory from --lessons, then
// the DURUS_LESSONS env var, then ./lessons.
func resolveLessonsDir(cmd *cobra.Command) string {
	if d, _ := cmd.Flags().GetString("lessons"); d != "" {
		return d
	}
	return lesson.DefaultLessonsDir()
}
