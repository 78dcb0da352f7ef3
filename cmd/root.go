package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hsaleh/durus/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "durus",
	Short: "Arabic lesson player for the terminal",
	Long:  "Durus — terminal player for weekly Arabic lesson cards: goals, prerequisites, guided concepts, and a final assessment.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DURUS_DB env var)")
	rootCmd.PersistentFlags().String("student", "", "Student name (overrides DURUS_STUDENT env var)")
	rootCmd.PersistentFlags().String("lessons", "", "Path to the lesson cards directory")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DURUS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveStudentID returns the student name from --student, then the
// DURUS_STUDENT env var, then a generic default.
func resolveStudentID(cmd *cobra.Command) string {
	if s, _ := cmd.Flags().GetString("student"); s != "" {
		return s
	}
	if s := os.Getenv("DURUS_STUDENT"); s != "" {
		return s
	}
	return "student"
}
