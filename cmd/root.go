package cmd

import (
	"github.com/edustream/edustream/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "edustream",
	Short: "Terminal learning platform",
	Long:  "EduStream — browse courses, play lessons, take quizzes and chat with an AI tutor, all in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDUSTREAM_DB env var)")

	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(chatlogCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EDUSTREAM_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
