package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/priyam/synapseed/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "synapseed",
	Short: "Neural science terminal",
	Long:  "SynapSeed — AI-native terminal for science quizzes and study guidance across Botany, Physics, Chemistry, and Zoology.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional; provider keys and Supabase settings may come from
		// a local .env instead of the shell environment.
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SYNAPSEED_DB env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then SYNAPSEED_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
