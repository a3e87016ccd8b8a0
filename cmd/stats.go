package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/priyam/synapseed/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz round statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		eventRepo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}

		stats, err := eventRepo.RoundStats(context.Background())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if stats.TotalRounds == 0 {
			fmt.Println("No rounds recorded yet.")
			return nil
		}

		fmt.Printf("Rounds:         %d\n", stats.TotalRounds)
		fmt.Printf("Average score:  %.1f%%\n", stats.AverageScore)
		fmt.Printf("Best score:     %d%%\n", stats.BestScore)

		if len(stats.RoundsBySubject) > 0 {
			fmt.Println()
			fmt.Println("Rounds by subject")
			fmt.Println(strings.Repeat("─", 28))

			subjects := make([]string, 0, len(stats.RoundsBySubject))
			for s := range stats.RoundsBySubject {
				subjects = append(subjects, s)
			}
			sort.Strings(subjects)
			for _, s := range subjects {
				fmt.Printf("%-16s  %6d\n", s, stats.RoundsBySubject[s])
			}
		}

		return nil
	},
}
