package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/priyam/synapseed/internal/catalog"
	"github.com/priyam/synapseed/internal/chat"
	"github.com/priyam/synapseed/internal/llm"
	"github.com/priyam/synapseed/internal/store"
)

// chatCmd sends a single message to the assistant without entering the
// TUI. Useful for scripting and for checking provider wiring.
var chatCmd = &cobra.Command{
	Use:   "chat <mode> <message...>",
	Short: "Ask the assistant a one-shot question",
	Long: "Send one message to M.O.A.N.A. and print the reply.\n" +
		"Modes: careers, abroad, study-plan, research.",
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := chat.ParseMode(args[0])
		if err != nil {
			return err
		}

		subjectID, _ := cmd.Flags().GetString("subject")
		subject, err := catalog.ParseSubject(subjectID)
		if err != nil {
			return err
		}

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

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		service := chat.NewService(provider, chatTimeout)
		reply, err := service.Send(ctx, mode, subject, nil, strings.Join(args[1:], " "))
		if err != nil {
			return fmt.Errorf("uplink failed: %w", err)
		}

		fmt.Println(reply)
		return nil
	},
}

func init() {
	chatCmd.Flags().StringP("subject", "s", "botany", "Subject context (botany, physics, chemistry, zoology)")
}
