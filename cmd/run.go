package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/priyam/synapseed/internal/app"
	"github.com/priyam/synapseed/internal/chat"
	"github.com/priyam/synapseed/internal/identity"
	"github.com/priyam/synapseed/internal/llm"
	"github.com/priyam/synapseed/internal/quizgen"
	"github.com/priyam/synapseed/internal/store"
)

const (
	quizTimeout = 90 * time.Second
	chatTimeout = 60 * time.Second
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

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

	opts := app.Options{
		EventRepo: eventRepo,
		Reader:    resolveReader(ctx),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		opts.Generator = quizgen.NewLLMGenerator(provider, quizgen.Options{
			Timeout: quizTimeout,
		})
		opts.ChatService = chat.NewService(provider, chatTimeout)
	}

	return app.Run(opts)
}

// resolveReader starts the identity gate when Supabase is configured
// and falls back to a guest reader otherwise.
func resolveReader(ctx context.Context) identity.SessionReader {
	cfg, ok := identity.ConfigFromEnv()
	if !ok {
		return identity.StaticReader{}
	}
	gate := identity.NewGate(cfg)
	gate.Start(ctx)
	return gate
}
