package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/edustream/edustream/internal/api"
	"github.com/edustream/edustream/internal/app"
	"github.com/edustream/edustream/internal/catalog"
	"github.com/edustream/edustream/internal/enrollment"
	"github.com/edustream/edustream/internal/llm"
	"github.com/edustream/edustream/internal/notify"
	"github.com/edustream/edustream/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
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

	deps := app.Deps{
		Client:      api.NewMockClient(),
		Enrollments: enrollment.Open(ctx, st.RecordRepo()),
		Provider:    buildProvider(ctx, st),
		Feed:        notify.NewFeed(notify.Fixtures()),
		Courses:     catalog.Courses(),
	}

	return app.Run(deps)
}

// buildProvider resolves the chat provider from the environment. When no
// API key is configured the tutor falls back to canned replies rather
// than disabling the panel.
func buildProvider(ctx context.Context, st *store.Store) llm.Provider {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Fprintln(os.Stderr, "No LLM provider configured; AI tutor will use offline replies.")
			return offlineProvider()
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, st.ChatEventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider setup failed:", err)
		fmt.Fprintln(os.Stderr, "AI tutor will use offline replies.")
		return offlineProvider()
	}
	return provider
}

func offlineProvider() llm.Provider {
	p := llm.NewMockProvider()
	p.DefaultText = "I'm offline right now. Set an API key (for example GEMINI_API_KEY) to enable the AI tutor."
	return p
}
