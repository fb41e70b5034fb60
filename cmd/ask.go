package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/edustream/edustream/internal/llm"
	"github.com/edustream/edustream/internal/store"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the AI tutor a one-off question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")
		topic, _ := cmd.Flags().GetString("topic")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cfg := llm.ConfigFromEnv()
		if cfg.Validate() != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return fmt.Errorf("no LLM provider configured; set an API key such as GEMINI_API_KEY")
			}
			cfg = discovered
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		provider, err := llm.NewProvider(ctx, cfg, st.ChatEventRepo())
		if err != nil {
			return fmt.Errorf("build provider: %w", err)
		}

		system := "You are a friendly tutor on a learning platform. Answer the learner's question clearly and concisely."
		if topic != "" {
			system += " The learner is currently studying " + topic + "."
		}

		resp, err := provider.Generate(ctx, llm.Request{
			System:    system,
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: question}},
			MaxTokens: 1024,
		})
		if err != nil {
			return fmt.Errorf("generate answer: %w", err)
		}

		fmt.Println(resp.Text)
		return nil
	},
}

func init() {
	askCmd.Flags().StringP("topic", "t", "", "Course or topic the question relates to")
}
