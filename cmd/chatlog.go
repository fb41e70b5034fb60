package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/edustream/edustream/internal/store"
	"github.com/spf13/cobra"
)

var chatlogCmd = &cobra.Command{
	Use:   "chatlog",
	Short: "List recent AI tutor requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.ChatEventRepo().RecentChatRequests(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query chat requests: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No tutor requests recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-10s  %-28s  %-10s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Provider", "Model", "Session", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 110))

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			session := e.SessionID
			if len(session) > 10 {
				session = session[:10]
			}
			fmt.Printf("%-5d  %-19s  %-10s  %-28s  %-10s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Provider,
				model,
				session,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
			if e.ErrorMessage != "" {
				fmt.Printf("       error: %s\n", e.ErrorMessage)
			}
		}
		return nil
	},
}

func init() {
	chatlogCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
}
