package cmd

import (
	"context"
	"fmt"

	"github.com/edustream/edustream/internal/enrollment"
	"github.com/edustream/edustream/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear enrollment and progress data",
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

		if err := st.RecordRepo().Save(context.Background(), enrollment.RecordName, []byte("{}")); err != nil {
			return fmt.Errorf("clear enrollments: %w", err)
		}

		fmt.Println("Enrollment data cleared.")
		return nil
	},
}
