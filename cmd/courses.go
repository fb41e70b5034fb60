package cmd

import (
	"fmt"
	"strings"

	"github.com/edustream/edustream/internal/catalog"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the course catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range catalog.Courses() {
			price := "Free"
			if c.Price > 0 {
				price = fmt.Sprintf("$%.2f", c.Price)
			}
			fmt.Printf("%s  %-38s  %-12s  ★ %.1f  %s\n",
				c.ID, c.Title, c.Level, c.Rating, price)
			if len(c.Tags) > 0 {
				fmt.Printf("    %s\n", strings.Join(c.Tags, ", "))
			}
			for _, l := range c.Lessons {
				quiz := ""
				if l.Quiz != nil {
					quiz = "  [quiz]"
				}
				fmt.Printf("    %s  %-34s  %s%s\n", l.ID, l.Title, l.Duration, quiz)
			}
			fmt.Println()
		}
	},
}
