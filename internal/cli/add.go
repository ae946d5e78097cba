package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/luismoralesarg/micro-log/internal/models"
)

func today() string {
	return time.Now().Format(models.DateLayout)
}

// resolveDate expands the "today"/"yesterday" conveniences; anything else
// is passed through for validation downstream.
func resolveDate(s string) string {
	switch s {
	case "", "today":
		return today()
	case "yesterday":
		return time.Now().AddDate(0, 0, -1).Format(models.DateLayout)
	}
	return s
}

func addAdd(topLevel *cobra.Command, app func() *App) {
	var date string

	cmd := &cobra.Command{
		Use:     "add [category] <text>...",
		Short:   "Add an entry",
		Aliases: []string{"a"},
		Example: `
microlog add "went for a run #health"
microlog add dreams "flying over the city"
microlog add ideas "learn #go" --date 2024-01-15
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := models.CategoryJournal
			if parsed, err := models.ParseCategory(args[0]); err == nil && len(args) > 1 {
				c = parsed
				args = args[1:]
			}
			text := strings.Join(args, " ")

			d := ""
			if c.Dated() {
				d = resolveDate(date)
			}

			svc, err := app().service(cmd.Context())
			if err != nil {
				return err
			}
			e, err := svc.Append(cmd.Context(), c, d, text)
			if err != nil {
				return err
			}
			if e == nil {
				return nil
			}
			fmt.Printf("added %d to %s\n", e.ID, c)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "entry date: YYYY-MM-DD, today or yesterday (default today)")
	topLevel.AddCommand(cmd)
}
