package cli

import (
	"github.com/spf13/cobra"

	"github.com/luismoralesarg/micro-log/internal/models"
)

func addList(topLevel *cobra.Command, app func() *App) {
	var date string
	var all bool

	cmd := &cobra.Command{
		Use:     "list [category]",
		Short:   "List entries",
		Aliases: []string{"ls", "l"},
		Example: `
microlog list
microlog list dreams --all
microlog list notes
microlog list journal --date 2024-01-15
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := models.CategoryJournal
			if len(args) == 1 {
				parsed, err := models.ParseCategory(args[0])
				if err != nil {
					return err
				}
				c = parsed
			}

			svc, err := app().service(cmd.Context())
			if err != nil {
				return err
			}
			doc := svc.Document()

			switch {
			case c == models.CategoryNotes:
				printTitle("notes")
				printEntries(doc.Notes)
			case c == models.CategoryIdeas:
				printTitle("ideas")
				printIdeas(doc.Ideas)
			case c == models.CategoryWisdom:
				printTitle("wisdom")
				printEntries(doc.Wisdom)
			default:
				d := ""
				if !all {
					d = resolveDate(date)
				}
				printDated(doc.DatedEntries(c), d)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "show a single date: YYYY-MM-DD, today or yesterday")
	cmd.Flags().BoolVar(&all, "all", false, "show every date, not just today")
	topLevel.AddCommand(cmd)
}
