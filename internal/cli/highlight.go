package cli

import (
	"github.com/spf13/cobra"

	"github.com/luismoralesarg/micro-log/internal/models"
)

// entryLocator holds the flags shared by commands addressing one entry.
type entryLocator struct {
	category string
	date     string
}

func (l *entryLocator) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&l.category, "category", "c", string(models.CategoryJournal), "entry category")
	cmd.Flags().StringVar(&l.date, "date", "", "entry date: YYYY-MM-DD, today or yesterday (default today)")
}

func (l *entryLocator) resolve() (models.Category, string, error) {
	c, err := models.ParseCategory(l.category)
	if err != nil {
		return "", "", err
	}
	d := ""
	if c.Dated() {
		d = resolveDate(l.date)
	}
	return c, d, nil
}

func addHighlight(topLevel *cobra.Command, app func() *App) {
	loc := &entryLocator{}

	cmd := &cobra.Command{
		Use:   "highlight <id>",
		Short: "Toggle an entry's highlight",
		Example: `
microlog highlight 1705312800000
microlog highlight 1705312800000 -c dreams --date 2024-01-15
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			c, d, err := loc.resolve()
			if err != nil {
				return err
			}

			svc, err := app().service(cmd.Context())
			if err != nil {
				return err
			}
			return svc.ToggleHighlight(cmd.Context(), id, d, c)
		},
	}

	loc.addFlags(cmd)
	topLevel.AddCommand(cmd)
}
