package cli

import (
	"github.com/spf13/cobra"
)

func addDelete(topLevel *cobra.Command, app func() *App) {
	loc := &entryLocator{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete an entry",
		Aliases: []string{"rm"},
		Example: `
microlog delete 1705312800000
microlog delete 1705312800000 -c ideas
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
			return svc.Delete(cmd.Context(), id, d, c)
		},
	}

	loc.addFlags(cmd)
	topLevel.AddCommand(cmd)
}
