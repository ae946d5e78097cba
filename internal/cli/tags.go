package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/luismoralesarg/micro-log/internal/models"
	"github.com/luismoralesarg/micro-log/internal/services"
)

func addTags(topLevel *cobra.Command, app func() *App) {
	var showEntries bool

	cmd := &cobra.Command{
		Use:   "tags [name]",
		Short: "List #tags across journal entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, app, services.TagMarker, args, showEntries)
		},
	}
	cmd.Flags().BoolVar(&showEntries, "entries", false, "show the entries behind each tag")
	topLevel.AddCommand(cmd)
}

func addPeople(topLevel *cobra.Command, app func() *App) {
	var showEntries bool

	cmd := &cobra.Command{
		Use:   "people [name]",
		Short: "List @mentions across journal entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, app, services.PersonMarker, args, showEntries)
		},
	}
	cmd.Flags().BoolVar(&showEntries, "entries", false, "show the entries behind each mention")
	topLevel.AddCommand(cmd)
}

func runExtract(cmd *cobra.Command, app func() *App, marker string, args []string, showEntries bool) error {
	svc, err := app().service(cmd.Context())
	if err != nil {
		return err
	}
	doc := svc.Document()
	groups := services.ExtractItems(doc.DatedEntries(models.CategoryJournal), marker)

	if len(args) == 1 {
		name := args[0]
		if !strings.HasPrefix(name, marker) {
			name = marker + name
		}
		kept := groups[:0]
		for _, g := range groups {
			if g.Name == name {
				kept = append(kept, g)
			}
		}
		groups = kept
		showEntries = true
	}

	printGroups(groups, showEntries)
	return nil
}
