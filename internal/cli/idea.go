package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/luismoralesarg/micro-log/internal/models"
)

func parseEntryID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid entry id %q", s)
	}
	return id, nil
}

func addIdea(topLevel *cobra.Command, app func() *App) {
	cmd := &cobra.Command{
		Use:   "idea",
		Short: "Work with ideas",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	status := &cobra.Command{
		Use:   "status <id> <new|in-progress|done>",
		Short: "Set an idea's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			st, err := models.ParseIdeaStatus(args[1])
			if err != nil {
				return err
			}

			svc, err := app().service(cmd.Context())
			if err != nil {
				return err
			}
			return svc.SetIdeaStatus(cmd.Context(), id, st)
		},
	}

	cmd.AddCommand(status)
	topLevel.AddCommand(cmd)
	addIdeas(topLevel, app)
}

func addIdeas(topLevel *cobra.Command, app func() *App) {
	var statusFilter string

	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "List ideas",
		Example: `
microlog ideas
microlog ideas --status in-progress
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter models.IdeaStatus
			if statusFilter != "" {
				parsed, err := models.ParseIdeaStatus(statusFilter)
				if err != nil {
					return err
				}
				filter = parsed
			}

			svc, err := app().service(cmd.Context())
			if err != nil {
				return err
			}
			ideas := svc.Document().Ideas
			if filter != "" {
				kept := ideas[:0]
				for _, i := range ideas {
					if i.Status == filter {
						kept = append(kept, i)
					}
				}
				ideas = kept
			}
			printTitle("ideas")
			printIdeas(ideas)
			return nil
		},
	}

	cmd.Flags().StringVar(&statusFilter, "status", "", "only show ideas with this status")
	topLevel.AddCommand(cmd)
}
