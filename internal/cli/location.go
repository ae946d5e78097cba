package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luismoralesarg/micro-log/internal/config"
	"github.com/luismoralesarg/micro-log/internal/filex"
	"github.com/luismoralesarg/micro-log/internal/repositories/journal"
)

func addLocation(topLevel *cobra.Command, app func() *App) {
	cmd := &cobra.Command{
		Use:     "location",
		Short:   "Manage the vault storage location",
		Aliases: []string{"vault"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	set := &cobra.Command{
		Use:   "set <path>",
		Short: "Set the vault root and create its layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			repo := journal.NewVaultRepository(root, filex.OS{})
			if err := repo.Init(cmd.Context()); err != nil {
				return err
			}
			_, err := app().accounts.Update(func(a *config.Account) error {
				a.StorageLocation = root
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Println("storage location set to", root)
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Forget the vault root (files are left in place)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app().accounts.Update(func(a *config.Account) error {
				a.StorageLocation = ""
				return nil
			})
			return err
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the configured vault root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := app().accounts.Load()
			if err != nil {
				return err
			}
			if acc.StorageLocation == "" {
				fmt.Println("no storage location configured")
				return nil
			}
			fmt.Println(acc.StorageLocation)
			return nil
		},
	}

	cmd.AddCommand(set, clear, show)
	topLevel.AddCommand(cmd)
}
