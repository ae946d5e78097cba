package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func addStatus(topLevel *cobra.Command, app func() *App) {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show configuration and account state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			acc, err := a.accounts.Load()
			if err != nil {
				return err
			}

			location := acc.StorageLocation
			if a.cfg.VaultPath != "" {
				location = a.cfg.VaultPath
			}
			if location == "" {
				location = "(not set)"
			}
			passphrase := "not set"
			if acc.HasPassphrase() {
				passphrase = "set"
			}
			accountID := acc.AccountID
			if accountID == "" {
				accountID = "(none)"
			}

			bold := color.New(color.Bold)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold.Sprint("backend"), a.cfg.Backend)
			tbl.AddRow(bold.Sprint("storage location"), location)
			tbl.AddRow(bold.Sprint("kv path"), a.cfg.KVPath)
			tbl.AddRow(bold.Sprint("remote store"), a.cfg.RemoteKind)
			tbl.AddRow(bold.Sprint("passphrase"), passphrase)
			tbl.AddRow(bold.Sprint("account id"), accountID)
			_, _ = fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
