package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addUnlock(topLevel *cobra.Command, app func() *App) {
	cmd := &cobra.Command{
		Use:   "unlock",
		Short: "Verify the passphrase, or set one on first run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app().Unlock(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("unlocked")
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addLock(topLevel *cobra.Command, app func() *App) {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Flush pending writes and drop the session key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app().Lock()
			fmt.Println("locked")
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
