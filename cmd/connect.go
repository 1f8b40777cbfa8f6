package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConnectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Sign in with a passkey and save the smart wallet session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, session, err := app.newSession(printCeremony(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer session.Close()

			if err := session.Connect(cmd.Context()); err != nil {
				return err
			}

			view := session.View()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Connected smart wallet %s (%s)\n", view.Address, view.Address.Short())
			return err
		},
	}
}
