package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or clear the saved wallet session",
	}

	cmd.AddCommand(newSessionShowCmd(app), newSessionClearCmd(app))

	return cmd
}

func newSessionShowCmd(app *app) *cobra.Command {
	var copyAddress bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved wallet address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			address, ok := app.sessions.Load(cmd.Context())
			if !ok {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No saved session.")
				return err
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), address); err != nil {
				return err
			}

			if copyAddress {
				if err := app.clipboard.WriteAll(address.String()); err != nil {
					return fmt.Errorf("copy address: %w", err)
				}
				_, err := fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard!")
				return err
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&copyAddress, "copy", false, "Copy the address to the clipboard")

	return cmd
}

func newSessionClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the saved wallet address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.sessions.Clear(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Session cleared.")
			return err
		},
	}
}
