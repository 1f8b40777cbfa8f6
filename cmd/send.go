package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/lazorkit-wallet-cli/internal/application"
	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSendCmd(app *app) *cobra.Command {
	var req domain.TransferRequest

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send SOL from the smart wallet, gas sponsored by the paymaster",
		Long: "send connects with a passkey, then asks for a second passkey approval to sign the transfer. " +
			"The paymaster relays the transaction so the wallet needs no SOL for fees.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := application.ValidateTransferRequest(req); err != nil {
				return err
			}
			if _, err := app.builder.ParseAddress(req.Recipient); err != nil {
				return err
			}

			wallet, session, err := app.newSession(printCeremony(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer session.Close()

			if err := session.Connect(cmd.Context()); err != nil {
				return err
			}

			result := app.newTransferSubmitter(wallet).Submit(cmd.Context(), req)
			if !result.OK() {
				return errors.New(result.ErrorMessage)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Transaction sent")
			_, _ = fmt.Fprintf(out, "signature: %s\n", result.Signature)
			_, err = fmt.Fprintln(out, domain.ExplorerURL(result.Signature, app.cfg.Network))
			return err
		},
	}

	cmd.Flags().StringVar(&req.Recipient, "to", "", "Recipient address")
	cmd.Flags().Float64Var(&req.Amount, "amount", 0, "Amount in SOL")

	return cmd
}
