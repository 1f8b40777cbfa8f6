package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newBalanceCmd(app *app) *cobra.Command {
	var (
		address string
		mint    string
		usdc    bool
	)

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Print one balance; RPC failures are errors here, unlike status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wallet, err := resolveAddress(cmd.Context(), app, address)
			if err != nil {
				return err
			}
			if usdc && mint == "" {
				mint = app.cfg.USDCMint
			}

			var (
				snapshot domain.BalanceSnapshot
				label    = "SOL"
			)
			fetch := func(ctx context.Context) ([]domain.BalanceSnapshot, error) {
				var fetchErr error
				if mint == "" {
					snapshot, fetchErr = app.balances.FetchNative(ctx, wallet)
				} else {
					snapshot, fetchErr = app.balances.FetchToken(ctx, wallet, mint)
				}
				return []domain.BalanceSnapshot{snapshot}, fetchErr
			}

			if mint != "" {
				label = mint
				if mint == app.cfg.USDCMint {
					label = usdcSymbol
				}
			}

			if err := runBalanceSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching balance...", tokenSymbols(app), fetch); err != nil {
				return err
			}

			if mint == "" {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.4f SOL\n", snapshot.Amount)
			} else {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.2f %s\n", snapshot.Amount, label)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Wallet address (default: saved session)")
	cmd.Flags().StringVar(&mint, "mint", "", "Token mint to read instead of SOL")
	cmd.Flags().BoolVar(&usdc, "usdc", false, "Read the configured USDC mint")

	return cmd
}
