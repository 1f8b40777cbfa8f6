package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lzw",
		Short: "Lazorkit smart wallet (lzw): passkey wallet for Solana in the terminal",
		Long: "lzw signs in to a Lazorkit smart wallet with a passkey (no seed phrase), shows the wallet " +
			"balance, and sends SOL with fees covered by the paymaster. Transactions are approved with " +
			"your device biometrics through the Lazorkit portal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newConnectCmd(app),
		newStatusCmd(app),
		newBalanceCmd(app),
		newSendCmd(app),
		newSessionCmd(app),
		newHistoryCmd(app),
		newWalletCmd(app),
	)

	return rootCmd
}
