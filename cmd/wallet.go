package cmd

import (
	"io"

	"github.com/bnema/lazorkit-wallet-cli/internal/adapters/render/dashboard"
	"github.com/bnema/lazorkit-wallet-cli/internal/application"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newWalletCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wallet",
		Short: "Open the interactive wallet: connect, watch the balance and send SOL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// The screen owns the terminal.
			if !app.logger.IsLevelEnabled(log.DebugLevel) {
				app.logger.SetOutput(io.Discard)
			}

			prompt := &dashboard.Prompt{}
			wallet, session, err := app.newSession(prompt.Open)
			if err != nil {
				return err
			}

			poller := application.NewBalancePoller(app.balances, app.cfg.PollInterval, app.logger)
			board := application.NewDashboard(ctx, session, poller, app.newTransferSubmitter(wallet), app.cfg.Network)
			defer board.Close()

			model := dashboard.New(ctx, board, app.clipboard, dashboard.Options{
				FaucetURL: faucetURL(app.cfg.Network),
				Prompt:    prompt,
				Now:       app.now,
			})

			return dashboard.Run(ctx, model)
		},
	}
}
