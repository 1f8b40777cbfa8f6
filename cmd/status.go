package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	statusadapter "github.com/bnema/lazorkit-wallet-cli/internal/adapters/render/status"
	"github.com/bnema/lazorkit-wallet-cli/internal/application"
	"github.com/bnema/lazorkit-wallet-cli/internal/config"
	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/spf13/cobra"
)

const usdcSymbol = "USDC"

var errNoSavedSession = fmt.Errorf("%w; run `lzw connect` or pass --address", domain.ErrSessionNotPersisted)

type walletStatusJSON struct {
	Address         string    `json:"address"`
	Network         string    `json:"network"`
	SOL             float64   `json:"sol"`
	SOLUnavailable  bool      `json:"sol_unavailable,omitempty"`
	USDC            *float64  `json:"usdc,omitempty"`
	USDCUnavailable bool      `json:"usdc_unavailable,omitempty"`
	FetchedAt       time.Time `json:"fetched_at"`
	ExplorerCluster string    `json:"explorer_cluster"`
}

func newStatusCmd(app *app) *cobra.Command {
	var (
		address     string
		asJSON      bool
		watch       bool
		fullAddress bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the smart wallet card with SOL and USDC balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wallet, err := resolveAddress(cmd.Context(), app, address)
			if err != nil {
				return err
			}

			if watch {
				return watchBalance(cmd, app, wallet)
			}

			if asJSON {
				return writeStatusJSON(cmd, app, loadWalletStatus(cmd.Context(), app, wallet))
			}

			var status statusadapter.WalletStatus
			fetch := func(ctx context.Context) ([]domain.BalanceSnapshot, error) {
				status = loadWalletStatus(ctx, app, wallet)
				snapshots := []domain.BalanceSnapshot{*status.Native}
				if status.Token != nil {
					snapshots = append(snapshots, *status.Token)
				}
				return snapshots, nil
			}
			if err := runBalanceSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching wallet balance...", tokenSymbols(app), fetch); err != nil {
				return err
			}

			rendered, err := app.statusRenderer(status, statusadapter.RenderOptions{
				Now:         app.now(),
				FaucetURL:   faucetURL(app.cfg.Network),
				FullAddress: fullAddress,
			})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Wallet address (default: saved session)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&watch, "watch", false, "Keep refreshing the SOL balance until interrupted")
	cmd.Flags().BoolVar(&fullAddress, "full", false, "Show the full address instead of the shortened form")

	return cmd
}

// resolveAddress prefers an explicit address and falls back to the saved
// session. An explicit address must parse.
func resolveAddress(ctx context.Context, app *app, raw string) (domain.WalletAddress, error) {
	if strings.TrimSpace(raw) != "" {
		address, err := app.builder.ParseAddress(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrInvalidAddress, err)
		}
		return address, nil
	}

	address, ok := app.sessions.Load(ctx)
	if !ok {
		return "", errNoSavedSession
	}

	return address, nil
}

func tokenSymbols(app *app) map[string]string {
	if app.cfg.USDCMint == "" {
		return nil
	}

	return map[string]string{app.cfg.USDCMint: usdcSymbol}
}

func loadWalletStatus(ctx context.Context, app *app, address domain.WalletAddress) statusadapter.WalletStatus {
	native := app.balances.NativeBalance(ctx, address)
	status := statusadapter.WalletStatus{
		Address: address,
		Network: app.cfg.Network,
		Native:  &native,
	}

	if app.cfg.USDCMint != "" {
		token := app.balances.TokenBalance(ctx, address, app.cfg.USDCMint)
		status.Token = &token
		status.TokenSymbol = usdcSymbol
	}

	return status
}

func writeStatusJSON(cmd *cobra.Command, app *app, status statusadapter.WalletStatus) error {
	out := walletStatusJSON{
		Address:         status.Address.String(),
		Network:         status.Network,
		ExplorerCluster: app.cfg.Network,
	}
	if status.Native != nil {
		out.SOL = status.Native.Amount
		out.SOLUnavailable = status.Native.Fallback
		out.FetchedAt = status.Native.FetchedAt.UTC()
	}
	if status.Token != nil {
		amount := status.Token.Amount
		out.USDC = &amount
		out.USDCUnavailable = status.Token.Fallback
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func watchBalance(cmd *cobra.Command, app *app, address domain.WalletAddress) error {
	out := cmd.OutOrStdout()
	poller := application.NewBalancePoller(app.balances, app.cfg.PollInterval, app.logger)
	poller.OnUpdate(func(snapshot domain.BalanceSnapshot) {
		line := fmt.Sprintf("%s  %s  %.4f SOL", snapshot.FetchedAt.Format(time.TimeOnly), address.Short(), snapshot.Amount)
		if snapshot.Fallback {
			line += "  [unavailable]"
		}
		_, _ = fmt.Fprintln(out, line)
	})

	poller.Start(cmd.Context(), address)
	defer poller.Stop()

	<-cmd.Context().Done()
	return nil
}

func faucetURL(network string) string {
	if network == "devnet" || network == "testnet" {
		return config.DefaultFaucetURL
	}
	return ""
}
