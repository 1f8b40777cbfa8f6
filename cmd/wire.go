package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/lazorkit-wallet-cli/internal/adapters/clipboard"
	"github.com/bnema/lazorkit-wallet-cli/internal/adapters/portal"
	statusadapter "github.com/bnema/lazorkit-wallet-cli/internal/adapters/render/status"
	tomlrepo "github.com/bnema/lazorkit-wallet-cli/internal/adapters/repo/toml"
	solanaadapter "github.com/bnema/lazorkit-wallet-cli/internal/adapters/solana"
	"github.com/bnema/lazorkit-wallet-cli/internal/adapters/storage/local"
	"github.com/bnema/lazorkit-wallet-cli/internal/application"
	"github.com/bnema/lazorkit-wallet-cli/internal/config"
	"github.com/bnema/lazorkit-wallet-cli/internal/ports"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	dotEnvFile    = ".env"
	sessionSubdir = "session"
)

type app struct {
	cfg            config.Config
	logger         *log.Logger
	sessions       *application.SessionStore
	balances       *application.BalanceFetcher
	builder        ports.InstructionBuilder
	history        *tomlrepo.HistoryRepository
	clipboard      ports.Clipboard
	statusRenderer func(statusadapter.WalletStatus, statusadapter.RenderOptions) (string, error)
	httpClient     *http.Client
	now            func() time.Time
}

func wireApp() (*app, error) {
	if err := config.LoadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(cfg.LogLevel)

	var sessionRoot string
	if cfg.DataDir != "" {
		sessionRoot = filepath.Join(cfg.DataDir, sessionSubdir)
	}

	history, err := tomlrepo.NewHistoryRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire transfer history: %w", err)
	}

	chain := solanaadapter.NewClient(cfg.RPCURL, cfg.RPCRateLimit, logger)

	return &app{
		cfg:            cfg,
		logger:         logger,
		sessions:       application.NewSessionStore(local.NewStore(sessionRoot), logger),
		balances:       application.NewBalanceFetcher(chain, ports.SystemClock{}, logger),
		builder:        solanaadapter.InstructionBuilder{},
		history:        history,
		clipboard:      clipboard.System{},
		statusRenderer: statusadapter.Render,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		now:            time.Now,
	}, nil
}

// printCeremony shows ceremony links on out for the user to open.
func printCeremony(out io.Writer) portal.Opener {
	return func(ceremonyURL string) error {
		_, err := fmt.Fprintf(out, "Open this link to approve with your passkey:\n\n  %s\n\n", ceremonyURL)
		return err
	}
}

func (a *app) newWallet(open portal.Opener) (*portal.Wallet, error) {
	opts := portal.Options{
		PortalURL:  a.cfg.PortalURL,
		ListenAddr: a.cfg.CallbackListen,
		Timeout:    a.cfg.CeremonyTimeout,
		HTTPClient: a.httpClient,
		Logger:     a.logger,
		Open:       open,
	}
	if a.cfg.Paymaster != nil {
		opts.PaymasterURL = a.cfg.Paymaster.URL
		opts.PaymasterAPIKey = a.cfg.Paymaster.APIKey
	}

	return portal.NewWallet(opts)
}

// newSession binds a fresh wallet to the session slot.
func (a *app) newSession(open portal.Opener) (*portal.Wallet, *application.SessionReconciler, error) {
	wallet, err := a.newWallet(open)
	if err != nil {
		return nil, nil, fmt.Errorf("wire wallet: %w", err)
	}

	return wallet, application.NewSessionReconciler(wallet, a.sessions, a.logger), nil
}

func (a *app) newTransferSubmitter(wallet ports.WalletSDK) *application.TransferSubmitter {
	return application.NewTransferSubmitter(wallet, a.builder, a.history, a.cfg.Network, ports.SystemClock{}, a.logger)
}
