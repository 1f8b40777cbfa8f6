// Package config resolves runtime settings from the environment, an optional
// .env file, and $HOME/.lazorkit/config.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// PortalURLKey is the passkey portal used for connect and sign ceremonies.
	PortalURLKey = "portal_url"
	// PaymasterURLKey enables fee sponsorship when set.
	PaymasterURLKey = "paymaster_url"
	// PaymasterAPIKeyKey is sent to the paymaster with every relay request.
	PaymasterAPIKeyKey = "paymaster_api_key"
	// NetworkKey is the cluster name used for simulation and explorer links.
	NetworkKey = "network"
	// RPCURLKey is the JSON-RPC endpoint used for balance queries.
	RPCURLKey = "rpc_url"
	// RPCRateLimitKey caps outgoing RPC requests per second.
	RPCRateLimitKey = "rpc_rate_limit"
	// USDCMintKey is the token mint shown next to the native balance.
	USDCMintKey = "usdc_mint"
	// DataDirKey holds the session slot, history and config file.
	DataDirKey = "data_dir"
	// LogLevelKey is a logrus level name.
	LogLevelKey = "log_level"
	// PollIntervalKey is the balance refresh period.
	PollIntervalKey = "poll_interval"
	// CallbackListenKey is the local address the ceremony callback binds to.
	CallbackListenKey = "callback_listen"
	// CeremonyTimeoutKey bounds how long a passkey ceremony may take.
	CeremonyTimeoutKey = "ceremony_timeout"

	DefaultPortalURL    = "https://portal.lazor.sh"
	DefaultNetwork      = "devnet"
	DefaultRPCURL       = "https://api.devnet.solana.com"
	DefaultUSDCMint     = "Gh9ZwEmdLJ8DscKNTkTqPbNwLNNBjuSzaG9Vp2KGtKJr"
	DefaultPollInterval = 10 * time.Second
	DefaultFaucetURL    = "https://faucet.solana.com"

	configName = "config"
	configType = "toml"
	dataDirRel = ".lazorkit"
)

var envNames = map[string][]string{
	PortalURLKey:       {"PORTAL_URL", "NEXT_PUBLIC_PORTAL_URL"},
	PaymasterURLKey:    {"PAYMASTER_URL", "NEXT_PUBLIC_PAYMASTER_URL"},
	PaymasterAPIKeyKey: {"PAYMASTER_API_KEY", "NEXT_PUBLIC_PAYMASTER_API_KEY"},
	NetworkKey:         {"LAZORKIT_NETWORK"},
	RPCURLKey:          {"LAZORKIT_RPC_URL"},
	RPCRateLimitKey:    {"LAZORKIT_RPC_RATE_LIMIT"},
	USDCMintKey:        {"LAZORKIT_USDC_MINT"},
	DataDirKey:         {"LAZORKIT_DATA_DIR"},
	LogLevelKey:        {"LAZORKIT_LOG_LEVEL"},
	PollIntervalKey:    {"LAZORKIT_POLL_INTERVAL"},
	CallbackListenKey:  {"LAZORKIT_CALLBACK_LISTEN"},
	CeremonyTimeoutKey: {"LAZORKIT_CEREMONY_TIMEOUT"},
}

// Paymaster is present only when a paymaster URL is configured.
type Paymaster struct {
	URL    string
	APIKey string
}

type Config struct {
	PortalURL       string
	Paymaster       *Paymaster
	Network         string
	RPCURL          string
	RPCRateLimit    int
	USDCMint        string
	DataDir         string
	LogLevel        log.Level
	PollInterval    time.Duration
	CallbackListen  string
	CeremonyTimeout time.Duration
}

// LoadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %q: %w", path, err)
	}

	return nil
}

// Load reads settings into v and returns the validated result. v is left
// populated so adapters can read their own keys from it.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)
	for key, names := range envNames {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return Config{}, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	dataDir := v.GetString(DataDirKey)
	if dataDir != "" {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(dataDir)

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	cfg := Config{
		PortalURL:       strings.TrimRight(strings.TrimSpace(v.GetString(PortalURLKey)), "/"),
		Network:         strings.TrimSpace(v.GetString(NetworkKey)),
		RPCURL:          strings.TrimSpace(v.GetString(RPCURLKey)),
		RPCRateLimit:    v.GetInt(RPCRateLimitKey),
		USDCMint:        strings.TrimSpace(v.GetString(USDCMintKey)),
		DataDir:         v.GetString(DataDirKey),
		PollInterval:    v.GetDuration(PollIntervalKey),
		CallbackListen:  v.GetString(CallbackListenKey),
		CeremonyTimeout: v.GetDuration(CeremonyTimeoutKey),
	}

	if paymasterURL := strings.TrimSpace(v.GetString(PaymasterURLKey)); paymasterURL != "" {
		cfg.Paymaster = &Paymaster{
			URL:    strings.TrimRight(paymasterURL, "/"),
			APIKey: v.GetString(PaymasterAPIKeyKey),
		}
	}

	level, err := log.ParseLevel(v.GetString(LogLevelKey))
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", LogLevelKey, err)
	}
	cfg.LogLevel = level

	if cfg.DataDir != "" {
		cfg.DataDir = filepath.Clean(cfg.DataDir)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(PortalURLKey, DefaultPortalURL)
	v.SetDefault(NetworkKey, DefaultNetwork)
	v.SetDefault(RPCURLKey, DefaultRPCURL)
	v.SetDefault(RPCRateLimitKey, 10)
	v.SetDefault(USDCMintKey, DefaultUSDCMint)
	v.SetDefault(LogLevelKey, "warn")
	v.SetDefault(PollIntervalKey, DefaultPollInterval)
	v.SetDefault(CallbackListenKey, "127.0.0.1:0")
	v.SetDefault(CeremonyTimeoutKey, 5*time.Minute)

	// An unresolvable home leaves the data dir empty, which disables durable
	// storage instead of failing startup.
	if homeDir, err := os.UserHomeDir(); err == nil {
		v.SetDefault(DataDirKey, filepath.Join(homeDir, dataDirRel))
	}
}

func (c Config) validate() error {
	var errs []error

	for key, raw := range map[string]string{PortalURLKey: c.PortalURL, RPCURLKey: c.RPCURL} {
		if err := validateHTTPURL(raw); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	if c.Paymaster != nil {
		if err := validateHTTPURL(c.Paymaster.URL); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", PaymasterURLKey, err))
		}
	}
	if c.Network == "" {
		errs = append(errs, fmt.Errorf("%s is required", NetworkKey))
	}
	if c.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", PollIntervalKey))
	}
	if c.CeremonyTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", CeremonyTimeoutKey))
	}
	if c.RPCRateLimit <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", RPCRateLimitKey))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return nil
}

func validateHTTPURL(raw string) error {
	if raw == "" {
		return errors.New("url is required")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("url must use http or https")
	}
	if parsed.Host == "" {
		return errors.New("url host is required")
	}

	return nil
}
