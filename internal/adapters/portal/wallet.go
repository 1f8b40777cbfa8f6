package portal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/bnema/lazorkit-wallet-cli/internal/ports"
	log "github.com/sirupsen/logrus"
)

const defaultCeremonyTimeout = 2 * time.Minute

// Opener shows a ceremony URL to the user, usually by printing it.
type Opener func(ceremonyURL string) error

type Options struct {
	PortalURL       string
	PaymasterURL    string
	PaymasterAPIKey string
	ListenAddr      string
	Timeout         time.Duration
	HTTPClient      *http.Client
	Open            Opener
	Logger          log.FieldLogger
}

// Wallet is a passkey smart wallet driven through the hosted portal. The
// passkey never leaves the browser: the CLI only sees the smart-wallet
// address, the credential id and per-transaction assertions.
type Wallet struct {
	opts  Options
	relay *Relay
	log   log.FieldLogger

	mu           sync.Mutex
	state        domain.ConnectionState
	credentialID string
	subscribers  map[int]func(domain.ConnectionState)
	nextID       int
}

var _ ports.WalletSDK = (*Wallet)(nil)

func NewWallet(opts Options) (*Wallet, error) {
	if opts.PortalURL == "" {
		return nil, errors.New("portal url is required")
	}
	if opts.Open == nil {
		return nil, errors.New("ceremony opener is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultCeremonyTimeout
	}
	if opts.Logger == nil {
		opts.Logger = log.StandardLogger()
	}

	return &Wallet{
		opts:        opts,
		relay:       NewRelay(opts.PortalURL, opts.PaymasterURL, opts.PaymasterAPIKey, opts.HTTPClient),
		log:         opts.Logger.WithField("component", "portal"),
		subscribers: map[int]func(domain.ConnectionState){},
	}, nil
}

func (w *Wallet) Connect(ctx context.Context) error {
	w.publish(domain.ConnectionState{IsLoading: true}, "")

	values, err := w.ceremony(ctx, CeremonyConnect, nil)
	if err == nil {
		err = requireValues(values, "smart_wallet", "credential_id")
	}
	if err != nil {
		w.publish(domain.ConnectionState{Err: err}, "")
		return err
	}

	address := domain.WalletAddress(values.Get("smart_wallet"))
	w.publish(domain.ConnectionState{IsConnected: true, Address: address}, values.Get("credential_id"))
	w.log.WithField("address", address).Info("smart wallet connected")

	return nil
}

func (w *Wallet) Disconnect(ctx context.Context) error {
	w.publish(domain.ConnectionState{}, "")
	return nil
}

func (w *Wallet) SignAndSendTransaction(ctx context.Context, payload domain.TransactionPayload) (string, error) {
	w.mu.Lock()
	state, credentialID := w.state, w.credentialID
	w.mu.Unlock()

	if !state.IsConnected || state.Address.IsZero() {
		return "", domain.ErrNotConnected
	}
	if len(payload.Instructions) == 0 {
		return "", errors.New("transaction has no instructions")
	}

	instructions := encodeInstructions(payload.Instructions)
	options := relayOptions{ClusterSimulation: payload.Options.ClusterSimulation}
	challenge, err := challengeFor(instructions, options)
	if err != nil {
		return "", fmt.Errorf("build sign challenge: %w", err)
	}

	values, err := w.ceremony(ctx, CeremonySign, url.Values{
		"smart_wallet":  {state.Address.String()},
		"credential_id": {credentialID},
		"challenge":     {challenge},
	})
	if err == nil {
		err = requireValues(values, "assertion")
	}
	if err != nil {
		return "", err
	}

	signature, err := w.relay.submit(ctx, relayRequest{
		SmartWallet:        state.Address.String(),
		CredentialID:       credentialID,
		Assertion:          values.Get("assertion"),
		Instructions:       instructions,
		TransactionOptions: options,
	})
	if err != nil {
		return "", err
	}

	w.log.WithField("signature", signature).Info("transaction relayed")
	return signature, nil
}

func (w *Wallet) State() domain.ConnectionState {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

func (w *Wallet) Subscribe(fn func(domain.ConnectionState)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	w.subscribers[id] = fn

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subscribers, id)
	}
}

func (w *Wallet) ceremony(ctx context.Context, kind CeremonyKind, extra url.Values) (url.Values, error) {
	state, err := NewState()
	if err != nil {
		return nil, fmt.Errorf("generate ceremony state: %w", err)
	}

	server, err := StartCallbackServer(w.opts.ListenAddr, state, w.log)
	if err != nil {
		return nil, err
	}
	defer func() { _ = server.Close() }()

	ceremonyURL, err := BuildCeremonyURL(w.opts.PortalURL, kind, server.RedirectURI(), state, extra)
	if err != nil {
		return nil, err
	}
	if err := w.opts.Open(ceremonyURL); err != nil {
		return nil, fmt.Errorf("open %s ceremony: %w", kind, err)
	}

	w.log.WithField("ceremony", kind).Debug("waiting for passkey approval")
	return server.Wait(ctx, w.opts.Timeout)
}

func (w *Wallet) publish(state domain.ConnectionState, credentialID string) {
	w.mu.Lock()
	w.state = state
	w.credentialID = credentialID
	subscribers := make([]func(domain.ConnectionState), 0, len(w.subscribers))
	for _, fn := range w.subscribers {
		subscribers = append(subscribers, fn)
	}
	w.mu.Unlock()

	for _, fn := range subscribers {
		fn(state)
	}
}

func requireValues(values url.Values, keys ...string) error {
	for _, key := range keys {
		if values.Get(key) == "" {
			return fmt.Errorf("portal callback missing %s", key)
		}
	}
	return nil
}
