package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/bnema/lazorkit-wallet-cli/internal/ports"
	log "github.com/sirupsen/logrus"
)

// SessionTransition describes one applied phase change.
type SessionTransition struct {
	From    domain.SessionPhase
	To      domain.SessionPhase
	Event   domain.SessionEvent
	Address domain.WalletAddress
	Err     error
}

// SessionView is a point-in-time copy of the reconciler state.
type SessionView struct {
	Phase   domain.SessionPhase
	Address domain.WalletAddress
	Err     error
}

// SessionReconciler follows the wallet SDK's connection state through the
// session phase table and keeps the SessionStore in step with it. The store is
// written only after the SDK confirms an address.
type SessionReconciler struct {
	sdk   ports.WalletSDK
	store *SessionStore
	log   log.FieldLogger

	mu          sync.Mutex
	phase       domain.SessionPhase
	address     domain.WalletAddress
	lastErr     error
	listeners   []func(SessionTransition)
	unsubscribe func()
}

func NewSessionReconciler(sdk ports.WalletSDK, store *SessionStore, logger log.FieldLogger) *SessionReconciler {
	if logger == nil {
		logger = log.StandardLogger()
	}
	if store == nil {
		store = NewSessionStore(nil, logger)
	}

	r := &SessionReconciler{
		sdk:   sdk,
		store: store,
		log:   logger,
		phase: domain.PhaseDisconnected,
	}
	r.unsubscribe = sdk.Subscribe(r.Observe)

	return r
}

// OnTransition registers fn for every applied transition. Listeners run on
// the goroutine that caused the transition, outside the reconciler lock.
func (r *SessionReconciler) OnTransition(fn func(SessionTransition)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners = append(r.listeners, fn)
}

func (r *SessionReconciler) View() SessionView {
	r.mu.Lock()
	defer r.mu.Unlock()

	return SessionView{Phase: r.phase, Address: r.address, Err: r.lastErr}
}

// PriorSession reports the address persisted by an earlier run. It never
// restores the connection; the user always re-authenticates with a passkey.
func (r *SessionReconciler) PriorSession(ctx context.Context) (domain.WalletAddress, bool) {
	return r.store.Load(ctx)
}

// Connect starts the passkey ceremony. It is only valid while disconnected;
// an errored session is reset first.
func (r *SessionReconciler) Connect(ctx context.Context) error {
	transitions, listeners, err := r.requestConnect()
	if err != nil {
		return err
	}
	for _, t := range transitions {
		r.notify(t, listeners)
	}

	if err := r.sdk.Connect(ctx); err != nil {
		r.observe(ctx, domain.ConnectionState{Err: err})
		return fmt.Errorf("connect wallet: %w", err)
	}

	r.observe(ctx, r.sdk.State())
	if view := r.View(); view.Phase == domain.PhaseErrored {
		return fmt.Errorf("connect wallet: %w", view.Err)
	}

	return nil
}

// Disconnect clears the stored session and then tears the SDK connection
// down.
func (r *SessionReconciler) Disconnect(ctx context.Context) error {
	t, listeners, err := r.transition(domain.EventDisconnectRequested, "", nil)
	if err != nil {
		return err
	}

	if err := r.store.Clear(ctx); err != nil {
		r.log.WithError(err).Warn("clear wallet session")
	}
	r.notify(t, listeners)

	if err := r.sdk.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect wallet: %w", err)
	}

	return nil
}

// Observe feeds one SDK state report into the phase table. Reports that do
// not match a transition from the current phase are ignored.
func (r *SessionReconciler) Observe(state domain.ConnectionState) {
	r.observe(context.Background(), state)
}

// Close stops listening to the SDK.
func (r *SessionReconciler) Close() {
	r.mu.Lock()
	unsubscribe := r.unsubscribe
	r.unsubscribe = nil
	r.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (r *SessionReconciler) observe(ctx context.Context, state domain.ConnectionState) {
	var (
		event   domain.SessionEvent
		address domain.WalletAddress
	)

	switch {
	case state.IsConnected && !state.Address.IsZero():
		event, address = domain.EventAddressReported, state.Address
	case state.Err != nil:
		event = domain.EventErrorReported
	default:
		return
	}

	t, listeners, err := r.transition(event, address, state.Err)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			r.log.WithError(err).Debug("ignoring wallet state report")
			return
		}
		r.log.WithError(err).Warn("apply wallet state report")
		return
	}

	if t.To == domain.PhaseConnected {
		if err := r.store.Save(ctx, t.Address); err != nil {
			r.log.WithError(err).WithField("address", t.Address).Warn("persist wallet session")
		}
	}

	r.notify(t, listeners)
}

func (r *SessionReconciler) requestConnect() ([]SessionTransition, []func(SessionTransition), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var transitions []SessionTransition
	if r.phase == domain.PhaseErrored {
		t, err := r.applyLocked(domain.EventReset, "", nil)
		if err != nil {
			return nil, nil, err
		}
		transitions = append(transitions, t)
	}

	t, err := r.applyLocked(domain.EventConnectRequested, "", nil)
	if err != nil {
		return nil, nil, err
	}
	transitions = append(transitions, t)

	return transitions, r.listenersLocked(), nil
}

func (r *SessionReconciler) transition(event domain.SessionEvent, address domain.WalletAddress, cause error) (SessionTransition, []func(SessionTransition), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.applyLocked(event, address, cause)
	if err != nil {
		return SessionTransition{}, nil, err
	}

	return t, r.listenersLocked(), nil
}

func (r *SessionReconciler) applyLocked(event domain.SessionEvent, address domain.WalletAddress, cause error) (SessionTransition, error) {
	from := r.phase
	to, err := domain.NextPhase(from, event)
	if err != nil {
		return SessionTransition{}, err
	}

	r.phase = to
	switch event {
	case domain.EventAddressReported:
		r.address = address
		r.lastErr = nil
	case domain.EventErrorReported:
		r.lastErr = cause
	case domain.EventDisconnectRequested:
		r.address = ""
	case domain.EventConnectRequested, domain.EventReset:
		r.lastErr = nil
	}

	return SessionTransition{From: from, To: to, Event: event, Address: r.address, Err: r.lastErr}, nil
}

func (r *SessionReconciler) listenersLocked() []func(SessionTransition) {
	return append([]func(SessionTransition){}, r.listeners...)
}

func (r *SessionReconciler) notify(t SessionTransition, listeners []func(SessionTransition)) {
	r.log.WithFields(log.Fields{
		"from":  t.From,
		"phase": t.To,
		"event": t.Event,
	}).Debug("session transition")

	for _, fn := range listeners {
		fn(t)
	}
}
