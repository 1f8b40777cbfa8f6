package application

import (
	"context"
	"sync"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
)

// DashboardView is everything the wallet screen renders.
type DashboardView struct {
	Session      SessionView
	Balance      *domain.BalanceSnapshot
	LastTransfer *domain.TransferResult
	Network      string
}

// Dashboard composes the session, balance polling and transfers the way the
// wallet screen uses them. Polling follows the connected address.
type Dashboard struct {
	ctx       context.Context
	session   *SessionReconciler
	poller    *BalancePoller
	transfers *TransferSubmitter
	network   string

	mu           sync.Mutex
	lastTransfer *domain.TransferResult
}

// NewDashboard binds polling to session transitions. ctx bounds every
// polling loop the dashboard starts.
func NewDashboard(ctx context.Context, session *SessionReconciler, poller *BalancePoller, transfers *TransferSubmitter, network string) *Dashboard {
	d := &Dashboard{
		ctx:       ctx,
		session:   session,
		poller:    poller,
		transfers: transfers,
		network:   network,
	}
	session.OnTransition(d.handleTransition)

	return d
}

func (d *Dashboard) Connect(ctx context.Context) error {
	return d.session.Connect(ctx)
}

func (d *Dashboard) Disconnect(ctx context.Context) error {
	return d.session.Disconnect(ctx)
}

func (d *Dashboard) Send(ctx context.Context, req domain.TransferRequest) domain.TransferResult {
	result := d.transfers.Submit(ctx, req)

	d.mu.Lock()
	d.lastTransfer = &result
	d.mu.Unlock()

	return result
}

func (d *Dashboard) View() DashboardView {
	view := DashboardView{Session: d.session.View(), Network: d.network}
	if snapshot, ok := d.poller.Latest(); ok {
		view.Balance = &snapshot
	}

	d.mu.Lock()
	if d.lastTransfer != nil {
		result := *d.lastTransfer
		view.LastTransfer = &result
	}
	d.mu.Unlock()

	return view
}

// Close stops polling and detaches from the wallet.
func (d *Dashboard) Close() {
	d.poller.Stop()
	d.session.Close()
}

func (d *Dashboard) handleTransition(t SessionTransition) {
	switch t.To {
	case domain.PhaseConnected:
		d.poller.Start(d.ctx, t.Address)
	case domain.PhaseDisconnected, domain.PhaseErrored:
		d.poller.Stop()
		d.mu.Lock()
		d.lastTransfer = nil
		d.mu.Unlock()
	}
}
