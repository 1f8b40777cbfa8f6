package application

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	log "github.com/sirupsen/logrus"
)

// NativeBalanceReader is the display path of BalanceFetcher.
type NativeBalanceReader interface {
	NativeBalance(ctx context.Context, address domain.WalletAddress) domain.BalanceSnapshot
}

// BalancePoller keeps one address's balance fresh. At most one polling loop
// runs per poller. Fetches run one at a time; ticks that elapse while a fetch
// is in flight are dropped rather than queued.
type BalancePoller struct {
	source   NativeBalanceReader
	interval time.Duration
	log      log.FieldLogger

	// lifecycle serializes Start and Stop so a restart never leaves two loops.
	lifecycle sync.Mutex

	mu         sync.Mutex
	cancel     context.CancelFunc
	done       chan struct{}
	generation uint64
	address    domain.WalletAddress
	latest     domain.BalanceSnapshot
	hasLatest  bool
	listeners  []func(domain.BalanceSnapshot)
}

func NewBalancePoller(source NativeBalanceReader, interval time.Duration, logger log.FieldLogger) *BalancePoller {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = log.StandardLogger()
	}

	return &BalancePoller{source: source, interval: interval, log: logger}
}

// OnUpdate registers fn for every accepted snapshot. fn runs on the polling
// goroutine and must not call Start or Stop.
func (p *BalancePoller) OnUpdate(fn func(domain.BalanceSnapshot)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.listeners = append(p.listeners, fn)
}

// Start cancels any running loop, fetches address immediately and then once
// per interval. An empty address only stops polling.
func (p *BalancePoller) Start(ctx context.Context, address domain.WalletAddress) {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	p.stopLocked()
	if address.IsZero() {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	p.mu.Lock()
	p.generation++
	generation := p.generation
	p.cancel = cancel
	p.done = done
	p.address = address
	p.mu.Unlock()

	p.log.WithField("address", address).Debug("balance polling started")
	go p.run(loopCtx, generation, address, done)
}

// Stop cancels the running loop and waits for it to exit. No fetch starts
// after Stop returns.
func (p *BalancePoller) Stop() {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	p.stopLocked()
}

// Latest returns the most recent snapshot for the active address.
func (p *BalancePoller) Latest() (domain.BalanceSnapshot, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.latest, p.hasLatest
}

func (p *BalancePoller) Address() domain.WalletAddress {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.address
}

func (p *BalancePoller) stopLocked() {
	p.mu.Lock()
	cancel, done, address := p.cancel, p.done, p.address
	p.cancel = nil
	p.done = nil
	p.address = ""
	p.generation++
	p.latest = domain.BalanceSnapshot{}
	p.hasLatest = false
	p.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
	p.log.WithField("address", address).Debug("balance polling stopped")
}

func (p *BalancePoller) run(ctx context.Context, generation uint64, address domain.WalletAddress, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.fetch(ctx, generation, address)

		// Drop a tick that fired during a slow fetch.
		select {
		case <-ticker.C:
		default:
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (p *BalancePoller) fetch(ctx context.Context, generation uint64, address domain.WalletAddress) {
	if ctx.Err() != nil {
		return
	}

	snapshot := p.source.NativeBalance(ctx, address)
	if ctx.Err() != nil {
		return
	}

	p.mu.Lock()
	if generation != p.generation {
		p.mu.Unlock()
		return
	}
	p.latest = snapshot
	p.hasLatest = true
	listeners := append([]func(domain.BalanceSnapshot){}, p.listeners...)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
