package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/bnema/lazorkit-wallet-cli/internal/ports"
	log "github.com/sirupsen/logrus"
)

// FallbackPolicy picks the amount displayed when a balance fetch fails.
type FallbackPolicy func(address domain.WalletAddress, mint string, err error) float64

// ZeroFallback displays a failed fetch as an empty balance.
func ZeroFallback(domain.WalletAddress, string, error) float64 {
	return 0
}

type BalanceFetcher struct {
	chain    ports.ChainClient
	clock    ports.Clock
	log      log.FieldLogger
	fallback FallbackPolicy
}

type BalanceFetcherOption func(*BalanceFetcher)

func WithFallback(policy FallbackPolicy) BalanceFetcherOption {
	return func(f *BalanceFetcher) {
		if policy != nil {
			f.fallback = policy
		}
	}
}

func NewBalanceFetcher(chain ports.ChainClient, clock ports.Clock, logger log.FieldLogger, opts ...BalanceFetcherOption) *BalanceFetcher {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = log.StandardLogger()
	}

	f := &BalanceFetcher{chain: chain, clock: clock, log: logger, fallback: ZeroFallback}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// FetchNative returns the native balance in display units.
func (f *BalanceFetcher) FetchNative(ctx context.Context, address domain.WalletAddress) (domain.BalanceSnapshot, error) {
	if address.IsZero() {
		return domain.BalanceSnapshot{}, fmt.Errorf("fetch native balance: %w", domain.ErrInvalidAddress)
	}

	lamports, err := f.chain.GetBalance(ctx, address)
	if err != nil {
		return domain.BalanceSnapshot{}, fmt.Errorf("fetch native balance: %w", err)
	}

	return domain.BalanceSnapshot{
		Address:   address,
		Amount:    lamports.SOL(),
		FetchedAt: f.clock.Now(),
	}, nil
}

// FetchToken returns the balance of the first token account owner holds for
// mint. Owners without an account for mint have a zero balance.
func (f *BalanceFetcher) FetchToken(ctx context.Context, owner domain.WalletAddress, mint string) (domain.BalanceSnapshot, error) {
	if owner.IsZero() {
		return domain.BalanceSnapshot{}, fmt.Errorf("fetch token balance: %w", domain.ErrInvalidAddress)
	}
	if mint == "" {
		return domain.BalanceSnapshot{}, errors.New("fetch token balance: mint is required")
	}

	accounts, err := f.chain.GetTokenAccountsByOwner(ctx, owner, mint)
	if err != nil {
		return domain.BalanceSnapshot{}, fmt.Errorf("fetch token balance: %w", err)
	}

	snapshot := domain.BalanceSnapshot{Address: owner, Mint: mint, FetchedAt: f.clock.Now()}
	if len(accounts) == 0 {
		return snapshot, nil
	}

	amount, err := accounts[0].DisplayAmount()
	if err != nil {
		return domain.BalanceSnapshot{}, fmt.Errorf("fetch token balance: %w", err)
	}
	snapshot.Amount = amount

	return snapshot, nil
}

// NativeBalance is FetchNative for display. Failures resolve through the
// fallback policy and are never returned.
func (f *BalanceFetcher) NativeBalance(ctx context.Context, address domain.WalletAddress) domain.BalanceSnapshot {
	snapshot, err := f.FetchNative(ctx, address)
	if err != nil {
		return f.fallbackSnapshot(address, "", err)
	}

	return snapshot
}

// TokenBalance is FetchToken for display, with the same fallback rules as
// NativeBalance.
func (f *BalanceFetcher) TokenBalance(ctx context.Context, owner domain.WalletAddress, mint string) domain.BalanceSnapshot {
	snapshot, err := f.FetchToken(ctx, owner, mint)
	if err != nil {
		return f.fallbackSnapshot(owner, mint, err)
	}

	return snapshot
}

func (f *BalanceFetcher) fallbackSnapshot(address domain.WalletAddress, mint string, err error) domain.BalanceSnapshot {
	entry := f.log.WithError(err).WithField("address", address)
	if mint != "" {
		entry = entry.WithField("mint", mint)
	}
	entry.Warn("balance fetch failed, showing fallback")

	return domain.BalanceSnapshot{
		Address:   address,
		Mint:      mint,
		Amount:    f.fallback(address, mint, err),
		FetchedAt: f.clock.Now(),
		Fallback:  true,
	}
}
