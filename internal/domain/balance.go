package domain

import (
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// Lamports is the chain's native base unit.
type Lamports uint64

const LamportsPerSOL Lamports = 1_000_000_000

var (
	lamportsPerSOL = decimal.NewFromInt(int64(LamportsPerSOL))
	maxLamports    = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)
)

// LamportsFromSOL converts a display amount to base units, rounding half away
// from zero to the nearest lamport. Amounts that are not finite, not
// positive, overflow uint64, or round to zero are rejected.
func LamportsFromSOL(amount float64) (Lamports, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: not a finite number", ErrInvalidAmount)
	}
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	base := decimal.NewFromFloat(amount).Mul(lamportsPerSOL).Round(0)
	if base.Sign() <= 0 {
		return 0, fmt.Errorf("%w: amount is below one lamport", ErrInvalidAmount)
	}
	if base.GreaterThan(maxLamports) {
		return 0, fmt.Errorf("%w: amount is too large", ErrInvalidAmount)
	}

	return Lamports(base.BigInt().Uint64()), nil
}

func (l Lamports) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(l)), 0).Div(lamportsPerSOL)
}

// SOL converts base units to display units.
func (l Lamports) SOL() float64 {
	value, _ := l.Decimal().Float64()
	return value
}

// BalanceSnapshot is one observed balance. Fallback marks values that were
// substituted after a failed fetch and must not be treated as the real
// balance.
type BalanceSnapshot struct {
	Address   WalletAddress
	Mint      string
	Amount    float64
	FetchedAt time.Time
	Fallback  bool
}

// TokenAccount is the subset of a parsed token account the client reads.
type TokenAccount struct {
	Address  WalletAddress
	Mint     string
	Amount   string
	Decimals uint8
	UIAmount *float64
}

// DisplayAmount prefers the amount already scaled by the RPC node and falls
// back to scaling the raw integer amount by the mint decimals.
func (t TokenAccount) DisplayAmount() (float64, error) {
	if t.UIAmount != nil {
		return *t.UIAmount, nil
	}
	if t.Amount == "" {
		return 0, nil
	}

	raw, err := decimal.NewFromString(t.Amount)
	if err != nil {
		return 0, fmt.Errorf("parse token amount %q: %w", t.Amount, err)
	}

	value, _ := raw.Shift(-int32(t.Decimals)).Float64()
	return value, nil
}
