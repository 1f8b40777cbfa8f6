package status

import (
	"testing"
	"time"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = domain.WalletAddress("Gh9ZwEmdLJ8DscKNTkTqPbNwLNNBjuSzaG9Vp2KGtKJr")

func TestRenderConnectedWallet(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render(WalletStatus{
		Address:   testAddress,
		Connected: true,
		Network:   "devnet",
		Native:    &domain.BalanceSnapshot{Address: testAddress, Amount: 1.5, FetchedAt: now.Add(-5 * time.Second)},
	}, RenderOptions{Now: now, FaucetURL: "https://faucet.solana.com"})

	require.NoError(t, err)
	assert.Contains(t, output, "Lazorkit Smart Wallet")
	assert.Contains(t, output, testAddress.Short())
	assert.NotContains(t, output, testAddress.String())
	assert.Contains(t, output, "Active")
	assert.Contains(t, output, "network: devnet")
	assert.Contains(t, output, "1.5000 SOL")
	assert.Contains(t, output, "(5s ago)")
	assert.NotContains(t, output, "faucet")
}

func TestRenderFullAddressAndToken(t *testing.T) {
	output, err := Render(WalletStatus{
		Address:     testAddress,
		Network:     "devnet",
		Native:      &domain.BalanceSnapshot{Amount: 0.25},
		Token:       &domain.BalanceSnapshot{Amount: 12.5},
		TokenSymbol: "USDC",
	}, RenderOptions{FullAddress: true})

	require.NoError(t, err)
	assert.Contains(t, output, testAddress.String())
	assert.NotContains(t, output, "Active")
	assert.Contains(t, output, "0.2500 SOL")
	assert.Contains(t, output, "USDC: 12.50 USDC")
}

func TestRenderFallbackBalanceIsMarked(t *testing.T) {
	output, err := Render(WalletStatus{
		Address: testAddress,
		Network: "devnet",
		Native:  &domain.BalanceSnapshot{Amount: 0, Fallback: true},
	}, RenderOptions{FaucetURL: "https://faucet.solana.com"})

	require.NoError(t, err)
	assert.Contains(t, output, "0.0000 SOL")
	assert.Contains(t, output, "[unavailable]")
	assert.NotContains(t, output, "faucet.solana.com")
}

func TestRenderEmptyBalanceShowsFaucetHint(t *testing.T) {
	output, err := Render(WalletStatus{
		Address: testAddress,
		Network: "devnet",
		Native:  &domain.BalanceSnapshot{Amount: 0},
	}, RenderOptions{FaucetURL: "https://faucet.solana.com"})

	require.NoError(t, err)
	assert.Contains(t, output, "Need devnet SOL? Visit https://faucet.solana.com")
}

func TestRenderTransferResults(t *testing.T) {
	output, err := Render(WalletStatus{
		Address:      testAddress,
		Network:      "devnet",
		LastTransfer: &domain.TransferResult{Signature: "5xSig"},
	}, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "Transaction sent")
	assert.Contains(t, output, "https://explorer.solana.com/tx/5xSig?cluster=devnet")
	assert.Contains(t, output, "loading...")

	output, err = Render(WalletStatus{
		Address:      testAddress,
		LastTransfer: &domain.TransferResult{ErrorMessage: "transaction failed: insufficient funds"},
	}, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "transaction failed: insufficient funds")
	assert.NotContains(t, output, "explorer")
}

func TestRenderNoWallet(t *testing.T) {
	output := View(WalletStatus{}, RenderOptions{})

	assert.Contains(t, output, "No wallet connected")
	assert.Contains(t, output, "lzw connect")
}
