package ports

import (
	"context"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
)

// WalletSDK is the passkey smart-wallet provider. It owns the passkey
// ceremony, smart-wallet derivation, signing and fee-sponsored relay.
type WalletSDK interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	SignAndSendTransaction(ctx context.Context, payload domain.TransactionPayload) (string, error)
	State() domain.ConnectionState
	// Subscribe registers fn for every state change and returns a function
	// that removes it.
	Subscribe(fn func(domain.ConnectionState)) func()
}
