package ports

import (
	"context"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
)

type ChainClient interface {
	GetBalance(ctx context.Context, address domain.WalletAddress) (domain.Lamports, error)
	GetTokenAccountsByOwner(ctx context.Context, owner domain.WalletAddress, mint string) ([]domain.TokenAccount, error)
}

type InstructionBuilder interface {
	ParseAddress(raw string) (domain.WalletAddress, error)
	Transfer(from, to domain.WalletAddress, lamports domain.Lamports) (domain.Instruction, error)
}
