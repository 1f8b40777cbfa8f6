package solana

import (
	"fmt"
	"strings"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/bnema/lazorkit-wallet-cli/internal/ports"
	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
)

// InstructionBuilder builds system program instructions.
type InstructionBuilder struct{}

var _ ports.InstructionBuilder = InstructionBuilder{}

func (InstructionBuilder) ParseAddress(raw string) (domain.WalletAddress, error) {
	pubkey, err := solana.PublicKeyFromBase58(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid recipient address: %w", err)
	}

	return domain.WalletAddress(pubkey.String()), nil
}

func (InstructionBuilder) Transfer(from, to domain.WalletAddress, lamports domain.Lamports) (domain.Instruction, error) {
	fromKey, err := parsePublicKey(from)
	if err != nil {
		return domain.Instruction{}, fmt.Errorf("sender: %w", err)
	}
	toKey, err := parsePublicKey(to)
	if err != nil {
		return domain.Instruction{}, fmt.Errorf("recipient: %w", err)
	}

	instruction := system.NewTransferInstruction(uint64(lamports), fromKey, toKey).Build()
	data, err := instruction.Data()
	if err != nil {
		return domain.Instruction{}, fmt.Errorf("encode transfer instruction: %w", err)
	}

	metas := instruction.Accounts()
	accounts := make([]domain.AccountMeta, 0, len(metas))
	for _, meta := range metas {
		accounts = append(accounts, domain.AccountMeta{
			PublicKey:  domain.WalletAddress(meta.PublicKey.String()),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		})
	}

	return domain.Instruction{
		ProgramID: domain.WalletAddress(instruction.ProgramID().String()),
		Accounts:  accounts,
		Data:      data,
	}, nil
}
