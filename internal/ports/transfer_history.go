package ports

import (
	"context"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
)

type TransferHistoryRepository interface {
	Append(ctx context.Context, record domain.TransferRecord) error
	List(ctx context.Context) ([]domain.TransferRecord, error)
}
