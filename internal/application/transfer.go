package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/bnema/lazorkit-wallet-cli/internal/ports"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ValidateTransferRequest runs the checks that need neither a session nor the
// network.
func ValidateTransferRequest(req domain.TransferRequest) error {
	if err := requireFields(req); err != nil {
		return err
	}
	if _, err := domain.LamportsFromSOL(req.Amount); err != nil {
		return err
	}

	return nil
}

func requireFields(req domain.TransferRequest) error {
	if strings.TrimSpace(req.Recipient) == "" || req.Amount == 0 {
		return domain.ErrFieldsRequired
	}

	return nil
}

// TransferSubmitter turns a transfer form into a signed, relayed transaction.
type TransferSubmitter struct {
	sdk     ports.WalletSDK
	builder ports.InstructionBuilder
	history ports.TransferHistoryRepository
	network string
	clock   ports.Clock
	log     log.FieldLogger
	newID   func() string
}

// NewTransferSubmitter wires a submitter. history may be nil.
func NewTransferSubmitter(sdk ports.WalletSDK, builder ports.InstructionBuilder, history ports.TransferHistoryRepository, network string, clock ports.Clock, logger log.FieldLogger) *TransferSubmitter {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = log.StandardLogger()
	}

	return &TransferSubmitter{
		sdk:     sdk,
		builder: builder,
		history: history,
		network: network,
		clock:   clock,
		log:     logger,
		newID:   uuid.NewString,
	}
}

// Submit validates req, then asks the wallet to sign and relay a native
// transfer from the connected address. Every failure is reported through
// TransferResult.ErrorMessage.
func (s *TransferSubmitter) Submit(ctx context.Context, req domain.TransferRequest) domain.TransferResult {
	record, err := s.submit(ctx, req)
	if err != nil {
		s.log.WithError(err).WithField("recipient", req.Recipient).Info("transfer rejected")
		return domain.TransferResult{ErrorMessage: err.Error()}
	}

	if s.history != nil {
		if err := s.history.Append(ctx, record); err != nil {
			s.log.WithError(err).WithField("signature", record.Signature).Warn("record transfer history")
		}
	}

	return domain.TransferResult{Signature: record.Signature}
}

func (s *TransferSubmitter) submit(ctx context.Context, req domain.TransferRequest) (domain.TransferRecord, error) {
	if err := requireFields(req); err != nil {
		return domain.TransferRecord{}, err
	}

	state := s.sdk.State()
	if !state.IsConnected || state.Address.IsZero() {
		return domain.TransferRecord{}, domain.ErrNotConnected
	}

	recipient, err := s.builder.ParseAddress(strings.TrimSpace(req.Recipient))
	if err != nil {
		return domain.TransferRecord{}, err
	}

	lamports, err := domain.LamportsFromSOL(req.Amount)
	if err != nil {
		return domain.TransferRecord{}, err
	}

	instruction, err := s.builder.Transfer(state.Address, recipient, lamports)
	if err != nil {
		return domain.TransferRecord{}, fmt.Errorf("build transfer instruction: %w", err)
	}

	signature, err := s.sdk.SignAndSendTransaction(ctx, domain.TransactionPayload{
		Instructions: []domain.Instruction{instruction},
		Options:      domain.TransactionOptions{ClusterSimulation: s.network},
	})
	if err != nil {
		return domain.TransferRecord{}, fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}
	if signature == "" {
		return domain.TransferRecord{}, fmt.Errorf("%w: wallet returned no signature", domain.ErrTransactionFailed)
	}

	s.log.WithFields(log.Fields{
		"signature": signature,
		"lamports":  uint64(lamports),
	}).Info("transfer submitted")

	return domain.TransferRecord{
		ID:          s.newID(),
		Signature:   signature,
		From:        state.Address,
		To:          recipient,
		Lamports:    lamports,
		Network:     s.network,
		SubmittedAt: s.clock.Now(),
	}, nil
}
