package application

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/bnema/lazorkit-wallet-cli/internal/ports/mocks"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var connectedState = domain.ConnectionState{IsConnected: true, Address: "Addr123"}

func newTestSubmitter(t *testing.T) (*TransferSubmitter, *mocks.MockWalletSDK, *mocks.MockInstructionBuilder, *mocks.MockTransferHistoryRepository) {
	t.Helper()

	logger, _ := logtest.NewNullLogger()
	sdk := mocks.NewMockWalletSDK(t)
	builder := mocks.NewMockInstructionBuilder(t)
	history := mocks.NewMockTransferHistoryRepository(t)
	submitter := NewTransferSubmitter(sdk, builder, history, "devnet", fixedClock{now: testNow}, logger)
	submitter.newID = func() string { return "rec-1" }

	return submitter, sdk, builder, history
}

func TestSubmitRejectsMissingFieldsBeforeAnyCall(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		req  domain.TransferRequest
	}{
		{name: "empty recipient", req: domain.TransferRequest{Recipient: "", Amount: 1}},
		{name: "blank recipient", req: domain.TransferRequest{Recipient: "   ", Amount: 1}},
		{name: "missing amount", req: domain.TransferRequest{Recipient: "Addr999"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			submitter, _, _, _ := newTestSubmitter(t)

			result := submitter.Submit(context.Background(), tc.req)
			assert.Equal(t, domain.TransferResult{ErrorMessage: "please fill in all fields"}, result)
		})
	}
}

func TestSubmitSendsTransferAndReturnsSignature(t *testing.T) {
	t.Parallel()

	submitter, sdk, builder, history := newTestSubmitter(t)
	instruction := domain.Instruction{ProgramID: "11111111111111111111111111111111", Data: []byte{2, 0, 0, 0}}

	sdk.EXPECT().State().Return(connectedState).Once()
	builder.EXPECT().ParseAddress("Addr999").Return(domain.WalletAddress("Addr999"), nil).Once()
	builder.EXPECT().Transfer(domain.WalletAddress("Addr123"), domain.WalletAddress("Addr999"), domain.Lamports(500_000_000)).Return(instruction, nil).Once()
	sdk.EXPECT().SignAndSendTransaction(mock.Anything, domain.TransactionPayload{
		Instructions: []domain.Instruction{instruction},
		Options:      domain.TransactionOptions{ClusterSimulation: "devnet"},
	}).Return("SIG1", nil).Once()
	history.EXPECT().Append(mock.Anything, domain.TransferRecord{
		ID:          "rec-1",
		Signature:   "SIG1",
		From:        "Addr123",
		To:          "Addr999",
		Lamports:    500_000_000,
		Network:     "devnet",
		SubmittedAt: testNow,
	}).Return(nil).Once()

	result := submitter.Submit(context.Background(), domain.TransferRequest{Recipient: "Addr999", Amount: 0.5})
	assert.Equal(t, domain.TransferResult{Signature: "SIG1"}, result)
}

func TestSubmitRequiresConnectedWallet(t *testing.T) {
	t.Parallel()

	submitter, sdk, _, _ := newTestSubmitter(t)
	sdk.EXPECT().State().Return(domain.ConnectionState{}).Once()

	result := submitter.Submit(context.Background(), domain.TransferRequest{Recipient: "Addr999", Amount: 1})
	assert.Equal(t, "wallet is not connected", result.ErrorMessage)
	assert.Empty(t, result.Signature)
}

func TestSubmitPropagatesRecipientParseError(t *testing.T) {
	t.Parallel()

	submitter, sdk, builder, _ := newTestSubmitter(t)
	sdk.EXPECT().State().Return(connectedState).Once()
	builder.EXPECT().ParseAddress("not-an-address").Return(domain.WalletAddress(""), errors.New("invalid recipient address: decode: invalid base58 digit ('-')")).Once()

	result := submitter.Submit(context.Background(), domain.TransferRequest{Recipient: "not-an-address", Amount: 1})
	assert.Equal(t, "invalid recipient address: decode: invalid base58 digit ('-')", result.ErrorMessage)
}

func TestSubmitRejectsInvalidAmounts(t *testing.T) {
	t.Parallel()

	for name, amount := range map[string]float64{
		"negative":      -0.5,
		"nan":           math.NaN(),
		"infinite":      math.Inf(1),
		"below lamport": 1e-12,
	} {
		t.Run(name, func(t *testing.T) {
			submitter, sdk, builder, _ := newTestSubmitter(t)
			sdk.EXPECT().State().Return(connectedState).Once()
			builder.EXPECT().ParseAddress("Addr999").Return(domain.WalletAddress("Addr999"), nil).Once()

			result := submitter.Submit(context.Background(), domain.TransferRequest{Recipient: "Addr999", Amount: amount})
			assert.Contains(t, result.ErrorMessage, domain.ErrInvalidAmount.Error())
		})
	}
}

func TestSubmitMapsWalletFailure(t *testing.T) {
	t.Parallel()

	submitter, sdk, builder, _ := newTestSubmitter(t)
	sdk.EXPECT().State().Return(connectedState).Once()
	builder.EXPECT().ParseAddress("Addr999").Return(domain.WalletAddress("Addr999"), nil).Once()
	builder.EXPECT().Transfer(mock.Anything, mock.Anything, mock.Anything).Return(domain.Instruction{}, nil).Once()
	sdk.EXPECT().SignAndSendTransaction(mock.Anything, mock.Anything).Return("", errors.New("paymaster rejected transaction")).Once()

	result := submitter.Submit(context.Background(), domain.TransferRequest{Recipient: "Addr999", Amount: 1})
	assert.Equal(t, "transaction failed: paymaster rejected transaction", result.ErrorMessage)
}

func TestSubmitTreatsEmptySignatureAsFailure(t *testing.T) {
	t.Parallel()

	submitter, sdk, builder, _ := newTestSubmitter(t)
	sdk.EXPECT().State().Return(connectedState).Once()
	builder.EXPECT().ParseAddress("Addr999").Return(domain.WalletAddress("Addr999"), nil).Once()
	builder.EXPECT().Transfer(mock.Anything, mock.Anything, mock.Anything).Return(domain.Instruction{}, nil).Once()
	sdk.EXPECT().SignAndSendTransaction(mock.Anything, mock.Anything).Return("", nil).Once()

	result := submitter.Submit(context.Background(), domain.TransferRequest{Recipient: "Addr999", Amount: 1})
	assert.Contains(t, result.ErrorMessage, "transaction failed")
}

func TestSubmitMapsInstructionBuildFailure(t *testing.T) {
	t.Parallel()

	submitter, sdk, builder, _ := newTestSubmitter(t)
	sdk.EXPECT().State().Return(connectedState).Once()
	builder.EXPECT().ParseAddress("Addr999").Return(domain.WalletAddress("Addr999"), nil).Once()
	builder.EXPECT().Transfer(mock.Anything, mock.Anything, mock.Anything).Return(domain.Instruction{}, errors.New("bad key")).Once()

	result := submitter.Submit(context.Background(), domain.TransferRequest{Recipient: "Addr999", Amount: 1})
	assert.Equal(t, "build transfer instruction: bad key", result.ErrorMessage)
}

func TestSubmitKeepsSignatureWhenHistoryFails(t *testing.T) {
	t.Parallel()

	logger, hook := logtest.NewNullLogger()
	sdk := mocks.NewMockWalletSDK(t)
	builder := mocks.NewMockInstructionBuilder(t)
	history := mocks.NewMockTransferHistoryRepository(t)
	submitter := NewTransferSubmitter(sdk, builder, history, "devnet", fixedClock{now: testNow}, logger)

	sdk.EXPECT().State().Return(connectedState).Once()
	builder.EXPECT().ParseAddress("Addr999").Return(domain.WalletAddress("Addr999"), nil).Once()
	builder.EXPECT().Transfer(mock.Anything, mock.Anything, mock.Anything).Return(domain.Instruction{}, nil).Once()
	sdk.EXPECT().SignAndSendTransaction(mock.Anything, mock.Anything).Return("SIG1", nil).Once()
	history.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("read-only file system")).Once()

	result := submitter.Submit(context.Background(), domain.TransferRequest{Recipient: "Addr999", Amount: 1})
	assert.Equal(t, domain.TransferResult{Signature: "SIG1"}, result)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "record transfer history", hook.LastEntry().Message)
}

func TestSubmitWithoutHistory(t *testing.T) {
	t.Parallel()

	sdk := mocks.NewMockWalletSDK(t)
	builder := mocks.NewMockInstructionBuilder(t)
	submitter := NewTransferSubmitter(sdk, builder, nil, "devnet", nil, nil)

	sdk.EXPECT().State().Return(connectedState).Once()
	builder.EXPECT().ParseAddress("Addr999").Return(domain.WalletAddress("Addr999"), nil).Once()
	builder.EXPECT().Transfer(mock.Anything, mock.Anything, mock.Anything).Return(domain.Instruction{}, nil).Once()
	sdk.EXPECT().SignAndSendTransaction(mock.Anything, mock.Anything).Return("SIG1", nil).Once()

	result := submitter.Submit(context.Background(), domain.TransferRequest{Recipient: "Addr999", Amount: 1})
	assert.True(t, result.OK())
}

func TestValidateTransferRequest(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.Is(ValidateTransferRequest(domain.TransferRequest{Amount: 1}), domain.ErrFieldsRequired))
	assert.True(t, errors.Is(ValidateTransferRequest(domain.TransferRequest{Recipient: "Addr999", Amount: -1}), domain.ErrInvalidAmount))
	assert.NoError(t, ValidateTransferRequest(domain.TransferRequest{Recipient: "Addr999", Amount: 0.25}))
}
