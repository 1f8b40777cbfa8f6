package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/mr-tron/base58"
)

const maxRelayResponseBytes = 1 << 20

type relayAccount struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"isSigner"`
	IsWritable bool   `json:"isWritable"`
}

type relayInstruction struct {
	ProgramID string         `json:"programId"`
	Keys      []relayAccount `json:"keys"`
	Data      string         `json:"data"`
}

type relayOptions struct {
	ClusterSimulation string `json:"clusterSimulation,omitempty"`
}

type relayRequest struct {
	SmartWallet        string             `json:"smartWallet"`
	CredentialID       string             `json:"credentialId"`
	Assertion          string             `json:"assertion"`
	Instructions       []relayInstruction `json:"instructions"`
	TransactionOptions relayOptions       `json:"transactionOptions"`
}

type relayResponse struct {
	Signature string `json:"signature"`
	Error     string `json:"error"`
}

// Relay submits signed smart-wallet transactions to the fee sponsor.
type Relay struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewRelay posts to the paymaster when paymasterURL is set and to the
// portal's own relay otherwise.
func NewRelay(portalURL, paymasterURL, apiKey string, client *http.Client) *Relay {
	if client == nil {
		client = http.DefaultClient
	}

	endpoint := strings.TrimRight(portalURL, "/") + "/api/sign-and-send"
	if paymasterURL != "" {
		endpoint = strings.TrimRight(paymasterURL, "/") + "/sign-and-send"
	} else {
		apiKey = ""
	}

	return &Relay{endpoint: endpoint, apiKey: apiKey, client: client}
}

func (r *Relay) Endpoint() string {
	return r.endpoint
}

func (r *Relay) submit(ctx context.Context, req relayRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode relay request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create relay request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		httpReq.Header.Set("x-api-key", r.apiKey)
	}

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("send relay request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var decoded relayResponse
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxRelayResponseBytes)).Decode(&decoded)

	if decoded.Error != "" {
		return "", errors.New(decoded.Error)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("relay returned status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decode relay response: %w", decodeErr)
	}
	if decoded.Signature == "" {
		return "", errors.New("relay response missing signature")
	}

	return decoded.Signature, nil
}

func encodeInstructions(instructions []domain.Instruction) []relayInstruction {
	out := make([]relayInstruction, 0, len(instructions))
	for _, ix := range instructions {
		keys := make([]relayAccount, 0, len(ix.Accounts))
		for _, meta := range ix.Accounts {
			keys = append(keys, relayAccount{
				Pubkey:     meta.PublicKey.String(),
				IsSigner:   meta.IsSigner,
				IsWritable: meta.IsWritable,
			})
		}
		out = append(out, relayInstruction{
			ProgramID: ix.ProgramID.String(),
			Keys:      keys,
			Data:      base58.Encode(ix.Data),
		})
	}

	return out
}
