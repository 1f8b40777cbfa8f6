package solana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/bnema/lazorkit-wallet-cli/internal/ports"
	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"
)

const (
	defaultRequestsPerSecond = 10
	breakerName              = "solana-rpc"
	breakerTripAfter         = 5
	breakerOpenFor           = 30 * time.Second
)

// Client reads balances from a JSON-RPC node. Requests are rate limited and
// pass through a circuit breaker that fails fast once the node looks down.
type Client struct {
	rpc        *rpc.Client
	limiter    ratelimit.Limiter
	breaker    *gobreaker.CircuitBreaker
	commitment rpc.CommitmentType
}

var _ ports.ChainClient = (*Client)(nil)

func NewClient(endpoint string, requestsPerSecond int, logger log.FieldLogger) *Client {
	if requestsPerSecond <= 0 {
		requestsPerSecond = defaultRequestsPerSecond
	}
	if logger == nil {
		logger = log.StandardLogger()
	}

	return &Client{
		rpc:        rpc.New(endpoint),
		limiter:    ratelimit.New(requestsPerSecond),
		breaker:    newCircuitBreaker(logger),
		commitment: rpc.CommitmentConfirmed,
	}
}

func newCircuitBreaker(logger log.FieldLogger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    breakerName,
		Timeout: breakerOpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerTripAfter
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			entry := logger.WithField("breaker", name)
			switch {
			case to == gobreaker.StateOpen:
				entry.Warn("rpc endpoint seems down, stop sending requests")
			case from == gobreaker.StateOpen && to == gobreaker.StateHalfOpen:
				entry.Info("checking rpc endpoint status")
			case from == gobreaker.StateHalfOpen && to == gobreaker.StateClosed:
				entry.Info("rpc endpoint seems ok, resume sending requests")
			}
		},
	})
}

func (c *Client) GetBalance(ctx context.Context, address domain.WalletAddress) (domain.Lamports, error) {
	pubkey, err := parsePublicKey(address)
	if err != nil {
		return 0, err
	}

	out, err := c.call(ctx, func() (interface{}, error) {
		return c.rpc.GetBalance(ctx, pubkey, c.commitment)
	})
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}

	result, ok := out.(*rpc.GetBalanceResult)
	if !ok || result == nil {
		return 0, errors.New("get balance: empty result")
	}

	return domain.Lamports(result.Value), nil
}

func (c *Client) GetTokenAccountsByOwner(ctx context.Context, owner domain.WalletAddress, mint string) ([]domain.TokenAccount, error) {
	ownerKey, err := parsePublicKey(owner)
	if err != nil {
		return nil, err
	}
	mintKey, err := parsePublicKey(domain.WalletAddress(mint))
	if err != nil {
		return nil, fmt.Errorf("mint: %w", err)
	}

	out, err := c.call(ctx, func() (interface{}, error) {
		return c.rpc.GetTokenAccountsByOwner(ctx, ownerKey,
			&rpc.GetTokenAccountsConfig{Mint: &mintKey},
			&rpc.GetTokenAccountsOpts{Commitment: c.commitment, Encoding: solana.EncodingJSONParsed},
		)
	})
	if err != nil {
		return nil, fmt.Errorf("get token accounts: %w", err)
	}

	result, ok := out.(*rpc.GetTokenAccountsResult)
	if !ok || result == nil {
		return nil, errors.New("get token accounts: empty result")
	}

	accounts := make([]domain.TokenAccount, 0, len(result.Value))
	for _, entry := range result.Value {
		if entry == nil || entry.Account.Data == nil {
			continue
		}

		account, err := decodeParsedTokenAccount(entry.Account.Data.GetRawJSON())
		if err != nil {
			return nil, fmt.Errorf("decode token account %s: %w", entry.Pubkey, err)
		}
		account.Address = domain.WalletAddress(entry.Pubkey.String())
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// call runs fn through the limiter and the breaker. A request abandoned by
// its caller says nothing about the node, so it is not counted as a failure.
func (c *Client) call(ctx context.Context, fn func() (interface{}, error)) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.limiter.Take()

	var abandoned error
	out, err := c.breaker.Execute(func() (interface{}, error) {
		res, err := fn()
		if err != nil && ctx.Err() != nil {
			abandoned = fmt.Errorf("%w: %v", ctx.Err(), err)
			return nil, nil
		}
		return res, err
	})
	if abandoned != nil {
		return nil, abandoned
	}

	return out, err
}

type parsedTokenAccount struct {
	Parsed struct {
		Info struct {
			Mint        string `json:"mint"`
			TokenAmount struct {
				Amount   string   `json:"amount"`
				Decimals uint8    `json:"decimals"`
				UIAmount *float64 `json:"uiAmount"`
			} `json:"tokenAmount"`
		} `json:"info"`
	} `json:"parsed"`
}

func decodeParsedTokenAccount(raw []byte) (domain.TokenAccount, error) {
	if len(raw) == 0 {
		return domain.TokenAccount{}, errors.New("account data is not jsonParsed")
	}

	var parsed parsedTokenAccount
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return domain.TokenAccount{}, err
	}

	info := parsed.Parsed.Info
	return domain.TokenAccount{
		Mint:     info.Mint,
		Amount:   info.TokenAmount.Amount,
		Decimals: info.TokenAmount.Decimals,
		UIAmount: info.TokenAmount.UIAmount,
	}, nil
}

func parsePublicKey(address domain.WalletAddress) (solana.PublicKey, error) {
	pubkey, err := solana.PublicKeyFromBase58(string(address))
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w %q: %v", domain.ErrInvalidAddress, address, err)
	}

	return pubkey, nil
}
