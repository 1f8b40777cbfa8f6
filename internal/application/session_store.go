package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/bnema/lazorkit-wallet-cli/internal/ports"
	log "github.com/sirupsen/logrus"
)

// SessionStorageKey is the single slot holding the last connected wallet.
const SessionStorageKey = "lazorkit_wallet_pubkey"

// SessionStore persists at most one wallet address. A nil backend, or one that
// reports domain.ErrStorageUnavailable, turns every operation into a no-op.
type SessionStore struct {
	backend ports.KeyValueStore
	log     log.FieldLogger
}

func NewSessionStore(backend ports.KeyValueStore, logger log.FieldLogger) *SessionStore {
	if logger == nil {
		logger = log.StandardLogger()
	}

	return &SessionStore{backend: backend, log: logger}
}

func (s *SessionStore) Save(ctx context.Context, address domain.WalletAddress) error {
	if s.backend == nil {
		return nil
	}

	if err := s.backend.Put(ctx, SessionStorageKey, string(address)); err != nil {
		if errors.Is(err, domain.ErrStorageUnavailable) {
			s.log.WithError(err).Debug("session storage unavailable, skipping save")
			return nil
		}
		return fmt.Errorf("save wallet session: %w", err)
	}

	return nil
}

// Load returns the stored address, or false when nothing is stored or the
// backend cannot be read.
func (s *SessionStore) Load(ctx context.Context) (domain.WalletAddress, bool) {
	if s.backend == nil {
		return "", false
	}

	value, err := s.backend.Get(ctx, SessionStorageKey)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) && !errors.Is(err, domain.ErrStorageUnavailable) {
			s.log.WithError(err).Warn("read wallet session")
		}
		return "", false
	}
	if value == "" {
		return "", false
	}

	return domain.WalletAddress(value), true
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}

	if err := s.backend.Delete(ctx, SessionStorageKey); err != nil {
		if errors.Is(err, domain.ErrStorageUnavailable) {
			return nil
		}
		return fmt.Errorf("clear wallet session: %w", err)
	}

	return nil
}
