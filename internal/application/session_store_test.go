package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/bnema/lazorkit-wallet-cli/internal/ports/mocks"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreClearOnEmptyIsNoOp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewSessionStore(newMemoryKV(), nil)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	_, ok := store.Load(ctx)
	assert.False(t, ok)
}

func TestSessionStoreSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewSessionStore(newMemoryKV(), nil)

	for _, address := range []domain.WalletAddress{
		"Addr123",
		"Gh9ZwEmdLJ8DscKNTkTqPbNwLNNBjuSzaG9Vp2KGtKJr",
		" padded ",
	} {
		require.NoError(t, store.Save(ctx, address))
		got, ok := store.Load(ctx)
		require.True(t, ok)
		assert.Equal(t, address, got)
	}
}

func TestSessionStoreKeepsSingleSlot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := newMemoryKV()
	store := NewSessionStore(kv, nil)

	require.NoError(t, store.Save(ctx, "AddrA"))
	require.NoError(t, store.Save(ctx, "AddrB"))

	got, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, domain.WalletAddress("AddrB"), got)
	assert.Equal(t, map[string]string{SessionStorageKey: "AddrB"}, kv.values)
}

func TestSessionStoreWithoutBackendIsNoOp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewSessionStore(nil, nil)

	require.NoError(t, store.Save(ctx, "Addr123"))
	require.NoError(t, store.Clear(ctx))
	_, ok := store.Load(ctx)
	assert.False(t, ok)
}

func TestSessionStoreTreatsUnavailableBackendAsNoOp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := mocks.NewMockKeyValueStore(t)
	store := NewSessionStore(kv, nil)

	kv.EXPECT().Put(mock.Anything, SessionStorageKey, "Addr123").Return(domain.ErrStorageUnavailable).Once()
	kv.EXPECT().Delete(mock.Anything, SessionStorageKey).Return(domain.ErrStorageUnavailable).Once()
	kv.EXPECT().Get(mock.Anything, SessionStorageKey).Return("", domain.ErrStorageUnavailable).Once()

	require.NoError(t, store.Save(ctx, "Addr123"))
	require.NoError(t, store.Clear(ctx))
	_, ok := store.Load(ctx)
	assert.False(t, ok)
}

func TestSessionStoreSurfacesWriteFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := mocks.NewMockKeyValueStore(t)
	store := NewSessionStore(kv, nil)

	writeErr := errors.New("disk full")
	kv.EXPECT().Put(mock.Anything, SessionStorageKey, "Addr123").Return(writeErr).Once()

	err := store.Save(ctx, "Addr123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, writeErr))
}

func TestSessionStoreLoadLogsReadFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logger, hook := logtest.NewNullLogger()
	kv := mocks.NewMockKeyValueStore(t)
	store := NewSessionStore(kv, logger)

	kv.EXPECT().Get(mock.Anything, SessionStorageKey).Return("", errors.New("permission denied")).Once()

	_, ok := store.Load(ctx)
	assert.False(t, ok)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "read wallet session", hook.LastEntry().Message)
}
