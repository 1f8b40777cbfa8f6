package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

var testNow = time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

type memoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: map[string]string{}}
}

func (m *memoryKV) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[key]
	if !ok {
		return "", fmt.Errorf("key %q: %w", key, domain.ErrKeyNotFound)
	}
	return value, nil
}

func (m *memoryKV) Put(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *memoryKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// fakeWallet reports disconnected until Connect, then reports connectAddress
// or connectErr to subscribers the way the portal wallet does.
type fakeWallet struct {
	mu             sync.Mutex
	state          domain.ConnectionState
	connectAddress domain.WalletAddress
	connectErr     error
	subscribers    map[int]func(domain.ConnectionState)
	nextID         int
	connectCalls   int
	disconnects    int
}

func newFakeWallet(address domain.WalletAddress) *fakeWallet {
	return &fakeWallet{connectAddress: address, subscribers: map[int]func(domain.ConnectionState){}}
}

func (w *fakeWallet) Connect(ctx context.Context) error {
	w.mu.Lock()
	w.connectCalls++
	address, connectErr := w.connectAddress, w.connectErr
	w.mu.Unlock()

	w.publish(domain.ConnectionState{IsLoading: true})
	if connectErr != nil {
		w.publish(domain.ConnectionState{Err: connectErr})
		return connectErr
	}

	w.publish(domain.ConnectionState{IsConnected: true, Address: address})
	return nil
}

func (w *fakeWallet) Disconnect(ctx context.Context) error {
	w.mu.Lock()
	w.disconnects++
	w.mu.Unlock()

	w.publish(domain.ConnectionState{})
	return nil
}

func (w *fakeWallet) SignAndSendTransaction(ctx context.Context, payload domain.TransactionPayload) (string, error) {
	return "SIG-FAKE", nil
}

func (w *fakeWallet) State() domain.ConnectionState {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

func (w *fakeWallet) Subscribe(fn func(domain.ConnectionState)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	w.subscribers[id] = fn

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subscribers, id)
	}
}

func (w *fakeWallet) subscriberCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.subscribers)
}

func (w *fakeWallet) publish(state domain.ConnectionState) {
	w.mu.Lock()
	w.state = state
	subscribers := make([]func(domain.ConnectionState), 0, len(w.subscribers))
	for _, fn := range w.subscribers {
		subscribers = append(subscribers, fn)
	}
	w.mu.Unlock()

	for _, fn := range subscribers {
		fn(state)
	}
}

// recordingChain answers every balance query with lamports and remembers the
// queried addresses.
type recordingChain struct {
	mu       sync.Mutex
	lamports domain.Lamports
	queried  []domain.WalletAddress
}

func (c *recordingChain) GetBalance(ctx context.Context, address domain.WalletAddress) (domain.Lamports, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.queried = append(c.queried, address)
	return c.lamports, nil
}

func (c *recordingChain) GetTokenAccountsByOwner(ctx context.Context, owner domain.WalletAddress, mint string) ([]domain.TokenAccount, error) {
	return nil, nil
}

func (c *recordingChain) addresses() []domain.WalletAddress {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]domain.WalletAddress{}, c.queried...)
}
