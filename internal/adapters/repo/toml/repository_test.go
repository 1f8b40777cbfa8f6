package toml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*HistoryRepository, string) {
	t.Helper()

	historyPath := filepath.Join(t.TempDir(), "history.toml")
	config := viper.New()
	config.Set(HistoryPathKey, historyPath)

	repo, err := NewHistoryRepository(config)
	require.NoError(t, err)
	return repo, historyPath
}

func sampleRecord(n int) domain.TransferRecord {
	return domain.TransferRecord{
		ID:          fmt.Sprintf("rec-%d", n),
		Signature:   fmt.Sprintf("SIG%d", n),
		From:        "Addr123",
		To:          "Addr999",
		Lamports:    domain.Lamports(500_000_000 + n),
		Network:     "devnet",
		SubmittedAt: time.Date(2026, 2, 14, 11, n%60, 0, 0, time.UTC),
	}
}

func TestHistoryRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	first, second := sampleRecord(1), sampleRecord(2)

	require.NoError(t, repo.Append(context.Background(), first))
	require.NoError(t, repo.Append(context.Background(), second))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.TransferRecord{first, second}, records)
}

func TestHistoryRepositoryListMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHistoryRepositoryWritesVersionedFileWithPrivatePermissions(t *testing.T) {
	t.Parallel()

	repo, historyPath := newTestRepository(t)
	require.NoError(t, repo.Append(context.Background(), sampleRecord(1)))

	info, err := os.Stat(historyPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(historyFileMode), info.Mode().Perm())

	data, err := os.ReadFile(historyPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "SIG1")
	assert.Contains(t, string(data), "2026-02-14T11:01:00Z")
}

func TestHistoryRepositoryRejectsNewerSchema(t *testing.T) {
	t.Parallel()

	repo, historyPath := newTestRepository(t)
	require.NoError(t, os.WriteFile(historyPath, []byte("version = 9\n"), 0o600))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported history schema version 9")
}

func TestHistoryRepositoryDropsOldestBeyondLimit(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	for i := 0; i < MaxHistoryEntries+3; i++ {
		require.NoError(t, repo.Append(context.Background(), sampleRecord(i)))
	}

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, MaxHistoryEntries)
	assert.Equal(t, "rec-3", records[0].ID)
}

func TestHistoryRepositoryDefaultsToDataDir(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	config := viper.New()
	config.Set("data_dir", dataDir)

	repo, err := NewHistoryRepository(config)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "history.toml"), repo.Path())
}

func TestHistoryRepositoryConcurrentAppends(t *testing.T) {
	t.Parallel()

	repo, historyPath := newTestRepository(t)
	other, err := NewHistoryRepository(func() *viper.Viper {
		v := viper.New()
		v.Set(HistoryPathKey, historyPath)
		return v
	}())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			target := repo
			if i%2 == 1 {
				target = other
			}
			assert.NoError(t, target.Append(context.Background(), sampleRecord(i)))
		}(i)
	}
	wg.Wait()

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 10)
}
