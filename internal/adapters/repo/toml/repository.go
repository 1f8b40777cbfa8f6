package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/bnema/lazorkit-wallet-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// HistoryPathKey overrides where transfer history is written.
	HistoryPathKey   = "history.path"
	dataDirKey       = "data_dir"
	historyFileName  = "history.toml"
	historyFileMode  = 0o600
	historyDirMode   = 0o700
	historyConfigDir = ".lazorkit"
	tempFilePattern  = ".history-*.toml.tmp"
	// MaxHistoryEntries bounds the file; the oldest entries are dropped first.
	MaxHistoryEntries = 200
)

// HistoryRepository stores submitted transfers in a versioned TOML file.
type HistoryRepository struct {
	historyPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.TransferHistoryRepository = (*HistoryRepository)(nil)

// NewHistoryRepository resolves the history path from cfg, defaulting to
// history.toml in the configured data dir.
func NewHistoryRepository(cfg *viper.Viper) (*HistoryRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	dataDir := cfg.GetString(dataDirKey)
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, historyConfigDir)
	}
	cfg.SetDefault(HistoryPathKey, filepath.Join(dataDir, historyFileName))

	historyPath := cfg.GetString(HistoryPathKey)
	if historyPath == "" {
		return nil, errors.New("history path is empty")
	}
	historyPath, err := normalizePath(historyPath)
	if err != nil {
		return nil, err
	}

	return &HistoryRepository{historyPath: historyPath, mu: lockForPath(historyPath)}, nil
}

func (r *HistoryRepository) Path() string {
	return r.historyPath
}

func (r *HistoryRepository) Append(ctx context.Context, record domain.TransferRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	file.Transfers = append(file.Transfers, toSchema(record))
	if overflow := len(file.Transfers) - MaxHistoryEntries; overflow > 0 {
		file.Transfers = append([]transferSchema(nil), file.Transfers[overflow:]...)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

// List returns recorded transfers oldest first.
func (r *HistoryRepository) List(ctx context.Context) ([]domain.TransferRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	records := make([]domain.TransferRecord, 0, len(file.Transfers))
	for _, entry := range file.Transfers {
		records = append(records, fromSchema(entry))
	}

	return records, nil
}

func (r *HistoryRepository) readSchema() (historyFileSchema, error) {
	data, err := os.ReadFile(r.historyPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := historyFileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return historyFileSchema{}, fmt.Errorf("read history file: %w", err)
	}

	var file historyFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return historyFileSchema{}, fmt.Errorf("decode history file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return historyFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *HistoryRepository) writeSchema(file historyFileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.historyPath), historyDirMode); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode history file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.historyPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp history file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp history file: %w", err)
	}
	if err := tempFile.Chmod(historyFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp history file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp history file: %w", err)
	}
	if err := os.Rename(tempName, r.historyPath); err != nil {
		return fmt.Errorf("replace history file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve history path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(record domain.TransferRecord) transferSchema {
	return transferSchema{
		ID:          record.ID,
		Signature:   record.Signature,
		From:        string(record.From),
		To:          string(record.To),
		Lamports:    uint64(record.Lamports),
		Network:     record.Network,
		SubmittedAt: formatTime(record.SubmittedAt),
	}
}

func fromSchema(entry transferSchema) domain.TransferRecord {
	return domain.TransferRecord{
		ID:          entry.ID,
		Signature:   entry.Signature,
		From:        domain.WalletAddress(entry.From),
		To:          domain.WalletAddress(entry.To),
		Lamports:    domain.Lamports(entry.Lamports),
		Network:     entry.Network,
		SubmittedAt: parseTime(entry.SubmittedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
