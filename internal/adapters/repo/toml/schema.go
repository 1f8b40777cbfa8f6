package toml

import "fmt"

const currentSchemaVersion = 1

type historyFileSchema struct {
	Version   int              `toml:"version"`
	Transfers []transferSchema `toml:"transfers"`
}

func (s *historyFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s historyFileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported history schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type transferSchema struct {
	ID          string `toml:"id"`
	Signature   string `toml:"signature"`
	From        string `toml:"from"`
	To          string `toml:"to"`
	Lamports    uint64 `toml:"lamports"`
	Network     string `toml:"network"`
	SubmittedAt string `toml:"submitted_at"`
}
