package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/depguard/depguard/internal/domain"
)

const historyFile = ".depguard/history/runs.json"

// FileHistory implements domain.RunHistory using JSON file storage under
// the repository root.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(repoRoot string, entry domain.RunEntry) error {
	entries, err := h.Load(repoRoot)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(repoRoot, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(repoRoot string) ([]domain.RunEntry, error) {
	fp := filepath.Join(repoRoot, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.RunEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", historyFile, err)
	}

	return entries, nil
}
