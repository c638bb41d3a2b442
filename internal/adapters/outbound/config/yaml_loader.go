package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/depguard/depguard/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".depguard.yaml"

// YAMLLoader implements domain.ConfigSource by reading .depguard.yaml from
// the repository root.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .depguard.yaml from repoRoot. A missing file yields the zero
// config; profile defaults apply during resolution.
func (l *YAMLLoader) Load(repoRoot string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(repoRoot, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Config{}, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	return cfg, nil
}
