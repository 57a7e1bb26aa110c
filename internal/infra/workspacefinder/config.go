package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/addrbook/internal/domain"
)

// ConfigFileName marks a workspace root.
const ConfigFileName = "addrbook.yaml"

// LoadConfig loads addrbook.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Addrbook.Defaults.Book != "" {
		cfg.Defaults.Book = y.Addrbook.Defaults.Book
	}
	if y.Addrbook.Defaults.BatchSize != nil {
		if *y.Addrbook.Defaults.BatchSize <= 0 {
			return cfg, invalidConfig(path, "defaults.batch_size", "must be positive")
		}
		cfg.Defaults.BatchSize = *y.Addrbook.Defaults.BatchSize
	}
	if y.Addrbook.Defaults.UpcomingDays != nil {
		if *y.Addrbook.Defaults.UpcomingDays < 0 {
			return cfg, invalidConfig(path, "defaults.upcoming_days", "must not be negative")
		}
		cfg.Defaults.UpcomingDays = *y.Addrbook.Defaults.UpcomingDays
	}
	if y.Addrbook.Logging.Dir != "" {
		cfg.Logging.Dir = y.Addrbook.Logging.Dir
	}

	return cfg, nil
}

func invalidConfig(path, field, msg string) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	Addrbook struct {
		Defaults struct {
			Book         string `yaml:"book"`
			BatchSize    *int   `yaml:"batch_size"`
			UpcomingDays *int   `yaml:"upcoming_days"`
		} `yaml:"defaults"`

		Logging struct {
			Dir string `yaml:"dir"`
		} `yaml:"logging"`
	} `yaml:"addrbook"`
}
