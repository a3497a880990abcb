package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/nika-camp/campbot/core/config"
	coredatabase "github.com/nika-camp/campbot/core/database"
)

// ContentConfig holds settings of the content layer.
type ContentConfig struct {
	// MediaDir is the directory holding session posters and article files.
	MediaDir string `yaml:"media_dir" envconfig:"MEDIA_DIR"`
	// SeedDemo enables inserting demo content on startup when tables are empty.
	SeedDemo bool `yaml:"seed_demo" envconfig:"SEED_DEMO"`
}

// ContactConfig is one personal support contact shown after a help request.
type ContactConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// SupportConfig controls the help-request forwarding flow.
type SupportConfig struct {
	// Admins receive forwarded help requests. When empty, falls back to
	// telegram.admin_id.
	Admins   []int64         `yaml:"admins" envconfig:"SUPPORT_ADMINS"`
	Contacts []ContactConfig `yaml:"contacts"`
}

// Config aggregates core and bot-specific configuration.
type Config struct {
	Core     coreconfig.Config   `yaml:",inline"`
	Database coredatabase.Config `yaml:"database"`
	Content  ContentConfig       `yaml:"content"`
	Support  SupportConfig       `yaml:"support"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Core
}

// Load reads configuration from a YAML file and environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates bot-specific fields and adjusts defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return err
	}

	if strings.TrimSpace(cfg.Content.MediaDir) == "" {
		cfg.Content.MediaDir = "media"
	}

	if len(cfg.Support.Admins) == 0 && cfg.Core.Telegram.AdminID != 0 {
		cfg.Support.Admins = []int64{cfg.Core.Telegram.AdminID}
	}

	for i, contact := range cfg.Support.Contacts {
		if strings.TrimSpace(contact.Name) == "" || strings.TrimSpace(contact.URL) == "" {
			return fmt.Errorf("support.contacts[%d]: name and url are required", i)
		}
	}
	return nil
}
