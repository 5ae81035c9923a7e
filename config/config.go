// Package config provides configuration structures and loading for pocat.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/git-l10n/pocat/repository"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the config file in the repository root.
	FileName = "pocat.yaml"
	// UserFileName is the name of the config file in the home directory.
	UserFileName = ".pocat.yaml"
)

// Config holds the complete pocat configuration.
type Config struct {
	FromCode     string       `yaml:"from_code,omitempty"`
	NoObsolete   *bool        `yaml:"no_obsolete,omitempty"`
	WriteInPlace *bool        `yaml:"write_in_place,omitempty"`
	Export       ExportConfig `yaml:"export"`
}

// ExportConfig holds settings of the export command.
type ExportConfig struct {
	Format           string `yaml:"format,omitempty"`
	CommentSeparator string `yaml:"comment_separator,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			Format:           "csv",
			CommentSeparator: "\n",
		},
	}
}

func loadConfigFromFile(name string) (*Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("fail to parse %s: %w", name, err)
	}
	return &cfg, nil
}

// merge copies every field set in other into c.
func (c *Config) merge(other *Config) {
	if other.FromCode != "" {
		c.FromCode = other.FromCode
	}
	if other.NoObsolete != nil {
		c.NoObsolete = other.NoObsolete
	}
	if other.WriteInPlace != nil {
		c.WriteInPlace = other.WriteInPlace
	}
	if other.Export.Format != "" {
		c.Export.Format = other.Export.Format
	}
	if other.Export.CommentSeparator != "" {
		c.Export.CommentSeparator = other.Export.CommentSeparator
	}
}

// Files returns the config files consulted when no explicit file is given,
// lowest priority first.
func Files() []string {
	var files []string
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, UserFileName))
	}
	if repository.Opened() {
		files = append(files, filepath.Join(repository.WorkDir(), FileName))
	}
	return files
}

// Load reads configFile if it is not empty. Otherwise it merges the files
// returned by Files over the defaults, skipping missing ones.
func Load(configFile string) (*Config, error) {
	cfg := Default()
	if configFile != "" {
		c, err := loadConfigFromFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg.merge(c)
		return cfg, nil
	}
	for _, name := range Files() {
		c, err := loadConfigFromFile(name)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
		log.Debugf("loaded config from %s", name)
		cfg.merge(c)
	}
	return cfg, nil
}

// Bool returns the value of an optional switch.
func Bool(v *bool) bool {
	return v != nil && *v
}
