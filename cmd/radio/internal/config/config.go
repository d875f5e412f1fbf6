// Package config loads the optional radio.yaml that supplies provider
// defaults to the radio harness.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/radio/pkg/errors"
	"github.com/go-drift/radio/pkg/radio"
)

// FileName is the configuration file looked up in a directory.
const FileName = "radio.yaml"

// SchemaMajor is the only supported major version of the file format.
const SchemaMajor = "v1"

// Config represents the optional radio.yaml configuration.
type Config struct {
	Version  string         `yaml:"version,omitempty"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// DefaultsConfig contains provider defaults for groups and buttons.
type DefaultsConfig struct {
	Color         string `yaml:"color,omitempty"`
	LabelPosition string `yaml:"labelPosition,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	Version       string
	Defaults      radio.Defaults
	LabelPosition radio.LabelPosition
}

// LoadOptional reads radio.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, errors.WithPath("config.LoadOptional", errors.KindConfig, path, fmt.Errorf("failed to read %s: %w", FileName, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WithPath("config.LoadOptional", errors.KindConfig, path, fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	return &cfg, nil
}

// Resolve loads radio.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		version = SchemaMajor + ".0.0"
	}
	if err := CheckVersion("version", version); err != nil {
		return nil, errors.WithPath("config.Resolve", errors.KindConfig, filepath.Join(dir, FileName), err)
	}

	color := radio.Palette(strings.TrimSpace(cfg.Defaults.Color))
	if color == "" {
		color = radio.DefaultOptions().Color
	}
	if !color.Valid() {
		return nil, errors.WithPath("config.Resolve", errors.KindConfig, filepath.Join(dir, FileName),
			&errors.ValidationError{Field: "defaults.color", Got: color, Reason: "want primary, accent or warn"})
	}

	pos, err := ParseLabelPosition("defaults.labelPosition", cfg.Defaults.LabelPosition)
	if err != nil {
		return nil, errors.WithPath("config.Resolve", errors.KindConfig, filepath.Join(dir, FileName), err)
	}
	if pos == "" {
		pos = radio.LabelAfter
	}

	return &Resolved{
		Root:          dir,
		Version:       version,
		Defaults:      radio.Defaults{Color: color},
		LabelPosition: pos,
	}, nil
}

// CheckVersion validates a schema version string against SchemaMajor.
func CheckVersion(field, version string) error {
	if !semver.IsValid(version) {
		return &errors.ValidationError{Field: field, Got: version, Reason: "not a semantic version"}
	}
	if semver.Major(version) != SchemaMajor {
		return &errors.ValidationError{Field: field, Got: version, Reason: "unsupported major version, want " + SchemaMajor}
	}
	return nil
}

// ParseLabelPosition accepts "before", "after" or empty.
func ParseLabelPosition(field, s string) (radio.LabelPosition, error) {
	switch pos := radio.LabelPosition(strings.TrimSpace(s)); pos {
	case "", radio.LabelBefore, radio.LabelAfter:
		return pos, nil
	default:
		return "", &errors.ValidationError{Field: field, Got: s, Reason: "want before or after"}
	}
}
