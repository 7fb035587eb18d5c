// Package config loads the optional fomantic.yaml of a project.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/fomantic/pkg/toast"
)

// FileName is the name of the configuration file.
const FileName = "fomantic.yaml"

// MinHostVersion is the oldest Fomantic UI release whose modal, toast and
// checkbox settings the bindings write.
const MinHostVersion = "v2.8.0"

// Config represents fomantic.yaml.
type Config struct {
	Host  HostConfig  `yaml:"host"`
	Toast ToastConfig `yaml:"toast"`
	Table TableConfig `yaml:"table"`
}

// HostConfig describes the widget library loaded by the page.
type HostConfig struct {
	Version string `yaml:"version,omitempty"`
}

// ToastConfig holds defaults for toasts that do not set them.
type ToastConfig struct {
	Position    string `yaml:"position,omitempty"`
	DisplayTime string `yaml:"displayTime,omitempty"`
}

// TableConfig holds table rendering settings.
type TableConfig struct {
	SortScript string `yaml:"sortScript,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	HostVersion   string
	ToastPosition toast.Position
	DisplayTime   toast.DisplayTime
	SortScript    string
}

// LoadOptional reads fomantic.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads fomantic.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	version := strings.TrimSpace(cfg.Host.Version)
	if version == "" {
		version = "latest"
	}
	if err := validateHostVersion(version); err != nil {
		return nil, err
	}

	position := toast.BottomRight
	if p := strings.TrimSpace(cfg.Toast.Position); p != "" {
		if position, err = toast.ParsePosition(p); err != nil {
			return nil, fmt.Errorf("toast.position: %w", err)
		}
	}

	displayTime := toast.BasedOnWordAmount
	if d := strings.TrimSpace(cfg.Toast.DisplayTime); d != "" {
		if displayTime, err = toast.ParseDisplayTime(d); err != nil {
			return nil, fmt.Errorf("toast.displayTime: %w", err)
		}
	}

	return &Resolved{
		Root:          dir,
		HostVersion:   version,
		ToastPosition: position,
		DisplayTime:   displayTime,
		SortScript:    strings.TrimSpace(cfg.Table.SortScript),
	}, nil
}

// FindProjectRoot walks up from dir to the nearest directory holding
// fomantic.yaml. Without one, dir itself is the root.
func FindProjectRoot(dir string) (string, error) {
	start, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for d := start; ; {
		if _, err := os.Stat(filepath.Join(d, FileName)); err == nil {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return start, nil
		}
		d = parent
	}
}

func validateHostVersion(version string) error {
	if version == "latest" {
		return nil
	}
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("host.version is not a semantic version (got %q)", version)
	}
	if semver.Compare(v, MinHostVersion) < 0 {
		return fmt.Errorf("host.version %s is older than the minimum supported %s", version, MinHostVersion)
	}
	return nil
}
