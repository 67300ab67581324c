package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// DefaultOrganization scopes queue queries that omit an org filter.
	// Empty means cross-org (portfolio-wide queries).
	DefaultOrganization string `json:"defaultOrganization" yaml:"defaultOrganization"`
	// StaffHeader names the HTTP header carrying the caller's staff ID.
	StaffHeader string      `json:"staffHeader" yaml:"staffHeader"`
	Queue       QueueLimits `json:"queue" yaml:"queue"`
}

// QueueLimits captures paging baselines for queue queries.
type QueueLimits struct {
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize     int `json:"maxPageSize" yaml:"maxPageSize"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		StaffHeader: "X-Staff-Id",
		Queue: QueueLimits{
			DefaultPageSize: 25,
			MaxPageSize:     200,
		},
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If
// path is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return cfg, nil
}
