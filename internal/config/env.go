package config

import (
	"os"
	"strconv"
)

// FromEnv overlays OPSQ_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("OPSQ_DEFAULT_ORGANIZATION"); v != "" {
		cfg.DefaultOrganization = v
	}
	if v := os.Getenv("OPSQ_STAFF_HEADER"); v != "" {
		cfg.StaffHeader = v
	}
	if v := os.Getenv("OPSQ_QUEUE_DEFAULT_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Queue.DefaultPageSize = n
		}
	}
	if v := os.Getenv("OPSQ_QUEUE_MAX_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Queue.MaxPageSize = n
		}
	}
}
