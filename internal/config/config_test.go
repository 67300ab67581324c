package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.StaffHeader != "X-Staff-Id" {
		t.Fatalf("staff header default")
	}
	if cfg.Queue.DefaultPageSize != 25 || cfg.Queue.MaxPageSize != 200 {
		t.Fatalf("page size defaults: %+v", cfg.Queue)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "opsq.json")
	data := []byte(`{"defaultOrganization":"org-9","queue":{"defaultPageSize":10,"maxPageSize":50}}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultOrganization != "org-9" {
		t.Fatalf("expected org-9")
	}
	if cfg.Queue.DefaultPageSize != 10 || cfg.Queue.MaxPageSize != 50 {
		t.Fatalf("queue limits: %+v", cfg.Queue)
	}
	// Fields absent from the file keep defaults.
	if cfg.StaffHeader != "X-Staff-Id" {
		t.Fatalf("staff header should keep default")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "opsq.yaml")
	data := []byte("defaultOrganization: org-2\nstaffHeader: X-Operator\nqueue:\n  defaultPageSize: 15\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultOrganization != "org-2" || cfg.StaffHeader != "X-Operator" {
		t.Fatalf("yaml fields: %+v", cfg)
	}
	if cfg.Queue.DefaultPageSize != 15 {
		t.Fatalf("yaml nested: %+v", cfg.Queue)
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	os.Setenv("OPSQ_DEFAULT_ORGANIZATION", "org-env")
	os.Setenv("OPSQ_QUEUE_DEFAULT_PAGE_SIZE", "40")
	os.Setenv("OPSQ_QUEUE_MAX_PAGE_SIZE", "80")
	t.Cleanup(func() {
		os.Unsetenv("OPSQ_DEFAULT_ORGANIZATION")
		os.Unsetenv("OPSQ_QUEUE_DEFAULT_PAGE_SIZE")
		os.Unsetenv("OPSQ_QUEUE_MAX_PAGE_SIZE")
	})
	FromEnv(&cfg)
	if cfg.DefaultOrganization != "org-env" {
		t.Fatalf("env override org")
	}
	if cfg.Queue.DefaultPageSize != 40 || cfg.Queue.MaxPageSize != 80 {
		t.Fatalf("env override sizes: %+v", cfg.Queue)
	}
}
