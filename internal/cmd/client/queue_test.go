package client

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	cfgpkg "github.com/keelhq/opsq/internal/config"
	"github.com/keelhq/opsq/internal/runtime"
	httpserver "github.com/keelhq/opsq/internal/server/http"
	pebblestore "github.com/keelhq/opsq/internal/store/pebble"
	logpkg "github.com/keelhq/opsq/pkg/log"
)

// startAPI runs a real server handler behind httptest and returns its URL.
func startAPI(t *testing.T) string {
	t.Helper()
	rt, err := runtime.Open(runtime.Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeNever, Config: cfgpkg.Default()})
	if err != nil {
		t.Fatalf("rt open: %v", err)
	}
	t.Cleanup(func() { rt.Close() })
	logger, _ := logpkg.ApplyConfig(&logpkg.Config{Level: "error", Format: "text"})
	ts := httptest.NewServer(httpserver.New(rt, logger).Handler())
	t.Cleanup(ts.Close)
	return ts.URL
}

func run(t *testing.T, baseURL string, args ...string) string {
	t.Helper()
	root := NewRoot(func() string { return baseURL })
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("command %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestItemAddThenQueueList(t *testing.T) {
	url := startAPI(t)

	out := run(t, url, "item", "add",
		"--org", "org-1", "--type", "WORK_ORDER", "--id", "wo-1",
		"--title", "Leaking roof", "--status", "SUBMITTED", "--priority", "EMERGENCY")
	if !strings.Contains(out, "stored WORK_ORDER:wo-1") {
		t.Fatalf("add output: %s", out)
	}

	out = run(t, url, "queue", "list", "--org", "org-1")
	if !strings.Contains(out, "WORK_ORDER:wo-1") {
		t.Fatalf("list output missing item: %s", out)
	}
	if !strings.Contains(out, "triage and assign vendor") {
		t.Fatalf("list output missing action: %s", out)
	}
	if !strings.Contains(out, "1 items: 1 critical") {
		t.Fatalf("list output missing tally: %s", out)
	}
}

func TestQueueSummaryCommand(t *testing.T) {
	url := startAPI(t)
	run(t, url, "item", "add",
		"--org", "org-1", "--type", "VIOLATION", "--id", "v-1",
		"--title", "Fence height", "--status", "OPEN")

	out := run(t, url, "queue", "summary", "--org", "org-1")
	if !strings.Contains(out, "1 violations") {
		t.Fatalf("summary output: %s", out)
	}
}

func TestItemRmCommand(t *testing.T) {
	url := startAPI(t)
	run(t, url, "item", "add",
		"--org", "org-1", "--type", "ARC_REQUEST", "--id", "a-1",
		"--title", "Deck addition", "--status", "SUBMITTED")

	out := run(t, url, "item", "rm", "--org", "org-1", "--type", "ARC_REQUEST", "--id", "a-1")
	if !strings.Contains(out, "removed") {
		t.Fatalf("rm output: %s", out)
	}

	out = run(t, url, "queue", "list", "--org", "org-1")
	if strings.Contains(out, "ARC_REQUEST:a-1") {
		t.Fatalf("item should be gone: %s", out)
	}
}

func TestItemAddValidationError(t *testing.T) {
	url := startAPI(t)
	root := NewRoot(func() string { return url })
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"item", "add", "--org", "org-1", "--type", "TICKET", "--status", "OPEN"})
	if err := root.Execute(); err == nil {
		t.Fatalf("unknown type should fail, output: %s", out.String())
	}
}
