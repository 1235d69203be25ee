package server

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"serverbook/internal/domain"
	"serverbook/internal/inventory"
	"serverbook/internal/registry"
)

func setupTestStore(t *testing.T) {
	t.Helper()
	inventory.SetPath(filepath.Join(t.TempDir(), "serverbook.db"))
	t.Cleanup(inventory.ResetPath)
}

func seedServer(t *testing.T, name, hostname string) {
	t.Helper()
	store, err := inventory.Open()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	_, err = registry.NewServers(store).Create(context.Background(), domain.ServerFields{
		Name:     &name,
		Hostname: &hostname,
	})
	if err != nil {
		t.Fatalf("seed server: %v", err)
	}
}

func execServer(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestList_Empty(t *testing.T) {
	setupTestStore(t)

	stdout, stderr := execServer(t, "list")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "No servers registered.") {
		t.Errorf("expected empty message, got: %s", stdout)
	}
}

func TestAddListShow(t *testing.T) {
	setupTestStore(t)

	stdout, stderr := execServer(t, "add",
		"--name", "web-1", "--hostname", "web1.internal",
		"--status", "ACTIVE", "--purpose", "PROD", "--cost", "8.39")
	if stderr != "" {
		t.Fatalf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "registered with ID 1") {
		t.Fatalf("expected creation confirmation, got: %s", stdout)
	}

	stdout, _ = execServer(t, "list")
	if !strings.Contains(stdout, "web-1") || !strings.Contains(stdout, "~8.39") {
		t.Errorf("expected listed server with estimate, got: %s", stdout)
	}

	stdout, _ = execServer(t, "show", "1")
	if !strings.Contains(stdout, "web1.internal") || !strings.Contains(stdout, "PROD") {
		t.Errorf("expected detail output, got: %s", stdout)
	}
}

func TestAdd_RejectsUnknownStatus(t *testing.T) {
	setupTestStore(t)

	_, stderr := execServer(t, "add", "--name", "web-1", "--hostname", "h", "--status", "BROKEN")

	if !strings.Contains(stderr, "unknown status") {
		t.Errorf("expected status validation error, got: %s", stderr)
	}
}

func TestAdd_DanglingProviderFails(t *testing.T) {
	setupTestStore(t)

	_, stderr := execServer(t, "add", "--name", "web-1", "--hostname", "h", "--provider", "42")

	if !strings.Contains(stderr, "constraint") {
		t.Errorf("expected constraint error, got: %s", stderr)
	}
}

func TestRm(t *testing.T) {
	setupTestStore(t)
	seedServer(t, "web-1", "web1.internal")

	stdout, stderr := execServer(t, "rm", "1", "--yes")
	if stderr != "" {
		t.Fatalf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "removed") {
		t.Errorf("expected removal confirmation, got: %s", stdout)
	}

	_, stderr = execServer(t, "show", "1")
	if !strings.Contains(stderr, "not found") {
		t.Errorf("expected not found after removal, got: %s", stderr)
	}
}
