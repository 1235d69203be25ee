package provider

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

// setupTestStore points the inventory at a temp database.
func setupTestStore(t *testing.T) {
	t.Helper()
	inventory.SetPath(filepath.Join(t.TempDir(), "serverbook.db"))
	t.Cleanup(inventory.ResetPath)
}

// seedProvider inserts a provider directly through the registry.
func seedProvider(t *testing.T, name string) {
	t.Helper()
	store, err := inventory.Open()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if _, err := registry.NewProviders(store).Create(context.Background(), domain.ProviderFields{Name: &name}); err != nil {
		t.Fatalf("seed provider: %v", err)
	}
}

// execProvider runs the provider command with buffers attached.
func execProvider(t *testing.T, args ...string) (stdout, stderr string) {
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

	stdout, stderr := execProvider(t, "list")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "No providers registered.") {
		t.Errorf("expected empty message, got: %s", stdout)
	}
}

func TestList_Table(t *testing.T) {
	setupTestStore(t)
	seedProvider(t, "Hetzner")

	stdout, _ := execProvider(t, "list")

	if !strings.Contains(stdout, "Hetzner") {
		t.Errorf("expected provider name in table, got: %s", stdout)
	}
	if !strings.Contains(stdout, "NAME") {
		t.Errorf("expected table header, got: %s", stdout)
	}
}

func TestList_JSON(t *testing.T) {
	setupTestStore(t)
	seedProvider(t, "Hetzner")

	stdout, _ := execProvider(t, "list", "--json")

	if !strings.Contains(stdout, `"name": "Hetzner"`) {
		t.Errorf("expected JSON output, got: %s", stdout)
	}
}

func TestAdd_MissingNameNonInteractive(t *testing.T) {
	setupTestStore(t)

	_, stderr := execProvider(t, "add")

	if !strings.Contains(stderr, "--name is required") {
		t.Errorf("expected required-name error, got: %s", stderr)
	}
}

func TestAddShowRm(t *testing.T) {
	setupTestStore(t)

	stdout, stderr := execProvider(t, "add", "--name", "Hetzner", "--notes", "primary")
	if stderr != "" {
		t.Fatalf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "registered with ID 1") {
		t.Fatalf("expected creation confirmation, got: %s", stdout)
	}

	stdout, _ = execProvider(t, "show", "1")
	if !strings.Contains(stdout, "Hetzner") || !strings.Contains(stdout, "primary") {
		t.Errorf("expected detail output, got: %s", stdout)
	}

	stdout, stderr = execProvider(t, "rm", "1", "--yes")
	if stderr != "" {
		t.Fatalf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "removed") {
		t.Errorf("expected removal confirmation, got: %s", stdout)
	}

	_, stderr = execProvider(t, "show", "1")
	if !strings.Contains(stderr, "not found") {
		t.Errorf("expected not found after removal, got: %s", stderr)
	}
}
