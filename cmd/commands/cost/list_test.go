package cost

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

// seedServer inserts a server directly through the registry.
func seedServer(t *testing.T, name string) {
	t.Helper()
	store, err := inventory.Open()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	hostname := name + ".internal"
	if _, err := registry.NewServers(store).Create(context.Background(), domain.ServerFields{
		Name:     &name,
		Hostname: &hostname,
	}); err != nil {
		t.Fatalf("seed server: %v", err)
	}
}

// execCost runs the cost command with buffers attached.
func execCost(t *testing.T, args ...string) (stdout, stderr string) {
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

	stdout, stderr := execCost(t, "list")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "No cost snapshots recorded.") {
		t.Errorf("expected empty message, got: %s", stdout)
	}
}

func TestAdd_RequiresFlags(t *testing.T) {
	setupTestStore(t)

	_, stderr := execCost(t, "add", "--month", "2024-03", "--cost", "12.50")

	if !strings.Contains(stderr, "--server is required") {
		t.Errorf("expected required-server error, got: %s", stderr)
	}
}

func TestAddListShowRm(t *testing.T) {
	setupTestStore(t)
	seedServer(t, "web-1")

	stdout, stderr := execCost(t, "add",
		"--server", "1",
		"--month", "2024-03",
		"--cost", "12.50",
		"--source", "invoice #4711")
	if stderr != "" {
		t.Fatalf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "recorded with ID 1") {
		t.Fatalf("expected creation confirmation, got: %s", stdout)
	}
	stdout, _ = execCost(t, "list")
	if !strings.Contains(stdout, "2024-03") || !strings.Contains(stdout, "12.50") {
		t.Errorf("expected snapshot in table, got: %s", stdout)
	}
	if !strings.Contains(stdout, "web-1") {
		t.Errorf("expected server name in table, got: %s", stdout)
	}

	stdout, _ = execCost(t, "show", "1")
	if !strings.Contains(stdout, "invoice #4711") {
		t.Errorf("expected source in detail, got: %s", stdout)
	}

	stdout, stderr = execCost(t, "rm", "1", "--yes")
	if stderr != "" {
		t.Fatalf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "removed") {
		t.Errorf("expected removal confirmation, got: %s", stdout)
	}

	_, stderr = execCost(t, "show", "1")
	if !strings.Contains(stderr, "not found") {
		t.Errorf("expected not found after removal, got: %s", stderr)
	}
}

func TestAdd_RejectsBadMonth(t *testing.T) {
	setupTestStore(t)
	seedServer(t, "web-1")

	_, stderr := execCost(t, "add", "--server", "1", "--month", "March", "--cost", "10")

	if stderr == "" {
		t.Error("expected an error for a malformed month")
	}
}

func TestList_FilterByServer(t *testing.T) {
	setupTestStore(t)
	seedServer(t, "web-1")
	seedServer(t, "db-1")

	execCost(t, "add", "--server", "1", "--month", "2024-03", "--cost", "10")
	execCost(t, "add", "--server", "2", "--month", "2024-03", "--cost", "20")

	stdout, _ := execCost(t, "list", "--server", "2")
	if strings.Contains(stdout, "web-1") {
		t.Errorf("filter leaked other server's snapshots: %s", stdout)
	}
	if !strings.Contains(stdout, "db-1") {
		t.Errorf("expected filtered server's snapshot, got: %s", stdout)
	}
}
