package hetzner

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"serverbook/internal/domain"
	"serverbook/internal/inventory"
	"serverbook/internal/registry"
)

// fakeSource serves canned cloud data to the importer.
type fakeSource struct {
	servers []*hcloud.Server
	types   []*hcloud.ServerType
}

func (f *fakeSource) AllServers(context.Context) ([]*hcloud.Server, error) {
	return f.servers, nil
}

func (f *fakeSource) AllServerTypes(context.Context) ([]*hcloud.ServerType, error) {
	return f.types, nil
}

func newTestImporter(t *testing.T, src Source) (*Importer, *registry.Providers, *registry.Servers, *registry.Costs) {
	t.Helper()
	store, err := inventory.OpenAt(filepath.Join(t.TempDir(), "serverbook.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	providers := registry.NewProviders(store)
	servers := registry.NewServers(store)
	costs := registry.NewCosts(store)
	return NewImporter(src, providers, servers, costs), providers, servers, costs
}

func cloudServer(id int64, name, ip string, status hcloud.ServerStatus, typeName string) *hcloud.Server {
	s := &hcloud.Server{
		ID:     id,
		Name:   name,
		Status: status,
		Image:  &hcloud.Image{Name: "ubuntu-24.04"},
		Datacenter: &hcloud.Datacenter{
			Location: &hcloud.Location{Name: "fsn1"},
		},
		ServerType: &hcloud.ServerType{
			Name:   typeName,
			Cores:  2,
			Memory: 4,
			Disk:   40,
		},
	}
	if ip != "" {
		s.PublicNet.IPv4.IP = net.ParseIP(ip)
	}
	return s
}

func cloudType(name, monthlyGross string) *hcloud.ServerType {
	return &hcloud.ServerType{
		Name: name,
		Pricings: []hcloud.ServerTypeLocationPricing{
			{Monthly: hcloud.Price{Gross: monthlyGross}},
		},
	}
}

func TestImport_CreatesServersAndSnapshots(t *testing.T) {
	src := &fakeSource{
		servers: []*hcloud.Server{
			cloudServer(1, "web-1", "1.2.3.4", hcloud.ServerStatusRunning, "cpx21"),
			cloudServer(2, "db-1", "5.6.7.8", hcloud.ServerStatusOff, "cpx21"),
		},
		types: []*hcloud.ServerType{cloudType("cpx21", "8.39")},
	}
	im, providers, servers, _ := newTestImporter(t, src)

	res, err := im.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Created != 2 || res.Updated != 0 || res.Snapshots != 2 {
		t.Errorf("Result = %+v, want 2 created, 0 updated, 2 snapshots", res)
	}

	ps, err := providers.List(context.Background())
	if err != nil {
		t.Fatalf("list providers: %v", err)
	}
	if len(ps) != 1 || ps[0].Name != "Hetzner" {
		t.Fatalf("expected a single Hetzner provider record, got %+v", ps)
	}

	list, err := servers.List(context.Background())
	if err != nil {
		t.Fatalf("list servers: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 servers, got %d", len(list))
	}
	for _, srv := range list {
		if srv.ProviderID == nil || *srv.ProviderID != ps[0].ID {
			t.Errorf("server %s not attached to Hetzner provider", srv.Name)
		}
		if srv.CostMonthEstimated == nil || *srv.CostMonthEstimated != 8.39 {
			t.Errorf("server %s missing monthly price estimate", srv.Name)
		}
		if len(srv.CostSnapshots) != 1 {
			t.Errorf("server %s: expected 1 snapshot, got %d", srv.Name, len(srv.CostSnapshots))
			continue
		}
		snap := srv.CostSnapshots[0]
		if snap.Source != "Hetzner Cloud" {
			t.Errorf("snapshot source = %q, want %q", snap.Source, "Hetzner Cloud")
		}
		wantMonth := time.Now().UTC().Format("2006-01")
		if snap.Month.Format("2006-01") != wantMonth {
			t.Errorf("snapshot month = %s, want %s", snap.Month.Format("2006-01"), wantMonth)
		}
	}
}

func TestImport_StoppedServerIsStandby(t *testing.T) {
	src := &fakeSource{
		servers: []*hcloud.Server{cloudServer(1, "idle-1", "1.2.3.4", hcloud.ServerStatusOff, "cpx21")},
	}
	im, _, servers, _ := newTestImporter(t, src)

	if _, err := im.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	list, err := servers.List(context.Background())
	if err != nil {
		t.Fatalf("list servers: %v", err)
	}
	if list[0].Status != "STANDBY" {
		t.Errorf("status = %s, want STANDBY", list[0].Status)
	}
}

func TestImport_SecondRunUpdatesInPlace(t *testing.T) {
	src := &fakeSource{
		servers: []*hcloud.Server{cloudServer(1, "web-1", "1.2.3.4", hcloud.ServerStatusRunning, "cpx21")},
		types:   []*hcloud.ServerType{cloudType("cpx21", "8.39")},
	}
	im, _, servers, costs := newTestImporter(t, src)

	if _, err := im.Run(context.Background()); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	res, err := im.Run(context.Background())
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if res.Created != 0 || res.Updated != 1 {
		t.Errorf("Result = %+v, want 0 created, 1 updated", res)
	}
	// The current-month snapshot is written once.
	if res.Snapshots != 0 {
		t.Errorf("second run wrote %d snapshots, want 0", res.Snapshots)
	}

	list, err := servers.List(context.Background())
	if err != nil {
		t.Fatalf("list servers: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 server after re-run, got %d", len(list))
	}
	snaps, err := costs.ListByServer(context.Background(), list[0].ID)
	if err != nil {
		t.Fatalf("list snapshots: %v", err)
	}
	if len(snaps) != 1 {
		t.Errorf("expected 1 snapshot after re-run, got %d", len(snaps))
	}
}

func TestImport_MatchesExistingByName(t *testing.T) {
	src := &fakeSource{
		servers: []*hcloud.Server{cloudServer(1, "web-1", "1.2.3.4", hcloud.ServerStatusRunning, "cpx21")},
	}
	im, _, servers, _ := newTestImporter(t, src)

	// An operator registered the machine earlier, before it had an address.
	desc := "edge box"
	pre, err := servers.Create(context.Background(), domain.ServerFields{
		Name:        ptr("web-1"),
		Hostname:    ptr("web1.internal"),
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("seed server: %v", err)
	}

	if _, err := im.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got, err := servers.Get(context.Background(), pre.ID)
	if err != nil {
		t.Fatalf("get server: %v", err)
	}
	if got.IPPublic != "1.2.3.4" {
		t.Errorf("IPPublic = %q, want filled in by import", got.IPPublic)
	}
	// Operator-maintained fields survive the import.
	if got.Description != desc {
		t.Errorf("Description = %q, want %q preserved", got.Description, desc)
	}
}
