package hetzner

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"golang.org/x/sync/errgroup"

	"serverbook/internal/domain"
	"serverbook/internal/registry"
)

// providerName is the inventory provider record imported servers attach to.
const providerName = "Hetzner"

// snapshotSource marks cost snapshots written by the importer.
const snapshotSource = "Hetzner Cloud"

// Importer reconciles the Hetzner Cloud account with the inventory.
// Cloud servers are matched to inventory servers by public IP first, then
// by name; unmatched ones are created.
type Importer struct {
	src       Source
	providers *registry.Providers
	servers   *registry.Servers
	costs     *registry.Costs
}

// NewImporter wires an importer over the given source and registries.
func NewImporter(src Source, providers *registry.Providers, servers *registry.Servers, costs *registry.Costs) *Importer {
	return &Importer{src: src, providers: providers, servers: servers, costs: costs}
}

// Result summarizes one import run.
type Result struct {
	Created   int
	Updated   int
	Snapshots int
}

// Run fetches servers and server types, upserts each cloud server into the
// inventory, and records a cost snapshot for the current month where the
// monthly price is known and no importer snapshot exists yet.
func (im *Importer) Run(ctx context.Context) (Result, error) {
	var (
		cloudServers []*hcloud.Server
		serverTypes  []*hcloud.ServerType
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cloudServers, err = im.src.AllServers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		serverTypes, err = im.src.AllServerTypes(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	prices := monthlyPrices(serverTypes)

	providerID, err := im.ensureProvider(ctx)
	if err != nil {
		return Result{}, err
	}

	existing, err := im.servers.List(ctx)
	if err != nil {
		return Result{}, err
	}
	byIP := make(map[string]*domain.Server)
	byName := make(map[string]*domain.Server)
	for i := range existing {
		if ip := existing[i].IPPublic; ip != "" {
			byIP[ip] = &existing[i]
		}
		byName[existing[i].Name] = &existing[i]
	}

	var res Result
	month := time.Now().UTC().Format("2006-01")
	for _, cs := range cloudServers {
		fields := importFields(cs, providerID, prices)

		target := match(cs, byIP, byName)
		var id int64
		if target == nil {
			created, err := im.servers.Create(ctx, fields)
			if err != nil {
				return res, fmt.Errorf("hetzner: import %s: %w", cs.Name, err)
			}
			id = created.ID
			res.Created++
		} else {
			if _, err := im.servers.Update(ctx, target.ID, fields); err != nil {
				return res, fmt.Errorf("hetzner: update %s: %w", cs.Name, err)
			}
			id = target.ID
			res.Updated++
		}

		if fields.CostMonthEstimated == nil {
			continue
		}
		wrote, err := im.recordSnapshot(ctx, id, month, *fields.CostMonthEstimated)
		if err != nil {
			return res, err
		}
		if wrote {
			res.Snapshots++
		}
	}
	return res, nil
}

// ensureProvider returns the Hetzner provider record's ID, creating the
// record on first run.
func (im *Importer) ensureProvider(ctx context.Context) (int64, error) {
	providers, err := im.providers.List(ctx)
	if err != nil {
		return 0, err
	}
	for _, p := range providers {
		if p.Name == providerName {
			return p.ID, nil
		}
	}
	name := providerName
	console := "https://console.hetzner.cloud"
	created, err := im.providers.Create(ctx, domain.ProviderFields{Name: &name, ConsoleURL: &console})
	if err != nil {
		return 0, fmt.Errorf("hetzner: create provider record: %w", err)
	}
	return created.ID, nil
}

// recordSnapshot writes a current-month snapshot unless the importer
// already wrote one for that month.
func (im *Importer) recordSnapshot(ctx context.Context, serverID int64, month string, cost float64) (bool, error) {
	snapshots, err := im.costs.ListByServer(ctx, serverID)
	if err != nil {
		return false, err
	}
	for _, s := range snapshots {
		if s.Source == snapshotSource && s.Month.Format("2006-01") == month {
			return false, nil
		}
	}
	source := snapshotSource
	_, err = im.costs.Create(ctx, domain.SnapshotFields{
		ServerID:  &serverID,
		Month:     &month,
		CostMonth: &cost,
		Source:    &source,
	})
	if err != nil {
		return false, fmt.Errorf("hetzner: record snapshot: %w", err)
	}
	return true, nil
}

// match finds the inventory server for a cloud server, by public IP first
// and name second.
func match(cs *hcloud.Server, byIP, byName map[string]*domain.Server) *domain.Server {
	if !cs.PublicNet.IPv4.IsUnspecified() {
		if srv, ok := byIP[cs.PublicNet.IPv4.IP.String()]; ok {
			return srv
		}
	}
	return byName[cs.Name]
}

// importFields maps a cloud server onto inventory fields. Only fields the
// cloud knows about are set; operator-maintained ones stay untouched on
// update.
func importFields(cs *hcloud.Server, providerID int64, prices map[string]float64) domain.ServerFields {
	f := domain.ServerFields{
		Name:       ptr(cs.Name),
		Hostname:   ptr(cs.Name),
		ProviderID: ptr(providerID),
		Status:     ptr(importStatus(cs.Status)),
	}

	if !cs.PublicNet.IPv4.IsUnspecified() {
		f.IPPublic = ptr(cs.PublicNet.IPv4.IP.String())
	}
	if len(cs.PrivateNet) > 0 && cs.PrivateNet[0].IP != nil {
		f.IPPrivate = ptr(cs.PrivateNet[0].IP.String())
	}
	if cs.Image != nil {
		f.OS = ptr(cs.Image.Name)
	}
	if cs.Datacenter != nil && cs.Datacenter.Location != nil {
		f.Location = ptr(cs.Datacenter.Location.Name)
	}
	if st := cs.ServerType; st != nil {
		f.CPU = ptr(fmt.Sprintf("%d vCPU", st.Cores))
		f.RAM = ptr(fmt.Sprintf("%g GB", st.Memory))
		f.Storage = ptr(fmt.Sprintf("%d GB", st.Disk))
		if price, ok := prices[st.Name]; ok {
			f.CostMonthEstimated = ptr(price)
		}
	}
	return f
}

// importStatus maps the cloud machine state onto an inventory status. Only
// a running machine counts as active; anything else is standby until an
// operator says otherwise.
func importStatus(s hcloud.ServerStatus) domain.Status {
	if s == hcloud.ServerStatusRunning {
		return domain.StatusActive
	}
	return domain.StatusStandby
}

// monthlyPrices maps server type names to their gross monthly price, using
// the first location's price entry as representative.
func monthlyPrices(types []*hcloud.ServerType) map[string]float64 {
	prices := make(map[string]float64, len(types))
	for _, st := range types {
		if st == nil || len(st.Pricings) == 0 {
			continue
		}
		gross, err := strconv.ParseFloat(st.Pricings[0].Monthly.Gross, 64)
		if err != nil {
			continue
		}
		prices[st.Name] = gross
	}
	return prices
}

func ptr[T any](v T) *T { return &v }
