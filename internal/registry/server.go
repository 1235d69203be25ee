package registry

import (
	"context"
	"fmt"
	"strings"

	"serverbook/internal/domain"
	"serverbook/internal/inventory"
	"serverbook/internal/secret"
)

// Servers is the registry for machine records.
type Servers struct {
	store *inventory.Store
}

// NewServers creates a server registry over the given store.
func NewServers(store *inventory.Store) *Servers {
	return &Servers{store: store}
}

// Create records a new server. Name and hostname are required; provider
// and owner references, if supplied, must resolve. The returned record
// carries its resolved provider, owner, and (empty) snapshot history.
func (r *Servers) Create(ctx context.Context, f domain.ServerFields) (*domain.Server, error) {
	name, err := requireText("server name", f.Name)
	if err != nil {
		return nil, err
	}
	hostname, err := requireText("server hostname", f.Hostname)
	if err != nil {
		return nil, err
	}

	srv := &domain.Server{
		Name:        name,
		Hostname:    hostname,
		Status:      domain.StatusActive,
		Purpose:     domain.PurposeDev,
		BillingType: domain.BillingMonthly,
	}
	if err := applyServerFields(srv, f); err != nil {
		return nil, err
	}

	if err := r.store.CreateServer(ctx, srv); err != nil {
		return nil, err
	}
	return r.store.GetServer(ctx, srv.ID)
}

// List returns all servers newest first, each with provider, owner, and
// its most recent cost snapshot.
func (r *Servers) List(ctx context.Context) ([]domain.Server, error) {
	return r.store.ListServers(ctx)
}

// Get returns one server with provider, owner, and the full snapshot
// history ordered by month descending.
func (r *Servers) Get(ctx context.Context, id int64) (*domain.Server, error) {
	return r.store.GetServer(ctx, id)
}

// Update applies the supplied fields to an existing server. The same date
// parsing and foreign key rules as Create apply. A set provider or owner
// reference cannot be nulled through update; reassignment only.
func (r *Servers) Update(ctx context.Context, id int64, f domain.ServerFields) (*domain.Server, error) {
	srv, err := r.store.GetServer(ctx, id)
	if err != nil {
		return nil, err
	}

	if f.Name != nil {
		if strings.TrimSpace(*f.Name) == "" {
			return nil, fmt.Errorf("registry: server name is required: %w", domain.ErrConstraint)
		}
		srv.Name = *f.Name
	}
	if f.Hostname != nil {
		if strings.TrimSpace(*f.Hostname) == "" {
			return nil, fmt.Errorf("registry: server hostname is required: %w", domain.ErrConstraint)
		}
		srv.Hostname = *f.Hostname
	}
	if err := applyServerFields(srv, f); err != nil {
		return nil, err
	}

	if err := r.store.UpdateServer(ctx, srv); err != nil {
		return nil, err
	}
	return r.store.GetServer(ctx, id)
}

// Delete removes a server and its cost snapshot history.
func (r *Servers) Delete(ctx context.Context, id int64) error {
	return r.store.DeleteServer(ctx, id)
}

// applyServerFields copies every supplied optional field onto srv,
// parsing the decommission date. Name and hostname are handled by the
// callers since their required-ness differs between create and update.
func applyServerFields(srv *domain.Server, f domain.ServerFields) error {
	if f.IPPublic != nil {
		srv.IPPublic = *f.IPPublic
	}
	if f.IPPrivate != nil {
		srv.IPPrivate = *f.IPPrivate
	}
	if f.Port != nil {
		srv.Port = f.Port
	}
	if f.Username != nil {
		srv.Username = *f.Username
	}
	if f.Password != nil {
		srv.Password = secret.Text(*f.Password)
	}
	if f.SSHKey != nil {
		srv.SSHKey = secret.Text(*f.SSHKey)
	}
	if f.Status != nil {
		srv.Status = *f.Status
	}
	if f.Purpose != nil {
		srv.Purpose = *f.Purpose
	}
	if f.BillingType != nil {
		srv.BillingType = *f.BillingType
	}
	if f.CostMonthEstimated != nil {
		srv.CostMonthEstimated = f.CostMonthEstimated
	}
	if f.DecommissionAt != nil {
		if *f.DecommissionAt == "" {
			srv.DecommissionAt = nil
		} else {
			t, err := domain.ParseMonth(*f.DecommissionAt)
			if err != nil {
				return err
			}
			srv.DecommissionAt = &t
		}
	}
	if f.ProviderID != nil {
		srv.ProviderID = f.ProviderID
	}
	if f.OwnerID != nil {
		srv.OwnerID = f.OwnerID
	}
	if f.OS != nil {
		srv.OS = *f.OS
	}
	if f.CPU != nil {
		srv.CPU = *f.CPU
	}
	if f.RAM != nil {
		srv.RAM = *f.RAM
	}
	if f.Storage != nil {
		srv.Storage = *f.Storage
	}
	if f.Location != nil {
		srv.Location = *f.Location
	}
	if f.Description != nil {
		srv.Description = *f.Description
	}
	if f.Tags != nil {
		srv.Tags = *f.Tags
	}
	if f.Account != nil {
		srv.Account = *f.Account
	}
	return nil
}
