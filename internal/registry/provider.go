package registry

import (
	"context"
	"fmt"
	"strings"

	"serverbook/internal/domain"
	"serverbook/internal/inventory"
)

// Providers is the registry for hosting providers.
type Providers struct {
	store *inventory.Store
}

// NewProviders creates a provider registry over the given store.
func NewProviders(store *inventory.Store) *Providers {
	return &Providers{store: store}
}

// Create records a new provider. Name is the only required field.
func (r *Providers) Create(ctx context.Context, f domain.ProviderFields) (*domain.Provider, error) {
	name, err := requireText("provider name", f.Name)
	if err != nil {
		return nil, err
	}

	p := &domain.Provider{Name: name}
	if f.ConsoleURL != nil {
		p.ConsoleURL = *f.ConsoleURL
	}
	if f.Notes != nil {
		p.Notes = *f.Notes
	}
	if err := r.store.CreateProvider(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all providers ordered by name, each with its server count.
func (r *Providers) List(ctx context.Context) ([]domain.Provider, error) {
	return r.store.ListProviders(ctx)
}

// Get returns one provider with its servers ordered by name.
func (r *Providers) Get(ctx context.Context, id int64) (*domain.Provider, error) {
	return r.store.GetProvider(ctx, id)
}

// Update applies the supplied fields to an existing provider and returns
// the plain updated record. Name cannot be blanked.
func (r *Providers) Update(ctx context.Context, id int64, f domain.ProviderFields) (*domain.Provider, error) {
	p, err := r.store.GetProvider(ctx, id)
	if err != nil {
		return nil, err
	}

	if f.Name != nil {
		if strings.TrimSpace(*f.Name) == "" {
			return nil, fmt.Errorf("registry: provider name is required: %w", domain.ErrConstraint)
		}
		p.Name = *f.Name
	}
	if f.ConsoleURL != nil {
		p.ConsoleURL = *f.ConsoleURL
	}
	if f.Notes != nil {
		p.Notes = *f.Notes
	}

	if err := r.store.UpdateProvider(ctx, p); err != nil {
		return nil, err
	}
	p.Servers = nil
	return p, nil
}

// Delete removes a provider; its servers survive unassigned.
func (r *Providers) Delete(ctx context.Context, id int64) error {
	return r.store.DeleteProvider(ctx, id)
}
