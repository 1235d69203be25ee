package registry

import (
	"context"
	"fmt"
	"strings"

	"serverbook/internal/domain"
	"serverbook/internal/inventory"
)

// People is the registry for server owners.
type People struct {
	store *inventory.Store
}

// NewPeople creates a person registry over the given store.
func NewPeople(store *inventory.Store) *People {
	return &People{store: store}
}

// Create records a new person. Name is required; email, if supplied, must
// be well-formed.
func (r *People) Create(ctx context.Context, f domain.PersonFields) (*domain.Person, error) {
	name, err := requireText("person name", f.Name)
	if err != nil {
		return nil, err
	}

	p := &domain.Person{Name: name}
	if f.Email != nil && *f.Email != "" {
		if err := validateEmail(*f.Email); err != nil {
			return nil, err
		}
		p.Email = *f.Email
	}
	if f.Telegram != nil {
		p.Telegram = *f.Telegram
	}
	if err := r.store.CreatePerson(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all people ordered by name, each with their server count.
func (r *People) List(ctx context.Context) ([]domain.Person, error) {
	return r.store.ListPeople(ctx)
}

// Get returns one person with their owned servers ordered by name.
func (r *People) Get(ctx context.Context, id int64) (*domain.Person, error) {
	return r.store.GetPerson(ctx, id)
}

// Update applies the supplied fields to an existing person and returns the
// plain updated record. Supplying an empty email clears it.
func (r *People) Update(ctx context.Context, id int64, f domain.PersonFields) (*domain.Person, error) {
	p, err := r.store.GetPerson(ctx, id)
	if err != nil {
		return nil, err
	}

	if f.Name != nil {
		if strings.TrimSpace(*f.Name) == "" {
			return nil, fmt.Errorf("registry: person name is required: %w", domain.ErrConstraint)
		}
		p.Name = *f.Name
	}
	if f.Email != nil {
		if *f.Email != "" {
			if err := validateEmail(*f.Email); err != nil {
				return nil, err
			}
		}
		p.Email = *f.Email
	}
	if f.Telegram != nil {
		p.Telegram = *f.Telegram
	}

	if err := r.store.UpdatePerson(ctx, p); err != nil {
		return nil, err
	}
	p.ServersOwned = nil
	return p, nil
}

// Delete removes a person; their servers survive unowned.
func (r *People) Delete(ctx context.Context, id int64) error {
	return r.store.DeletePerson(ctx, id)
}
