package registry

import (
	"context"
	"fmt"

	"serverbook/internal/domain"
	"serverbook/internal/inventory"
)

// Costs is the ledger of monthly cost snapshots.
type Costs struct {
	store *inventory.Store
}

// NewCosts creates a cost ledger over the given store.
func NewCosts(store *inventory.Store) *Costs {
	return &Costs{store: store}
}

// Create records a snapshot. Server reference, month, and cost are
// required; the cost must not be negative. The returned record carries the
// full server.
func (r *Costs) Create(ctx context.Context, f domain.SnapshotFields) (*domain.CostSnapshot, error) {
	if f.ServerID == nil {
		return nil, fmt.Errorf("registry: snapshot server is required: %w", domain.ErrConstraint)
	}
	monthRaw, err := requireText("snapshot month", f.Month)
	if err != nil {
		return nil, err
	}
	month, err := domain.ParseMonth(monthRaw)
	if err != nil {
		return nil, err
	}
	if f.CostMonth == nil {
		return nil, fmt.Errorf("registry: snapshot cost is required: %w", domain.ErrConstraint)
	}
	if *f.CostMonth < 0 {
		return nil, fmt.Errorf("registry: snapshot cost must not be negative: %w", domain.ErrValidation)
	}

	snap := &domain.CostSnapshot{
		ServerID:  *f.ServerID,
		Month:     month,
		CostMonth: *f.CostMonth,
	}
	if f.Source != nil {
		snap.Source = *f.Source
	}
	if err := r.store.CreateSnapshot(ctx, snap); err != nil {
		return nil, err
	}
	return r.store.GetSnapshot(ctx, snap.ID)
}

// List returns every snapshot, month descending, with server summaries.
func (r *Costs) List(ctx context.Context) ([]domain.CostSnapshot, error) {
	return r.store.ListSnapshots(ctx)
}

// ListByServer returns one server's snapshots, month descending. An
// unknown server id yields an empty list; existence is not checked here,
// matching the list filter contract.
func (r *Costs) ListByServer(ctx context.Context, serverID int64) ([]domain.CostSnapshot, error) {
	return r.store.ListSnapshotsByServer(ctx, serverID)
}

// Get returns one snapshot with its full server record.
func (r *Costs) Get(ctx context.Context, id int64) (*domain.CostSnapshot, error) {
	return r.store.GetSnapshot(ctx, id)
}

// Update applies the supplied fields to an existing snapshot. Month is
// parsed with the same rule as Create; a reassigned server reference must
// resolve.
func (r *Costs) Update(ctx context.Context, id int64, f domain.SnapshotFields) (*domain.CostSnapshot, error) {
	snap, err := r.store.GetSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}

	if f.ServerID != nil {
		snap.ServerID = *f.ServerID
	}
	if f.Month != nil {
		month, err := domain.ParseMonth(*f.Month)
		if err != nil {
			return nil, err
		}
		snap.Month = month
	}
	if f.CostMonth != nil {
		if *f.CostMonth < 0 {
			return nil, fmt.Errorf("registry: snapshot cost must not be negative: %w", domain.ErrValidation)
		}
		snap.CostMonth = *f.CostMonth
	}
	if f.Source != nil {
		snap.Source = *f.Source
	}

	if err := r.store.UpdateSnapshot(ctx, snap); err != nil {
		return nil, err
	}
	return r.store.GetSnapshot(ctx, id)
}

// Delete removes a snapshot.
func (r *Costs) Delete(ctx context.Context, id int64) error {
	return r.store.DeleteSnapshot(ctx, id)
}
