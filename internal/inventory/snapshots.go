package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"serverbook/internal/domain"
)

// CreateSnapshot inserts a cost snapshot and assigns its ID and
// timestamps. A dangling server reference fails with domain.ErrConstraint.
// Multiple snapshots for the same (server, month) are allowed.
func (s *Store) CreateSnapshot(ctx context.Context, snap *domain.CostSnapshot) error {
	ts := now()
	snap.CreatedAt, snap.UpdatedAt = ts, ts

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO cost_snapshots (server_id, month, cost_month, source, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		snap.ServerID, fmtTime(snap.Month), snap.CostMonth, snap.Source,
		fmtTime(snap.CreatedAt), fmtTime(snap.UpdatedAt),
	)
	if err != nil {
		return storeErr("create snapshot", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("inventory: create snapshot: %w", err)
	}
	snap.ID = id
	return nil
}

// ListSnapshots returns all cost snapshots ordered by month descending,
// each with a server summary (id, name, hostname) attached.
func (s *Store) ListSnapshots(ctx context.Context) ([]domain.CostSnapshot, error) {
	return s.querySnapshots(ctx, "")
}

// ListSnapshotsByServer returns one server's snapshots ordered by month
// descending. An unknown server id yields an empty list, not an error; the
// filter does not check server existence.
func (s *Store) ListSnapshotsByServer(ctx context.Context, serverID int64) ([]domain.CostSnapshot, error) {
	return s.querySnapshots(ctx, "WHERE cs.server_id = ?", serverID)
}

// GetSnapshot returns a snapshot with its full server record attached.
func (s *Store) GetSnapshot(ctx context.Context, id int64) (*domain.CostSnapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, server_id, month, cost_month, source, created_at, updated_at
		FROM cost_snapshots WHERE id = ?`, id)

	var snap domain.CostSnapshot
	var month, created, updated string
	err := row.Scan(&snap.ID, &snap.ServerID, &month, &snap.CostMonth, &snap.Source, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("inventory: snapshot %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("get snapshot", err)
	}
	snap.Month = parseTime(month)
	snap.CreatedAt, snap.UpdatedAt = parseTime(created), parseTime(updated)

	servers, err := s.queryServers(ctx, "WHERE s.id = ?", snap.ServerID)
	if err != nil {
		return nil, err
	}
	if len(servers) > 0 {
		snap.Server = &servers[0]
	}
	return &snap, nil
}

// UpdateSnapshot writes all mutable columns of an existing snapshot and
// refreshes its updated_at.
func (s *Store) UpdateSnapshot(ctx context.Context, snap *domain.CostSnapshot) error {
	snap.UpdatedAt = now()
	res, err := s.db.ExecContext(ctx, `
		UPDATE cost_snapshots SET server_id=?, month=?, cost_month=?, source=?, updated_at=?
		WHERE id=?`,
		snap.ServerID, fmtTime(snap.Month), snap.CostMonth, snap.Source,
		fmtTime(snap.UpdatedAt), snap.ID,
	)
	if err != nil {
		return storeErr("update snapshot", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("inventory: snapshot %d: %w", snap.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteSnapshot removes a snapshot. Always available as a direct path
// regardless of the server-delete cascade.
func (s *Store) DeleteSnapshot(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cost_snapshots WHERE id = ?`, id)
	if err != nil {
		return storeErr("delete snapshot", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("inventory: snapshot %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// querySnapshots runs the snapshot select, month descending, with the
// server summary join. Ties on month break by id so the newest record wins.
func (s *Store) querySnapshots(ctx context.Context, clause string, args ...any) ([]domain.CostSnapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT cs.id, cs.server_id, cs.month, cs.cost_month, cs.source, cs.created_at, cs.updated_at,
		       s.name, s.hostname
		FROM cost_snapshots cs
		JOIN servers s ON s.id = cs.server_id
		`+clause+`
		ORDER BY cs.month DESC, cs.id DESC`, args...)
	if err != nil {
		return nil, storeErr("query snapshots", err)
	}
	defer rows.Close()

	snapshots := []domain.CostSnapshot{}
	for rows.Next() {
		var snap domain.CostSnapshot
		var month, created, updated string
		var serverName, serverHostname string
		err := rows.Scan(&snap.ID, &snap.ServerID, &month, &snap.CostMonth, &snap.Source,
			&created, &updated, &serverName, &serverHostname)
		if err != nil {
			return nil, fmt.Errorf("inventory: scan snapshot: %w", err)
		}
		snap.Month = parseTime(month)
		snap.CreatedAt, snap.UpdatedAt = parseTime(created), parseTime(updated)
		snap.Server = &domain.Server{ID: snap.ServerID, Name: serverName, Hostname: serverHostname}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}

// latestSnapshots returns each server's most recent snapshot (by month,
// then by id) keyed by server id.
func (s *Store) latestSnapshots(ctx context.Context) (map[int64]domain.CostSnapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT cs.id, cs.server_id, cs.month, cs.cost_month, cs.source, cs.created_at, cs.updated_at
		FROM cost_snapshots cs
		WHERE cs.id = (
			SELECT c2.id FROM cost_snapshots c2
			WHERE c2.server_id = cs.server_id
			ORDER BY c2.month DESC, c2.id DESC
			LIMIT 1
		)`)
	if err != nil {
		return nil, storeErr("latest snapshots", err)
	}
	defer rows.Close()

	latest := make(map[int64]domain.CostSnapshot)
	for rows.Next() {
		var snap domain.CostSnapshot
		var month, created, updated string
		err := rows.Scan(&snap.ID, &snap.ServerID, &month, &snap.CostMonth, &snap.Source, &created, &updated)
		if err != nil {
			return nil, fmt.Errorf("inventory: scan snapshot: %w", err)
		}
		snap.Month = parseTime(month)
		snap.CreatedAt, snap.UpdatedAt = parseTime(created), parseTime(updated)
		latest[snap.ServerID] = snap
	}
	return latest, rows.Err()
}
