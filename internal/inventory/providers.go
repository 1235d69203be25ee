package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"serverbook/internal/domain"
)

// CreateProvider inserts a provider and assigns its ID and timestamps.
func (s *Store) CreateProvider(ctx context.Context, p *domain.Provider) error {
	ts := now()
	p.CreatedAt, p.UpdatedAt = ts, ts

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO providers (name, console_url, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		p.Name, p.ConsoleURL, p.Notes, fmtTime(p.CreatedAt), fmtTime(p.UpdatedAt),
	)
	if err != nil {
		return storeErr("create provider", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("inventory: create provider: %w", err)
	}
	p.ID = id
	return nil
}

// ListProviders returns all providers ordered by name ascending, each
// annotated with the count of servers referencing it.
func (s *Store) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.console_url, p.notes, p.created_at, p.updated_at,
		       COUNT(srv.id)
		FROM providers p
		LEFT JOIN servers srv ON srv.provider_id = p.id
		GROUP BY p.id
		ORDER BY p.name ASC`)
	if err != nil {
		return nil, storeErr("list providers", err)
	}
	defer rows.Close()

	providers := []domain.Provider{}
	for rows.Next() {
		var p domain.Provider
		var created, updated string
		if err := rows.Scan(&p.ID, &p.Name, &p.ConsoleURL, &p.Notes, &created, &updated, &p.ServerCount); err != nil {
			return nil, fmt.Errorf("inventory: scan provider: %w", err)
		}
		p.CreatedAt, p.UpdatedAt = parseTime(created), parseTime(updated)
		providers = append(providers, p)
	}
	return providers, rows.Err()
}

// GetProvider returns a provider with its servers ordered by name.
func (s *Store) GetProvider(ctx context.Context, id int64) (*domain.Provider, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, console_url, notes, created_at, updated_at
		FROM providers WHERE id = ?`, id)

	var p domain.Provider
	var created, updated string
	err := row.Scan(&p.ID, &p.Name, &p.ConsoleURL, &p.Notes, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("inventory: provider %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("get provider", err)
	}
	p.CreatedAt, p.UpdatedAt = parseTime(created), parseTime(updated)

	servers, err := s.queryServers(ctx, "WHERE s.provider_id = ? ORDER BY s.name ASC", id)
	if err != nil {
		return nil, err
	}
	p.Servers = servers
	return &p, nil
}

// UpdateProvider writes all mutable columns of an existing provider and
// refreshes its updated_at.
func (s *Store) UpdateProvider(ctx context.Context, p *domain.Provider) error {
	p.UpdatedAt = now()
	res, err := s.db.ExecContext(ctx, `
		UPDATE providers SET name=?, console_url=?, notes=?, updated_at=?
		WHERE id=?`,
		p.Name, p.ConsoleURL, p.Notes, fmtTime(p.UpdatedAt), p.ID,
	)
	if err != nil {
		return storeErr("update provider", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("inventory: provider %d: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteProvider removes a provider. Referencing servers keep existing but
// lose their provider assignment (ON DELETE SET NULL).
func (s *Store) DeleteProvider(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM providers WHERE id = ?`, id)
	if err != nil {
		return storeErr("delete provider", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("inventory: provider %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
