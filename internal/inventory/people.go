package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"serverbook/internal/domain"
)

// CreatePerson inserts a person and assigns their ID and timestamps.
func (s *Store) CreatePerson(ctx context.Context, p *domain.Person) error {
	ts := now()
	p.CreatedAt, p.UpdatedAt = ts, ts

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO people (name, email, telegram, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		p.Name, p.Email, p.Telegram, fmtTime(p.CreatedAt), fmtTime(p.UpdatedAt),
	)
	if err != nil {
		return storeErr("create person", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("inventory: create person: %w", err)
	}
	p.ID = id
	return nil
}

// ListPeople returns all people ordered by name ascending, each annotated
// with the count of servers they own.
func (s *Store) ListPeople(ctx context.Context) ([]domain.Person, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.email, p.telegram, p.created_at, p.updated_at,
		       COUNT(srv.id)
		FROM people p
		LEFT JOIN servers srv ON srv.owner_id = p.id
		GROUP BY p.id
		ORDER BY p.name ASC`)
	if err != nil {
		return nil, storeErr("list people", err)
	}
	defer rows.Close()

	people := []domain.Person{}
	for rows.Next() {
		var p domain.Person
		var created, updated string
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Telegram, &created, &updated, &p.ServerCount); err != nil {
			return nil, fmt.Errorf("inventory: scan person: %w", err)
		}
		p.CreatedAt, p.UpdatedAt = parseTime(created), parseTime(updated)
		people = append(people, p)
	}
	return people, rows.Err()
}

// GetPerson returns a person with their owned servers ordered by name.
func (s *Store) GetPerson(ctx context.Context, id int64) (*domain.Person, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, telegram, created_at, updated_at
		FROM people WHERE id = ?`, id)

	var p domain.Person
	var created, updated string
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Telegram, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("inventory: person %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("get person", err)
	}
	p.CreatedAt, p.UpdatedAt = parseTime(created), parseTime(updated)

	servers, err := s.queryServers(ctx, "WHERE s.owner_id = ? ORDER BY s.name ASC", id)
	if err != nil {
		return nil, err
	}
	p.ServersOwned = servers
	return &p, nil
}

// UpdatePerson writes all mutable columns of an existing person and
// refreshes their updated_at.
func (s *Store) UpdatePerson(ctx context.Context, p *domain.Person) error {
	p.UpdatedAt = now()
	res, err := s.db.ExecContext(ctx, `
		UPDATE people SET name=?, email=?, telegram=?, updated_at=?
		WHERE id=?`,
		p.Name, p.Email, p.Telegram, fmtTime(p.UpdatedAt), p.ID,
	)
	if err != nil {
		return storeErr("update person", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("inventory: person %d: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// DeletePerson removes a person. Servers they owned keep existing but lose
// their owner assignment (ON DELETE SET NULL).
func (s *Store) DeletePerson(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM people WHERE id = ?`, id)
	if err != nil {
		return storeErr("delete person", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("inventory: person %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
