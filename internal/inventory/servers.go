package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"serverbook/internal/domain"
	"serverbook/internal/secret"
)

// serverColumns is the select list shared by every server read. The
// provider and owner joins resolve the weak references in the same query.
const serverColumns = `
	s.id, s.name, s.hostname, s.ip_public, s.ip_private, s.port,
	s.username, s.password, s.ssh_key,
	s.status, s.purpose, s.billing_type,
	s.cost_month_estimated, s.decommission_at,
	s.provider_id, s.owner_id,
	s.os, s.cpu, s.ram, s.storage, s.location, s.description, s.tags, s.account,
	s.created_at, s.updated_at,
	p.id, p.name, p.console_url, p.notes, p.created_at, p.updated_at,
	o.id, o.name, o.email, o.telegram, o.created_at, o.updated_at`

const serverFrom = `
	FROM servers s
	LEFT JOIN providers p ON p.id = s.provider_id
	LEFT JOIN people o ON o.id = s.owner_id`

// CreateServer inserts a server and assigns its ID and timestamps. A
// dangling provider or owner reference fails with domain.ErrConstraint and
// writes nothing.
func (s *Store) CreateServer(ctx context.Context, srv *domain.Server) error {
	ts := now()
	srv.CreatedAt, srv.UpdatedAt = ts, ts

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO servers (
			name, hostname, ip_public, ip_private, port,
			username, password, ssh_key,
			status, purpose, billing_type,
			cost_month_estimated, decommission_at,
			provider_id, owner_id,
			os, cpu, ram, storage, location, description, tags, account,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		srv.Name, srv.Hostname, srv.IPPublic, srv.IPPrivate, srv.Port,
		srv.Username, srv.Password.Reveal(), srv.SSHKey.Reveal(),
		string(srv.Status), string(srv.Purpose), string(srv.BillingType),
		srv.CostMonthEstimated, nullableTime(srv.DecommissionAt),
		srv.ProviderID, srv.OwnerID,
		srv.OS, srv.CPU, srv.RAM, srv.Storage, srv.Location, srv.Description, srv.Tags, srv.Account,
		fmtTime(srv.CreatedAt), fmtTime(srv.UpdatedAt),
	)
	if err != nil {
		return storeErr("create server", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("inventory: create server: %w", err)
	}
	srv.ID = id
	return nil
}

// ListServers returns all servers ordered by creation time descending,
// each with provider, owner, and its single most recent cost snapshot
// attached. The single snapshot is a display shortcut; GetServer carries
// the full history.
func (s *Store) ListServers(ctx context.Context) ([]domain.Server, error) {
	servers, err := s.queryServers(ctx, "ORDER BY s.created_at DESC, s.id DESC")
	if err != nil {
		return nil, err
	}
	if len(servers) == 0 {
		return servers, nil
	}

	latest, err := s.latestSnapshots(ctx)
	if err != nil {
		return nil, err
	}
	for i := range servers {
		if snap, ok := latest[servers[i].ID]; ok {
			servers[i].CostSnapshots = []domain.CostSnapshot{snap}
		}
	}
	return servers, nil
}

// GetServer returns a server with provider, owner, and the full cost
// snapshot history ordered by month descending.
func (s *Store) GetServer(ctx context.Context, id int64) (*domain.Server, error) {
	servers, err := s.queryServers(ctx, "WHERE s.id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(servers) == 0 {
		return nil, fmt.Errorf("inventory: server %d: %w", id, domain.ErrNotFound)
	}
	srv := servers[0]

	snapshots, err := s.ListSnapshotsByServer(ctx, id)
	if err != nil {
		return nil, err
	}
	// Detail reads don't repeat the parent inside each snapshot.
	for i := range snapshots {
		snapshots[i].Server = nil
	}
	srv.CostSnapshots = snapshots
	return &srv, nil
}

// UpdateServer writes all mutable columns of an existing server and
// refreshes its updated_at. A dangling foreign key fails with
// domain.ErrConstraint.
func (s *Store) UpdateServer(ctx context.Context, srv *domain.Server) error {
	srv.UpdatedAt = now()
	res, err := s.db.ExecContext(ctx, `
		UPDATE servers SET
			name=?, hostname=?, ip_public=?, ip_private=?, port=?,
			username=?, password=?, ssh_key=?,
			status=?, purpose=?, billing_type=?,
			cost_month_estimated=?, decommission_at=?,
			provider_id=?, owner_id=?,
			os=?, cpu=?, ram=?, storage=?, location=?, description=?, tags=?, account=?,
			updated_at=?
		WHERE id=?`,
		srv.Name, srv.Hostname, srv.IPPublic, srv.IPPrivate, srv.Port,
		srv.Username, srv.Password.Reveal(), srv.SSHKey.Reveal(),
		string(srv.Status), string(srv.Purpose), string(srv.BillingType),
		srv.CostMonthEstimated, nullableTime(srv.DecommissionAt),
		srv.ProviderID, srv.OwnerID,
		srv.OS, srv.CPU, srv.RAM, srv.Storage, srv.Location, srv.Description, srv.Tags, srv.Account,
		fmtTime(srv.UpdatedAt), srv.ID,
	)
	if err != nil {
		return storeErr("update server", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("inventory: server %d: %w", srv.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteServer removes a server and, via ON DELETE CASCADE, its cost
// snapshots.
func (s *Store) DeleteServer(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM servers WHERE id = ?`, id)
	if err != nil {
		return storeErr("delete server", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("inventory: server %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// queryServers runs the joined server select with an optional WHERE/ORDER
// clause and scans the rows with resolved provider and owner.
func (s *Store) queryServers(ctx context.Context, clause string, args ...any) ([]domain.Server, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+serverColumns+serverFrom+" "+clause, args...)
	if err != nil {
		return nil, storeErr("query servers", err)
	}
	defer rows.Close()

	servers := []domain.Server{}
	for rows.Next() {
		srv, err := scanServer(rows)
		if err != nil {
			return nil, err
		}
		servers = append(servers, *srv)
	}
	return servers, rows.Err()
}

// scanServer scans one row of the joined server select.
func scanServer(rows *sql.Rows) (*domain.Server, error) {
	var srv domain.Server
	var port sql.NullInt64
	var password, sshKey string
	var status, purpose, billing string
	var cost sql.NullFloat64
	var decommission sql.NullString
	var providerID, ownerID sql.NullInt64
	var created, updated string

	var pID sql.NullInt64
	var pName, pConsole, pNotes, pCreated, pUpdated sql.NullString
	var oID sql.NullInt64
	var oName, oEmail, oTelegram, oCreated, oUpdated sql.NullString

	err := rows.Scan(
		&srv.ID, &srv.Name, &srv.Hostname, &srv.IPPublic, &srv.IPPrivate, &port,
		&srv.Username, &password, &sshKey,
		&status, &purpose, &billing,
		&cost, &decommission,
		&providerID, &ownerID,
		&srv.OS, &srv.CPU, &srv.RAM, &srv.Storage, &srv.Location, &srv.Description, &srv.Tags, &srv.Account,
		&created, &updated,
		&pID, &pName, &pConsole, &pNotes, &pCreated, &pUpdated,
		&oID, &oName, &oEmail, &oTelegram, &oCreated, &oUpdated,
	)
	if err != nil {
		return nil, fmt.Errorf("inventory: scan server: %w", err)
	}

	if port.Valid {
		v := int(port.Int64)
		srv.Port = &v
	}
	srv.Password = secret.Text(password)
	srv.SSHKey = secret.Text(sshKey)
	srv.Status = domain.Status(status)
	srv.Purpose = domain.Purpose(purpose)
	srv.BillingType = domain.BillingType(billing)
	if cost.Valid {
		v := cost.Float64
		srv.CostMonthEstimated = &v
	}
	if decommission.Valid {
		t := parseTime(decommission.String)
		srv.DecommissionAt = &t
	}
	if providerID.Valid {
		v := providerID.Int64
		srv.ProviderID = &v
	}
	if ownerID.Valid {
		v := ownerID.Int64
		srv.OwnerID = &v
	}
	srv.CreatedAt, srv.UpdatedAt = parseTime(created), parseTime(updated)

	if pID.Valid {
		srv.Provider = &domain.Provider{
			ID:         pID.Int64,
			Name:       pName.String,
			ConsoleURL: pConsole.String,
			Notes:      pNotes.String,
			CreatedAt:  parseTime(pCreated.String),
			UpdatedAt:  parseTime(pUpdated.String),
		}
	}
	if oID.Valid {
		srv.Owner = &domain.Person{
			ID:        oID.Int64,
			Name:      oName.String,
			Email:     oEmail.String,
			Telegram:  oTelegram.String,
			CreatedAt: parseTime(oCreated.String),
			UpdatedAt: parseTime(oUpdated.String),
		}
	}
	return &srv, nil
}

// nullableTime formats an optional time for storage, passing NULL through.
func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return fmtTime(*t)
}
