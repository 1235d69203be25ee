package inventory

import "fmt"

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS providers (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			name        TEXT NOT NULL,
			console_url TEXT NOT NULL DEFAULT '',
			notes       TEXT NOT NULL DEFAULT '',
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS people (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL DEFAULT '',
			telegram   TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS servers (
			id                   INTEGER PRIMARY KEY AUTOINCREMENT,
			name                 TEXT NOT NULL,
			hostname             TEXT NOT NULL,
			ip_public            TEXT NOT NULL DEFAULT '',
			ip_private           TEXT NOT NULL DEFAULT '',
			port                 INTEGER,
			username             TEXT NOT NULL DEFAULT '',
			password             TEXT NOT NULL DEFAULT '',
			ssh_key              TEXT NOT NULL DEFAULT '',
			status               TEXT NOT NULL DEFAULT 'ACTIVE',
			purpose              TEXT NOT NULL DEFAULT 'DEV',
			billing_type         TEXT NOT NULL DEFAULT 'MONTHLY',
			cost_month_estimated REAL,
			decommission_at      TEXT,
			provider_id          INTEGER REFERENCES providers(id) ON DELETE SET NULL,
			owner_id             INTEGER REFERENCES people(id) ON DELETE SET NULL,
			os                   TEXT NOT NULL DEFAULT '',
			cpu                  TEXT NOT NULL DEFAULT '',
			ram                  TEXT NOT NULL DEFAULT '',
			storage              TEXT NOT NULL DEFAULT '',
			location             TEXT NOT NULL DEFAULT '',
			description          TEXT NOT NULL DEFAULT '',
			tags                 TEXT NOT NULL DEFAULT '',
			account              TEXT NOT NULL DEFAULT '',
			created_at           TEXT NOT NULL,
			updated_at           TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_servers_provider ON servers(provider_id);`,
		`CREATE INDEX IF NOT EXISTS idx_servers_owner ON servers(owner_id);`,
		`CREATE TABLE IF NOT EXISTS cost_snapshots (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			server_id  INTEGER NOT NULL REFERENCES servers(id) ON DELETE CASCADE,
			month      TEXT NOT NULL,
			cost_month REAL NOT NULL,
			source     TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_cost_snapshots_server_month ON cost_snapshots(server_id, month DESC);`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("inventory: migration failed: %w", err)
		}
	}
	return nil
}
