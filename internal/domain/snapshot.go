package domain

import "time"

// CostSnapshot records what a server cost in a given calendar month.
// Multiple snapshots may exist for the same (server, month); callers that
// need "the" snapshot for a month pick the most recently created.
type CostSnapshot struct {
	ID        int64     `json:"id"`
	ServerID  int64     `json:"serverId"`
	Month     time.Time `json:"month"`
	CostMonth float64   `json:"costMonth"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Server is resolved from ServerID on reads. List reads carry only a
	// summary (id, name, hostname); single-record reads carry the full
	// record.
	Server *Server `json:"server,omitempty"`
}

// SnapshotFields carries create/update input for a cost snapshot. Nil
// fields were not supplied. Month is the raw month string and is parsed
// with ParseMonth before storage.
type SnapshotFields struct {
	ServerID  *int64
	Month     *string
	CostMonth *float64
	Source    *string
}
