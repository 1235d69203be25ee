package domain

import (
	"time"

	"serverbook/internal/secret"
)

// Server represents a machine tracked by the inventory. Provider and owner
// are weak references: a server with neither is valid ("unassigned").
type Server struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Hostname string `json:"hostname"`

	IPPublic  string `json:"ipPublic,omitempty"`
	IPPrivate string `json:"ipPrivate,omitempty"`
	Port      *int   `json:"port,omitempty"`

	Username string      `json:"username,omitempty"`
	Password secret.Text `json:"password,omitempty"`
	SSHKey   secret.Text `json:"sshKey,omitempty"`

	Status      Status      `json:"status"`
	Purpose     Purpose     `json:"purpose"`
	BillingType BillingType `json:"billingType"`

	CostMonthEstimated *float64   `json:"costMonthEstimated,omitempty"`
	DecommissionAt     *time.Time `json:"decommissionAt,omitempty"`

	ProviderID *int64 `json:"providerId,omitempty"`
	OwnerID    *int64 `json:"ownerId,omitempty"`

	OS          string `json:"os,omitempty"`
	CPU         string `json:"cpu,omitempty"`
	RAM         string `json:"ram,omitempty"`
	Storage     string `json:"storage,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Tags        string `json:"tags,omitempty"`
	Account     string `json:"account,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Provider and Owner are resolved from ProviderID/OwnerID on reads.
	Provider *Provider `json:"provider,omitempty"`
	Owner    *Person   `json:"owner,omitempty"`

	// CostSnapshots is ordered by month descending. Single-record reads
	// carry the full history; list reads carry at most the latest entry.
	CostSnapshots []CostSnapshot `json:"costSnapshots,omitempty"`
}

// ServerFields carries create/update input for a server. Nil fields were
// not supplied; partial updates leave them untouched. DecommissionAt is the
// raw date string and is parsed with ParseMonth before storage.
type ServerFields struct {
	Name      *string
	Hostname  *string
	IPPublic  *string
	IPPrivate *string
	Port      *int

	Username *string
	Password *string
	SSHKey   *string

	Status      *Status
	Purpose     *Purpose
	BillingType *BillingType

	CostMonthEstimated *float64
	DecommissionAt     *string

	ProviderID *int64
	OwnerID    *int64

	OS          *string
	CPU         *string
	RAM         *string
	Storage     *string
	Location    *string
	Description *string
	Tags        *string
	Account     *string
}
