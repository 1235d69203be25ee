package domain

import "time"

// Provider represents a hosting provider that servers are rented from.
type Provider struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	ConsoleURL string    `json:"consoleUrl,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// ServerCount is the number of servers referencing this provider.
	// Populated on list reads only.
	ServerCount int `json:"serverCount"`

	// Servers holds the provider's servers ordered by name.
	// Populated on single-record reads only.
	Servers []Server `json:"servers,omitempty"`
}

// ProviderFields carries create/update input for a provider. Nil fields
// were not supplied; partial updates leave them untouched.
type ProviderFields struct {
	Name       *string
	ConsoleURL *string
	Notes      *string
}
