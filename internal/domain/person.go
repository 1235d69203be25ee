package domain

import "time"

// Person represents someone responsible for one or more servers.
type Person struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Telegram  string    `json:"telegram,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// ServerCount is the number of servers owned by this person.
	// Populated on list reads only.
	ServerCount int `json:"serverCount"`

	// ServersOwned holds the person's servers ordered by name.
	// Populated on single-record reads only.
	ServersOwned []Server `json:"serversOwned,omitempty"`
}

// PersonFields carries create/update input for a person. Nil fields were
// not supplied; partial updates leave them untouched.
type PersonFields struct {
	Name     *string
	Email    *string
	Telegram *string
}
