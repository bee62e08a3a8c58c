package domain

import "time"

// Client represents a customer that owns ledger accounts.
type Client struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Category is a label clients can be grouped under.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// ClientCategory links a client to a category. Plain relation, no
// uniqueness is enforced.
type ClientCategory struct {
	ID         string
	ClientID   string
	CategoryID string
	CreatedAt  time.Time
}
