package bakery

import "encoding/json"

// Bakery is one tenant: a confectionery addressed by its unique slug. The
// settings blob is owned by the catalog aggregate and stored opaque here.
type Bakery struct {
	ID        string          `json:"id"`
	Slug      string          `json:"slug"`
	Name      string          `json:"confectioneryName"`
	Settings  json.RawMessage `json:"settings,omitempty"`
	UserID    string          `json:"userId,omitempty"`
	CreatedAt string          `json:"createdAt,omitempty"`
	UpdatedAt string          `json:"updatedAt,omitempty"`
}
