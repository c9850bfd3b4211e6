package model

import "time"

// Listing verification statuses. A rejected listing is immutable to
// further field edits.
const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

type Property struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Location     string     `json:"location"`
	Image        string     `json:"image"`
	PriceMin     float64    `json:"priceMin"`
	PriceMax     float64    `json:"priceMax"`
	AgentName    string     `json:"agentName"`
	AgentEmail   string     `json:"agentEmail"`
	Status       string     `json:"status"`
	IsAdvertised bool       `json:"isAdvertised"`
	VerifiedAt   *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type CreatePropertyRequest struct {
	Title      string  `json:"title"`
	Location   string  `json:"location"`
	Image      string  `json:"image"`
	PriceMin   float64 `json:"priceMin"`
	PriceMax   float64 `json:"priceMax"`
	AgentName  string  `json:"agentName"`
	AgentEmail string  `json:"agentEmail"`
}

// UpdatePropertyRequest is a full-field replace; prices arrive as
// json.Number-compatible values and are range-checked before any write.
type UpdatePropertyRequest struct {
	Title      string   `json:"title"`
	Location   string   `json:"location"`
	Image      string   `json:"image"`
	PriceMin   *float64 `json:"priceMin"`
	PriceMax   *float64 `json:"priceMax"`
	AgentName  string   `json:"agentName"`
	AgentEmail string   `json:"agentEmail"`
	Status     string   `json:"status"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}
