package model

import (
	"encoding/json"
	"time"
)

// WishlistItem bookmarks a property for a user. PropertyInfo is an opaque
// snapshot of the property at the time it was saved.
type WishlistItem struct {
	ID           string          `json:"id"`
	UserEmail    string          `json:"userEmail"`
	PropertyID   string          `json:"propertyId"`
	PropertyInfo json.RawMessage `json:"propertyInfo,omitempty"`
	AddedAt      time.Time       `json:"addedAt"`
}

type AddWishlistRequest struct {
	UserEmail    string          `json:"userEmail"`
	PropertyID   string          `json:"propertyId"`
	PropertyInfo json.RawMessage `json:"propertyInfo"`
}
