package model

import "time"

// Offer lifecycle. "bought" is terminal and carries the payment
// transaction reference.
const (
	OfferPending  = "pending"
	OfferAccepted = "accepted"
	OfferRejected = "rejected"
	OfferBought   = "bought"
)

type Offer struct {
	ID               string    `json:"id"`
	PropertyID       string    `json:"propertyId"`
	PropertyTitle    string    `json:"propertyTitle"`
	PropertyLocation string    `json:"propertyLocation"`
	PropertyImage    string    `json:"propertyImage"`
	AgentName        string    `json:"agentName"`
	AgentEmail       string    `json:"agentEmail"`
	BuyerName        string    `json:"buyerName"`
	BuyerEmail       string    `json:"buyerEmail"`
	OfferAmount      float64   `json:"offerAmount"`
	BuyingDate       string    `json:"buyingDate,omitempty"`
	Status           string    `json:"status"`
	TransactionID    *string   `json:"transactionId,omitempty"`
	OfferedAt        time.Time `json:"offeredAt"`
}

type CreateOfferRequest struct {
	PropertyID       string   `json:"propertyId"`
	PropertyTitle    string   `json:"propertyTitle"`
	PropertyLocation string   `json:"propertyLocation"`
	PropertyImage    string   `json:"propertyImage"`
	AgentName        string   `json:"agentName"`
	AgentEmail       string   `json:"agentEmail"`
	BuyerName        string   `json:"buyerName"`
	BuyerEmail       string   `json:"buyerEmail"`
	OfferAmount      *float64 `json:"offerAmount"`
	BuyingDate       string   `json:"buyingDate"`
}

type MarkPaidRequest struct {
	TransactionID string `json:"transactionId"`
}
