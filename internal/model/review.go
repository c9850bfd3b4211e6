package model

import "time"

type Review struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	UserEmail  string    `json:"userEmail"`
	UserName   string    `json:"userName,omitempty"`
	UserPhoto  string    `json:"userPhoto,omitempty"`
	Role       string    `json:"role,omitempty"`
	ReviewText string    `json:"reviewText"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateReviewRequest struct {
	PropertyID string `json:"propertyId"`
	UserEmail  string `json:"userEmail"`
	UserName   string `json:"userName"`
	UserPhoto  string `json:"userPhoto"`
	Role       string `json:"role"`
	ReviewText string `json:"reviewText"`
}
