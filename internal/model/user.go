package model

import "time"

// Account roles. A role is mutated only by an admin action or by the
// fraud demotion cascade.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
	RoleAdmin = "admin"
	RoleFraud = "fraud"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
	Role     string `json:"role"`
}

type SetRoleRequest struct {
	Role string `json:"role"`
}
