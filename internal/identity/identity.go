// Package identity wraps the external identity provider used to verify
// bearer credentials and manage the remote user records behind them.
package identity

import (
	"context"
	"errors"
)

var (
	// ErrUserNotFound means the provider has no record for the email.
	// Account deletion treats this as a non-fatal skip.
	ErrUserNotFound = errors.New("identity: user not found")
)

// Identity is the verified claim set attached to a request after the
// auth gate has accepted its credential.
type Identity struct {
	UID   string
	Email string
}

type Provider interface {
	// VerifyToken validates an opaque bearer credential and returns the
	// identity it asserts. Any failure (expired, malformed, revoked)
	// carries the provider's diagnostic message.
	VerifyToken(ctx context.Context, token string) (*Identity, error)

	// DeleteUserByEmail removes the provider-side record for email.
	// Returns ErrUserNotFound when no such record exists.
	DeleteUserByEmail(ctx context.Context, email string) error
}
