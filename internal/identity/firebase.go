package identity

import (
	"context"
	"encoding/base64"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseProvider verifies Firebase ID tokens and manages Firebase Auth
// user records. It is the production Provider implementation.
type FirebaseProvider struct {
	client *auth.Client
}

// NewFirebaseProvider builds a provider from a base64-encoded service
// account key (the form it arrives in from the environment).
func NewFirebaseProvider(ctx context.Context, encodedServiceKey string) (*FirebaseProvider, error) {
	key, err := base64.StdEncoding.DecodeString(encodedServiceKey)
	if err != nil {
		return nil, fmt.Errorf("decode firebase service key: %w", err)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(key))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth: %w", err)
	}

	return &FirebaseProvider{client: client}, nil
}

func (p *FirebaseProvider) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	decoded, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}

	email, _ := decoded.Claims["email"].(string)
	return &Identity{UID: decoded.UID, Email: email}, nil
}

func (p *FirebaseProvider) DeleteUserByEmail(ctx context.Context, email string) error {
	record, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}

	if err := p.client.DeleteUser(ctx, record.UID); err != nil {
		if auth.IsUserNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
