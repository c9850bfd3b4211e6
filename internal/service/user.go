package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/rayhanbri/metronest-server-new/internal/identity"
	"github.com/rayhanbri/metronest-server-new/internal/model"
	"github.com/rayhanbri/metronest-server-new/internal/policy"
	"github.com/rayhanbri/metronest-server-new/internal/repository"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrNotAgent       = errors.New("user is not an agent")
	ErrInvalidRole    = errors.New("invalid role")
	ErrIdentityDelete = errors.New("identity provider delete failed")
)

// UserStore is the account registry surface the user service runs on.
type UserStore interface {
	Create(ctx context.Context, name, email, photoURL, role string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	SetRole(ctx context.Context, id, role string) error
	Delete(ctx context.Context, id string) error
}

// PropertyPurger is the slice of the listing registry the fraud cascade
// needs.
type PropertyPurger interface {
	DeleteVerifiedByAgent(ctx context.Context, agentEmail string) (int64, error)
}

type UserService struct {
	users      UserStore
	properties PropertyPurger
	provider   identity.Provider
}

func NewUserService(users UserStore, properties PropertyPurger, provider identity.Provider) *UserService {
	return &UserService{users: users, properties: properties, provider: provider}
}

// Register is idempotent on email: re-registering an existing account
// returns the stored record unchanged.
func (s *UserService) Register(ctx context.Context, req *model.RegisterUserRequest) (*model.User, error) {
	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	if !policy.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	return s.users.Create(ctx, req.Name, req.Email, req.PhotoURL, role)
}

func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) RoleOf(ctx context.Context, email string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return u.Role, nil
}

func (s *UserService) SetRole(ctx context.Context, id, role string) error {
	if !policy.ValidRole(role) {
		return ErrInvalidRole
	}
	if err := s.users.SetRole(ctx, id, role); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// MarkFraud demotes an agent and purges their verified listings. The role
// flip is issued before the purge: a fault in between leaves a correctly
// demoted account with stale verified listings, never purged listings
// under a still-trusted account.
func (s *UserService) MarkFraud(ctx context.Context, id string) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !policy.CanMarkFraud(u.Role) {
		return ErrNotAgent
	}

	if err := s.users.SetRole(ctx, id, model.RoleFraud); err != nil {
		return err
	}

	removed, err := s.properties.DeleteVerifiedByAgent(ctx, u.Email)
	if err != nil {
		return err
	}
	log.Printf("Marked %s as fraud, removed %d verified listings", u.Email, removed)
	return nil
}

// Delete removes the local account record, then best-effort deletes the
// identity-provider record. A missing provider record is skipped; any
// other provider fault is reported after the local delete has already
// taken effect.
func (s *UserService) Delete(ctx context.Context, id, email string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.provider.DeleteUserByEmail(ctx, email); err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			log.Printf("User %s not found at identity provider, skipping remote delete", email)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrIdentityDelete, err)
	}
	return nil
}
