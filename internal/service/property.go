package service

import (
	"context"
	"errors"

	"github.com/rayhanbri/metronest-server-new/internal/model"
	"github.com/rayhanbri/metronest-server-new/internal/policy"
	"github.com/rayhanbri/metronest-server-new/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound  = errors.New("property not found")
	ErrAgentNotFound     = errors.New("agent not found")
	ErrAgentFraud        = errors.New("agent is marked as fraud")
	ErrPropertyRejected  = errors.New("rejected property cannot be updated")
	ErrMissingFields     = errors.New("missing required fields")
	ErrInvalidPriceRange = errors.New("invalid price range")
	ErrInvalidID         = errors.New("invalid id")
	ErrInvalidStatus     = errors.New("invalid status")
)

const advertisedPageSize = 4

// PropertyStore is the listing registry surface.
type PropertyStore interface {
	Create(ctx context.Context, req *model.CreatePropertyRequest) (*model.Property, error)
	GetByID(ctx context.Context, id string) (*model.Property, error)
	Update(ctx context.Context, id string, req *model.UpdatePropertyRequest) error
	SetStatus(ctx context.Context, id, status string) error
	Advertise(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	All(ctx context.Context) ([]*model.Property, error)
	ByAgent(ctx context.Context, agentEmail string) ([]*model.Property, error)
	Verified(ctx context.Context) ([]*model.Property, error)
	Advertised(ctx context.Context, limit int) ([]*model.Property, error)
}

// RoleLookup resolves an account's role by email.
type RoleLookup interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type PropertyService struct {
	properties PropertyStore
	users      RoleLookup
}

func NewPropertyService(properties PropertyStore, users RoleLookup) *PropertyService {
	return &PropertyService{properties: properties, users: users}
}

func (s *PropertyService) Create(ctx context.Context, req *model.CreatePropertyRequest) (*model.Property, error) {
	if req.Title == "" || req.Location == "" || req.Image == "" || req.AgentEmail == "" {
		return nil, ErrMissingFields
	}

	agent, err := s.users.GetByEmail(ctx, req.AgentEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	if !policy.CanListProperty(agent.Role) {
		return nil, ErrAgentFraud
	}

	return s.properties.Create(ctx, req)
}

func (s *PropertyService) Update(ctx context.Context, id string, req *model.UpdatePropertyRequest) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	if req.Title == "" || req.Location == "" || req.Image == "" || req.AgentName == "" || req.AgentEmail == "" {
		return ErrMissingFields
	}
	if req.PriceMin == nil || req.PriceMax == nil || *req.PriceMin < 1 || *req.PriceMax < *req.PriceMin {
		return ErrInvalidPriceRange
	}

	existing, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}
	if !policy.CanEditProperty(existing.Status) {
		return ErrPropertyRejected
	}
	if req.Status == "" {
		req.Status = existing.Status
	}

	return s.properties.Update(ctx, id, req)
}

// SetStatus applies an admin verification decision. Verifying a listing
// whose owner has since been demoted to fraud is refused: a fraud account
// can never own a verified listing.
func (s *PropertyService) SetStatus(ctx context.Context, id, status string) error {
	if !policy.ValidReviewStatus(status) {
		return ErrInvalidStatus
	}

	if status == model.StatusVerified {
		p, err := s.properties.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrPropertyNotFound
			}
			return err
		}
		agent, err := s.users.GetByEmail(ctx, p.AgentEmail)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if agent != nil && agent.Role == model.RoleFraud {
			return ErrAgentFraud
		}
	}

	if err := s.properties.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}
	return nil
}

func (s *PropertyService) Advertise(ctx context.Context, id string) error {
	if err := s.properties.Advertise(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}
	return nil
}

func (s *PropertyService) Delete(ctx context.Context, id string) error {
	if err := s.properties.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}
	return nil
}

func (s *PropertyService) GetByID(ctx context.Context, id string) (*model.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PropertyService) All(ctx context.Context) ([]*model.Property, error) {
	return s.properties.All(ctx)
}

func (s *PropertyService) ByAgent(ctx context.Context, agentEmail string) ([]*model.Property, error) {
	return s.properties.ByAgent(ctx, agentEmail)
}

func (s *PropertyService) Verified(ctx context.Context) ([]*model.Property, error) {
	return s.properties.Verified(ctx)
}

func (s *PropertyService) Advertised(ctx context.Context) ([]*model.Property, error) {
	return s.properties.Advertised(ctx, advertisedPageSize)
}
