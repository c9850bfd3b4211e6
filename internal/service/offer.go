package service

import (
	"context"
	"errors"

	"github.com/rayhanbri/metronest-server-new/internal/model"
	"github.com/rayhanbri/metronest-server-new/internal/policy"
	"github.com/rayhanbri/metronest-server-new/internal/repository"
)

var (
	ErrOfferNotFound    = errors.New("offer not found")
	ErrNotBuyer         = errors.New("only regular users can make an offer")
	ErrAmountOutOfRange = errors.New("offer amount is outside the allowed range")
	ErrOfferDecided     = errors.New("another offer for this property was already accepted")
)

// OfferStore is the offer registry surface.
type OfferStore interface {
	Create(ctx context.Context, req *model.CreateOfferRequest) (*model.Offer, error)
	GetByID(ctx context.Context, id string) (*model.Offer, error)
	SetStatus(ctx context.Context, id, status string) error
	RejectOthers(ctx context.Context, propertyID, acceptedID string) error
	MarkPaid(ctx context.Context, id, transactionID string) error
	ByAgent(ctx context.Context, agentEmail string) ([]*model.Offer, error)
	ByBuyer(ctx context.Context, buyerEmail string) ([]*model.Offer, error)
	SoldByAgent(ctx context.Context, agentEmail string) ([]*model.Offer, error)
}

// PropertyLookup resolves the listing an offer references.
type PropertyLookup interface {
	GetByID(ctx context.Context, id string) (*model.Property, error)
}

type OfferService struct {
	offers     OfferStore
	properties PropertyLookup
	users      RoleLookup
}

func NewOfferService(offers OfferStore, properties PropertyLookup, users RoleLookup) *OfferService {
	return &OfferService{offers: offers, properties: properties, users: users}
}

func (s *OfferService) Create(ctx context.Context, req *model.CreateOfferRequest) (*model.Offer, error) {
	if req.PropertyID == "" || req.BuyerEmail == "" {
		return nil, ErrMissingFields
	}

	buyer, err := s.users.GetByEmail(ctx, req.BuyerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotBuyer
		}
		return nil, err
	}
	if !policy.CanMakeOffer(buyer.Role) {
		return nil, ErrNotBuyer
	}

	property, err := s.properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	if req.OfferAmount == nil || !policy.OfferInRange(*req.OfferAmount, property.PriceMin, property.PriceMax) {
		return nil, ErrAmountOutOfRange
	}

	return s.offers.Create(ctx, req)
}

// Accept marks one offer accepted and sweeps every competing offer on the
// same property to rejected. The sweep runs even when no siblings exist.
// The accept and the sweep are two sequential writes; the store's unique
// accepted-per-property constraint keeps a racing second accept from
// producing two winners.
func (s *OfferService) Accept(ctx context.Context, id string) error {
	offer, err := s.offers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOfferNotFound
		}
		return err
	}

	if err := s.offers.SetStatus(ctx, id, model.OfferAccepted); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrOfferDecided
		}
		return err
	}

	return s.offers.RejectOthers(ctx, offer.PropertyID, id)
}

func (s *OfferService) Reject(ctx context.Context, id string) error {
	if err := s.offers.SetStatus(ctx, id, model.OfferRejected); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOfferNotFound
		}
		return err
	}
	return nil
}

// MarkPaid records the payment reference and moves the offer to bought.
// It trusts its caller to invoke it only after payment confirmation.
func (s *OfferService) MarkPaid(ctx context.Context, id, transactionID string) error {
	if transactionID == "" {
		return ErrMissingFields
	}
	if err := s.offers.MarkPaid(ctx, id, transactionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOfferNotFound
		}
		return err
	}
	return nil
}

func (s *OfferService) GetByID(ctx context.Context, id string) (*model.Offer, error) {
	o, err := s.offers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OfferService) ForAgent(ctx context.Context, agentEmail string) ([]*model.Offer, error) {
	return s.offers.ByAgent(ctx, agentEmail)
}

func (s *OfferService) ForBuyer(ctx context.Context, buyerEmail string) ([]*model.Offer, error) {
	return s.offers.ByBuyer(ctx, buyerEmail)
}

func (s *OfferService) SoldForAgent(ctx context.Context, agentEmail string) ([]*model.Offer, error) {
	return s.offers.SoldByAgent(ctx, agentEmail)
}
