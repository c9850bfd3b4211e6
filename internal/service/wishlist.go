package service

import (
	"context"
	"errors"

	"github.com/rayhanbri/metronest-server-new/internal/model"
	"github.com/rayhanbri/metronest-server-new/internal/repository"
)

var (
	ErrAlreadyWishlisted = errors.New("already in wishlist")
	ErrWishlistNotFound  = errors.New("wishlist item not found")
)

// WishlistStore is the favorites registry surface.
type WishlistStore interface {
	Create(ctx context.Context, req *model.AddWishlistRequest) (*model.WishlistItem, error)
	ByUser(ctx context.Context, email string) ([]*model.WishlistItem, error)
	GetByID(ctx context.Context, id string) (*model.WishlistItem, error)
	Delete(ctx context.Context, id string) error
}

type WishlistService struct {
	wishlists WishlistStore
}

func NewWishlistService(wishlists WishlistStore) *WishlistService {
	return &WishlistService{wishlists: wishlists}
}

// Add bookmarks a property for a user. At most one bookmark may exist per
// (user, property) pair.
func (s *WishlistService) Add(ctx context.Context, req *model.AddWishlistRequest) (*model.WishlistItem, error) {
	if req.UserEmail == "" || req.PropertyID == "" {
		return nil, ErrMissingFields
	}
	item, err := s.wishlists.Create(ctx, req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyWishlisted
		}
		return nil, err
	}
	return item, nil
}

func (s *WishlistService) ListFor(ctx context.Context, email string) ([]*model.WishlistItem, error) {
	return s.wishlists.ByUser(ctx, email)
}

func (s *WishlistService) GetItem(ctx context.Context, id string) (*model.WishlistItem, error) {
	item, err := s.wishlists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWishlistNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *WishlistService) Remove(ctx context.Context, id string) error {
	if err := s.wishlists.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWishlistNotFound
		}
		return err
	}
	return nil
}
