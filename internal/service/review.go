package service

import (
	"context"
	"errors"

	"github.com/rayhanbri/metronest-server-new/internal/model"
	"github.com/rayhanbri/metronest-server-new/internal/repository"
)

var ErrReviewNotFound = errors.New("review not found")

const latestReviewsPageSize = 4

// ReviewStore is the review store surface.
type ReviewStore interface {
	Create(ctx context.Context, req *model.CreateReviewRequest) (*model.Review, error)
	Latest(ctx context.Context, limit int) ([]*model.Review, error)
	All(ctx context.Context) ([]*model.Review, error)
	ByProperty(ctx context.Context, propertyID string) ([]*model.Review, error)
	ByUser(ctx context.Context, email string) ([]*model.Review, error)
	Delete(ctx context.Context, id string) error
}

type ReviewService struct {
	reviews ReviewStore
}

func NewReviewService(reviews ReviewStore) *ReviewService {
	return &ReviewService{reviews: reviews}
}

func (s *ReviewService) Add(ctx context.Context, req *model.CreateReviewRequest) (*model.Review, error) {
	if req.PropertyID == "" || req.UserEmail == "" || req.ReviewText == "" {
		return nil, ErrMissingFields
	}
	if req.Role == "" {
		req.Role = model.RoleUser
	}
	return s.reviews.Create(ctx, req)
}

func (s *ReviewService) Latest(ctx context.Context) ([]*model.Review, error) {
	return s.reviews.Latest(ctx, latestReviewsPageSize)
}

func (s *ReviewService) All(ctx context.Context) ([]*model.Review, error) {
	return s.reviews.All(ctx)
}

// ForProperty returns only end-user reviews for a listing.
func (s *ReviewService) ForProperty(ctx context.Context, propertyID string) ([]*model.Review, error) {
	return s.reviews.ByProperty(ctx, propertyID)
}

func (s *ReviewService) ByAuthor(ctx context.Context, email string) ([]*model.Review, error) {
	return s.reviews.ByUser(ctx, email)
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	if err := s.reviews.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}
