package handler

import (
	"errors"
	"log"

	"github.com/rayhanbri/metronest-server-new/internal/model"
	"github.com/rayhanbri/metronest-server-new/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	reviewSvc *service.ReviewService
}

func NewReviewHandler(reviewSvc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var req model.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "invalid request body"})
	}

	review, err := h.reviewSvc.Add(c.Context(), &req)
	if err != nil {
		return reviewError(c, err)
	}
	return c.Status(201).JSON(review)
}

func (h *ReviewHandler) Latest(c *fiber.Ctx) error {
	reviews, err := h.reviewSvc.Latest(c.Context())
	if err != nil {
		return reviewError(c, err)
	}
	return c.JSON(emptyReviewsIfNil(reviews))
}

func (h *ReviewHandler) All(c *fiber.Ctx) error {
	reviews, err := h.reviewSvc.All(c.Context())
	if err != nil {
		return reviewError(c, err)
	}
	return c.JSON(emptyReviewsIfNil(reviews))
}

func (h *ReviewHandler) ForProperty(c *fiber.Ctx) error {
	reviews, err := h.reviewSvc.ForProperty(c.Context(), c.Params("propertyId"))
	if err != nil {
		return reviewError(c, err)
	}
	return c.JSON(emptyReviewsIfNil(reviews))
}

func (h *ReviewHandler) ByAuthor(c *fiber.Ctx) error {
	reviews, err := h.reviewSvc.ByAuthor(c.Context(), c.Params("email"))
	if err != nil {
		return reviewError(c, err)
	}
	return c.JSON(emptyReviewsIfNil(reviews))
}

// Delete serves both the plain and the admin-scoped route; the semantics
// are identical.
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	if err := h.reviewSvc.Delete(c.Context(), c.Params("id")); err != nil {
		return reviewError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Review deleted"})
}

func emptyReviewsIfNil(reviews []*model.Review) []*model.Review {
	if reviews == nil {
		return []*model.Review{}
	}
	return reviews
}

func reviewError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrReviewNotFound):
		return c.Status(404).JSON(fiber.Map{"message": "Review not found"})
	case errors.Is(err, service.ErrMissingFields):
		return c.Status(400).JSON(fiber.Map{"message": "Missing fields"})
	default:
		log.Printf("[REVIEW ERROR] %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "internal server error"})
	}
}
