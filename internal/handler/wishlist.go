package handler

import (
	"errors"
	"log"

	"github.com/rayhanbri/metronest-server-new/internal/model"
	"github.com/rayhanbri/metronest-server-new/internal/service"

	"github.com/gofiber/fiber/v2"
)

type WishlistHandler struct {
	wishlistSvc *service.WishlistService
}

func NewWishlistHandler(wishlistSvc *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistSvc: wishlistSvc}
}

func (h *WishlistHandler) Add(c *fiber.Ctx) error {
	var req model.AddWishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "invalid request body"})
	}

	item, err := h.wishlistSvc.Add(c.Context(), &req)
	if err != nil {
		return wishlistError(c, err)
	}
	return c.Status(201).JSON(item)
}

func (h *WishlistHandler) ListFor(c *fiber.Ctx) error {
	email := c.Query("email")
	items, err := h.wishlistSvc.ListFor(c.Context(), email)
	if err != nil {
		return wishlistError(c, err)
	}
	if items == nil {
		items = []*model.WishlistItem{}
	}
	return c.JSON(items)
}

func (h *WishlistHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.wishlistSvc.GetItem(c.Context(), c.Params("id"))
	if err != nil {
		return wishlistError(c, err)
	}
	return c.JSON(item)
}

func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	if err := h.wishlistSvc.Remove(c.Context(), c.Params("id")); err != nil {
		return wishlistError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Removed from wishlist"})
}

func wishlistError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrAlreadyWishlisted):
		return c.Status(409).JSON(fiber.Map{"message": "Already in wishlist"})
	case errors.Is(err, service.ErrWishlistNotFound):
		return c.Status(404).JSON(fiber.Map{"message": "Wishlist item not found"})
	case errors.Is(err, service.ErrMissingFields):
		return c.Status(400).JSON(fiber.Map{"message": "Missing data"})
	default:
		log.Printf("[WISHLIST ERROR] %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "internal server error"})
	}
}
