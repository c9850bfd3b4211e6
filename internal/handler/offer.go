package handler

import (
	"errors"
	"log"

	"github.com/rayhanbri/metronest-server-new/internal/model"
	"github.com/rayhanbri/metronest-server-new/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OfferHandler struct {
	offerSvc *service.OfferService
}

func NewOfferHandler(offerSvc *service.OfferService) *OfferHandler {
	return &OfferHandler{offerSvc: offerSvc}
}

func (h *OfferHandler) Create(c *fiber.Ctx) error {
	var req model.CreateOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "invalid request body"})
	}

	offer, err := h.offerSvc.Create(c.Context(), &req)
	if err != nil {
		return offerError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{
		"message": "Offer placed successfully",
		"offerId": offer.ID,
	})
}

func (h *OfferHandler) ForAgent(c *fiber.Ctx) error {
	offers, err := h.offerSvc.ForAgent(c.Context(), c.Params("email"))
	if err != nil {
		return offerError(c, err)
	}
	return c.JSON(emptyOffersIfNil(offers))
}

// ForBuyer lists a buyer's offers, newest first.
func (h *OfferHandler) ForBuyer(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Email is required"})
	}

	offers, err := h.offerSvc.ForBuyer(c.Context(), email)
	if err != nil {
		return offerError(c, err)
	}
	return c.JSON(emptyOffersIfNil(offers))
}

func (h *OfferHandler) SoldForAgent(c *fiber.Ctx) error {
	offers, err := h.offerSvc.SoldForAgent(c.Context(), c.Params("agentEmail"))
	if err != nil {
		return offerError(c, err)
	}
	return c.JSON(emptyOffersIfNil(offers))
}

func (h *OfferHandler) Get(c *fiber.Ctx) error {
	offer, err := h.offerSvc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return offerError(c, err)
	}
	return c.JSON(offer)
}

func (h *OfferHandler) Accept(c *fiber.Ctx) error {
	if err := h.offerSvc.Accept(c.Context(), c.Params("id")); err != nil {
		return offerError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Offer accepted and others rejected"})
}

func (h *OfferHandler) Reject(c *fiber.Ctx) error {
	if err := h.offerSvc.Reject(c.Context(), c.Params("id")); err != nil {
		return offerError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Offer rejected"})
}

func (h *OfferHandler) MarkPaid(c *fiber.Ctx) error {
	var req model.MarkPaidRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "invalid request body"})
	}

	if err := h.offerSvc.MarkPaid(c.Context(), c.Params("id"), req.TransactionID); err != nil {
		return offerError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Offer marked as paid"})
}

func emptyOffersIfNil(offers []*model.Offer) []*model.Offer {
	if offers == nil {
		return []*model.Offer{}
	}
	return offers
}

func offerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrOfferNotFound):
		return c.Status(404).JSON(fiber.Map{"message": "Offer not found"})
	case errors.Is(err, service.ErrPropertyNotFound):
		return c.Status(404).JSON(fiber.Map{"message": "Property not found"})
	case errors.Is(err, service.ErrNotBuyer):
		return c.Status(403).JSON(fiber.Map{"message": "Only regular users can make an offer"})
	case errors.Is(err, service.ErrAmountOutOfRange):
		return c.Status(400).JSON(fiber.Map{"message": "Offer amount is outside the allowed range"})
	case errors.Is(err, service.ErrOfferDecided):
		return c.Status(409).JSON(fiber.Map{"message": "Another offer was already accepted for this property"})
	case errors.Is(err, service.ErrMissingFields):
		return c.Status(400).JSON(fiber.Map{"message": "Missing required fields"})
	default:
		log.Printf("[OFFER ERROR] %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "internal server error"})
	}
}
