package handler

import (
	"math"

	"github.com/rayhanbri/metronest-server-new/internal/payment"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	processor payment.Processor
}

func NewPaymentHandler(processor payment.Processor) *PaymentHandler {
	return &PaymentHandler{processor: processor}
}

type createIntentRequest struct {
	Amount float64 `json:"amount"`
}

// CreateIntent opens a payment with the external processor. The amount
// arrives in major currency units and is converted to cents here.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var req createIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "invalid request body"})
	}
	if req.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"message": "amount must be positive"})
	}

	clientSecret, err := h.processor.CreateIntent(c.Context(), int64(math.Round(req.Amount*100)))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}
