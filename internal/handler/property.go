package handler

import (
	"errors"
	"log"

	"github.com/rayhanbri/metronest-server-new/internal/model"
	"github.com/rayhanbri/metronest-server-new/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PropertyHandler struct {
	propertySvc *service.PropertyService
}

func NewPropertyHandler(propertySvc *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertySvc: propertySvc}
}

func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var req model.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "invalid request body"})
	}

	property, err := h.propertySvc.Create(c.Context(), &req)
	if err != nil {
		return propertyError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{
		"message":    "Property added successfully",
		"propertyId": property.ID,
	})
}

func (h *PropertyHandler) All(c *fiber.Ctx) error {
	properties, err := h.propertySvc.All(c.Context())
	if err != nil {
		return propertyError(c, err)
	}
	return c.JSON(emptyIfNil(properties))
}

// ByAgent lists an agent's own properties; the agent email arrives as a
// query parameter.
func (h *PropertyHandler) ByAgent(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Email query required"})
	}

	properties, err := h.propertySvc.ByAgent(c.Context(), email)
	if err != nil {
		return propertyError(c, err)
	}
	return c.JSON(emptyIfNil(properties))
}

func (h *PropertyHandler) Verified(c *fiber.Ctx) error {
	properties, err := h.propertySvc.Verified(c.Context())
	if err != nil {
		return propertyError(c, err)
	}
	return c.JSON(emptyIfNil(properties))
}

func (h *PropertyHandler) Advertised(c *fiber.Ctx) error {
	properties, err := h.propertySvc.Advertised(c.Context())
	if err != nil {
		return propertyError(c, err)
	}
	return c.JSON(emptyIfNil(properties))
}

func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	property, err := h.propertySvc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return propertyError(c, err)
	}
	return c.JSON(property)
}

func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	var req model.UpdatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "invalid request body"})
	}

	if err := h.propertySvc.Update(c.Context(), c.Params("id"), &req); err != nil {
		return propertyError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Property updated successfully"})
}

func (h *PropertyHandler) SetStatus(c *fiber.Ctx) error {
	var req model.SetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "invalid request body"})
	}

	if err := h.propertySvc.SetStatus(c.Context(), c.Params("id"), req.Status); err != nil {
		return propertyError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Status updated"})
}

func (h *PropertyHandler) Advertise(c *fiber.Ctx) error {
	if err := h.propertySvc.Advertise(c.Context(), c.Params("id")); err != nil {
		return propertyError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Property advertised"})
}

func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	if err := h.propertySvc.Delete(c.Context(), c.Params("id")); err != nil {
		return propertyError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Property deleted"})
}

func emptyIfNil(properties []*model.Property) []*model.Property {
	if properties == nil {
		return []*model.Property{}
	}
	return properties
}

func propertyError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrPropertyNotFound):
		return c.Status(404).JSON(fiber.Map{"message": "Property not found"})
	case errors.Is(err, service.ErrAgentNotFound):
		return c.Status(404).JSON(fiber.Map{"message": "Agent not found"})
	case errors.Is(err, service.ErrAgentFraud):
		return c.Status(403).JSON(fiber.Map{"message": "Fraud agents are not allowed to add properties"})
	case errors.Is(err, service.ErrPropertyRejected):
		return c.Status(403).JSON(fiber.Map{"message": "Rejected property cannot be updated"})
	case errors.Is(err, service.ErrMissingFields):
		return c.Status(400).JSON(fiber.Map{"message": "Missing required fields"})
	case errors.Is(err, service.ErrInvalidPriceRange):
		return c.Status(400).JSON(fiber.Map{"message": "Invalid price range"})
	case errors.Is(err, service.ErrInvalidID):
		return c.Status(400).JSON(fiber.Map{"message": "Invalid property ID"})
	case errors.Is(err, service.ErrInvalidStatus):
		return c.Status(400).JSON(fiber.Map{"message": "Invalid status"})
	default:
		log.Printf("[PROPERTY ERROR] %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "internal server error"})
	}
}
