package handler

import (
	"errors"
	"log"

	"github.com/rayhanbri/metronest-server-new/internal/model"
	"github.com/rayhanbri/metronest-server-new/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	userSvc *service.UserService
}

func NewUserHandler(userSvc *service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req model.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "invalid request body"})
	}
	if req.Email == "" {
		return c.Status(400).JSON(fiber.Map{"message": "email is required"})
	}

	user, err := h.userSvc.Register(c.Context(), &req)
	if err != nil {
		return userError(c, err)
	}
	return c.Status(201).JSON(user)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userSvc.List(c.Context())
	if err != nil {
		return userError(c, err)
	}
	if users == nil {
		users = []*model.User{}
	}
	return c.JSON(users)
}

func (h *UserHandler) Role(c *fiber.Ctx) error {
	email := c.Params("email")
	role, err := h.userSvc.RoleOf(c.Context(), email)
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(fiber.Map{"role": role})
}

func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	id := c.Params("id")
	var req model.SetRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "invalid request body"})
	}

	if err := h.userSvc.SetRole(c.Context(), id, req.Role); err != nil {
		return userError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Role updated"})
}

func (h *UserHandler) MarkFraud(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.userSvc.MarkFraud(c.Context(), id); err != nil {
		return userError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User marked as fraud and properties removed"})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid user ID"})
	}
	email := c.Query("email")

	if err := h.userSvc.Delete(c.Context(), id, email); err != nil {
		return userError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted from DB and identity provider"})
}

func userError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return c.Status(404).JSON(fiber.Map{"message": "User not found"})
	case errors.Is(err, service.ErrNotAgent):
		return c.Status(400).JSON(fiber.Map{"message": "User is not an agent"})
	case errors.Is(err, service.ErrInvalidRole):
		return c.Status(400).JSON(fiber.Map{"message": "Invalid role"})
	case errors.Is(err, service.ErrIdentityDelete):
		return c.Status(500).JSON(fiber.Map{"message": "Failed to delete user", "error": err.Error()})
	default:
		log.Printf("[USER ERROR] %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "internal server error"})
	}
}
