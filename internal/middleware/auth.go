package middleware

import (
	"strings"

	"github.com/rayhanbri/metronest-server-new/internal/identity"

	"github.com/gofiber/fiber/v2"
)

// Auth is the identity gate: it rejects requests without a bearer
// credential before any provider call, hands present credentials to the
// identity provider, and attaches the verified email to the request.
func Auth(provider identity.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"message": "unauthorized access"})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			return c.Status(401).JSON(fiber.Map{"message": "unauthorized access"})
		}

		ident, err := provider.VerifyToken(c.Context(), token)
		if err != nil {
			return c.Status(403).JSON(fiber.Map{"message": "Forbidden access", "error": err.Error()})
		}

		c.Locals("email", ident.Email)
		c.Locals("uid", ident.UID)
		return c.Next()
	}
}
