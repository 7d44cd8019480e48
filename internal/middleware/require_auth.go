package middleware

import (
	"github.com/gofiber/fiber/v2"

	"course_workspace/internal/authctx"
)

// RequireAuth rejects requests that reached this point without a viewer.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := authctx.FromLocals(c); !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}
