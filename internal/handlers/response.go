package handlers

import (
	"github.com/gofiber/fiber/v2"

	"course_workspace/internal/apperr"
)

// ErrorHandler is the app-level Fiber error handler: every failure becomes
// {success:false, message} with the mapped status. Internal cause detail
// stays out of the response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return c.Status(fe.Code).JSON(fiber.Map{
			"success": false,
			"message": fe.Message,
		})
	}
	return c.Status(apperr.StatusOf(err)).JSON(fiber.Map{
		"success": false,
		"message": apperr.MessageOf(err),
	})
}
