package handlers

import (
	"github.com/gofiber/fiber/v2"

	"course_workspace/dto"
	"course_workspace/internal/apperr"
	"course_workspace/internal/authctx"
	"course_workspace/internal/services"
)

type QuestionHandler struct {
	Svc *services.QuestionService
}

// PUT /add-question
func (h *QuestionHandler) AddQuestion(c *fiber.Ctx) error {
	viewer, ok := authctx.FromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var body dto.AddQuestionReq
	if err := c.BodyParser(&body); err != nil {
		return apperr.Invalid("invalid request body")
	}

	view, err := h.Svc.AddQuestion(c.Context(), viewer, body)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"course":  view,
	})
}

// PUT /add-answer
func (h *QuestionHandler) AddAnswer(c *fiber.Ctx) error {
	viewer, ok := authctx.FromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var body dto.AddAnswerReq
	if err := c.BodyParser(&body); err != nil {
		return apperr.Invalid("invalid request body")
	}

	thread, err := h.Svc.AddAnswer(c.Context(), viewer, body)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"question": thread,
	})
}
