package handlers

import (
	"github.com/gofiber/fiber/v2"

	"course_workspace/dto"
	"course_workspace/internal/apperr"
	"course_workspace/internal/authctx"
	"course_workspace/internal/services"
)

type ReviewHandler struct {
	Svc *services.ReviewService
}

// PUT /add-review/:courseId
func (h *ReviewHandler) AddReview(c *fiber.Ctx) error {
	viewer, ok := authctx.FromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var body dto.AddReviewReq
	if err := c.BodyParser(&body); err != nil {
		return apperr.Invalid("invalid request body")
	}

	agg, err := h.Svc.AddReview(c.Context(), viewer, c.Params("courseId"), body)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"course":  agg,
	})
}

// PUT /add-reply
func (h *ReviewHandler) AddReply(c *fiber.Ctx) error {
	viewer, ok := authctx.FromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var body dto.AddReviewReplyReq
	if err := c.BodyParser(&body); err != nil {
		return apperr.Invalid("invalid request body")
	}

	review, err := h.Svc.AddReplyToReview(c.Context(), viewer, body)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"review":  review,
	})
}

// GET /get-reviews/:courseId
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", 0))
	reviews, err := h.Svc.ListReviews(c.Context(), c.Params("courseId"), limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"reviews": reviews,
	})
}
