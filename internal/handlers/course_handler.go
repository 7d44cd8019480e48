package handlers

import (
	"github.com/gofiber/fiber/v2"

	"course_workspace/dto"
	"course_workspace/internal/apperr"
	"course_workspace/internal/authctx"
	"course_workspace/internal/services"
	"course_workspace/model"
)

type CourseHandler struct {
	Svc *services.CourseService
}

// POST /create-course
func (h *CourseHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateCourseReq
	if err := c.BodyParser(&body); err != nil {
		return apperr.Invalid("invalid request body")
	}

	course, err := h.Svc.Create(c.Context(), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"course":  course,
	})
}

// PUT /update-course/:id
func (h *CourseHandler) Update(c *fiber.Ctx) error {
	var patch model.CoursePatch
	if err := c.BodyParser(&patch); err != nil {
		return apperr.Invalid("invalid request body")
	}

	course, err := h.Svc.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"course":  course,
	})
}

// GET /get-course/:id
func (h *CourseHandler) Get(c *fiber.Ctx) error {
	agg, err := h.Svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"course":  agg,
	})
}

// GET /get-courses
func (h *CourseHandler) List(c *fiber.Ctx) error {
	list, err := h.Svc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"total":   list.Total,
		"courses": list.Courses,
	})
}

// GET /get-all-courses
func (h *CourseHandler) ListAdmin(c *fiber.Ctx) error {
	courses, err := h.Svc.ListAdmin(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"courses": courses,
	})
}

// GET /get-course-content/:id
func (h *CourseHandler) Content(c *fiber.Ctx) error {
	viewer, ok := authctx.FromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	content, err := h.Svc.Content(c.Context(), viewer, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"content": content,
	})
}

// DELETE /delete-course/:id
func (h *CourseHandler) Delete(c *fiber.Ctx) error {
	if err := h.Svc.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "course deleted",
	})
}
