package routes

import (
	"github.com/gofiber/fiber/v2"

	"course_workspace/internal/handlers"
	"course_workspace/internal/middleware"
)

type Deps struct {
	Courses   *handlers.CourseHandler
	Questions *handlers.QuestionHandler
	Reviews   *handlers.ReviewHandler
}

// Register mounts every route. Paths mirror the public API contract; auth
// requirements follow the operations (questions/answers/reviews need a
// viewer, public reads do not).
func Register(app *fiber.App, d Deps) {
	auth := middleware.RequireAuth()

	// course CRUD + reads
	app.Post("/create-course", auth, d.Courses.Create)
	app.Put("/update-course/:id", auth, d.Courses.Update)
	app.Get("/get-course/:id", d.Courses.Get)
	app.Get("/get-courses", d.Courses.List)
	app.Get("/get-all-courses", auth, d.Courses.ListAdmin)
	app.Get("/get-course-content/:id", auth, d.Courses.Content)
	app.Delete("/delete-course/:id", auth, d.Courses.Delete)

	// question/answer
	app.Put("/add-question", auth, d.Questions.AddQuestion)
	app.Put("/add-answer", auth, d.Questions.AddAnswer)

	// review/reply
	app.Put("/add-review/:courseId", auth, d.Reviews.AddReview)
	app.Put("/add-reply", auth, d.Reviews.AddReply)
	app.Get("/get-reviews/:courseId", d.Reviews.ListReviews)
}
