package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"course_workspace/database"
	"course_workspace/internal/cache"
	"course_workspace/internal/handlers"
	"course_workspace/internal/mailer"
	"course_workspace/internal/middleware"
	"course_workspace/internal/repository"
	"course_workspace/internal/routes"
	"course_workspace/internal/services"
)

func init() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func main() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		panic("JWT_SECRET is required")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	client, err := database.ConnectMongo()
	if err != nil {
		logger.Fatal("mongo", zap.Error(err))
	}
	defer database.DisconnectMongo(client)
	db := client.Database(envOr("DB_NAME", "course_workspace"))

	rdb, err := database.ConnectRedis()
	if err != nil {
		logger.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()

	// collaborators
	courseRepo := repository.NewCourseRepository(db)
	contentRepo := repository.NewCourseDataRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	noteRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)
	courseCache := cache.NewRedisCache(rdb)

	var mail mailer.Mailer
	if key := os.Getenv("SENDGRID_API_KEY"); key != "" {
		mail = mailer.NewSendgridMailer(key, envOr("MAIL_FROM_NAME", "Course Workspace"), os.Getenv("MAIL_FROM"))
	} else {
		logger.Info("SENDGRID_API_KEY not set, mail goes to the log")
		mail = mailer.NewConsoleMailer(logger)
	}

	// services
	questionSvc := services.NewQuestionService(courseRepo, contentRepo, commentRepo, userRepo, noteRepo, mail, logger)
	reviewSvc := services.NewReviewService(courseRepo, reviewRepo, commentRepo, noteRepo, courseCache, logger)
	courseSvc := services.NewCourseService(courseRepo, contentRepo, courseCache, logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Use(middleware.RequestLog(logger))
	app.Use(middleware.JWTViewer(secret))

	routes.Register(app, routes.Deps{
		Courses:   &handlers.CourseHandler{Svc: courseSvc},
		Questions: &handlers.QuestionHandler{Svc: questionSvc},
		Reviews:   &handlers.ReviewHandler{Svc: reviewSvc},
	})

	port := envOr("PORT", "8080")
	logger.Info("listening", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		logger.Fatal("listen", zap.Error(err))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
