package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"vichaarmanthan/mock-interview/internal/config"
	"vichaarmanthan/mock-interview/internal/handlers"
	"vichaarmanthan/mock-interview/internal/metrics"
	"vichaarmanthan/mock-interview/internal/middlewares"
	"vichaarmanthan/mock-interview/internal/repositories"
	"vichaarmanthan/mock-interview/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize queue producer. A broker outage must not stop the API:
	// the producer degrades to dropping messages instead.
	producer := services.NewQueueProducer(cfg.Redis)
	defer producer.Close()

	// Initialize services
	pdfParser := services.NewPDFParserService()
	authService := services.NewAuthService(userRepo, cfg.JWT)
	interviewService := services.NewInterviewService(userRepo, producer, pdfParser)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	resumeHandler := handlers.NewResumeHandler(interviewService, cfg.Storage.MaxFileSize)
	questionHandler := handlers.NewQuestionHandler(interviewService)
	feedbackHandler := handlers.NewFeedbackHandler(interviewService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Mock Interview API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Use(middlewares.Metrics())

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// Auth endpoints
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.HandleRegister)
	auth.Post("/login", authHandler.HandleLogin)

	// Interview endpoints, all behind the access gate
	user := api.Group("/user", middlewares.Auth(authService))
	user.Post("/resume/:role", resumeHandler.HandleUploadResume)
	user.Get("/resume/:role", resumeHandler.HandleGetResume)
	user.Get("/resume/:role/:id", resumeHandler.HandleGetResume)
	// getFeedback routes are registered before the :id variants so the
	// literal segment wins.
	user.Get("/questions/:role/getFeedback", feedbackHandler.HandleGetFeedback)
	user.Get("/questions/:role/:id/getFeedback", feedbackHandler.HandleGetFeedback)
	user.Get("/questions/:role", questionHandler.HandleGetQuestions)
	user.Get("/questions/:role/:id", questionHandler.HandleGetQuestions)
	user.Post("/:role/:id/:index", questionHandler.HandleSubmitAnswer)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
		"data":    nil,
	})
}
