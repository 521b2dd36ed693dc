package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/soesapp/soes-eventos-backend/internal/config"
	"github.com/soesapp/soes-eventos-backend/internal/handler"
	"github.com/soesapp/soes-eventos-backend/internal/middleware"
	"github.com/soesapp/soes-eventos-backend/internal/models"
	"github.com/soesapp/soes-eventos-backend/internal/repository"
	"github.com/soesapp/soes-eventos-backend/internal/service"
	"github.com/soesapp/soes-eventos-backend/pkg/database"
	"github.com/soesapp/soes-eventos-backend/pkg/email"
	jwtPkg "github.com/soesapp/soes-eventos-backend/pkg/jwt"
	"github.com/soesapp/soes-eventos-backend/pkg/logger"
	"github.com/soesapp/soes-eventos-backend/pkg/storage"
	"github.com/soesapp/soes-eventos-backend/pkg/utils"
	"github.com/soesapp/soes-eventos-backend/pkg/webhook"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.Event{},
		&models.Attendee{},
		&models.Settings{},
	); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Repositories
	eventRepo := repository.NewEventRepository(db)
	attendeeRepo := repository.NewAttendeeRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Seed the settings row so the portal renders branded from the first
	// request.
	seedSettings(settingsRepo, zapLogger)

	// Optional object store for event images and logos
	var imageStore storage.StorageService
	if cfg.R2Enabled() {
		r2, err := storage.NewCloudflareStorage(cfg)
		if err != nil {
			zapLogger.Fatal("failed to initialize R2 storage", zap.Error(err))
		}
		imageStore = r2
	}

	// Collaborators
	crmSender := webhook.NewCRMSender(zapLogger)
	var mailer service.Mailer
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		mailer = email.NewEmailService(apiKey, cfg.Email, zapLogger)
	}
	tokens := jwtPkg.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer)

	// Services
	eventService := service.NewEventService(eventRepo, attendeeRepo, zapLogger)
	attendeeService := service.NewAttendeeService(attendeeRepo, eventRepo, settingsRepo, crmSender, mailer, zapLogger)
	settingsService := service.NewSettingsService(settingsRepo, zapLogger)
	imageService := service.NewImageService(imageStore, zapLogger)
	authService, err := service.NewAuthService(cfg.Admin, tokens, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to initialize auth service", zap.Error(err))
	}

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	eventHandler := handler.NewEventHandler(eventService, validator)
	attendeeHandler := handler.NewAttendeeHandler(attendeeService, validator)
	settingsHandler := handler.NewSettingsHandler(settingsService, validator)
	imageHandler := handler.NewImageHandler(imageService)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: os.Getenv("CORS_ORIGINS"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Public routes
	api.Post("/auth/login", authHandler.Login)
	api.Get("/settings", settingsHandler.GetPublicSettings)
	api.Get("/events", eventHandler.ListPublicEvents)
	api.Get("/events/:id", eventHandler.GetPublicEvent)
	// Registration gets a tighter limit than the global one
	api.Post("/events/:id/register", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), attendeeHandler.Register)

	// Admin routes
	admin := api.Group("/admin", middleware.AdminAuth(tokens))
	{
		admin.Get("/events", eventHandler.ListEvents)
		admin.Post("/events", eventHandler.CreateEvent)
		admin.Get("/events/:id", eventHandler.GetEvent)
		admin.Put("/events/:id", eventHandler.UpdateEvent)
		admin.Delete("/events/:id", eventHandler.DeleteEvent)

		admin.Get("/events/:id/attendees", attendeeHandler.ListByEvent)
		admin.Get("/events/:id/attendees/export", attendeeHandler.Export)
		admin.Post("/attendees", attendeeHandler.Create)
		admin.Put("/attendees/:id", attendeeHandler.Update)
		admin.Delete("/attendees/:id", attendeeHandler.Delete)

		admin.Get("/settings", settingsHandler.GetSettings)
		admin.Put("/settings", settingsHandler.UpdateSettings)

		admin.Post("/images", imageHandler.Upload)
	}

	zapLogger.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

func seedSettings(repo *repository.SettingsRepository, logger *zap.Logger) {
	settings, err := repo.Get()
	if err != nil {
		logger.Fatal("failed to read settings", zap.Error(err))
	}
	if err := repo.Save(settings); err != nil {
		logger.Fatal("failed to seed settings", zap.Error(err))
	}
}
