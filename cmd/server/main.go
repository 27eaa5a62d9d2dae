package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/campushub/lor-service/internal/config"
	"github.com/campushub/lor-service/internal/domain/fiber/handler"
	"github.com/campushub/lor-service/internal/middleware"
	"github.com/campushub/lor-service/internal/model"
	"github.com/campushub/lor-service/internal/repository"
	"github.com/campushub/lor-service/internal/service"
	"github.com/campushub/lor-service/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env != "production"
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	studentRepo := repository.NewStudentRepository(db)
	templateRepo := repository.NewLORTemplateRepository(db)
	requestRepo := repository.NewLORRequestRepository(db)

	if err := templateRepo.SeedDefaults(); err != nil {
		log.Fatal("template seeding failed: ", err)
	}

	generator, err := buildGenerator(ctx)
	if err != nil {
		log.Fatal(err)
	}

	lorUC := usecase.NewLORUsecase(studentRepo, templateRepo, requestRepo, generator)
	templateUC := usecase.NewTemplateUsecase(templateRepo)

	handler.NewLORHandler(lorUC).RegisterRoutes(app)
	handler.NewLORTemplateHandler(templateUC).RegisterRoutes(app)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

// buildGenerator wires the configured provider behind the retrying,
// circuit-breaking generator.
func buildGenerator(ctx context.Context) (*service.GeneratorService, error) {
	appConfig := config.LoadAppConfig()
	geminiConfig := config.LoadGeminiConfig()
	breaker := service.NewCircuitBreaker(geminiConfig.CircuitThreshold, geminiConfig.CircuitCooldown)

	var provider service.Provider
	opts := service.GeneratorOptions{
		MaxRetries: geminiConfig.MaxRetries,
		BaseDelay:  geminiConfig.BaseDelay,
	}

	switch appConfig.AIProvider {
	case "openrouter":
		openRouter, err := service.NewOpenRouterService()
		if err != nil {
			return nil, err
		}
		orConfig := config.LoadOpenRouterConfig()
		provider = openRouter
		opts.PrimaryModel = orConfig.Model
		opts.FallbackModel = orConfig.FallbackModel
	case "gemini":
		gemini, err := service.NewGeminiService(ctx)
		if err != nil {
			return nil, err
		}
		provider = gemini
		opts.PrimaryModel = geminiConfig.Model
		opts.FallbackModel = geminiConfig.FallbackModel
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER %q", appConfig.AIProvider)
	}

	return service.NewGeneratorService(provider, breaker, opts), nil
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.Student{},
		&model.Internship{},
		&model.Placement{},
		&model.LORTemplate{},
		&model.LORRequest{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
