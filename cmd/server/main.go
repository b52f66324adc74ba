package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/job-tracker/internal/config"
	"github.com/fadilmartias/job-tracker/internal/domain/fiber/handler"
	"github.com/fadilmartias/job-tracker/internal/middleware"
	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/fadilmartias/job-tracker/internal/service"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	zapLogger, err := config.InitLogger(appConfig)
	if err != nil {
		log.Fatal(err)
	}
	defer zapLogger.Sync()
	zap.ReplaceGlobals(zapLogger)

	db, err := config.InitDB(config.LoadDBConfig(), appConfig)
	if err != nil {
		zapLogger.Fatal("could not connect to database", zap.Error(err))
	}

	storage, err := newFileStorage(ctx, config.LoadStorageConfig())
	if err != nil {
		zapLogger.Fatal("could not initialize file storage", zap.Error(err))
	}

	// drafts degrade to an error message when no provider is configured
	completer, err := newCompleter(ctx, config.LoadAIConfig())
	if err != nil {
		zapLogger.Warn("AI provider unavailable, drafts are disabled", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	appRepo := repository.NewJobApplicationRepository(db)
	jobTypeRepo := repository.NewJobTypeRepository(db)
	docRepo := repository.NewDocumentRepository(db)
	logRepo := repository.NewInterviewLogRepository(db)
	esRepo := repository.NewEntrySheetRepository(db)

	authConfig, err := config.LoadAuthConfig(appConfig)
	if err != nil {
		zapLogger.Fatal("invalid auth configuration", zap.Error(err))
	}
	authUC := usecase.NewAuthUsecase(userRepo, authConfig, zapLogger)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	appUC := usecase.NewApplicationUsecase(appRepo, storage, zapLogger)
	docUC := usecase.NewDocumentUsecase(appRepo, docRepo, storage, zapLogger)
	logUC := usecase.NewInterviewLogUsecase(appRepo, logRepo)
	esUC := usecase.NewEntrySheetUsecase(appRepo, esRepo)
	draftUC := usecase.NewDraftUsecase(appRepo, esRepo, profileRepo, completer, zapLogger)
	searchUC := usecase.NewSearchUsecase(service.NewCompanySearchService(config.LoadSearchConfig()), jobTypeRepo)

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: 12 * 1024 * 1024,
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
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	auth := middleware.Auth(authConfig.JWTSecret)

	handler.NewAuthHandler(authUC, authConfig, appConfig, zapLogger).RegisterRoutes(app)
	handler.NewSearchHandler(searchUC, zapLogger).RegisterRoutes(app)
	handler.NewProfileHandler(profileUC, zapLogger).RegisterRoutes(app, auth)
	handler.NewApplicationHandler(appUC, zapLogger).RegisterRoutes(app, auth)
	handler.NewDocumentHandler(docUC, zapLogger).RegisterRoutes(app, auth)
	handler.NewInterviewLogHandler(logUC, zapLogger).RegisterRoutes(app, auth)
	handler.NewEntrySheetHandler(esUC, zapLogger).RegisterRoutes(app, auth)
	handler.NewDraftHandler(draftUC, zapLogger).RegisterRoutes(app, auth)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			zapLogger.Debug("runtime stats", zap.Int("goroutines", runtime.NumGoroutine()))
		}
	}()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		zapLogger.Info("shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zapLogger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	zapLogger.Info("server running", zap.String("port", appConfig.Port))
	if err := app.Listen(appConfig.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

func newFileStorage(ctx context.Context, cfg *config.StorageConfig) (service.FileStorage, error) {
	switch cfg.Driver {
	case config.StorageDriverGCS:
		return service.NewGCSStorage(ctx, cfg.GCSBucketName)
	case config.StorageDriverLocal:
		return service.NewLocalStorage(cfg.LocalDir)
	default:
		return nil, errors.New("unsupported STORAGE_DRIVER " + cfg.Driver)
	}
}

// newCompleter returns a nil Completer together with the error when the
// selected provider cannot be set up.
func newCompleter(ctx context.Context, cfg *config.AIConfig) (service.Completer, error) {
	switch cfg.Provider {
	case config.AIProviderGemini:
		s, err := service.NewGeminiService(ctx, config.LoadGeminiConfig())
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.AIProviderOpenAI:
		s, err := service.NewOpenAIService(config.LoadOpenAIConfig())
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, errors.New("unsupported AI_PROVIDER " + cfg.Provider)
	}
}
