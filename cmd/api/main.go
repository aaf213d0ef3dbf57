package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/quickmom/quickmom/pkg/validator"

	"github.com/quickmom/quickmom/internal/adapter/handler"
	"github.com/quickmom/quickmom/internal/adapter/repository"
	"github.com/quickmom/quickmom/internal/infrastructure/cache"
	"github.com/quickmom/quickmom/internal/infrastructure/database"
	httpmw "github.com/quickmom/quickmom/internal/infrastructure/http/middleware"
	"github.com/quickmom/quickmom/internal/usecase/auth"
	"github.com/quickmom/quickmom/internal/usecase/meeting"
	"github.com/quickmom/quickmom/internal/usecase/user"
	"github.com/quickmom/quickmom/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	e.Use(echomw.LoggerWithConfig(echomw.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(echomw.Recover())

	// Session cookies require credentialed CORS.
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	logger, err := zap.NewProduction()
	if cfg.Server.Environment == "development" {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; manage schema with sql-migrate in CI/CD")
	}

	// Session cache: in-process by default, Redis when the deployment
	// shares sessions across replicas.
	var cacheStore cache.Store
	switch cfg.Cache.Backend {
	case "redis":
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		cacheStore = redisStore
	default:
		cacheStore = cache.NewMemoryStore()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	pointRepo := repository.NewDiscussionPointRepository(db)
	itemRepo := repository.NewActionItemRepository(db)

	// Initialize services
	authService := auth.NewService(userRepo, sessionRepo, cacheStore, cfg.Session.TTL)
	meetingService := meeting.NewService(meetingRepo, topicRepo, pointRepo, itemRepo, userRepo)
	userService := user.NewService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuth(authService, cfg.Session, logger)
	meetingHandler := handler.NewMeeting(meetingService, logger)
	userHandler := handler.NewUser(userService, logger)

	sessionMW := httpmw.NewSessionMiddleware(authService, cfg.Session.CookieName, logger)

	router := handler.NewRouter(cfg, authHandler, meetingHandler, userHandler, sessionMW)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
