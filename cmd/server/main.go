package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-backend/internal/config"
	"blog-backend/internal/database"
	"blog-backend/internal/handler"
	"blog-backend/internal/repository"
	"blog-backend/internal/revocation"
	"blog-backend/internal/service"
	"blog-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Println("Configuration loaded successfully")

	// 2. Initialize the token codec with config
	codec, err := utils.NewTokenCodec(
		cfg.JWT.Secret,
		cfg.JWT.Algorithm,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	if err != nil {
		log.Fatalf("Failed to initialize token codec: %v", err)
	}

	// 3. Initialize database connection
	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize the revocation store
	revocations, closeRevocations := newRevocationStore(cfg, db)
	defer closeRevocations()

	// 6. Initialize services
	authService := service.NewAuthService(userRepo, codec, revocations, utils.NewBcryptHasher(cfg.Security.BcryptCost))
	userService := service.NewUserService(userRepo, auditRepo)
	postService := service.NewPostService(postRepo, auditRepo)
	categoryService := service.NewCategoryService(categoryRepo)

	// 7. Setup Gin mode and router
	gin.SetMode(cfg.Server.GinMode)
	r := handler.NewRouter(cfg, handler.Services{
		Auth:       authService,
		Users:      userService,
		Posts:      postService,
		Categories: categoryService,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 8. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// newRevocationStore picks the denylist backend named by REVOCATION_STORE
func newRevocationStore(cfg *config.Config, db *gorm.DB) (service.RevocationStore, func()) {
	switch cfg.Revocation.Backend {
	case config.RevocationDatabase:
		log.Println("Using database revocation store")
		return repository.NewRevokedTokenRepo(db), func() {}
	case config.RevocationMemory:
		log.Println("Using in-memory revocation store, logouts are not shared between processes")
		return revocation.NewMemoryStore(), func() {}
	default:
		client := database.ConnectRedis(cfg)
		return revocation.NewRedisStore(client), func() { _ = client.Close() }
	}
}
