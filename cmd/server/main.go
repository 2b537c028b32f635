package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ciaanhq/ciaan-api/auth"
	authHandlers "github.com/ciaanhq/ciaan-api/auth/handlers"
	authServices "github.com/ciaanhq/ciaan-api/auth/services"
	"github.com/ciaanhq/ciaan-api/comments"
	commentsHandlers "github.com/ciaanhq/ciaan-api/comments/handlers"
	commentsRepo "github.com/ciaanhq/ciaan-api/comments/repository"
	commentsServices "github.com/ciaanhq/ciaan-api/comments/services"
	"github.com/ciaanhq/ciaan-api/internal/cache"
	"github.com/ciaanhq/ciaan-api/internal/database/mongodb"
	"github.com/ciaanhq/ciaan-api/internal/middleware/authjwt"
	"github.com/ciaanhq/ciaan-api/internal/middleware/requestid"
	"github.com/ciaanhq/ciaan-api/internal/pkg/log"
	platformconfig "github.com/ciaanhq/ciaan-api/internal/platform/config"
	"github.com/ciaanhq/ciaan-api/posts"
	postsHandlers "github.com/ciaanhq/ciaan-api/posts/handlers"
	postsRepo "github.com/ciaanhq/ciaan-api/posts/repository"
	postsServices "github.com/ciaanhq/ciaan-api/posts/services"
	"github.com/ciaanhq/ciaan-api/users"
	usersHandlers "github.com/ciaanhq/ciaan-api/users/handlers"
	usersRepo "github.com/ciaanhq/ciaan-api/users/repository"
	usersServices "github.com/ciaanhq/ciaan-api/users/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load configuration: %s", err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.Mongo.ConnectTimeout)
	defer cancel()

	db, err := mongodb.NewClient(ctx, &cfg.Database.Mongo)
	if err != nil {
		log.Error("Failed to connect to MongoDB: %s", err.Error())
		os.Exit(1)
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Error("Failed to ensure indexes: %s", err.Error())
		os.Exit(1)
	}
	log.Info("Connected to MongoDB at %s", cfg.Database.Mongo.URI)

	sessions := buildSessionStore(cfg)

	// Repositories
	userRepository := usersRepo.NewMongoUserRepository(db)
	postRepository := postsRepo.NewMongoPostRepository(db)
	commentRepository := commentsRepo.NewMongoCommentRepository(db)

	// Services
	authService := authServices.NewAuthService(userRepository, sessions, []byte(cfg.JWT.Secret), cfg.JWT.ExpireHours)
	profileService := usersServices.NewProfileService(userRepository, postRepository)
	postService := postsServices.NewPostService(postRepository, commentRepository, userRepository)
	commentService := commentsServices.NewCommentService(commentRepository, postRepository, userRepository)

	// Handlers
	authHandler := authHandlers.NewAuthHandler(authService, []byte(cfg.JWT.Secret), cfg.JWT.ExpireHours)
	profileHandler := usersHandlers.NewProfileHandler(profileService)
	postHandler := postsHandlers.NewPostHandler(postService)
	commentHandler := commentsHandlers.NewCommentHandler(commentService)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.WebDomain,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := db.Ping(c.UserContext()); err != nil {
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authGate := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	auth.RegisterRoutes(app, authHandler, authGate)
	users.RegisterRoutes(app, profileHandler, authGate)
	posts.RegisterRoutes(app, postHandler, authGate)
	comments.RegisterRoutes(app, commentHandler, authGate)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Info("%s listening on %s", cfg.App.Name, addr)
		if err := app.Listen(addr); err != nil {
			log.Error("Server stopped: %s", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Warn("Shutdown error: %s", err.Error())
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := db.Close(shutdownCtx); err != nil {
		log.Warn("MongoDB close error: %s", err.Error())
	}
}

// buildSessionStore attaches Redis when the cache is enabled and
// reachable; otherwise the store is a no-op and serving continues.
func buildSessionStore(cfg *platformconfig.Config) *cache.SessionStore {
	if !cfg.Cache.Enabled {
		log.Info("Session cache disabled by configuration")
		return cache.NewSessionStore(nil, cfg.Cache.Prefix, cfg.Cache.TTL)
	}

	redisCache, err := cache.NewRedisCache(&cfg.Cache.Redis)
	if err != nil {
		log.Warn("Session cache unavailable, continuing without it: %s", err.Error())
		return cache.NewSessionStore(nil, cfg.Cache.Prefix, cfg.Cache.TTL)
	}

	log.Info("Session cache connected at %s", cfg.Cache.Redis.Address)
	return cache.NewSessionStore(redisCache, cfg.Cache.Prefix, cfg.Cache.TTL)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"code":    "INTERNAL_ERROR",
		"message": err.Error(),
	})
}
