package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"

	"mingle/internal/config"
	"mingle/internal/database"
	"mingle/internal/handler"
	appredis "mingle/internal/redis"
	"mingle/internal/repository"
	"mingle/internal/service"
)

// Run wires the whole application together and serves HTTP. The database
// and Redis handles are created here with an explicit lifecycle and passed
// down; no package holds them as globals.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	redisClient, err := appredis.NewClient(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	mediaService, err := service.NewMediaService(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create media service: %w", err)
	}

	// Repositories over the shared store handle
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)
	tokenStore := repository.NewTokenStore(redisClient.Client)

	// Services
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(tokenStore, cfg)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)
	likeService := service.NewLikeService(likeRepo, postRepo)
	followService := service.NewFollowService(followRepo, userRepo)

	router := NewRouter(RouterConfig{
		AuthHandler:    handler.NewAuthHandler(userService, authService),
		UserHandler:    handler.NewUserHandler(userService, mediaService),
		FollowHandler:  handler.NewFollowHandler(followService),
		PostHandler:    handler.NewPostHandler(postService),
		CommentHandler: handler.NewCommentHandler(commentService),
		LikeHandler:    handler.NewLikeHandler(likeService),
		MediaHandler:   handler.NewMediaHandler(mediaService),
		JWTSecret:      cfg.JWTSecret,
	})

	addr := ":" + cfg.ServerPort
	log.Printf("Starting server on %s", addr)
	return stdhttp.ListenAndServe(addr, router)
}
