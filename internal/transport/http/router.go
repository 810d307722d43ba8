package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mingle/internal/handler"
	"mingle/internal/httputil"
	authmw "mingle/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	FollowHandler  *handler.FollowHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	LikeHandler    *handler.LikeHandler
	MediaHandler   *handler.MediaHandler
	JWTSecret      string
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/refresh", cfg.AuthHandler.Refresh)
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	r.Route("/api", func(r chi.Router) {
		auth := authmw.AuthMiddleware(cfg.JWTSecret)

		r.Route("/posts", func(r chi.Router) {
			// Public reads
			r.Get("/feed", cfg.PostHandler.Feed)
			r.Get("/{id}", cfg.PostHandler.GetByID)
			r.Get("/{id}/likes", cfg.LikeHandler.ListLikers)

			// Authenticated mutations
			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Post("/", cfg.PostHandler.Create)
				r.Put("/{id}", cfg.PostHandler.Update)
				r.Delete("/{id}", cfg.PostHandler.Delete)
				r.Post("/{id}/like", cfg.LikeHandler.Like)
				r.Delete("/{id}/unlike", cfg.LikeHandler.Unlike)
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/post/{postId}", cfg.CommentHandler.ListByPost)

			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Post("/post/{postId}", cfg.CommentHandler.Create)
				r.Put("/{id}", cfg.CommentHandler.Update)
				r.Delete("/{id}", cfg.CommentHandler.Delete)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Get("/me", cfg.UserHandler.GetMe)
				r.Put("/me", cfg.UserHandler.UpdateMe)
				r.Put("/profile-picture", cfg.UserHandler.UpdateProfilePicture)
				r.Post("/{id}/follow", cfg.FollowHandler.Follow)
				r.Delete("/{id}/unfollow", cfg.FollowHandler.Unfollow)
			})

			r.Get("/{id}", cfg.UserHandler.GetProfile)
			r.Get("/{id}/posts", cfg.PostHandler.GetUserPosts)
			r.Get("/{id}/followers", cfg.FollowHandler.GetFollowers)
			r.Get("/{id}/following", cfg.FollowHandler.GetFollowing)
		})

		r.With(auth).Post("/media/posts", cfg.MediaHandler.UploadPostImage)
	})

	return r
}
