package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vncsmyrnk/blog/internal/core/ports"
	"github.com/vncsmyrnk/blog/internal/logger"
)

type Handlers struct {
	Auth *AuthHandler
	User *UserHandler
	Blog *BlogHandler
}

func NewHandler(handlers Handlers, authService ports.AuthService, log *logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	requireAuth := RequireAuth(authService, log)
	optionalAuth := OptionalAuth(authService, log)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", handlers.Auth.Signup)
		r.Post("/login", handlers.Auth.Login)
	})

	r.Route("/users", func(r chi.Router) {
		r.With(requireAuth).Get("/me", handlers.User.GetMe)
		r.Post("/", handlers.Auth.Signup)
		r.Get("/", handlers.User.ListUsers)
		r.Get("/{id}", handlers.User.GetUser)
		r.Delete("/{id}", handlers.User.DeleteUser)
	})

	r.Route("/blogs", func(r chi.Router) {
		r.With(optionalAuth).Post("/", handlers.Blog.CreateBlog)
		r.Get("/", handlers.Blog.ListBlogs)
		r.Get("/{id}", handlers.Blog.GetBlog)
		r.Delete("/{id}", handlers.Blog.DeleteBlog)
	})

	return r
}
