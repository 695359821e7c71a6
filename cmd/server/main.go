package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"

	"github.com/vncsmyrnk/blog/internal/adapters/handler/http"
	"github.com/vncsmyrnk/blog/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/blog/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/blog/internal/adapters/security/bcrypt"
	"github.com/vncsmyrnk/blog/internal/adapters/token/jwt"
	"github.com/vncsmyrnk/blog/internal/config"
	"github.com/vncsmyrnk/blog/internal/core/ports"
	"github.com/vncsmyrnk/blog/internal/core/services"
	"github.com/vncsmyrnk/blog/internal/logger"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	userRepo, blogRepo, closeStorage := mustStorage(ctx, cfg, l)
	defer closeStorage()

	hasher, err := bcrypt.NewHasher(cfg.Bcrypt.Cost)
	if err != nil {
		l.Fatal("failed to create password hasher", "error", err)
	}
	issuer, err := jwt.NewIssuer(cfg.JWT.Secret)
	if err != nil {
		l.Fatal("failed to create token issuer", "error", err)
	}

	authService := services.NewAuthService(userRepo, hasher, issuer, cfg.JWT.TTL(), l)
	userService := services.NewUserService(userRepo, l)
	blogService := services.NewBlogService(blogRepo, l)

	handler := http.NewHandler(http.Handlers{
		Auth: http.NewAuthHandler(authService, l),
		User: http.NewUserHandler(userService, l),
		Blog: http.NewBlogHandler(blogService, l),
	}, authService, l)
	server := &stdhttp.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		l.Info("Server: listening", "addr", cfg.HTTP.Addr, "storage", cfg.Storage.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			l.Fatal("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	l.Info("Server: gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		l.Error("server shutdown failed", "error", err)
	}
}

func mustStorage(ctx context.Context, cfg *config.Config, l *logger.Logger) (ports.UserRepository, ports.BlogRepository, func()) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		store := memory.NewStore()
		return memory.NewUserRepository(store), memory.NewBlogRepository(store), func() {}
	}

	db, err := postgres.Open(ctx, cfg.Database.DSN)
	if err != nil {
		l.Fatal("failed to connect to database", "error", err)
	}

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, db, "up"); err != nil {
			db.Close()
			l.Fatal("failed to migrate database", "error", err)
		}
	}

	return postgres.NewUserRepository(db), postgres.NewBlogRepository(db), closer(db, l)
}

func closer(db *sql.DB, l *logger.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			l.Error("failed to close database", "error", err)
		}
	}
}
