package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/focusflow/focusflow-go/internal/config"
	"github.com/focusflow/focusflow-go/internal/handler"
	"github.com/focusflow/focusflow-go/internal/middleware"
	"github.com/focusflow/focusflow-go/internal/repository"
	"github.com/focusflow/focusflow-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.Handler())

	// The chat panel is a stateless passthrough; no key, no route.
	if cfg.GeminiAPIKey == "" {
		slog.Warn("GEM_API not set — chat route disabled")
	} else {
		chatService := service.NewChatService(nil, cfg.GeminiBaseURL, cfg.GeminiAPIKey)
		chatHandler := handler.NewChatHandler(chatService)
		r.Post("/api/chatbot/chat", chatHandler.HandleChat)
	}

	// Initialize DB and the user/todo routes if the database is available.
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — user and todo routes disabled", "error", err)
	} else {
		if err := repository.Migrate(db); err != nil {
			slog.Error("schema setup failed", "error", err)
			os.Exit(1)
		}

		userRepo := repository.NewUserRepository(db)
		authService := service.NewAuthService(userRepo, cfg.JWTSecret)
		authHandler := handler.NewAuthHandler(authService)

		taskRepo := repository.NewTaskRepository(db)
		taskService := service.NewTaskService(taskRepo)
		taskHandler := handler.NewTaskHandler(taskService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/user/register", authHandler.HandleRegister)
			r.Post("/api/user/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTSecret))
			r.Get("/api/todos/", taskHandler.HandleList)
			r.Post("/api/todos/", taskHandler.HandleCreate)
			r.Put("/api/todos/{id}", taskHandler.HandleUpdate)
			r.Delete("/api/todos/{id}", taskHandler.HandleDelete)
			r.Patch("/api/todos/{id}/toggle", taskHandler.HandleToggle)
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
