package main

import (
	"log"
	"log/slog"
	"time"

	"nexus_backend/internal/app/router"
	authadapters "nexus_backend/internal/feature/auth/adapters"
	authhandler "nexus_backend/internal/feature/auth/transport/handler"
	authusecase "nexus_backend/internal/feature/auth/usecase"
	projectadapters "nexus_backend/internal/feature/projects/adapters"
	projecthandler "nexus_backend/internal/feature/projects/transport/handler"
	projectusecase "nexus_backend/internal/feature/projects/usecase"
	"nexus_backend/internal/platform/config"
	"nexus_backend/internal/platform/db"
	"nexus_backend/internal/platform/token"
)

func main() {
	// Config is read once here; everything downstream gets it injected.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if !cfg.IsProduction() && cfg.JWTSecret == config.DevJWTSecret {
		slog.Warn("JWT_SECRET is not set. Using the development default; set a strong secret in production.")
	}

	// DB
	conn, err := db.ConnectWithRetry(cfg.DatabaseURL, 60*time.Second, db.Open)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := db.AutoMigrate(conn); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Token generator
	tokens := token.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)

	// Repository
	userRepo := authadapters.NewUserRepository(conn)
	projectRepo := projectadapters.NewProjectRepository(conn)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	projectUC := projectusecase.NewProjectUsecase(projectRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	projectH := projecthandler.NewProjectHandler(projectUC)

	r := router.NewRouter(cfg.FrontendOrigin, authH, projectH)

	slog.Info("starting server", "app", cfg.AppName, "env", cfg.AppEnv, "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
