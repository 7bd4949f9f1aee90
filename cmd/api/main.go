package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/repository"
	"github.com/vaultpass/passgen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	genService := service.NewGeneratorService(crypto.NewGenerator(), cfg.DefaultProfile)
	genHandler := handler.NewGeneratorHandler(genService)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(ctx)

	r := chi.NewRouter()
	r.Use(middleware.Logger(slog.Default()))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/v1/profiles", genHandler.HandleProfiles)

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Post("/api/v1/generate/password", genHandler.HandlePassword)
		r.Post("/api/v1/generate/passphrase", genHandler.HandlePassphrase)
		r.Post("/api/v1/generate/pin", genHandler.HandlePin)
		r.Post("/api/v1/check", genHandler.HandleCheck)
	})

	// Device and preference routes need the database.
	db, err := openStore(ctx, cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database unavailable, device routes disabled", "error", err)
	} else {
		defer db.Close()

		deviceService := service.NewDeviceService(repository.NewDeviceRepository(db), cfg.JWTSecret, cfg.JWTExpiry)
		deviceHandler := handler.NewDeviceHandler(deviceService)

		prefService := service.NewPreferenceService(repository.NewPreferenceRepository(db))
		prefHandler := handler.NewPreferenceHandler(prefService)

		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/api/v1/devices", deviceHandler.HandleRegister)
			r.Post("/api/v1/devices/token", deviceHandler.HandleToken)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.DeviceAuth(cfg.JWTSecret))
			r.Get("/api/v1/preferences/theme", prefHandler.HandleGetTheme)
			r.Put("/api/v1/preferences/theme", prefHandler.HandlePutTheme)
		})
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "profile", cfg.DefaultProfile)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func openStore(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := repository.NewDB(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := repository.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
