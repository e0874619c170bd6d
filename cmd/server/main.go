package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rohits-web03/travelstory/internal/api"
	"github.com/rohits-web03/travelstory/internal/api/handlers"
	"github.com/rohits-web03/travelstory/internal/api/middleware"
	"github.com/rohits-web03/travelstory/internal/auth"
	"github.com/rohits-web03/travelstory/internal/config"
	"github.com/rohits-web03/travelstory/internal/logger"
	"github.com/rohits-web03/travelstory/internal/repositories"
	"github.com/rohits-web03/travelstory/internal/services"
)

// @title Travel Story API
// @version 1.0
// @description Personal travel journal: accounts, photo uploads and dated travel stories.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.New(cfg.Environment, cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

func run(cfg config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := repositories.ConnectDatabase(cfg.DB_URL, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := repositories.Close(db); err != nil {
			log.WithError(err).Warn("Failed to close database")
		}
	}()

	images, err := newImageStore(cfg)
	if err != nil {
		return err
	}

	tokens := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := services.NewAuthService(repositories.NewUserRepository(db), tokens, cfg.BcryptCost)
	storySvc := services.NewStoryService(repositories.NewStoryRepository(db), images, cfg.PlaceholderImageURL(), log)
	// Let in-flight image cleanups finish before the pool closes.
	defer storySvc.Wait()

	deps := handlers.Deps{
		Auth:    authSvc,
		Images:  services.NewImageService(images),
		Stories: storySvc,
		Config:  cfg,
		Log:     log,
	}
	if cfg.Google.Enabled() {
		deps.Google = services.NewGoogleOAuth(cfg.Google)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, log)
	router := api.SetupRouter(api.RouterDeps{
		Handler: handlers.New(deps),
		Tokens:  tokens,
		Metrics: middleware.NewMetrics(),
		Limiter: limiter,
		Config:  cfg,
		Log:     log,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
		// Timeouts prevent resource exhaustion from slow clients
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("port", cfg.Port).Info("Starting Travel Story server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not listen on port %s: %w", cfg.Port, err)
		}
		return nil
	})

	g.Go(func() error {
		return limiter.Run(gctx, time.Minute)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newImageStore(cfg config.Config) (services.ImageStore, error) {
	switch cfg.ImageStore {
	case "", "local":
		return repositories.NewLocalImageStore(cfg.UploadDir, cfg.PublicBaseURL)
	case "r2":
		return repositories.NewR2ImageStore(cfg.R2)
	default:
		return nil, fmt.Errorf("unknown IMAGE_STORE %q (want local or r2)", cfg.ImageStore)
	}
}
