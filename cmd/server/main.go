package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"landing-leads/internal/http/handlers"
	landingh "landing-leads/internal/http/handlers/landing"
	submissionh "landing-leads/internal/http/handlers/submission"
	mw "landing-leads/internal/http/middleware"
	"landing-leads/internal/lib/config"
	"landing-leads/internal/lib/sl"
	repo "landing-leads/internal/repository"
	"landing-leads/internal/service/submission"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	// .env is optional; deployments set the variables directly
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting lead capture service", slog.String("env", cfg.Env))

	loc, err := cfg.Sheets.Location()
	if err != nil {
		log.Error("invalid submission time zone", sl.Err(err))
		os.Exit(1)
	}

	leadRepo, err := repo.NewLeadRepo(context.Background(), cfg.Sheets)
	if err != nil {
		log.Error("failed to create sheets client", sl.Err(err))
		os.Exit(1)
	}

	submissionService := submission.NewSubmissionService(leadRepo, loc)

	submissionHandler := submissionh.NewSubmissionHandler(log, submissionService)
	landingHandler := landingh.NewLandingHandler(log, cfg.Site.PhoneNumber)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/", landingHandler.Index)
	router.Get("/health", handlers.Healthcheck())
	router.Post("/api/submit-form", submissionHandler.Submit)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start http server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("stopping http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop http server", sl.Err(err))
		return
	}

	log.Info("http server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev, envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
		log.Warn("unknown env, using prod logger", slog.String("env", env))
	}
	return log
}
