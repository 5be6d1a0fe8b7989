package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/clinicdesk/calendar-api/internal/config"
	"github.com/clinicdesk/calendar-api/internal/handler"
	appointmentHandler "github.com/clinicdesk/calendar-api/internal/handler/appointment"
	authHandler "github.com/clinicdesk/calendar-api/internal/handler/auth"
	calendarHandler "github.com/clinicdesk/calendar-api/internal/handler/calendar"
	refdataHandler "github.com/clinicdesk/calendar-api/internal/handler/refdata"
	"github.com/clinicdesk/calendar-api/internal/middleware"
	"github.com/clinicdesk/calendar-api/internal/refdata"
	"github.com/clinicdesk/calendar-api/internal/repository"
	"github.com/clinicdesk/calendar-api/internal/repository/localstore"
	"github.com/clinicdesk/calendar-api/internal/repository/sqlite"
	"github.com/clinicdesk/calendar-api/internal/router"
	appointmentService "github.com/clinicdesk/calendar-api/internal/service/appointment"
	authService "github.com/clinicdesk/calendar-api/internal/service/auth"
	"github.com/clinicdesk/calendar-api/internal/service/calendarview"
	"github.com/clinicdesk/calendar-api/pkg/auth"
	"github.com/clinicdesk/calendar-api/pkg/logger"
)

func main() {
	logger.Setup(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Roster tables: compiled-in defaults, optionally overridden by file.
	roster := refdata.NewStore()
	if cfg.Roster.File != "" {
		roster, err = refdata.Load(cfg.Roster.File)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load roster file")
		}
	}

	appointmentRepo, cleanup, err := newAppointmentRepository(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize appointment storage")
	}
	defer cleanup()

	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)
	authSvc, err := authService.NewService(authService.Config{
		Email:      cfg.Auth.Email,
		Password:   cfg.Auth.Password,
		LoginDelay: cfg.Auth.LoginDelay,
		SessionTTL: cfg.Auth.SessionTTL,
	}, jwtSvc)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize auth service")
	}

	appointmentSvc := appointmentService.NewService(appointmentRepo, roster)
	calendarSvc := calendarview.NewService(appointmentRepo, roster)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		refdataHandler.NewHandler(roster),
		appointmentHandler.NewHandler(appointmentSvc),
		calendarHandler.NewHandler(calendarSvc),
		handler.NewHandler(),
		router.RouterConfig{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			CORSConfig:     middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Str("storage", cfg.Storage.Backend).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func newAppointmentRepository(cfg config.StorageConfig) (repository.AppointmentRepository, func(), error) {
	switch cfg.Backend {
	case "", "localstore":
		return localstore.NewAppointmentRepository(cfg.Path), func() {}, nil
	case "sqlite":
		db, err := sqlite.NewDB(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewAppointmentRepository(db), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
