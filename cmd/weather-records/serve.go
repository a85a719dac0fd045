package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	httpapi "github.com/i474232898/weather-records/internal/api/http"
	"github.com/i474232898/weather-records/internal/config"
	"github.com/i474232898/weather-records/internal/scheduler"
	"github.com/i474232898/weather-records/internal/store"
	"github.com/i474232898/weather-records/internal/weather"
	"github.com/i474232898/weather-records/internal/weather/providers"
)

func runServe(ctx context.Context, cfg *config.AppConfig) error {
	// Storage, opened once for the life of the process.
	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	obsStore, err := store.New(openCtx, cfg.DBDriver, cfg.DBDSN)
	cancel()
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.DBDriver).Msg("could not connect to database")
		return err
	}
	defer obsStore.Close()
	log.Info().Str("driver", cfg.DBDriver).Str("dsn", cfg.DBDSN).Msg("connected to database")

	records := weather.NewRecordService(obsStore)

	// Demo provider behind a circuit breaker.
	provider := providers.NewGuarded(providers.NewMock(cfg.CurrentLatency, cfg.ForecastLatency))
	lookup := weather.NewService(provider)

	sched := scheduler.New(cfg.RecordLocations, cfg.RecordInterval, lookup, records)
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	app := httpapi.NewApp(httpapi.Options{
		AllowOrigins: cfg.CORSOrigins,
		AccessLog:    true,
	})
	httpapi.RegisterRoutes(app, records, lookup)

	go func() {
		log.Info().Msgf("Weather backend running on http://localhost:%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("fiber server stopped")
		}
	}()

	// Wait for termination signal
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-sigCtx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server exited")
	return nil
}
