package weather

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrFetchFailed is the single error callers see when a lookup fails.
	// The underlying cause is logged, not returned.
	ErrFetchFailed = errors.New("failed to fetch weather data")

	// ErrLocationRequired is returned for an empty search location.
	ErrLocationRequired = errors.New("location is required")
)

// Service answers current-weather and forecast lookups through a Provider.
type Service struct {
	provider Provider
}

// NewService creates a new Service.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Current returns the current conditions for location.
func (s *Service) Current(ctx context.Context, location string) (CurrentWeather, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return CurrentWeather{}, ErrLocationRequired
	}

	cur, err := s.provider.Current(ctx, location)
	if err != nil {
		log.Warn().Err(err).Str("provider", s.provider.Name()).Str("location", location).
			Msg("current weather fetch failed")
		return CurrentWeather{}, ErrFetchFailed
	}
	return cur, nil
}

// Forecast returns the ForecastDays-day forecast for location.
func (s *Service) Forecast(ctx context.Context, location string) (Forecast, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Forecast{}, ErrLocationRequired
	}

	f, err := s.provider.Forecast(ctx, location)
	if err == nil && len(f.Days) != ForecastDays {
		err = errors.Errorf("expected %d forecast days, got %d", ForecastDays, len(f.Days))
	}
	if err != nil {
		log.Warn().Err(err).Str("provider", s.provider.Name()).Str("location", location).
			Msg("forecast fetch failed")
		return Forecast{}, ErrFetchFailed
	}
	return f, nil
}

// Lookup fetches current conditions and the forecast concurrently and
// waits for both. If either fails, nothing is returned: the caller keeps
// whatever it displayed before.
func (s *Service) Lookup(ctx context.Context, location string) (Report, error) {
	if strings.TrimSpace(location) == "" {
		return Report{}, ErrLocationRequired
	}

	var report Report
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cur, err := s.Current(gctx, location)
		report.Current = cur
		return err
	})
	g.Go(func() error {
		f, err := s.Forecast(gctx, location)
		report.Forecast = f
		return err
	})
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	log.Debug().Str("location", report.Current.Location).Msg("weather lookup complete")
	return report, nil
}
