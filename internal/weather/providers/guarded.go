package providers

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-records/internal/weather"
)

// Guarded wraps a weather.Provider so every call goes through a circuit
// breaker. Calls are never retried.
type Guarded struct {
	next    weather.Provider
	circuit *gobreaker.CircuitBreaker
}

func NewGuarded(next weather.Provider) *Guarded {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("provider", name).Stringer("from", from).Stringer("to", to).
				Msg("provider circuit state changed")
		},
	})

	return &Guarded{next: next, circuit: cb}
}

func (p *Guarded) Name() string {
	return p.next.Name()
}

func (p *Guarded) Current(ctx context.Context, location string) (weather.CurrentWeather, error) {
	return execute(p.circuit, func() (weather.CurrentWeather, error) {
		return p.next.Current(ctx, location)
	})
}

func (p *Guarded) Forecast(ctx context.Context, location string) (weather.Forecast, error) {
	return execute(p.circuit, func() (weather.Forecast, error) {
		return p.next.Forecast(ctx, location)
	})
}

// execute runs fn through cb. An open circuit wraps the breaker's own error.
func execute[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var zero T

	result, err := cb.Execute(func() (interface{}, error) {
		v, err := fn()
		return v, err
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, errors.Wrap(err, "circuit breaker open")
		}
		return zero, err
	}

	v, ok := result.(T)
	if !ok {
		return zero, errors.New("unexpected result type from circuit breaker")
	}
	return v, nil
}
