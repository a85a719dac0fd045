package providers

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/i474232898/weather-records/internal/weather"
)

// Default simulated latencies of the demo provider.
const (
	DefaultCurrentLatency  = 1000 * time.Millisecond
	DefaultForecastLatency = 800 * time.Millisecond
)

// Mock implements weather.Provider with canned data and simulated latency.
// The forecast does not depend on the location.
type Mock struct {
	name            string
	currentLatency  time.Duration
	forecastLatency time.Duration
}

func NewMock(currentLatency, forecastLatency time.Duration) *Mock {
	return &Mock{
		name:            "mock",
		currentLatency:  currentLatency,
		forecastLatency: forecastLatency,
	}
}

func (p *Mock) Name() string {
	return p.name
}

func (p *Mock) Current(ctx context.Context, location string) (weather.CurrentWeather, error) {
	log.Debug().Str("location", location).Msg("fetching current weather")

	if err := wait(ctx, p.currentLatency); err != nil {
		return weather.CurrentWeather{}, err
	}

	cur := sampleCurrent()
	cur.Location = location
	return cur, nil
}

func (p *Mock) Forecast(ctx context.Context, location string) (weather.Forecast, error) {
	log.Debug().Str("location", location).Msg("fetching forecast")

	if err := wait(ctx, p.forecastLatency); err != nil {
		return weather.Forecast{}, err
	}
	return sampleForecast(), nil
}

func sampleCurrent() weather.CurrentWeather {
	uv := 6.0
	return weather.CurrentWeather{
		Location:    weather.DefaultLocation,
		Temperature: 72,
		Description: "Partly Cloudy",
		FeelsLike:   75,
		Humidity:    65,
		WindSpeed:   8.2,
		Pressure:    1013,
		Visibility:  10,
		UVIndex:     &uv,
		Icon:        weather.IconFor("Partly Cloudy"),
	}
}

func sampleForecast() weather.Forecast {
	day := func(date string, high, low float64, desc string, humidity float64) weather.ForecastDay {
		return weather.ForecastDay{
			Date:        date,
			High:        high,
			Low:         low,
			Description: desc,
			Icon:        weather.IconFor(desc),
			Humidity:    humidity,
		}
	}

	return weather.Forecast{Days: []weather.ForecastDay{
		day("Today", 75, 62, "Partly Cloudy", 65),
		day("Tomorrow", 78, 64, "Sunny", 58),
		day("Wednesday", 73, 61, "Cloudy", 72),
		day("Thursday", 69, 58, "Rain", 85),
		day("Friday", 71, 59, "Partly Cloudy", 68),
	}}
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
