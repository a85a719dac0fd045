package weather

import "context"

// Provider abstracts a weather data source. The demo build ships a mock;
// a real provider can be substituted without touching the presentation layer.
type Provider interface {
	Name() string
	Current(ctx context.Context, location string) (CurrentWeather, error)
	Forecast(ctx context.Context, location string) (Forecast, error)
}
