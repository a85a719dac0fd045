package weather

import (
	"time"

	"github.com/i474232898/weather-records/internal/common"
)

// ForecastDays is the fixed length of every Forecast.
const ForecastDays = 5

// DefaultLocation is searched when the caller gives none.
const DefaultLocation = "San Francisco, CA"

// Device location lookups give up after DeviceLocationTimeout and accept
// cached fixes up to DeviceLocationMaxAge old.
const (
	DeviceLocationTimeout = 10 * time.Second
	DeviceLocationMaxAge  = 5 * time.Minute
)

// Icon is a normalized condition icon name.
type Icon string

const (
	IconUnknown      Icon = "unknown"
	IconSunny        Icon = "sunny"
	IconPartlyCloudy Icon = "partly-cloudy"
	IconCloudy       Icon = "cloudy"
	IconRainy        Icon = "rainy"
	IconSnowy        Icon = "snowy"
	IconStormy       Icon = "stormy"
)

// IconFor maps a free-text condition description to an Icon.
func IconFor(description string) Icon {
	switch {
	case description == "":
		return IconUnknown
	case common.HasAny(description, "thunder", "storm"):
		return IconStormy
	case common.HasAny(description, "rain", "shower", "drizzle"):
		return IconRainy
	case common.HasAny(description, "snow", "sleet", "blizzard"):
		return IconSnowy
	case common.HasAny(description, "partly"):
		return IconPartlyCloudy
	case common.HasAny(description, "cloud", "overcast"):
		return IconCloudy
	case common.HasAny(description, "sunny", "clear"):
		return IconSunny
	default:
		return IconUnknown
	}
}

// CurrentWeather is a point-in-time view of conditions for one location.
type CurrentWeather struct {
	Location    string   `json:"location"`
	Temperature float64  `json:"temperature"`
	Description string   `json:"description"`
	FeelsLike   float64  `json:"feels_like"`
	Humidity    float64  `json:"humidity"`
	WindSpeed   float64  `json:"wind_speed"`
	Pressure    float64  `json:"pressure"`
	Visibility  float64  `json:"visibility"`
	UVIndex     *float64 `json:"uv_index,omitempty"`
	Icon        Icon     `json:"icon"`
}

// ForecastDay is one day of a Forecast.
type ForecastDay struct {
	Date        string  `json:"date"`
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
	Description string  `json:"description"`
	Icon        Icon    `json:"icon"`
	Humidity    float64 `json:"humidity"`
}

// Forecast holds ForecastDays consecutive days, today first.
type Forecast struct {
	Days []ForecastDay `json:"forecast"`
}

// Report combines the current conditions and the forecast for one search.
// The forecast days are inlined as "forecast".
type Report struct {
	Current CurrentWeather `json:"current"`
	Forecast
}
