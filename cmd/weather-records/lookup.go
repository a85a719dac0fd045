package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/i474232898/weather-records/internal/common"
	"github.com/i474232898/weather-records/internal/config"
	"github.com/i474232898/weather-records/internal/weather"
	"github.com/i474232898/weather-records/internal/weather/providers"
)

func newLookupCmd(cfg func() *config.AppConfig) *cobra.Command {
	var (
		lat, lon float64
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "lookup [location]",
		Short: "Show current weather and the 5-day forecast for a location",
		Long: "Show current weather and the 5-day forecast for a location.\n" +
			"The location is free text: a city, a postal code, a landmark or a coordinate pair.\n" +
			"Without a location, " + weather.DefaultLocation + " is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			location := strings.TrimSpace(strings.Join(args, " "))
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
				location = common.FormatCoordinates(lat, lon)
			}
			if location == "" {
				location = weather.DefaultLocation
			}

			c := cfg()
			svc := weather.NewService(providers.NewGuarded(providers.NewMock(c.CurrentLatency, c.ForecastLatency)))

			ctx, cancel := context.WithTimeout(cmd.Context(), weather.DeviceLocationTimeout)
			defer cancel()

			report, err := svc.Lookup(ctx, location)
			if err != nil {
				return fmt.Errorf("failed to fetch weather data, please try again")
			}

			out := cmd.OutOrStdout()
			if asJSON || !isatty.IsTerminal(os.Stdout.Fd()) {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			renderReport(out, report)
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude of the device location")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude of the device location")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}

func renderReport(w io.Writer, r weather.Report) {
	cur := r.Current
	fmt.Fprintf(w, "%s\n", cur.Location)
	fmt.Fprintf(w, "  %.0f°  %s (feels like %.0f°)\n", cur.Temperature, cur.Description, cur.FeelsLike)
	fmt.Fprintf(w, "  humidity %.0f%%  wind %.1f mph  pressure %.0f hPa  visibility %.0f mi",
		cur.Humidity, cur.WindSpeed, cur.Pressure, cur.Visibility)
	if cur.UVIndex != nil {
		fmt.Fprintf(w, "  UV %.0f", *cur.UVIndex)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "5-day forecast")
	for _, d := range r.Forecast.Days {
		fmt.Fprintf(w, "  %-10s %3.0f° / %3.0f°  %-14s humidity %.0f%%\n", d.Date, d.High, d.Low, d.Description, d.Humidity)
	}
}
