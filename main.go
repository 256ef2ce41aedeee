// Command weather-now prints the current weather for a place using the
// Open-Meteo geocoding and forecast APIs.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mycir/weather-now/internal/config"
	"github.com/mycir/weather-now/internal/openmeteo"
	"github.com/mycir/weather-now/internal/present"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(exitFailure)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, cfg, logger))
}

// run executes one lookup and returns the process exit code. All user-facing
// output, including error messages, goes to stdout.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, cfg config.Config, logger *slog.Logger) int {
	req, err := parseArgs(args, stdin, stdout)
	if err != nil {
		switch {
		case errors.Is(err, errHelp):
			return exitOK
		case errors.Is(err, errUsage):
			return exitUsage
		}
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return exitFailure
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client := openmeteo.NewClient(openmeteo.Options{
		GeocodingURL: cfg.GeocodingURL,
		ForecastURL:  cfg.ForecastURL,
		Timeout:      cfg.Timeout,
		RateLimit:    cfg.RateLimit,
		RateBurst:    cfg.RateBurst,
		Logger:       logger,
	})

	if err := lookup(ctx, client, req, stdout); err != nil {
		logger.Debug("lookup failed", "run_id", client.RunID(), "err", err)
		fmt.Fprintln(stdout, errorMessage(err))
		return exitFailure
	}
	return exitOK
}

func lookup(ctx context.Context, client *openmeteo.Client, req requestConfig, w io.Writer) error {
	loc, err := client.Geocode(ctx, req.Place, req.CountryCode)
	if err != nil {
		return err
	}

	fields := openmeteo.CurrentFields(req.Mode.Extended(), req.ExtraFields)
	obs, err := client.FetchCurrent(ctx, loc.Latitude, loc.Longitude, req.Units, fields)
	if err != nil {
		return err
	}

	display, err := present.Build(loc, obs, present.Options{Mode: req.Mode, WindDegrees: req.WindDegrees})
	if err != nil {
		return err
	}
	return display.Render(w)
}

// errorMessage maps a lookup error to the text shown to the user.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, openmeteo.ErrLocationNotFound):
		return openmeteo.ErrLocationNotFound.Error()
	case errors.Is(err, openmeteo.ErrMalformedResponse):
		return fmt.Sprintf("Error parsing weather data: %v", err)
	case errors.Is(err, openmeteo.ErrNetwork):
		return fmt.Sprintf("Error geocoding location or fetching weather data: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
