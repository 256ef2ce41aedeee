package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mycir/weather-now/internal/openmeteo"
	"github.com/mycir/weather-now/internal/present"
)

// errUsage marks command-line errors; the usage text has already been printed.
var errUsage = errors.New("usage error")

// errHelp is returned after -h or -help printed the usage text.
var errHelp = errors.New("help requested")

const usageText = `usage: weather-now [-l <placename>] [-c <country_code>]
                   [-t [celsius|fahrenheit]] [-p [mm|inch]] [-w [kmh|ms|mph|kn]]
                   [-d] [-o [classic|data|data-alt|extra]] [-]

options:
  -l   location placename (defaults to London if omitted)
  -c   country code (defaults to GB if omitted)
  -t   temperature unit: celsius or fahrenheit
  -p   precipitation unit: mm or inch
  -w   wind speed unit: kmh, ms, mph or kn
  -d   show wind direction in degrees instead of a compass point
  -o   output style: classic (heading, ascii art and data),
       data (just data), data-alt (data, conditions as code[description])
       or extra (just data, with extra parameters)
  -    read extra parameter names, one per line, from standard input
       (must be the last argument)
`

// requestConfig is everything one invocation needs, resolved from the command line.
type requestConfig struct {
	Place       string
	CountryCode string
	Units       openmeteo.Units
	Mode        present.Mode
	WindDegrees bool
	ExtraFields []string
}

// parseArgs parses command-line arguments. When the final argument is "-",
// extra field names are read from stdin.
func parseArgs(args []string, stdin io.Reader, out io.Writer) (requestConfig, error) {
	fs := flag.NewFlagSet("weather-now", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	place := fs.String("l", "london", "location placename")
	country := fs.String("c", "GB", "country code")
	temp := fs.String("t", openmeteo.DefaultUnits.Temperature, "temperature unit")
	precip := fs.String("p", openmeteo.DefaultUnits.Precipitation, "precipitation unit")
	wind := fs.String("w", openmeteo.DefaultUnits.WindSpeed, "wind speed unit")
	mode := fs.String("o", string(present.ModeClassic), "output style")
	degrees := fs.Bool("d", false, "wind direction in degrees")

	usage := func(err error) (requestConfig, error) {
		fmt.Fprint(out, usageText)
		fmt.Fprintf(out, "weather-now: error: %v\n", err)
		return requestConfig{}, errUsage
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(out, usageText)
			return requestConfig{}, errHelp
		}
		return usage(err)
	}

	readStdin := false
	if rest := fs.Args(); len(rest) > 0 {
		if len(rest) == 1 && rest[0] == "-" {
			readStdin = true
		} else {
			return usage(fmt.Errorf("unrecognised argument(s): %s", strings.Join(rest, " ")))
		}
	}

	cfg := requestConfig{
		Place:       strings.TrimLeft(*place, " \t"),
		CountryCode: strings.TrimLeft(*country, " \t"),
		WindDegrees: *degrees,
	}

	choices := []struct {
		flag    string
		value   *string
		allowed []string
	}{
		{"-t", temp, []string{"celsius", "fahrenheit"}},
		{"-p", precip, []string{"mm", "inch"}},
		{"-w", wind, []string{"kmh", "ms", "mph", "kn"}},
	}
	for _, c := range choices {
		*c.value = strings.TrimLeft(*c.value, " \t")
		if !slices.Contains(c.allowed, *c.value) {
			return usage(fmt.Errorf("argument %s: invalid choice: %q (choose from %s)",
				c.flag, *c.value, strings.Join(c.allowed, ", ")))
		}
	}
	cfg.Units = openmeteo.Units{Temperature: *temp, Precipitation: *precip, WindSpeed: *wind}

	m, err := present.ParseMode(strings.TrimLeft(*mode, " \t"))
	if err != nil {
		return usage(fmt.Errorf("argument -o: %w", err))
	}
	cfg.Mode = m

	if readStdin {
		fields, err := readFieldNames(stdin)
		if err != nil {
			return requestConfig{}, fmt.Errorf("read field names: %w", err)
		}
		cfg.ExtraFields = fields
	}

	return cfg, nil
}

// readFieldNames returns one trimmed, non-empty name per input line.
func readFieldNames(r io.Reader) ([]string, error) {
	var fields []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			fields = append(fields, name)
		}
	}
	return fields, sc.Err()
}
