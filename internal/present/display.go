package present

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mycir/weather-now/internal/openmeteo"
)

// Mode selects the output style.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeData    Mode = "data"
	ModeDataAlt Mode = "data-alt"
	ModeExtra   Mode = "extra"
)

// Modes lists every supported output style in help order.
var Modes = []Mode{ModeClassic, ModeData, ModeDataAlt, ModeExtra}

// ParseMode validates an output style name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid output style %q", s)
}

// Extended reports whether the mode requests the extended field set.
func (m Mode) Extended() bool { return m == ModeExtra }

// Options controls how an observation is presented.
type Options struct {
	Mode        Mode
	WindDegrees bool
}

// Row is one labeled field.
type Row struct {
	Label string
	Value string
	Unit  string
}

// String renders the row as "Label: value unit". Units that are a symbol
// (degrees, percent) attach to the value.
func (r Row) String() string {
	switch {
	case r.Unit == "":
		return r.Label + ": " + r.Value
	case strings.HasPrefix(r.Unit, "°"), strings.HasPrefix(r.Unit, "%"):
		return r.Label + ": " + r.Value + r.Unit
	default:
		return r.Label + ": " + r.Value + " " + r.Unit
	}
}

// Display is a fully formatted observation, ready to be written.
type Display struct {
	Header []string
	Art    string
	Rows   []Row
}

// Build turns a location and observation into a Display. The observation is
// not modified.
func Build(loc openmeteo.Location, obs openmeteo.Observation, opts Options) (Display, error) {
	code, err := weatherCode(obs)
	if err != nil {
		return Display{}, err
	}
	if obs.Latitude == "" || obs.Longitude == "" {
		return Display{}, fmt.Errorf("%w: missing latitude/longitude", openmeteo.ErrMalformedResponse)
	}
	coords := formatNumber(obs.Latitude) + "," + formatNumber(obs.Longitude)

	var d Display
	switch opts.Mode {
	case ModeClassic:
		header := fmt.Sprintf("Weather for %s, %s at %s", loc.Name, coords, obs.Time)
		d.Header = []string{header, strings.Repeat("=", utf8.RuneCountInString(header))}
		d.Art = Graphic(ASCIIArt, code, obs.IsDay)
	case ModeData, ModeDataAlt, ModeExtra:
		d.Header = []string{
			"Location: " + loc.Name,
			"Coordinates: " + coords,
			"Local time: " + obs.Time,
			"Weather code: " + strconv.Itoa(code),
			"Symbol: " + Graphic(Symbols, code, obs.IsDay),
		}
	default:
		return Display{}, fmt.Errorf("invalid output style %q", opts.Mode)
	}

	degrees := opts.WindDegrees || opts.Mode == ModeExtra
	for _, field := range obs.Fields {
		switch field {
		case openmeteo.FieldTime, openmeteo.FieldInterval, openmeteo.FieldIsDay:
			continue
		}
		d.Rows = append(d.Rows, fieldRow(obs, field, code, opts.Mode, degrees))
	}
	return d, nil
}

func fieldRow(obs openmeteo.Observation, field string, code int, mode Mode, degrees bool) Row {
	row := Row{Label: Label(field)}

	v, ok := obs.Value(field)
	if !ok {
		row.Value = "n/a"
		return row
	}
	row.Value = formatValue(v)
	row.Unit = obs.Units[field]

	switch {
	case field == "weather_code":
		row.Unit = ""
		row.Value = Description(code)
		if mode == ModeDataAlt {
			row.Value = fmt.Sprintf("%d[%s]", code, Description(code))
		}
	case strings.HasPrefix(field, "wind_direction") && !degrees:
		if deg, ok := number(v); ok {
			row.Value, row.Unit = DegreesToCompass(deg), ""
		}
	case field == "visibility":
		if raw, ok := number(v); ok {
			if val, unit, converted := NormalizeVisibility(raw, row.Unit); converted {
				row.Value, row.Unit = formatFloat(val), unit
			}
		}
	}
	return row
}

func weatherCode(obs openmeteo.Observation) (int, error) {
	v, ok := obs.Value("weather_code")
	if !ok {
		return 0, fmt.Errorf("%w: missing current.weather_code", openmeteo.ErrMalformedResponse)
	}
	f, ok := number(v)
	if !ok || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: invalid current.weather_code %v", openmeteo.ErrMalformedResponse, v)
	}
	return int(f), nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	}
	return 0, false
}

func formatValue(v any) string {
	switch x := v.(type) {
	case json.Number:
		return formatNumber(x)
	case string:
		return x
	case float64:
		return formatFloat(x)
	}
	return fmt.Sprint(v)
}

// Render writes the display, surrounded by blank lines.
func (d Display) Render(w io.Writer) error {
	var b strings.Builder
	b.WriteString("\n")
	for _, line := range d.Header {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if d.Art != "" {
		b.WriteString(d.Art)
		b.WriteString("\n")
	}
	for _, r := range d.Rows {
		b.WriteString(r.String())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
