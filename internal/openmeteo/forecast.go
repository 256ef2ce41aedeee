package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Units are the unit selections passed through to the forecast endpoint.
type Units struct {
	Temperature   string // celsius | fahrenheit
	Precipitation string // mm | inch
	WindSpeed     string // kmh | ms | mph | kn
}

// DefaultUnits matches the command-line defaults.
var DefaultUnits = Units{Temperature: "celsius", Precipitation: "mm", WindSpeed: "kmh"}

// BasicFields are requested for every output mode.
var BasicFields = []string{
	"temperature_2m",
	"apparent_temperature",
	"relative_humidity_2m",
	"wind_speed_10m",
	"wind_gusts_10m",
	"wind_direction_10m",
	"weather_code",
	"cloud_cover",
	"precipitation",
	"pressure_msl",
	"visibility",
}

// ExtendedFields are added for the extra output mode.
var ExtendedFields = []string{
	"dew_point_2m",
	"wind_speed_80m",
	"wind_speed_120m",
	"wind_speed_180m",
	"wind_direction_80m",
	"wind_direction_120m",
	"wind_direction_180m",
	"cloud_cover_low",
	"cloud_cover_mid",
	"cloud_cover_high",
	"freezing_level_height",
	"cape",
	"lifted_index",
	"convective_inhibition",
	"total_column_integrated_water_vapour",
	"vapour_pressure_deficit",
	"evapotranspiration",
}

// Bookkeeping fields are part of every response but carry no observation.
const (
	FieldTime     = "time"
	FieldInterval = "interval"
	FieldIsDay    = "is_day"
)

// CurrentFields builds the list of current= parameters: is_day first, then
// the basic set, the extended set when asked for, and any extra names. Each
// name appears once, at its first position.
func CurrentFields(extended bool, extra []string) []string {
	fields := make([]string, 0, 1+len(BasicFields)+len(ExtendedFields)+len(extra))
	fields = append(fields, FieldIsDay)
	fields = append(fields, BasicFields...)
	if extended {
		fields = append(fields, ExtendedFields...)
	}

	seen := make(map[string]bool, len(fields)+len(extra))
	for _, f := range fields {
		seen[f] = true
	}
	for _, f := range extra {
		if !seen[f] {
			seen[f] = true
			fields = append(fields, f)
		}
	}
	return fields
}

// Observation is the service's current-conditions snapshot. Numbers are kept
// as json.Number so they print exactly as the service sent them.
type Observation struct {
	Latitude  json.Number
	Longitude json.Number
	Time      string
	IsDay     bool

	// Fields is the requested field order, used for rendering.
	Fields []string
	Values map[string]any
	Units  map[string]string
}

// Value returns the raw value of a field and whether it was present and non-null.
func (o Observation) Value(field string) (any, bool) {
	v, ok := o.Values[field]
	return v, ok && v != nil
}

// FetchCurrent requests the given current fields for a coordinate.
func (c *Client) FetchCurrent(ctx context.Context, lat, lon float64, units Units, fields []string) (Observation, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("temperature_unit", units.Temperature)
	params.Set("precipitation_unit", units.Precipitation)
	params.Set("wind_speed_unit", units.WindSpeed)
	params.Set("timezone", "auto")
	for _, f := range fields {
		params.Add("current", f)
	}

	resp, err := c.doGet(ctx, c.forecastURL, params)
	if err != nil {
		return Observation{}, fmt.Errorf("forecast: %w", err)
	}
	defer resp.Body.Close()

	var data struct {
		Latitude     json.Number       `json:"latitude"`
		Longitude    json.Number       `json:"longitude"`
		Current      map[string]any    `json:"current"`
		CurrentUnits map[string]string `json:"current_units"`
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		return Observation{}, fmt.Errorf("decode forecast response: %w: %v", ErrMalformedResponse, err)
	}

	return newObservation(data.Latitude, data.Longitude, data.Current, data.CurrentUnits, fields)
}

func newObservation(lat, lon json.Number, current map[string]any, units map[string]string, fields []string) (Observation, error) {
	if current == nil {
		return Observation{}, fmt.Errorf("%w: missing current", ErrMalformedResponse)
	}
	if units == nil {
		return Observation{}, fmt.Errorf("%w: missing current_units", ErrMalformedResponse)
	}

	t, ok := current[FieldTime].(string)
	if !ok {
		return Observation{}, fmt.Errorf("%w: missing or invalid current.time", ErrMalformedResponse)
	}
	isDay, ok := current[FieldIsDay].(json.Number)
	if !ok {
		return Observation{}, fmt.Errorf("%w: missing or invalid current.is_day", ErrMalformedResponse)
	}
	day, err := isDay.Float64()
	if err != nil {
		return Observation{}, fmt.Errorf("%w: current.is_day: %v", ErrMalformedResponse, err)
	}

	for name := range current {
		switch name {
		case FieldTime, FieldInterval, FieldIsDay:
			continue
		}
		if _, ok := units[name]; !ok {
			return Observation{}, fmt.Errorf("%w: no unit for current.%s", ErrMalformedResponse, name)
		}
	}

	return Observation{
		Latitude:  lat,
		Longitude: lon,
		Time:      t,
		IsDay:     day != 0,
		Fields:    append([]string(nil), fields...),
		Values:    current,
		Units:     units,
	}, nil
}
