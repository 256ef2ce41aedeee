package present

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mycir/weather-now/internal/openmeteo"
)

func sampleObservation(extra ...string) openmeteo.Observation {
	return openmeteo.Observation{
		Latitude:  "48.86",
		Longitude: "2.3399997",
		Time:      "2026-10-19T14:00",
		IsDay:     true,
		Fields:    openmeteo.CurrentFields(false, extra),
		Values: map[string]any{
			"time":                 "2026-10-19T14:00",
			"interval":             json.Number("900"),
			"is_day":               json.Number("1"),
			"temperature_2m":       json.Number("12.5"),
			"apparent_temperature": json.Number("10.9"),
			"relative_humidity_2m": json.Number("71"),
			"wind_speed_10m":       json.Number("14.3"),
			"wind_gusts_10m":       json.Number("29.2"),
			"wind_direction_10m":   json.Number("250"),
			"weather_code":         json.Number("3"),
			"cloud_cover":          json.Number("100"),
			"precipitation":        json.Number("0.00"),
			"pressure_msl":         json.Number("1016.4"),
			"visibility":           json.Number("24140.0"),
			"cape":                 nil,
		},
		Units: map[string]string{
			"time":                 "iso8601",
			"interval":             "seconds",
			"is_day":               "",
			"temperature_2m":       "°C",
			"apparent_temperature": "°C",
			"relative_humidity_2m": "%",
			"wind_speed_10m":       "km/h",
			"wind_gusts_10m":       "km/h",
			"wind_direction_10m":   "°",
			"weather_code":         "wmo code",
			"cloud_cover":          "%",
			"precipitation":        "mm",
			"pressure_msl":         "hPa",
			"visibility":           "m",
			"cape":                 "J/kg",
		},
	}
}

var paris = openmeteo.Location{Name: "Paris", Latitude: 48.85341, Longitude: 2.3488}

func render(t *testing.T, obs openmeteo.Observation, opts Options) string {
	t.Helper()
	d, err := Build(paris, obs, opts)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

const fieldLines = `Temperature: 12.5°C
Feels like: 10.9°C
Humidity: 71%
Wind: 14.3 km/h
Gusts: 29.2 km/h
Direction: WSW
Conditions: Overcast
Cloud cover: 100%
Precipitation: 0.0 mm
Pressure: 1016.4 hPa
Visibility: 24.14 km
`

func TestRenderData(t *testing.T) {
	got := render(t, sampleObservation(), Options{Mode: ModeData})
	want := "\n" +
		"Location: Paris\n" +
		"Coordinates: 48.86,2.3399997\n" +
		"Local time: 2026-10-19T14:00\n" +
		"Weather code: 3\n" +
		"Symbol: ☁\n" +
		fieldLines +
		"\n"
	if got != want {
		t.Errorf("data output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderClassic(t *testing.T) {
	got := render(t, sampleObservation(), Options{Mode: ModeClassic})

	header := "Weather for Paris, 48.86,2.3399997 at 2026-10-19T14:00"
	want := "\n" + header + "\n" +
		strings.Repeat("=", len(header)) + "\n" +
		ASCIIArt["cloudy"] + "\n" +
		fieldLines +
		"\n"
	if got != want {
		t.Errorf("classic output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderDataAlt(t *testing.T) {
	got := render(t, sampleObservation(), Options{Mode: ModeDataAlt})
	if !strings.Contains(got, "\nConditions: 3[Overcast]\n") {
		t.Errorf("data-alt conditions missing:\n%s", got)
	}
}

func TestRenderWindDegrees(t *testing.T) {
	got := render(t, sampleObservation(), Options{Mode: ModeData, WindDegrees: true})
	if !strings.Contains(got, "\nDirection: 250°\n") {
		t.Errorf("expected degrees:\n%s", got)
	}

	got = render(t, sampleObservation(), Options{Mode: ModeExtra})
	if !strings.Contains(got, "\nDirection: 250°\n") {
		t.Errorf("extra mode should show degrees:\n%s", got)
	}
}

func TestRenderExtraFields(t *testing.T) {
	got := render(t, sampleObservation("cape", "uv_index"), Options{Mode: ModeData})
	for _, line := range []string{"\nCAPE: n/a\n", "\nUv index: n/a\n"} {
		if !strings.Contains(got, line) {
			t.Errorf("missing %q in:\n%s", line, got)
		}
	}
	for _, hidden := range []string{"Time:", "Interval:", "Is day:"} {
		if strings.Contains(got, hidden) {
			t.Errorf("bookkeeping field %q rendered:\n%s", hidden, got)
		}
	}
}

// extendedObservation is sampleObservation with the extended field set and
// extra names appended, as requested for the extra output style.
func extendedObservation(extra ...string) openmeteo.Observation {
	obs := sampleObservation()
	obs.Fields = openmeteo.CurrentFields(true, extra)
	obs.Values = copyValues(obs.Values)
	units := make(map[string]string, len(obs.Units))
	for k, v := range obs.Units {
		units[k] = v
	}
	obs.Units = units

	for field, v := range map[string]struct {
		value json.Number
		unit  string
	}{
		"dew_point_2m":                         {"5.2", "°C"},
		"wind_speed_80m":                       {"22.1", "km/h"},
		"wind_speed_120m":                      {"25.0", "km/h"},
		"wind_speed_180m":                      {"27.40", "km/h"},
		"wind_direction_80m":                   {"270", "°"},
		"wind_direction_120m":                  {"275", "°"},
		"wind_direction_180m":                  {"290", "°"},
		"cloud_cover_low":                      {"20", "%"},
		"cloud_cover_mid":                      {"45", "%"},
		"cloud_cover_high":                     {"100", "%"},
		"freezing_level_height":                {"2140.0", "m"},
		"cape":                                 {"110.0", "J/kg"},
		"lifted_index":                         {"1.30", ""},
		"convective_inhibition":                {"0.0", "J/kg"},
		"total_column_integrated_water_vapour": {"18.3", "kg/m²"},
		"vapour_pressure_deficit":              {"0.42", "kPa"},
		"evapotranspiration":                   {"0.01", "mm"},
	} {
		obs.Values[field] = v.value
		obs.Units[field] = v.unit
	}
	return obs
}

const extendedLines = `Dewpoint: 5.2°C
Wind 80m: 22.1 km/h
Wind 120m: 25.0 km/h
Wind 180m: 27.4 km/h
Wind direction 80m: 270°
Wind direction 120m: 275°
Wind direction 180m: 290°
Cloud cover, low: 20%
Cloud cover, middle: 45%
Cloud cover, high: 100%
Freezing level: 2140.0 m
CAPE: 110.0 J/kg
Lifted index: 1.3
Convective inhibition: 0.0 J/kg
TCWV: 18.3 kg/m²
Vapour pressure deficit: 0.42 kPa
Evapotranspiration: 0.01 mm
`

func TestRenderExtra(t *testing.T) {
	got := render(t, extendedObservation(), Options{Mode: ModeExtra})
	want := "\n" +
		"Location: Paris\n" +
		"Coordinates: 48.86,2.3399997\n" +
		"Local time: 2026-10-19T14:00\n" +
		"Weather code: 3\n" +
		"Symbol: ☁\n" +
		strings.Replace(fieldLines, "Direction: WSW\n", "Direction: 250°\n", 1) +
		extendedLines +
		"\n"
	if got != want {
		t.Errorf("extra output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderWindDirectionFields(t *testing.T) {
	withUpperWind := func() openmeteo.Observation {
		obs := sampleObservation("wind_direction_80m", "wind_direction_180m")
		obs.Values = copyValues(obs.Values)
		obs.Values["wind_direction_80m"] = json.Number("270")
		obs.Values["wind_direction_180m"] = json.Number("290")
		obs.Units = map[string]string{"wind_direction_10m": "°", "wind_direction_80m": "°", "wind_direction_180m": "°"}
		return obs
	}

	tests := []struct {
		name string
		obs  openmeteo.Observation
		opts Options
		want []string
	}{
		{
			name: "extra shows degrees",
			obs:  extendedObservation(),
			opts: Options{Mode: ModeExtra},
			want: []string{"Direction: 250°", "Wind direction 80m: 270°", "Wind direction 120m: 275°", "Wind direction 180m: 290°"},
		},
		{
			name: "extended fields as compass points in data mode",
			obs:  extendedObservation(),
			opts: Options{Mode: ModeData},
			want: []string{"Direction: WSW", "Wind direction 80m: W", "Wind direction 120m: W", "Wind direction 180m: WNW"},
		},
		{
			name: "extra names in data mode",
			obs:  withUpperWind(),
			opts: Options{Mode: ModeData},
			want: []string{"Direction: WSW", "Wind direction 80m: W", "Wind direction 180m: WNW"},
		},
		{
			name: "extra names with degrees flag",
			obs:  withUpperWind(),
			opts: Options{Mode: ModeDataAlt, WindDegrees: true},
			want: []string{"Direction: 250°", "Wind direction 80m: 270°", "Wind direction 180m: 290°"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, tt.obs, tt.opts)
			for _, line := range tt.want {
				if !strings.Contains(got, "\n"+line+"\n") {
					t.Errorf("missing %q in:\n%s", line, got)
				}
			}
		})
	}
}

func TestRenderNumbers(t *testing.T) {
	tests := []struct {
		value json.Number
		want  string
	}{
		{"0.00", "Precipitation: 0.0 mm"},
		{"1.20", "Precipitation: 1.2 mm"},
		{"3", "Precipitation: 3 mm"},
		{"0.001", "Precipitation: 0.001 mm"},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			obs := sampleObservation()
			obs.Values = copyValues(obs.Values)
			obs.Values["precipitation"] = tt.value

			got := render(t, obs, Options{Mode: ModeData})
			if !strings.Contains(got, "\n"+tt.want+"\n") {
				t.Errorf("missing %q in:\n%s", tt.want, got)
			}
		})
	}
}

func TestRenderVisibilityFeet(t *testing.T) {
	obs := sampleObservation()
	obs.Values = copyValues(obs.Values)
	obs.Values["visibility"] = json.Number("6000")
	obs.Units = map[string]string{"visibility": "ft"}

	got := render(t, obs, Options{Mode: ModeData})
	if !strings.Contains(got, "\nVisibility: 1.14 miles\n") {
		t.Errorf("expected miles:\n%s", got)
	}

	obs.Values["visibility"] = json.Number("500")
	obs.Units = map[string]string{"visibility": "m"}
	got = render(t, obs, Options{Mode: ModeData})
	if !strings.Contains(got, "\nVisibility: 500 m\n") {
		t.Errorf("expected unconverted metres:\n%s", got)
	}
}

func TestRenderNightSymbol(t *testing.T) {
	obs := sampleObservation()
	obs.Values = copyValues(obs.Values)
	obs.Values["weather_code"] = json.Number("2")
	obs.IsDay = false

	got := render(t, obs, Options{Mode: ModeData})
	if !strings.Contains(got, "\nSymbol: ☾☁\n") {
		t.Errorf("expected partly cloudy night symbol:\n%s", got)
	}
}

func TestBuildIsPure(t *testing.T) {
	obs := sampleObservation()
	first := render(t, obs, Options{Mode: ModeClassic})
	second := render(t, obs, Options{Mode: ModeClassic})
	if first != second {
		t.Error("rendering the same observation twice differed")
	}
	if obs.Values["wind_direction_10m"] != json.Number("250") || obs.Values["visibility"] != json.Number("24140.0") {
		t.Error("Build modified the observation")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*openmeteo.Observation)
	}{
		{"missing weather code", func(o *openmeteo.Observation) { delete(o.Values, "weather_code") }},
		{"fractional weather code", func(o *openmeteo.Observation) { o.Values["weather_code"] = json.Number("3.5") }},
		{"string weather code", func(o *openmeteo.Observation) { o.Values["weather_code"] = "three" }},
		{"missing coordinates", func(o *openmeteo.Observation) { o.Latitude = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := sampleObservation()
			obs.Values = copyValues(obs.Values)
			tt.mutate(&obs)
			_, err := Build(paris, obs, Options{Mode: ModeData})
			if !errors.Is(err, openmeteo.ErrMalformedResponse) {
				t.Errorf("err = %v, want ErrMalformedResponse", err)
			}
		})
	}

	if _, err := Build(paris, sampleObservation(), Options{Mode: "fancy"}); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func copyValues(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
