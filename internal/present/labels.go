package present

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var friendlyNames = map[string]string{
	"temperature_2m":                       "temperature",
	"apparent_temperature":                 "feels like",
	"relative_humidity_2m":                 "humidity",
	"wind_speed_10m":                       "wind",
	"wind_gusts_10m":                       "gusts",
	"wind_direction_10m":                   "direction",
	"weather_code":                         "conditions",
	"pressure_msl":                         "pressure",
	"dew_point_2m":                         "dewpoint",
	"wind_speed_80m":                       "wind 80m",
	"wind_speed_120m":                      "wind 120m",
	"wind_speed_180m":                      "wind 180m",
	"wind_direction_80m":                   "wind direction 80m",
	"wind_direction_120m":                  "wind direction 120m",
	"wind_direction_180m":                  "wind direction 180m",
	"cloud_cover_low":                      "cloud cover, low",
	"cloud_cover_mid":                      "cloud cover, middle",
	"cloud_cover_high":                     "cloud cover, high",
	"freezing_level_height":                "freezing level",
	"cape":                                 "CAPE",
	"total_column_integrated_water_vapour": "TCWV",
}

// Label returns the display label for a field name.
func Label(field string) string {
	name, ok := friendlyNames[field]
	if !ok {
		name = strings.ReplaceAll(field, "_", " ")
	}
	if isUpper(name) {
		return name
	}
	return capitalize(name)
}

func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
