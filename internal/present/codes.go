package present

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
)

// Category groups WMO codes that share a glyph.
type Category string

const (
	CategoryClear        Category = "clear"
	CategoryPartlyCloudy Category = "partly_cloudy"
	CategoryCloudy       Category = "cloudy"
	CategoryRain         Category = "rain"
	CategorySnow         Category = "snow"
	CategoryThunderstorm Category = "thunderstorm"
	CategoryFog          Category = "fog"
)

//go:embed weather_codes.json
var weatherCodesJSON []byte

// weatherCodeConfig is the shape of weather_codes.json.
type weatherCodeConfig struct {
	Categories   map[Category][]int `json:"categories"`
	Descriptions map[string]string  `json:"descriptions"`
}

var (
	descriptions map[int]string
	categories   map[int]Category
)

func init() {
	var err error
	descriptions, categories, err = loadWeatherCodes(weatherCodesJSON)
	if err != nil {
		panic(fmt.Sprintf("weather_codes.json: %v", err))
	}
}

func loadWeatherCodes(data []byte) (map[int]string, map[int]Category, error) {
	var cfg weatherCodeConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, nil, err
	}

	desc := make(map[int]string, len(cfg.Descriptions))
	for k, v := range cfg.Descriptions {
		code, err := strconv.Atoi(k)
		if err != nil {
			return nil, nil, fmt.Errorf("description key %q: %w", k, err)
		}
		desc[code] = v
	}

	cats := make(map[int]Category)
	for cat, codes := range cfg.Categories {
		for _, code := range codes {
			if prev, dup := cats[code]; dup {
				return nil, nil, fmt.Errorf("code %d is in both %s and %s", code, prev, cat)
			}
			cats[code] = cat
		}
	}
	return desc, cats, nil
}

// Description converts a WMO weather code to human-readable text.
func Description(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return fmt.Sprintf("Unknown (%d)", code)
}

// CategoryOf maps a WMO weather code to its glyph category. Unlisted codes are cloudy.
func CategoryOf(code int) Category {
	if c, ok := categories[code]; ok {
		return c
	}
	return CategoryCloudy
}
