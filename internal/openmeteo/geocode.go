package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Location is a geocoder match.
type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Geocode resolves a place name within a country to the first match the
// geocoding service returns.
func (c *Client) Geocode(ctx context.Context, place, countryCode string) (Location, error) {
	params := url.Values{}
	params.Set("name", place)
	params.Set("countryCode", countryCode)

	resp, err := c.doGet(ctx, c.geocodingURL, params)
	if err != nil {
		return Location{}, fmt.Errorf("geocoding: %w", err)
	}
	defer resp.Body.Close()

	var geo struct {
		Results []struct {
			Name      *string  `json:"name"`
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		return Location{}, fmt.Errorf("decode geocoding response: %w: %v", ErrMalformedResponse, err)
	}

	if len(geo.Results) == 0 {
		return Location{}, ErrLocationNotFound
	}
	first := geo.Results[0]
	if first.Name == nil || first.Latitude == nil || first.Longitude == nil {
		return Location{}, ErrLocationNotFound
	}

	c.logger.Debug("geocoded", "place", place, "country", countryCode,
		"name", *first.Name, "lat", *first.Latitude, "lon", *first.Longitude)

	return Location{Name: *first.Name, Latitude: *first.Latitude, Longitude: *first.Longitude}, nil
}
