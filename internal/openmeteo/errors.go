package openmeteo

import "errors"

var (
	// ErrNetwork covers transport failures and non-2xx responses from either endpoint.
	ErrNetwork = errors.New("network error")

	// ErrLocationNotFound is returned when the geocoder has no usable match.
	ErrLocationNotFound = errors.New("Location not found. Did you forget to supply a valid -c <country_code> option?")

	// ErrMalformedResponse is returned when a response body is missing
	// expected fields or has values of an unexpected type.
	ErrMalformedResponse = errors.New("malformed response")
)
