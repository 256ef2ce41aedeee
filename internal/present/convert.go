package present

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// DegreesToCompass converts a wind direction in degrees to one of 16 compass
// points. Halfway values round to even and any real input wraps into range.
func DegreesToCompass(degrees float64) string {
	i := int(math.RoundToEven(degrees/22.5)) % 16
	if i < 0 {
		i += 16
	}
	return compassPoints[i]
}

// NormalizeVisibility scales a raw visibility reading into miles or
// kilometres when it is large enough. ok reports whether a conversion happened.
func NormalizeVisibility(raw float64, unit string) (value float64, outUnit string, ok bool) {
	switch {
	case unit == "ft" && raw >= 5280:
		return round2(raw / 5280), "miles", true
	case raw >= 1000:
		return round2(raw / 1000), "km", true
	default:
		return raw, unit, false
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatFloat prints the shortest representation of v that always shows it
// is fractional ("0.0", "1016.4"). Magnitudes below 1e-4 or from 1e16 upward
// use an exponent ("1e-05", "1e+16").
func formatFloat(v float64) string {
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".nN") {
		s += ".0"
	}
	return s
}

// formatNumber prints a JSON number. Integer literals are kept as sent;
// fractional ones go through formatFloat, so "0.00" prints as "0.0".
func formatNumber(n json.Number) string {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		return s
	}
	f, err := n.Float64()
	if err != nil {
		return s
	}
	return formatFloat(f)
}
