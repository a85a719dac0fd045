package common

import (
	"fmt"
	"strings"
)

// HasAny returns true if s contains any of the substrings, ignoring case.
func HasAny(s string, subs ...string) bool {
	s = strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(s, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

// FormatCoordinates renders a lat/lon pair as a search location,
// e.g. "37.7749, -122.4194".
func FormatCoordinates(lat, lon float64) string {
	return fmt.Sprintf("%.4f, %.4f", lat, lon)
}
