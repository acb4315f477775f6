// Package openmeteo provides a client for the Open-Meteo forecast API.
package openmeteo

import "time"

// Config holds configuration for the Open-Meteo API client.
type Config struct {
	BaseURL   string        // Base URL for the API (e.g., "https://api.open-meteo.com")
	Latitude  float64       // Forecast latitude
	Longitude float64       // Forecast longitude
	Timezone  string        // IANA timezone for hourly timestamps
	Timeout   time.Duration // HTTP request timeout
}

// DefaultTimeout is the request timeout for forecast calls. The upstream
// answers well under a second; anything slower is treated as unavailable.
const DefaultTimeout = 3 * time.Second
