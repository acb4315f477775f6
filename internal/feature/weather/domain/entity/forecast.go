// Package entity defines the domain models for the weather feature.
package entity

import "time"

// ForecastSample represents one hourly sample of an intraday forecast
// at a fixed location.
type ForecastSample struct {
	Time        time.Time // Start of the hour in the configured timezone
	Temperature float64   // Air temperature at 2m, in °C
	WeatherCode int       // WMO weather interpretation code
}

// WeatherSnapshot is the current-hour view over an intraday forecast,
// derived at fetch time and discarded after cache expiry.
type WeatherSnapshot struct {
	CurrentTemp float64          // Temperature for the current local hour
	Condition   string           // Human-readable condition label
	Samples     []ForecastSample // Full forecast sequence for charting
}
