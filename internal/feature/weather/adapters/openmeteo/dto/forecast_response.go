// Package dto defines data transfer objects for the Open-Meteo API responses.
package dto

// ForecastResponse represents the JSON response from the Open-Meteo
// forecast endpoint. Hourly values arrive as parallel arrays.
type ForecastResponse struct {
	Hourly struct {
		Time          []string  `json:"time"`
		Temperature2M []float64 `json:"temperature_2m"`
		WeatherCode   []int     `json:"weather_code"`
	} `json:"hourly"`
}
