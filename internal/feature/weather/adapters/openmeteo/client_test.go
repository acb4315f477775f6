package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:   baseURL,
		Latitude:  37.56,
		Longitude: 127.36,
		Timezone:  "Asia/Seoul",
		Timeout:   DefaultTimeout,
	}
}

func TestOpenMeteoForecast_GetHourlyForecast_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request parameters
		q := r.URL.Query()
		if q.Get("latitude") != "37.56" {
			t.Errorf("expected latitude 37.56, got %s", q.Get("latitude"))
		}
		if q.Get("longitude") != "127.36" {
			t.Errorf("expected longitude 127.36, got %s", q.Get("longitude"))
		}
		if q.Get("hourly") != "temperature_2m,weather_code" {
			t.Errorf("expected hourly fields, got %s", q.Get("hourly"))
		}
		if q.Get("timezone") != "Asia/Seoul" {
			t.Errorf("expected timezone Asia/Seoul, got %s", q.Get("timezone"))
		}
		if q.Get("forecast_days") != "1" {
			t.Errorf("expected forecast_days 1, got %s", q.Get("forecast_days"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"hourly": {
				"time": ["2026-03-09T00:00", "2026-03-09T01:00", "2026-03-09T02:00"],
				"temperature_2m": [3.1, 2.8, 2.5],
				"weather_code": [0, 1, 61]
			}
		}`))
	}))
	defer server.Close()

	forecast := NewOpenMeteoForecast(testConfig(server.URL), server.Client())

	samples, err := forecast.GetHourlyForecast(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(samples))
	}
	if samples[0].Temperature != 3.1 {
		t.Errorf("expected temperature 3.1, got %f", samples[0].Temperature)
	}
	if samples[2].WeatherCode != 61 {
		t.Errorf("expected weather code 61, got %d", samples[2].WeatherCode)
	}
	if samples[1].Time.Hour() != 1 {
		t.Errorf("expected hour 1, got %d", samples[1].Time.Hour())
	}
	if loc := samples[0].Time.Location().String(); loc != "Asia/Seoul" {
		t.Errorf("expected Asia/Seoul timestamps, got %s", loc)
	}
}

func TestOpenMeteoForecast_GetHourlyForecast_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	forecast := NewOpenMeteoForecast(testConfig(server.URL), server.Client())

	_, err := forecast.GetHourlyForecast(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "open-meteo http") {
		t.Errorf("expected HTTP error message, got %v", err)
	}
}

func TestOpenMeteoForecast_GetHourlyForecast_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{invalid json`))
	}))
	defer server.Close()

	forecast := NewOpenMeteoForecast(testConfig(server.URL), server.Client())

	if _, err := forecast.GetHourlyForecast(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestOpenMeteoForecast_GetHourlyForecast_MismatchedArrays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response string
	}{
		{
			name:     "empty arrays",
			response: `{"hourly": {"time": [], "temperature_2m": [], "weather_code": []}}`,
		},
		{
			name:     "missing temperatures",
			response: `{"hourly": {"time": ["2026-03-09T00:00"], "temperature_2m": [], "weather_code": [0]}}`,
		},
		{
			name:     "missing codes",
			response: `{"hourly": {"time": ["2026-03-09T00:00"], "temperature_2m": [3.1], "weather_code": []}}`,
		},
		{
			name:     "missing hourly block",
			response: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			forecast := NewOpenMeteoForecast(testConfig(server.URL), server.Client())

			if _, err := forecast.GetHourlyForecast(context.Background()); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestOpenMeteoForecast_GetHourlyForecast_InvalidTime(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"hourly": {
				"time": ["not-a-time"],
				"temperature_2m": [3.1],
				"weather_code": [0]
			}
		}`))
	}))
	defer server.Close()

	forecast := NewOpenMeteoForecast(testConfig(server.URL), server.Client())

	_, err := forecast.GetHourlyForecast(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "parse time") {
		t.Errorf("expected parse time error, got %v", err)
	}
}

func TestOpenMeteoForecast_GetHourlyForecast_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	forecast := NewOpenMeteoForecast(testConfig(server.URL), server.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := forecast.GetHourlyForecast(ctx); err == nil {
		t.Fatal("expected error due to context cancellation, got nil")
	}
}
