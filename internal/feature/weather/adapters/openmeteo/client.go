package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"alphadesk/internal/feature/weather/adapters/openmeteo/dto"
	"alphadesk/internal/feature/weather/domain/entity"
	"alphadesk/internal/feature/weather/usecase"
)

// OpenMeteoForecast はOpen-Meteo外部APIから時間別予報を取得するForecastRepository実装です。
type OpenMeteoForecast struct {
	cfg    Config
	client *http.Client
}

// OpenMeteoForecastがForecastRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ForecastRepository = (*OpenMeteoForecast)(nil)

// NewOpenMeteoForecast は指定された設定とHTTPクライアントでOpenMeteoForecastの新しいインスタンスを生成します。
func NewOpenMeteoForecast(cfg Config, client *http.Client) *OpenMeteoForecast {
	return &OpenMeteoForecast{cfg: cfg, client: client}
}

// GetHourlyForecast は当日1日分の時間別予報を取得し、
// entity.ForecastSampleのスライスとして返します。
func (o *OpenMeteoForecast) GetHourlyForecast(ctx context.Context) ([]entity.ForecastSample, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(o.cfg.Latitude, 'f', 2, 64))
	q.Set("longitude", strconv.FormatFloat(o.cfg.Longitude, 'f', 2, 64))
	q.Set("hourly", "temperature_2m,weather_code")
	q.Set("timezone", o.cfg.Timezone)
	q.Set("forecast_days", "1")

	u := fmt.Sprintf("%s/v1/forecast?%s", o.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("open-meteo http %d", res.StatusCode)
	}

	var body dto.ForecastResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	// 3本の並列配列は同じ長さであることが前提。崩れていたらエラー扱いにする。
	n := len(body.Hourly.Time)
	if n == 0 || len(body.Hourly.Temperature2M) != n || len(body.Hourly.WeatherCode) != n {
		return nil, fmt.Errorf("open-meteo: mismatched hourly arrays (time=%d temp=%d code=%d)",
			n, len(body.Hourly.Temperature2M), len(body.Hourly.WeatherCode))
	}

	loc, err := time.LoadLocation(o.cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", o.cfg.Timezone, err)
	}

	samples := make([]entity.ForecastSample, 0, n)
	for i := 0; i < n; i++ {
		// タイムスタンプは要求したタイムゾーンのローカル時刻で返る
		tm, err := time.ParseInLocation("2006-01-02T15:04", body.Hourly.Time[i], loc)
		if err != nil {
			return nil, fmt.Errorf("parse time %q: %w", body.Hourly.Time[i], err)
		}
		samples = append(samples, entity.ForecastSample{
			Time:        tm,
			Temperature: body.Hourly.Temperature2M[i],
			WeatherCode: body.Hourly.WeatherCode[i],
		})
	}
	return samples, nil
}
