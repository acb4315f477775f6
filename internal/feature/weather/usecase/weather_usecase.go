// Package usecase は天気予報スナップショットのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"alphadesk/internal/feature/weather/domain/entity"
)

// ErrUnavailable は天気データが取得できなかったことを示すセンチネルエラーです。
// 呼び出し元はこのエラーを見て天気セクションを省略します（エラーバナーは出さない）。
var ErrUnavailable = errors.New("weather unavailable")

// DefaultCondition は未知のweather codeに割り当てる既定のラベルです。
const DefaultCondition = "흐림 ☁️"

// conditionLabels はWMO weather code → 表示ラベルの固定テーブルです。
var conditionLabels = map[int]string{
	0:  "맑음 ☀️",
	1:  "대체로 맑음 🌤",
	2:  "흐림 ☁️",
	3:  "흐림 ☁️",
	45: "안개 🌫",
	51: "이슬비 🌧",
	61: "비 ☔️",
	63: "비 ☔️",
	71: "눈 ☃️",
	95: "뇌우 ⚡️",
}

// ConditionLabel はweather codeを表示ラベルに変換します。全域関数で、
// テーブルに無いコードはDefaultConditionになります。
func ConditionLabel(code int) string {
	if label, ok := conditionLabels[code]; ok {
		return label
	}
	return DefaultCondition
}

// ForecastRepository は時間別予報の取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ForecastRepository interface {
	// GetHourlyForecast は当日1日分の時間別予報サンプルを返します。
	GetHourlyForecast(ctx context.Context) ([]entity.ForecastSample, error)
}

// weatherUsecase は天気スナップショット取得のユースケースを定義します。
type weatherUsecase struct {
	forecast ForecastRepository
	now      func() time.Time
}

// NewWeatherUsecase はweatherUsecaseの新しいインスタンスを生成します。
// nowがnilの場合はtime.Nowを使用します。
func NewWeatherUsecase(forecast ForecastRepository, now func() time.Time) *weatherUsecase {
	if now == nil {
		now = time.Now
	}
	return &weatherUsecase{forecast: forecast, now: now}
}

// GetSnapshot は現在時刻のローカル時にあたるサンプルを選び、スナップショットを返します。
// 上流の失敗・不正なレスポンス・該当時刻のサンプル欠落はすべてErrUnavailableに変換され、
// それ以外のエラーが境界を越えることはありません。
func (u *weatherUsecase) GetSnapshot(ctx context.Context) (*entity.WeatherSnapshot, error) {
	samples, err := u.forecast.GetHourlyForecast(ctx)
	if err != nil {
		slog.Warn("weather fetch failed", "error", err)
		return nil, ErrUnavailable
	}
	if len(samples) == 0 {
		return nil, ErrUnavailable
	}

	// サンプルのタイムゾーンで現在時を求める（設定タイムゾーンはアダプタ側で解決済み）
	now := u.now().In(samples[0].Time.Location())

	var current *entity.ForecastSample
	for i := range samples {
		if samples[i].Time.Hour() == now.Hour() && samples[i].Time.Day() == now.Day() {
			current = &samples[i]
			break
		}
	}
	if current == nil {
		return nil, ErrUnavailable
	}

	return &entity.WeatherSnapshot{
		CurrentTemp: current.Temperature,
		Condition:   ConditionLabel(current.WeatherCode),
		Samples:     samples,
	}, nil
}
