package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"alphadesk/internal/feature/weather/domain/entity"
	"alphadesk/internal/feature/weather/usecase"
)

// ErrUpstream はモックと期待値の間で共有されるセンチネルエラーです。
var ErrUpstream = errors.New("upstream error")

// mockForecastRepository はForecastRepositoryインターフェースのモック実装です。
type mockForecastRepository struct {
	GetHourlyForecastFunc  func(ctx context.Context) ([]entity.ForecastSample, error)
	GetHourlyForecastCalls int
}

// GetHourlyForecast はGetHourlyForecastFuncが設定されていればそれを呼び出し、呼び出し回数を記録します。
func (m *mockForecastRepository) GetHourlyForecast(ctx context.Context) ([]entity.ForecastSample, error) {
	m.GetHourlyForecastCalls++
	if m.GetHourlyForecastFunc != nil {
		return m.GetHourlyForecastFunc(ctx)
	}
	return nil, errors.New("GetHourlyForecastFunc is not implemented")
}

// daySamples は指定日の24時間分のサンプルを生成するテストヘルパーです。
func daySamples(day time.Time, temps []float64, codes []int) []entity.ForecastSample {
	samples := make([]entity.ForecastSample, 0, len(temps))
	for i := range temps {
		samples = append(samples, entity.ForecastSample{
			Time:        time.Date(day.Year(), day.Month(), day.Day(), i, 0, 0, 0, day.Location()),
			Temperature: temps[i],
			WeatherCode: codes[i],
		})
	}
	return samples
}

// TestWeatherUsecase_GetSnapshot はGetSnapshotの正常系と各失敗モードを検証します。
// 失敗はすべてErrUnavailableに変換され、それ以外のエラーは境界を越えません。
func TestWeatherUsecase_GetSnapshot(t *testing.T) {
	ctx := context.Background()
	loc := time.UTC
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	// 現在時刻は9時に固定
	now := func() time.Time { return time.Date(2026, 3, 9, 9, 30, 0, 0, loc) }

	temps := make([]float64, 24)
	codes := make([]int, 24)
	for i := range temps {
		temps[i] = float64(i)
	}
	codes[9] = 61 // 現在時刻のコードは「비」

	testCases := []struct {
		name              string
		mockFunc          func(ctx context.Context) ([]entity.ForecastSample, error)
		expectedErr       error
		expectedTemp      float64
		expectedCondition string
	}{
		{
			name: "success: picks the current-hour sample",
			mockFunc: func(ctx context.Context) ([]entity.ForecastSample, error) {
				return daySamples(day, temps, codes), nil
			},
			expectedTemp:      9,
			expectedCondition: "비 ☔️",
		},
		{
			name: "success: unmapped code falls back to the default label",
			mockFunc: func(ctx context.Context) ([]entity.ForecastSample, error) {
				c := make([]int, 24)
				c[9] = 77 // テーブルに無いコード
				return daySamples(day, temps, c), nil
			},
			expectedTemp:      9,
			expectedCondition: usecase.DefaultCondition,
		},
		{
			name: "unavailable: repository returns error",
			mockFunc: func(ctx context.Context) ([]entity.ForecastSample, error) {
				return nil, ErrUpstream
			},
			expectedErr: usecase.ErrUnavailable,
		},
		{
			name: "unavailable: empty forecast",
			mockFunc: func(ctx context.Context) ([]entity.ForecastSample, error) {
				return []entity.ForecastSample{}, nil
			},
			expectedErr: usecase.ErrUnavailable,
		},
		{
			name: "unavailable: no sample for the current hour",
			mockFunc: func(ctx context.Context) ([]entity.ForecastSample, error) {
				// 0〜5時しか無い短い予報
				return daySamples(day, temps[:6], codes[:6]), nil
			},
			expectedErr: usecase.ErrUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &mockForecastRepository{GetHourlyForecastFunc: tc.mockFunc}
			uc := usecase.NewWeatherUsecase(mockRepo, now)

			snap, err := uc.GetSnapshot(ctx)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				if snap != nil {
					t.Errorf("expected nil snapshot on error, got %v", snap)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if snap.CurrentTemp != tc.expectedTemp {
				t.Errorf("expected temp %v, got %v", tc.expectedTemp, snap.CurrentTemp)
			}
			if snap.Condition != tc.expectedCondition {
				t.Errorf("expected condition %q, got %q", tc.expectedCondition, snap.Condition)
			}
			if len(snap.Samples) == 0 {
				t.Error("expected snapshot to carry the full forecast sequence")
			}
			if mockRepo.GetHourlyForecastCalls != 1 {
				t.Errorf("GetHourlyForecast was called %d times, expected 1", mockRepo.GetHourlyForecastCalls)
			}
		})
	}
}

// TestConditionLabel は固定テーブルの全域性を検証します。
func TestConditionLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     int
		expected string
	}{
		{0, "맑음 ☀️"},
		{1, "대체로 맑음 🌤"},
		{2, "흐림 ☁️"},
		{3, "흐림 ☁️"},
		{45, "안개 🌫"},
		{51, "이슬비 🌧"},
		{61, "비 ☔️"},
		{63, "비 ☔️"},
		{71, "눈 ☃️"},
		{95, "뇌우 ⚡️"},
		{100, usecase.DefaultCondition},
		{-1, usecase.DefaultCondition},
	}

	for _, tt := range tests {
		if got := usecase.ConditionLabel(tt.code); got != tt.expected {
			t.Errorf("ConditionLabel(%d) = %q, want %q", tt.code, got, tt.expected)
		}
	}
}
