// Package dto defines response DTOs for the briefing endpoints.
package dto

// ForecastPointResponse は時間別気温チャートの1点です。
type ForecastPointResponse struct {
	Time        string  `json:"time"`        // 時刻
	Temperature float64 `json:"temperature"` // 気温（℃）
}

// WeatherResponse は天気カードのレスポンスDTOです。
type WeatherResponse struct {
	Location    string                  `json:"location"`     // 地点名
	CurrentTemp float64                 `json:"current_temp"` // 現在時刻の気温
	Condition   string                  `json:"condition"`    // 天気ラベル
	Forecast    []ForecastPointResponse `json:"forecast"`     // チャート用の時系列
}

// CandleResponse はロウソク足チャートの1本です。
type CandleResponse struct {
	Time  string  `json:"time"`  // 日付
	Open  float64 `json:"open"`  // 始値
	High  float64 `json:"high"`  // 高値
	Low   float64 `json:"low"`   // 安値
	Close float64 `json:"close"` // 終値
}

// TickerResponse は銘柄カードのレスポンスDTOです。
// 株価が取得できなかった場合はerrorのみが設定されます。
type TickerResponse struct {
	Name        string           `json:"name"`
	Symbol      string           `json:"symbol"`
	Error       string           `json:"error,omitempty"`
	Price       float64          `json:"price,omitempty"`
	Change      float64          `json:"change,omitempty"`
	ChangeLabel string           `json:"change_label,omitempty"`
	UpdatedAt   string           `json:"updated_at,omitempty"`
	Candles     []CandleResponse `json:"candles,omitempty"`
	Headlines   []string         `json:"headlines,omitempty"`
	Insight     string           `json:"insight,omitempty"`
}

// BriefingResponse はブリーフィング全体のレスポンスDTOです。
// weatherがnullの場合、クライアントは天気セクションを描画しません。
type BriefingResponse struct {
	Date    string           `json:"date"`
	Weather *WeatherResponse `json:"weather,omitempty"`
	Tickers []TickerResponse `json:"tickers"`
}
