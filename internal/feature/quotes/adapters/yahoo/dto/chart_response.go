// Package dto defines data transfer objects for the Yahoo chart API responses.
package dto

// ChartResponse represents the JSON response from the Yahoo Finance
// v8 chart endpoint. OHLC arrays may contain null slots for days the
// exchange reported no data, hence the pointer element type.
type ChartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open  []*float64 `json:"open"`
					High  []*float64 `json:"high"`
					Low   []*float64 `json:"low"`
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}
