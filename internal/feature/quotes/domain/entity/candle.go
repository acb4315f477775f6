// Package entity defines the domain models for the quotes feature.
package entity

import "time"

// Candle represents OHLC candlestick data for one trading day.
type Candle struct {
	Time  time.Time // Trading day
	Open  float64   // Opening price
	High  float64   // Highest price during the day
	Low   float64   // Lowest price during the day
	Close float64   // Closing price
}

// QuoteSnapshot is the derived view over one month of daily bars:
// latest price plus the move against the prior close.
type QuoteSnapshot struct {
	Symbol    string    // Ticker symbol (e.g. "TQQQ")
	Price     float64   // Latest close
	Change    float64   // Latest close minus prior close
	ChangePct float64   // Change as a percentage of the prior close
	History   []Candle  // Chronological daily bars, at most one month
	FetchedAt time.Time // Fetch time in the configured timezone, for display
}
