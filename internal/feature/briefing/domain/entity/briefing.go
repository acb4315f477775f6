// Package entity defines the domain models for the briefing feature.
package entity

import (
	"time"

	quotesentity "alphadesk/internal/feature/quotes/domain/entity"
	weatherentity "alphadesk/internal/feature/weather/domain/entity"
)

// TickerReport is the per-ticker section of a briefing: the quote with
// its month of daily bars, the related headlines, and the generated
// explanation of the day's move.
//
// When the quote source is unavailable, Quote is nil and Error carries
// the visible placeholder text; Headlines and Insight are skipped.
type TickerReport struct {
	Name        string                      // Display name (e.g. "NASDAQ 100")
	Symbol      string                      // Ticker symbol (e.g. "TQQQ")
	Quote       *quotesentity.QuoteSnapshot // nil when unavailable
	ChangeLabel string                      // Formatted change (e.g. "+2.04%")
	Headlines   []string                    // Up to 5 related titles
	Insight     string                      // Generated explanation, always displayable
	Error       string                      // Placeholder text when Quote is nil
}

// Briefing is one full rendering pass over every data source. Each
// briefing is owned by the request that built it.
type Briefing struct {
	DateLabel   string                          // Localized date heading
	GeneratedAt time.Time                       // Build time in the configured timezone
	Weather     *weatherentity.WeatherSnapshot  // nil when the source is unavailable (section omitted)
	Tickers     []TickerReport
}
