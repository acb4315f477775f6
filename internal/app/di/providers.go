// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"
	"time"

	"alphadesk/internal/config"
	briefingusecase "alphadesk/internal/feature/briefing/usecase"
	insightgemini "alphadesk/internal/feature/insight/adapters/gemini"
	insightusecase "alphadesk/internal/feature/insight/usecase"
	"alphadesk/internal/feature/news/adapters/yahoorss"
	newsusecase "alphadesk/internal/feature/news/usecase"
	"alphadesk/internal/feature/quotes/adapters/yahoo"
	quotesusecase "alphadesk/internal/feature/quotes/usecase"
	"alphadesk/internal/feature/weather/adapters/openmeteo"
	weatherusecase "alphadesk/internal/feature/weather/usecase"
	"alphadesk/internal/platform/cache"
	infrahttp "alphadesk/internal/platform/http"
	"alphadesk/internal/shared/ratelimiter"
)

// geminiRequestsPerMinute is the free tier RPM budget left for this process.
const geminiRequestsPerMinute = 10

// NewWeatherProvider creates the cached weather provider for the configured location.
func NewWeatherProvider(cfg *config.Config, store cache.Store) briefingusecase.WeatherProvider {
	adapterCfg := openmeteo.Config{
		BaseURL:   cfg.Weather.BaseURL,
		Latitude:  cfg.Location.Latitude,
		Longitude: cfg.Location.Longitude,
		Timezone:  cfg.Location.Timezone,
		Timeout:   openmeteo.DefaultTimeout,
	}
	forecast := openmeteo.NewOpenMeteoForecast(adapterCfg, infrahttp.NewHTTPClient(adapterCfg.Timeout))
	uc := weatherusecase.NewWeatherUsecase(forecast, nil)
	return cache.NewCachingWeatherProvider(store, uc)
}

// NewQuoteProvider creates the cached quote provider.
func NewQuoteProvider(cfg *config.Config, store cache.Store, loc *time.Location) briefingusecase.QuoteProvider {
	adapterCfg := yahoo.Config{
		BaseURL: cfg.Quotes.BaseURL,
		Timeout: yahoo.DefaultTimeout,
	}
	market := yahoo.NewYahooMarket(adapterCfg, infrahttp.NewHTTPClient(adapterCfg.Timeout))
	uc := quotesusecase.NewQuotesUsecase(market, loc, nil)
	return cache.NewCachingQuoteProvider(store, uc)
}

// NewNewsProvider creates the cached headline provider with the configured
// substitution and fallback tables.
func NewNewsProvider(cfg *config.Config, store cache.Store) briefingusecase.NewsProvider {
	adapterCfg := yahoorss.Config{
		BaseURL: cfg.News.BaseURL,
		Timeout: yahoorss.DefaultTimeout,
	}
	feed := yahoorss.NewYahooRSSFeed(adapterCfg, infrahttp.NewHTTPClient(adapterCfg.Timeout))
	uc := newsusecase.NewNewsUsecase(feed, cfg.News.Substitutions, cfg.News.Fallbacks, cfg.News.DefaultFallback)
	return cache.NewCachingNewsProvider(store, uc)
}

// NewInsightProvider creates the cached insight provider. A Gemini client
// that cannot be constructed (e.g. missing API key) is not a startup
// error: generation then fails at call time and surfaces as the inline
// diagnostic text.
func NewInsightProvider(ctx context.Context, cfg *config.Config, store cache.Store) briefingusecase.InsightProvider {
	var generator insightusecase.TextGenerator
	if g, err := insightgemini.NewGeminiGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model); err != nil {
		slog.Warn("gemini client unavailable, insights will report the failure inline", "error", err)
		generator = &failingGenerator{err: err}
	} else {
		generator = g
	}
	limiter := ratelimiter.NewRateLimiter(geminiRequestsPerMinute, time.Minute)
	uc := insightusecase.NewInsightUsecase(generator, limiter)
	return cache.NewCachingInsightProvider(store, uc)
}

// failingGenerator stands in for a backend that could not be constructed.
type failingGenerator struct {
	err error
}

func (f *failingGenerator) Generate(context.Context, string) (string, error) {
	return "", f.err
}
