package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	briefingusecase "alphadesk/internal/feature/briefing/usecase"
	quotesentity "alphadesk/internal/feature/quotes/domain/entity"
	quotesusecase "alphadesk/internal/feature/quotes/usecase"
	weatherentity "alphadesk/internal/feature/weather/domain/entity"
	weatherusecase "alphadesk/internal/feature/weather/usecase"
)

// The decorators below add TTL-bounded memoization to the briefing's data
// providers without modifying them. Unavailability is memoized too: a
// failed weather or quote fetch stays unavailable for the cache interval,
// the same as a successful one stays fresh. The next upstream attempt
// happens after expiry or a manual clear.

// weatherEnvelope wraps the snapshot so that "unavailable" (nil) is a
// cacheable value distinguishable from a miss.
type weatherEnvelope struct {
	Snapshot *weatherentity.WeatherSnapshot `json:"snapshot"`
}

// CachingWeatherProvider decorates a WeatherProvider with caching.
type CachingWeatherProvider struct {
	inner briefingusecase.WeatherProvider
	store Store
}

var _ briefingusecase.WeatherProvider = (*CachingWeatherProvider)(nil)

// NewCachingWeatherProvider decorates a WeatherProvider with caching.
func NewCachingWeatherProvider(store Store, inner briefingusecase.WeatherProvider) *CachingWeatherProvider {
	return &CachingWeatherProvider{inner: inner, store: store}
}

// GetSnapshot serves the cached snapshot (or cached unavailability) within
// TTLWeather, otherwise delegates to the inner provider.
func (c *CachingWeatherProvider) GetSnapshot(ctx context.Context) (*weatherentity.WeatherSnapshot, error) {
	env, err := Do(ctx, c.store, "weather:snapshot", TTLWeather,
		func(ctx context.Context) (weatherEnvelope, error) {
			snap, err := c.inner.GetSnapshot(ctx)
			if errors.Is(err, weatherusecase.ErrUnavailable) {
				return weatherEnvelope{}, nil
			}
			if err != nil {
				return weatherEnvelope{}, err
			}
			return weatherEnvelope{Snapshot: snap}, nil
		})
	if err != nil || env.Snapshot == nil {
		return nil, weatherusecase.ErrUnavailable
	}
	return env.Snapshot, nil
}

// quoteEnvelope wraps the snapshot so that "unavailable" is cacheable.
type quoteEnvelope struct {
	Snapshot *quotesentity.QuoteSnapshot `json:"snapshot"`
}

// CachingQuoteProvider decorates a QuoteProvider with caching, keyed per
// symbol.
type CachingQuoteProvider struct {
	inner briefingusecase.QuoteProvider
	store Store
}

var _ briefingusecase.QuoteProvider = (*CachingQuoteProvider)(nil)

// NewCachingQuoteProvider decorates a QuoteProvider with caching.
func NewCachingQuoteProvider(store Store, inner briefingusecase.QuoteProvider) *CachingQuoteProvider {
	return &CachingQuoteProvider{inner: inner, store: store}
}

// GetQuote serves the cached snapshot (or cached unavailability) within
// TTLQuote, otherwise delegates to the inner provider.
func (c *CachingQuoteProvider) GetQuote(ctx context.Context, symbol string) (*quotesentity.QuoteSnapshot, error) {
	env, err := Do(ctx, c.store, "quote:"+symbol, TTLQuote,
		func(ctx context.Context) (quoteEnvelope, error) {
			snap, err := c.inner.GetQuote(ctx, symbol)
			if errors.Is(err, quotesusecase.ErrUnavailable) {
				return quoteEnvelope{}, nil
			}
			if err != nil {
				return quoteEnvelope{}, err
			}
			return quoteEnvelope{Snapshot: snap}, nil
		})
	if err != nil || env.Snapshot == nil {
		return nil, quotesusecase.ErrUnavailable
	}
	return env.Snapshot, nil
}

// CachingNewsProvider decorates a NewsProvider with caching, keyed per
// ticker. The empty list is a valid, cacheable outcome.
type CachingNewsProvider struct {
	inner briefingusecase.NewsProvider
	store Store
}

var _ briefingusecase.NewsProvider = (*CachingNewsProvider)(nil)

// NewCachingNewsProvider decorates a NewsProvider with caching.
func NewCachingNewsProvider(store Store, inner briefingusecase.NewsProvider) *CachingNewsProvider {
	return &CachingNewsProvider{inner: inner, store: store}
}

// GetHeadlines serves the cached headline list within TTLNews, otherwise
// delegates to the inner provider.
func (c *CachingNewsProvider) GetHeadlines(ctx context.Context, ticker string) []string {
	titles, _ := Do(ctx, c.store, "news:"+ticker, TTLNews,
		func(ctx context.Context) ([]string, error) {
			return c.inner.GetHeadlines(ctx, ticker), nil
		})
	if titles == nil {
		return []string{}
	}
	return titles
}

// CachingInsightProvider decorates an InsightProvider with caching. The
// key includes the headline set, so a new news cycle invalidates a stale
// insight even within the TTL window. The no-news shortcut is free and
// bypasses the cache entirely.
type CachingInsightProvider struct {
	inner briefingusecase.InsightProvider
	store Store
}

var _ briefingusecase.InsightProvider = (*CachingInsightProvider)(nil)

// NewCachingInsightProvider decorates an InsightProvider with caching.
func NewCachingInsightProvider(store Store, inner briefingusecase.InsightProvider) *CachingInsightProvider {
	return &CachingInsightProvider{inner: inner, store: store}
}

// Generate serves the cached insight within TTLInsight for the same
// (ticker, changeLabel, headlines) triple, otherwise delegates to the
// inner provider.
func (c *CachingInsightProvider) Generate(ctx context.Context, ticker, changeLabel string, headlines []string) string {
	if len(headlines) == 0 {
		return c.inner.Generate(ctx, ticker, changeLabel, headlines)
	}

	key := fmt.Sprintf("insight:%s:%s:%s", ticker, changeLabel, headlineDigest(headlines))
	text, _ := Do(ctx, c.store, key, TTLInsight,
		func(ctx context.Context) (string, error) {
			return c.inner.Generate(ctx, ticker, changeLabel, headlines), nil
		})
	return text
}

// headlineDigest derives a short stable key component from a headline list.
func headlineDigest(headlines []string) string {
	sum := sha256.Sum256([]byte(strings.Join(headlines, "\n")))
	return hex.EncodeToString(sum[:8])
}
