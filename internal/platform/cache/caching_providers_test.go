package cache

import (
	"context"
	"testing"

	quotesentity "alphadesk/internal/feature/quotes/domain/entity"
	quotesusecase "alphadesk/internal/feature/quotes/usecase"
	weatherentity "alphadesk/internal/feature/weather/domain/entity"
	weatherusecase "alphadesk/internal/feature/weather/usecase"
)

// mockWeatherProvider はWeatherProviderのモック実装です。
type mockWeatherProvider struct {
	GetSnapshotFunc  func(ctx context.Context) (*weatherentity.WeatherSnapshot, error)
	GetSnapshotCalls int
}

func (m *mockWeatherProvider) GetSnapshot(ctx context.Context) (*weatherentity.WeatherSnapshot, error) {
	m.GetSnapshotCalls++
	if m.GetSnapshotFunc != nil {
		return m.GetSnapshotFunc(ctx)
	}
	return nil, weatherusecase.ErrUnavailable
}

// mockQuoteProvider はQuoteProviderのモック実装です。
type mockQuoteProvider struct {
	GetQuoteFunc  func(ctx context.Context, symbol string) (*quotesentity.QuoteSnapshot, error)
	GetQuoteCalls int
}

func (m *mockQuoteProvider) GetQuote(ctx context.Context, symbol string) (*quotesentity.QuoteSnapshot, error) {
	m.GetQuoteCalls++
	if m.GetQuoteFunc != nil {
		return m.GetQuoteFunc(ctx, symbol)
	}
	return nil, quotesusecase.ErrUnavailable
}

// mockNewsProvider はNewsProviderのモック実装です。
type mockNewsProvider struct {
	GetHeadlinesFunc  func(ctx context.Context, ticker string) []string
	GetHeadlinesCalls int
}

func (m *mockNewsProvider) GetHeadlines(ctx context.Context, ticker string) []string {
	m.GetHeadlinesCalls++
	if m.GetHeadlinesFunc != nil {
		return m.GetHeadlinesFunc(ctx, ticker)
	}
	return []string{}
}

// mockInsightProvider はInsightProviderのモック実装です。
type mockInsightProvider struct {
	GenerateFunc  func(ctx context.Context, ticker, changeLabel string, headlines []string) string
	GenerateCalls int
}

func (m *mockInsightProvider) Generate(ctx context.Context, ticker, changeLabel string, headlines []string) string {
	m.GenerateCalls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, ticker, changeLabel, headlines)
	}
	return ""
}

// TestCachingWeatherProvider_MemoizesSnapshot はTTL内の反復呼び出しが内部プロバイダを
// 1回しか呼ばないことを検証します。
func TestCachingWeatherProvider_MemoizesSnapshot(t *testing.T) {
	t.Parallel()

	inner := &mockWeatherProvider{
		GetSnapshotFunc: func(ctx context.Context) (*weatherentity.WeatherSnapshot, error) {
			return &weatherentity.WeatherSnapshot{CurrentTemp: 21.5, Condition: "맑음 ☀️"}, nil
		},
	}
	provider := NewCachingWeatherProvider(NewMemoryStore(nil), inner)

	for i := 0; i < 3; i++ {
		snap, err := provider.GetSnapshot(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.Condition != "맑음 ☀️" {
			t.Errorf("unexpected condition: %q", snap.Condition)
		}
	}
	if inner.GetSnapshotCalls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.GetSnapshotCalls)
	}
}

// TestCachingWeatherProvider_MemoizesUnavailability は取得失敗もTTLの間
// キャッシュされ、上流への再試行が抑止されることを検証します。
func TestCachingWeatherProvider_MemoizesUnavailability(t *testing.T) {
	t.Parallel()

	inner := &mockWeatherProvider{
		GetSnapshotFunc: func(ctx context.Context) (*weatherentity.WeatherSnapshot, error) {
			return nil, weatherusecase.ErrUnavailable
		},
	}
	provider := NewCachingWeatherProvider(NewMemoryStore(nil), inner)

	for i := 0; i < 3; i++ {
		if _, err := provider.GetSnapshot(context.Background()); err != weatherusecase.ErrUnavailable {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}
	}
	if inner.GetSnapshotCalls != 1 {
		t.Errorf("expected unavailability to be memoized, got %d inner calls", inner.GetSnapshotCalls)
	}
}

// TestCachingQuoteProvider_KeyedPerSymbol は銘柄ごとに独立したキャッシュエントリを
// 持つことを検証します。
func TestCachingQuoteProvider_KeyedPerSymbol(t *testing.T) {
	t.Parallel()

	inner := &mockQuoteProvider{
		GetQuoteFunc: func(ctx context.Context, symbol string) (*quotesentity.QuoteSnapshot, error) {
			return &quotesentity.QuoteSnapshot{Symbol: symbol, Price: 100}, nil
		},
	}
	provider := NewCachingQuoteProvider(NewMemoryStore(nil), inner)

	for _, symbol := range []string{"TQQQ", "SOXL", "TQQQ", "SOXL"} {
		snap, err := provider.GetQuote(context.Background(), symbol)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.Symbol != symbol {
			t.Errorf("expected symbol %q, got %q", symbol, snap.Symbol)
		}
	}
	if inner.GetQuoteCalls != 2 {
		t.Errorf("expected 1 inner call per symbol, got %d", inner.GetQuoteCalls)
	}
}

// TestCachingQuoteProvider_ClearRefetches はClear後の呼び出しが上流へ再到達する
// ことを検証します。
func TestCachingQuoteProvider_ClearRefetches(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(nil)
	inner := &mockQuoteProvider{
		GetQuoteFunc: func(ctx context.Context, symbol string) (*quotesentity.QuoteSnapshot, error) {
			return &quotesentity.QuoteSnapshot{Symbol: symbol, Price: 100}, nil
		},
	}
	provider := NewCachingQuoteProvider(store, inner)

	_, _ = provider.GetQuote(context.Background(), "TQQQ")
	_, _ = provider.GetQuote(context.Background(), "TQQQ")
	if inner.GetQuoteCalls != 1 {
		t.Fatalf("expected 1 inner call before clear, got %d", inner.GetQuoteCalls)
	}

	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _ = provider.GetQuote(context.Background(), "TQQQ")
	if inner.GetQuoteCalls != 2 {
		t.Errorf("expected refetch after clear, got %d inner calls", inner.GetQuoteCalls)
	}
}

// TestCachingNewsProvider_MemoizesHeadlines はヘッドライン一覧（空を含む）が
// キャッシュされることを検証します。
func TestCachingNewsProvider_MemoizesHeadlines(t *testing.T) {
	t.Parallel()

	inner := &mockNewsProvider{
		GetHeadlinesFunc: func(ctx context.Context, ticker string) []string {
			return []string{}
		},
	}
	provider := NewCachingNewsProvider(NewMemoryStore(nil), inner)

	for i := 0; i < 3; i++ {
		titles := provider.GetHeadlines(context.Background(), "TQQQ")
		if titles == nil {
			t.Fatal("expected empty slice, got nil")
		}
		if len(titles) != 0 {
			t.Errorf("expected 0 headlines, got %d", len(titles))
		}
	}
	if inner.GetHeadlinesCalls != 1 {
		t.Errorf("expected the empty result to be memoized, got %d inner calls", inner.GetHeadlinesCalls)
	}
}

// TestCachingInsightProvider_KeyIncludesHeadlines は同一の(銘柄, 変化率, ヘッドライン)
// ではキャッシュが効き、ヘッドラインが変わると再生成されることを検証します。
func TestCachingInsightProvider_KeyIncludesHeadlines(t *testing.T) {
	t.Parallel()

	inner := &mockInsightProvider{
		GenerateFunc: func(ctx context.Context, ticker, changeLabel string, headlines []string) string {
			return "insight for " + headlines[0]
		},
	}
	provider := NewCachingInsightProvider(NewMemoryStore(nil), inner)

	first := []string{"Nasdaq rallies"}
	second := []string{"Nasdaq slides"}

	got := provider.Generate(context.Background(), "TQQQ", "+2.04%", first)
	if got != "insight for Nasdaq rallies" {
		t.Errorf("unexpected insight: %q", got)
	}
	_ = provider.Generate(context.Background(), "TQQQ", "+2.04%", first)
	if inner.GenerateCalls != 1 {
		t.Fatalf("expected 1 inner call for identical input, got %d", inner.GenerateCalls)
	}

	// ヘッドラインが入れ替わるとTTL内でも再生成される
	_ = provider.Generate(context.Background(), "TQQQ", "+2.04%", second)
	if inner.GenerateCalls != 2 {
		t.Errorf("expected regeneration for new headlines, got %d inner calls", inner.GenerateCalls)
	}
}

// TestCachingInsightProvider_NoNewsBypassesCache はヘッドラインが空の場合に
// キャッシュを経由せず内部プロバイダへ委譲することを検証します。
func TestCachingInsightProvider_NoNewsBypassesCache(t *testing.T) {
	t.Parallel()

	inner := &mockInsightProvider{
		GenerateFunc: func(ctx context.Context, ticker, changeLabel string, headlines []string) string {
			return "no news shortcut"
		},
	}
	store := NewMemoryStore(nil)
	provider := NewCachingInsightProvider(store, inner)

	for i := 0; i < 2; i++ {
		if got := provider.Generate(context.Background(), "TQQQ", "+2.04%", nil); got != "no news shortcut" {
			t.Errorf("unexpected insight: %q", got)
		}
	}
	if inner.GenerateCalls != 2 {
		t.Errorf("expected delegation on every no-news call, got %d", inner.GenerateCalls)
	}
	if store.Len() != 0 {
		t.Errorf("expected nothing cached for the no-news path, Len() = %d", store.Len())
	}
}
