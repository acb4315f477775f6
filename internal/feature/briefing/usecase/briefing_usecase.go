// Package usecase はブリーフィング組み立てのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alphadesk/internal/config"
	"alphadesk/internal/feature/briefing/domain/entity"
	quotesentity "alphadesk/internal/feature/quotes/domain/entity"
	quotesusecase "alphadesk/internal/feature/quotes/usecase"
	weatherentity "alphadesk/internal/feature/weather/domain/entity"
	weatherusecase "alphadesk/internal/feature/weather/usecase"
)

// koreanWeekdays はtime.Weekday（日曜始まり）に対応する韓国語の曜日です。
var koreanWeekdays = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// WeatherProvider は天気スナップショットの提供者を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type WeatherProvider interface {
	GetSnapshot(ctx context.Context) (*weatherentity.WeatherSnapshot, error)
}

// QuoteProvider は株価スナップショットの提供者を抽象化します。
type QuoteProvider interface {
	GetQuote(ctx context.Context, symbol string) (*quotesentity.QuoteSnapshot, error)
}

// NewsProvider は銘柄関連ヘッドラインの提供者を抽象化します。失敗しません。
type NewsProvider interface {
	GetHeadlines(ctx context.Context, ticker string) []string
}

// InsightProvider は値動き解説の提供者を抽象化します。常に表示可能なテキストを返します。
type InsightProvider interface {
	Generate(ctx context.Context, ticker, changeLabel string, headlines []string) string
}

// briefingUsecase は4つの独立したデータソースを1つのブリーフィングに束ねます。
//
// 各ソースの失敗はそのセクションだけを劣化させます。天気は省略、株価は
// 銘柄カード単位のエラープレースホルダ、ニュースは空、解説は診断テキスト。
// どの失敗もレンダリング全体を中断しません。
type briefingUsecase struct {
	weather WeatherProvider
	quotes  QuoteProvider
	news    NewsProvider
	insight InsightProvider
	tickers []config.Ticker
	loc     *time.Location
	now     func() time.Time
}

// NewBriefingUsecase はbriefingUsecaseの新しいインスタンスを生成します。
// locは日付ラベルのタイムゾーン、nowがnilの場合はtime.Nowを使用します。
func NewBriefingUsecase(weather WeatherProvider, quotes QuoteProvider, news NewsProvider,
	insight InsightProvider, tickers []config.Ticker, loc *time.Location, now func() time.Time) *briefingUsecase {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &briefingUsecase{
		weather: weather,
		quotes:  quotes,
		news:    news,
		insight: insight,
		tickers: tickers,
		loc:     loc,
		now:     now,
	}
}

// DateLabel は日付を韓国語表記に整形します（e.g. "2026년 8월 31일 월요일"）。
func DateLabel(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일 %s요일",
		t.Year(), int(t.Month()), t.Day(), koreanWeekdays[t.Weekday()])
}

// Build は1回のレンダリングパスを実行し、ブリーフィングを返します。
// 各ソースは逐次呼び出されます（キャッシュ層が反復呼び出しを短絡します）。
func (u *briefingUsecase) Build(ctx context.Context) *entity.Briefing {
	now := u.now().In(u.loc)
	b := &entity.Briefing{
		DateLabel:   DateLabel(now),
		GeneratedAt: now,
	}

	// 天気: 取得できなければセクションごと省略する（エラーバナーは出さない）
	if snap, err := u.weather.GetSnapshot(ctx); err == nil {
		b.Weather = snap
	} else if !errors.Is(err, weatherusecase.ErrUnavailable) {
		// プロバイダ契約上ここには来ないはずだが、来ても省略扱いに留める
		b.Weather = nil
	}

	for _, tk := range u.tickers {
		report := entity.TickerReport{Name: tk.Name, Symbol: tk.Symbol}

		quote, err := u.quotes.GetQuote(ctx, tk.Symbol)
		if err != nil {
			// 株価が無い銘柄はチャートも解説もスキップし、プレースホルダのみ表示
			report.Error = fmt.Sprintf("데이터 로딩 실패 (%s)", tk.Symbol)
			b.Tickers = append(b.Tickers, report)
			continue
		}

		report.Quote = quote
		report.ChangeLabel = quotesusecase.FormatChangeLabel(quote.ChangePct)
		report.Headlines = u.news.GetHeadlines(ctx, tk.Symbol)
		report.Insight = u.insight.Generate(ctx, tk.Symbol, report.ChangeLabel, report.Headlines)
		b.Tickers = append(b.Tickers, report)
	}

	return b
}
