// Package usecase はティッカー関連ヘッドライン取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
)

// MaxHeadlines は1銘柄あたりに返すヘッドラインの上限です。
const MaxHeadlines = 5

// HeadlineRepository はヘッドラインフィードの取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type HeadlineRepository interface {
	// GetTitles は指定シンボルのフィードからタイトルを文書順で最大limit件返します。
	GetTitles(ctx context.Context, symbol string, limit int) ([]string, error)
}

// newsUsecase はヘッドライン取得のユースケースを定義します。
//
// レバレッジETFは固有のニュースをほとんど持たないため、検索時は原指数の
// シンボルに置き換えます。それでも0件の場合は銘柄ごとに決められた
// フォールバック先を1回だけ試します。
type newsUsecase struct {
	feed HeadlineRepository
	// substitutions はニュース検索用のシンボル置換テーブルです（e.g. TQQQ→QQQ）。
	substitutions map[string]string
	// fallbacks は一次フィードが空だった場合のフォールバック先です。
	fallbacks map[string]string
	// defaultFallback はfallbacksに無い銘柄のフォールバック先です。
	defaultFallback string
}

// NewNewsUsecase はnewsUsecaseの新しいインスタンスを生成します。
func NewNewsUsecase(feed HeadlineRepository, substitutions, fallbacks map[string]string, defaultFallback string) *newsUsecase {
	return &newsUsecase{
		feed:            feed,
		substitutions:   substitutions,
		fallbacks:       fallbacks,
		defaultFallback: defaultFallback,
	}
}

// querySymbol はニュース検索に使うシンボルを返します。テーブルに無い銘柄はそのまま通します。
func (u *newsUsecase) querySymbol(ticker string) string {
	if sub, ok := u.substitutions[ticker]; ok {
		return sub
	}
	return ticker
}

// fallbackSymbol は一次フィードが空だった場合に試すシンボルを返します。
func (u *newsUsecase) fallbackSymbol(ticker string) string {
	if fb, ok := u.fallbacks[ticker]; ok {
		return fb
	}
	return u.defaultFallback
}

// GetHeadlines は銘柄に関連するヘッドラインを最大MaxHeadlines件返します。
// 一次フィードが0件の場合はフォールバック先をちょうど1回試し、その結果が
// 空であってもそれで確定します。ネットワーク・パースのエラーはどの段階でも
// 空スライスに変換され、呼び出し元にエラーが伝播することはありません。
func (u *newsUsecase) GetHeadlines(ctx context.Context, ticker string) []string {
	titles, err := u.feed.GetTitles(ctx, u.querySymbol(ticker), MaxHeadlines)
	if err != nil {
		slog.Warn("headline fetch failed", "ticker", ticker, "error", err)
		return []string{}
	}
	if len(titles) > 0 {
		return titles
	}

	titles, err = u.feed.GetTitles(ctx, u.fallbackSymbol(ticker), MaxHeadlines)
	if err != nil {
		slog.Warn("headline fallback fetch failed", "ticker", ticker, "error", err)
		return []string{}
	}
	return titles
}
