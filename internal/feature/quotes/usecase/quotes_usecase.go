// Package usecase は株価スナップショット取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"alphadesk/internal/feature/quotes/domain/entity"
)

// ErrUnavailable は株価データが取得できなかったことを示すセンチネルエラーです。
// バーが2本未満の場合・直前終値が0の場合・上流エラーの場合に返されます。
var ErrUnavailable = errors.New("quote unavailable")

// MinBars は前日比の計算に必要な最小バー数です。
const MinBars = 2

// MarketRepository は日足データの取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// GetDailyBars は指定銘柄の直近1ヶ月分の日足バーを時系列順で返します。
	GetDailyBars(ctx context.Context, symbol string) ([]entity.Candle, error)
}

// quotesUsecase は株価スナップショット取得のユースケースを定義します。
type quotesUsecase struct {
	market MarketRepository
	loc    *time.Location
	now    func() time.Time
}

// NewQuotesUsecase はquotesUsecaseの新しいインスタンスを生成します。
// locは表示用タイムスタンプのタイムゾーン、nowがnilの場合はtime.Nowを使用します。
func NewQuotesUsecase(market MarketRepository, loc *time.Location, now func() time.Time) *quotesUsecase {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &quotesUsecase{market: market, loc: loc, now: now}
}

// GetQuote は銘柄の直近1ヶ月の日足履歴から最新値と前日比を導出します。
// 履歴が2本未満・直前終値が0・上流エラーはすべてErrUnavailableに変換されます。
func (u *quotesUsecase) GetQuote(ctx context.Context, symbol string) (*entity.QuoteSnapshot, error) {
	bars, err := u.market.GetDailyBars(ctx, symbol)
	if err != nil {
		slog.Warn("quote fetch failed", "symbol", symbol, "error", err)
		return nil, ErrUnavailable
	}
	if len(bars) < MinBars {
		return nil, ErrUnavailable
	}

	curr := bars[len(bars)-1].Close
	prev := bars[len(bars)-2].Close
	// ゼロ除算ガード。直前終値が0の履歴は取得失敗と同等に扱う。
	if prev == 0 {
		return nil, ErrUnavailable
	}

	diff := curr - prev
	return &entity.QuoteSnapshot{
		Symbol:    symbol,
		Price:     curr,
		Change:    diff,
		ChangePct: diff / prev * 100,
		History:   bars,
		FetchedAt: u.now().In(u.loc),
	}, nil
}

// FormatChangeLabel は変化率を表示用ラベルに整形します（e.g. "+2.04%", "-1.30%"）。
// 上昇時のみ明示的に"+"を付けます。
func FormatChangeLabel(pct float64) string {
	sign := ""
	if pct > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, pct)
}
