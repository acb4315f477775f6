package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"alphadesk/internal/feature/quotes/adapters/yahoo/dto"
	"alphadesk/internal/feature/quotes/domain/entity"
	"alphadesk/internal/feature/quotes/usecase"
)

// YahooMarket はYahoo Finance chart APIから日足データを取得するMarketRepository実装です。
type YahooMarket struct {
	cfg    Config
	client *http.Client
}

// YahooMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定された設定とHTTPクライアントでYahooMarketの新しいインスタンスを生成します。
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// GetDailyBars は指定銘柄の直近1ヶ月分の日足バーを時系列順で返します。
// OHLCのいずれかが欠損している日はスキップします。
func (y *YahooMarket) GetDailyBars(ctx context.Context, symbol string) ([]entity.Candle, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1mo",
		y.cfg.BaseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo: %s", body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no data for %s", symbol)
	}

	result := body.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	candles := make([]entity.Candle, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			break
		}
		// 欠損日はチャートに載せない
		if quote.Open[i] == nil || quote.High[i] == nil || quote.Low[i] == nil || quote.Close[i] == nil {
			continue
		}
		candles = append(candles, entity.Candle{
			Time:  time.Unix(ts, 0).UTC(),
			Open:  *quote.Open[i],
			High:  *quote.High[i],
			Low:   *quote.Low[i],
			Close: *quote.Close[i],
		})
	}
	return candles, nil
}
