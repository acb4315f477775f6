package yahoorss

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"alphadesk/internal/feature/news/adapters/yahoorss/dto"
	"alphadesk/internal/feature/news/usecase"
)

// YahooRSSFeed はYahoo FinanceのヘッドラインRSSを取得するHeadlineRepository実装です。
type YahooRSSFeed struct {
	cfg    Config
	client *http.Client
}

// YahooRSSFeedがHeadlineRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.HeadlineRepository = (*YahooRSSFeed)(nil)

// NewYahooRSSFeed は指定された設定とHTTPクライアントでYahooRSSFeedの新しいインスタンスを生成します。
func NewYahooRSSFeed(cfg Config, client *http.Client) *YahooRSSFeed {
	return &YahooRSSFeed{cfg: cfg, client: client}
}

// GetTitles は指定シンボルのフィードからitemのtitleを文書順で最大limit件返します。
func (y *YahooRSSFeed) GetTitles(ctx context.Context, symbol string, limit int) ([]string, error) {
	q := url.Values{}
	q.Set("s", symbol)
	u := fmt.Sprintf("%s/rss/headline?%s", y.cfg.BaseURL, q.Encode())

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
		return nil, fmt.Errorf("headline feed http %d", res.StatusCode)
	}

	var feed dto.RSSFeed
	if err := xml.NewDecoder(res.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	titles := make([]string, 0, limit)
	for _, item := range feed.Channel.Items {
		if item.Title == "" {
			continue
		}
		titles = append(titles, item.Title)
		if len(titles) >= limit {
			break
		}
	}
	return titles, nil
}
