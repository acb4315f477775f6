// Package handler はbriefingフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"alphadesk/internal/feature/briefing/domain/entity"
	"alphadesk/internal/feature/briefing/transport/http/dto"
	"alphadesk/internal/platform/cache"
)

// BriefingUsecase はブリーフィング組み立てのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type BriefingUsecase interface {
	Build(ctx context.Context) *entity.Briefing
}

// BriefingHandler はブリーフィングのHTTPリクエストを処理します。
type BriefingHandler struct {
	uc       BriefingUsecase
	store    cache.Store
	location string
}

// NewBriefingHandler は指定されたusecase・キャッシュストア・地点名で
// BriefingHandlerの新しいインスタンスを生成します。
func NewBriefingHandler(uc BriefingUsecase, store cache.Store, location string) *BriefingHandler {
	return &BriefingHandler{uc: uc, store: store, location: location}
}

// GetBriefingHandler はブリーフィングを組み立ててJSONで返します。
//
// エンドポイント例:
// GET /api/briefing
func (h *BriefingHandler) GetBriefingHandler(c *gin.Context) {
	b := h.uc.Build(c.Request.Context())
	c.JSON(http.StatusOK, h.toResponse(b))
}

// RefreshHandler はキャッシュ全体をクリアしてからブリーフィングを再構築します。
// ユーザーの「最新データ取得」ボタンに対応し、TTLに関係なく全ソースを再取得させます。
//
// エンドポイント例:
// POST /api/refresh
func (h *BriefingHandler) RefreshHandler(c *gin.Context) {
	if err := h.store.Clear(c.Request.Context()); err != nil {
		// クリア失敗でもレンダリングは続行する（キャッシュはベストエフォート）
		slog.Warn("cache clear failed", "error", err)
	}
	b := h.uc.Build(c.Request.Context())
	c.JSON(http.StatusOK, h.toResponse(b))
}

// PageHandler はブリーフィングをHTMLページとして返します。
//
// エンドポイント例:
// GET /
func (h *BriefingHandler) PageHandler(c *gin.Context) {
	b := h.uc.Build(c.Request.Context())
	res := h.toResponse(b)

	// Insightはモデル出力の簡易マークアップ（<br>等）を含むためHTMLとして描画する。
	// シングルユーザーツールであり、表示の透明性を優先する。
	type tickerView struct {
		dto.TickerResponse
		InsightHTML template.HTML
	}
	tickers := make([]tickerView, 0, len(res.Tickers))
	for _, t := range res.Tickers {
		tickers = append(tickers, tickerView{TickerResponse: t, InsightHTML: template.HTML(t.Insight)})
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Date":    res.Date,
		"Weather": res.Weather,
		"Tickers": tickers,
	})
}

// toResponse はドメインのブリーフィングをレスポンスDTOに変換します。
func (h *BriefingHandler) toResponse(b *entity.Briefing) dto.BriefingResponse {
	res := dto.BriefingResponse{
		Date:    b.DateLabel,
		Tickers: make([]dto.TickerResponse, 0, len(b.Tickers)),
	}

	if b.Weather != nil {
		w := &dto.WeatherResponse{
			Location:    h.location,
			CurrentTemp: b.Weather.CurrentTemp,
			Condition:   b.Weather.Condition,
			Forecast:    make([]dto.ForecastPointResponse, 0, len(b.Weather.Samples)),
		}
		for _, s := range b.Weather.Samples {
			w.Forecast = append(w.Forecast, dto.ForecastPointResponse{
				Time:        s.Time.Format("15:04"),
				Temperature: s.Temperature,
			})
		}
		res.Weather = w
	}

	for _, tk := range b.Tickers {
		out := dto.TickerResponse{
			Name:   tk.Name,
			Symbol: tk.Symbol,
			Error:  tk.Error,
		}
		if tk.Quote != nil {
			out.Price = tk.Quote.Price
			out.Change = tk.Quote.Change
			out.ChangeLabel = tk.ChangeLabel
			out.UpdatedAt = tk.Quote.FetchedAt.Format("15:04:05")
			out.Headlines = tk.Headlines
			out.Insight = tk.Insight
			out.Candles = make([]dto.CandleResponse, 0, len(tk.Quote.History))
			for _, x := range tk.Quote.History {
				out.Candles = append(out.Candles, dto.CandleResponse{
					Time:  x.Time.UTC().Format("2006-01-02"),
					Open:  x.Open,
					High:  x.High,
					Low:   x.Low,
					Close: x.Close,
				})
			}
		}
		res.Tickers = append(res.Tickers, out)
	}
	return res
}
