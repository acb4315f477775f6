// Package router はアプリケーションのHTTPルーティングを構成します。
package router

import (
	"github.com/gin-gonic/gin"

	briefinghandler "alphadesk/internal/feature/briefing/transport/handler"
	platformhandler "alphadesk/internal/platform/http/handler"
)

// NewRouter はすべてのエンドポイントを登録したginエンジンを生成します。
func NewRouter(briefing *briefinghandler.BriefingHandler) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(briefinghandler.PageTemplate)

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)

	// ダッシュボードページ
	r.GET("/", briefing.PageHandler)

	// ブリーフィングの取得
	r.GET("/api/briefing", briefing.GetBriefingHandler)
	// キャッシュ全消去＋再構築（「最新データ取得」ボタン）
	r.POST("/api/refresh", briefing.RefreshHandler)

	return r
}
