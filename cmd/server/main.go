package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"alphadesk/internal/app/di"
	"alphadesk/internal/app/router"
	briefinghandler "alphadesk/internal/feature/briefing/transport/handler"
	briefingusecase "alphadesk/internal/feature/briefing/usecase"
	"alphadesk/internal/config"
	"alphadesk/internal/platform/cache"
	infraredis "alphadesk/internal/platform/redis"
)

func main() {
	// .env（あれば）を読み込む。GEMINI_API_KEY等はここから入る。
	_ = godotenv.Load()

	cfgPath := os.Getenv("ALPHADESK_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	loc, err := time.LoadLocation(cfg.Location.Timezone)
	if err != nil {
		log.Fatal(err)
	}

	// キャッシュストア: Redisが設定されていればRedis、なければプロセス内メモリ
	var store cache.Store
	if rdb, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to in-memory cache.")
		store = cache.NewMemoryStore(nil)
	} else {
		store = cache.NewRedisStore(rdb, "alphadesk")
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	ctx := context.Background()

	// Provider（キャッシュデコレータ込み）
	weather := di.NewWeatherProvider(cfg, store)
	quotes := di.NewQuoteProvider(cfg, store, loc)
	news := di.NewNewsProvider(cfg, store)
	insight := di.NewInsightProvider(ctx, cfg, store)

	// Usecase
	briefingUC := briefingusecase.NewBriefingUsecase(weather, quotes, news, insight, cfg.Tickers, loc, nil)

	// Handler
	briefingH := briefinghandler.NewBriefingHandler(briefingUC, store, cfg.Location.Name)

	// ルータ生成
	r := router.NewRouter(briefingH)

	// GEMINI_API_KEYチェック（起動は継続し、呼び出し時に失敗させる）
	if cfg.Gemini.APIKey == "" {
		log.Println("[WARN] GEMINI_API_KEY is not set. AI insights will fail gracefully.")
	}

	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
