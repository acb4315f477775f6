// Package redis はキャッシュバックエンド用のRedisクライアント生成を提供します。
package redis

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

// ErrNotConfigured はREDIS_HOSTが未設定であることを示します。
// 呼び出し元はプロセス内のメモリキャッシュにフォールバックします。
var ErrNotConfigured = errors.New("redis not configured")

// NewRedisClient は環境変数の設定からRedisクライアントを生成し、疎通を確認します。
func NewRedisClient() (*redis.Client, error) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return nil, ErrNotConfigured
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	addr := host + ":" + port

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
