// Package ratelimiter は外部API呼び出しの頻度制限を提供します。
package ratelimiter

import (
	"log/slog"
	"sync"
	"time"
)

// RateLimiterInterface は、生成AI呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter は固定ウィンドウ方式で操作の頻度を制限します。
// Gemini無料枠のRPM上限の保護に使用します。
type RateLimiter struct {
	limit     int           // ウィンドウあたりの上限回数
	interval  time.Duration // ウィンドウの長さ
	mu        sync.Mutex
	count     int
	lastReset time.Time
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded は上限に達している場合、ウィンドウの残り時間だけブロックします。
func (rl *RateLimiter) WaitIfNeeded() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			slog.Info("rate limit reached, waiting", "limit", rl.limit, "sleep", sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
