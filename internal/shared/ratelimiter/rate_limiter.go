// Package ratelimiter は外部呼び出しを一定時間あたりの回数に制限します。
package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Limiter は呼び出しが許可されるか ctx が終了するまでブロックするインターフェースです。
type Limiter interface {
	Wait(ctx context.Context) error
}

// RateLimiter は interval ごとに最大 limit 回の呼び出しを許可します（固定ウィンドウ）。
// 複数のゴルーチンから同時に使用できます。
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // ウィンドウあたりの上限（0以下で無制限）
	interval  time.Duration // どの単位でリセットするか
	count     int
	lastReset time.Time
}

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// Waitは現在のウィンドウで1回分を確保します。上限に達していれば次のウィンドウまで待機します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl.limit <= 0 {
		return nil
	}
	for {
		rl.mu.Lock()
		now := time.Now()
		// interval を過ぎたらカウントリセット
		if now.Sub(rl.lastReset) >= rl.interval {
			rl.count = 0
			rl.lastReset = now
		}
		if rl.count < rl.limit {
			rl.count++
			rl.mu.Unlock()
			return nil
		}
		sleep := rl.interval - now.Sub(rl.lastReset)
		rl.mu.Unlock()

		slog.Warn("rate limit reached, waiting", "limit", rl.limit, "wait", sleep)
		timer := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
