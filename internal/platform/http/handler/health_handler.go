// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusReporter はバックグラウンド処理の状態（"ready"、"failed" など）を報告します。
type StatusReporter interface {
	Status() string
}

// HealthHandler は /healthz エンドポイントを処理します。
type HealthHandler struct {
	refresh StatusReporter
}

// NewHealthHandler は HealthHandler を生成します。refresh は nil でもよい。
func NewHealthHandler(refresh StatusReporter) *HealthHandler {
	return &HealthHandler{refresh: refresh}
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// リフレッシュ状態は情報として返すだけで、失敗していてもプローブは 200 のままです。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		body := gin.H{"status": "ok"}
		if h.refresh != nil {
			body["state"] = h.refresh.Status()
		}
		c.JSON(http.StatusOK, body)
	}
}
