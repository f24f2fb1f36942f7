package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"crypto_dashboard/internal/feature/portfolio/transport/http/dto"
)

// RawForwarder fetches a resource from the remote portfolio service without interpreting it.
type RawForwarder interface {
	Forward(ctx context.Context, resource string) ([]json.RawMessage, error)
}

// ProxyHandler passes portfolio RPC responses through to the browser so that
// upstream credentials never leave the server.
type ProxyHandler struct {
	upstream RawForwarder
}

// NewProxyHandler creates a ProxyHandler.
func NewProxyHandler(upstream RawForwarder) *ProxyHandler {
	return &ProxyHandler{upstream: upstream}
}

// Forward returns a handler relaying resource ("portfolio", "holdings" or "transactions").
//
// POST /api/portfolio, /api/holdings, /api/transactions
func (h *ProxyHandler) Forward(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := h.upstream.Forward(c.Request.Context(), resource)
		if err != nil {
			slog.Error("proxy request failed", "resource", resource, "error", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch " + resource})
			return
		}
		c.JSON(http.StatusOK, data)
	}
}
