// Package handler provides the HTTP handlers of the portfolio feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"crypto_dashboard/internal/feature/portfolio/domain/entity"
	"crypto_dashboard/internal/feature/portfolio/transport/http/dto"
	"crypto_dashboard/internal/feature/portfolio/usecase"
)

// DashboardUsecase is the part of the refresh controller the handlers need.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type DashboardUsecase interface {
	Snapshot() entity.Dashboard
	Refresh(ctx context.Context) error
}

// DashboardHandler serves the dashboard read model and the manual refresh trigger.
type DashboardHandler struct {
	uc DashboardUsecase
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(uc DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get returns the current dashboard.
//
// GET /dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewDashboardResponse(h.uc.Snapshot()))
}

// Refresh runs one refresh cycle and returns the resulting dashboard.
//   - 409 when a cycle is already running
//   - 502 when the cycle failed; the previous data stays in place
//
// POST /refresh
func (h *DashboardHandler) Refresh(c *gin.Context) {
	err := h.uc.Refresh(c.Request.Context())
	switch {
	case errors.Is(err, usecase.ErrRefreshInProgress):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		slog.Warn("manual refresh failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewDashboardResponse(h.uc.Snapshot()))
}
