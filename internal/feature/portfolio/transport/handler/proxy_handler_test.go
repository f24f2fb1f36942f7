package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"crypto_dashboard/internal/feature/portfolio/transport/handler"
)

type mockForwarder struct {
	ForwardFunc func(ctx context.Context, resource string) ([]json.RawMessage, error)
}

func (m *mockForwarder) Forward(ctx context.Context, resource string) ([]json.RawMessage, error) {
	return m.ForwardFunc(ctx, resource)
}

func TestProxyHandler_Forward(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		path           string
		resource       string
		upstream       func(ctx context.Context, resource string) ([]json.RawMessage, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "success: portfolio passes through",
			path:     "/api/portfolio",
			resource: "portfolio",
			upstream: func(ctx context.Context, resource string) ([]json.RawMessage, error) {
				return []json.RawMessage{json.RawMessage(`{"id":1,"cash_balance":500}`)}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":1,"cash_balance":500}]`,
		},
		{
			name:     "success: empty holdings",
			path:     "/api/holdings",
			resource: "holdings",
			upstream: func(ctx context.Context, resource string) ([]json.RawMessage, error) {
				return []json.RawMessage{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:     "error: upstream failure hides the cause",
			path:     "/api/transactions",
			resource: "transactions",
			upstream: func(ctx context.Context, resource string) ([]json.RawMessage, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to fetch transactions"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gin.SetMode(gin.TestMode)

			fwd := &mockForwarder{ForwardFunc: func(ctx context.Context, resource string) ([]json.RawMessage, error) {
				assert.Equal(t, tt.resource, resource)
				return tt.upstream(ctx, resource)
			}}
			h := handler.NewProxyHandler(fwd)
			r := gin.New()
			r.POST(tt.path, h.Forward(tt.resource))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
