package router

import (
	"github.com/gin-gonic/gin"

	portfoliohandler "crypto_dashboard/internal/feature/portfolio/transport/handler"
	"crypto_dashboard/internal/platform/externalapi/sentient"
	healthhandler "crypto_dashboard/internal/platform/http/handler"
)

func NewRouter(health *healthhandler.HealthHandler, dashboard *portfoliohandler.DashboardHandler,
	proxy *portfoliohandler.ProxyHandler) *gin.Engine {
	r := gin.Default()

	// Health check
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)
	r.OPTIONS("/healthz", health.Health)

	// Dashboard read model and manual refresh
	r.GET("/dashboard", dashboard.Get)
	r.POST("/refresh", dashboard.Refresh)

	// Upstream RPC passthrough; credentials stay on the server
	api := r.Group("/api")
	{
		api.POST("/portfolio", proxy.Forward(string(sentient.ResourcePortfolio)))
		api.POST("/holdings", proxy.Forward(string(sentient.ResourceHoldings)))
		api.POST("/transactions", proxy.Forward(string(sentient.ResourceTransactions)))
	}

	return r
}
