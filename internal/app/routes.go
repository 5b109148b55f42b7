package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-payment-callbacks/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.WebhookHandler) {
	webhooks := a.Router.Group("/webhooks")
	webhooks.POST("", h.ReceiveAny)
	webhooks.POST("/:gateway", h.ReceiveGateway)

	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	a.Router.Group("/metrics").GET("", gin.WrapH(promhttp.Handler()))
}
