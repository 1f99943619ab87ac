package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetUpObservabilityRoutes(r *gin.Engine, metricsHandler http.Handler) {
	r.GET("/metrics", gin.WrapH(metricsHandler))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
