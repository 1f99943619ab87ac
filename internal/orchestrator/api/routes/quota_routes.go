package routes

import (
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/api/handler"
	"github.com/digirealtydrew93/tackettweb/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func SetUpQuotaRoutes(r *gin.Engine, h handler.QuotaHandler, m middleware.AuthMiddleware) {
	quotaRoutes := r.Group("/quota", m.ValidateAndExtractJwt())
	quotaRoutes.GET("", m.CheckUserPermission(ScopeDeploymentsRead), h.GetQuotaStatus())
	quotaRoutes.GET("/config", m.CheckUserPermission(ScopeDeploymentsRead), h.GetQuotaConfig())
	quotaRoutes.POST("/:index/deliveries", m.CheckUserPermission(ScopeDeploymentsWrite), h.RecordDelivery())
	quotaRoutes.POST("/reset", m.CheckUserPermission(ScopeDeploymentsWrite), h.ResetQuota())
}
