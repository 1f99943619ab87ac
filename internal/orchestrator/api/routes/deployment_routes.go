package routes

import (
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/api/handler"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/jwt"
	"github.com/digirealtydrew93/tackettweb/pkg/middleware"
	"github.com/gin-gonic/gin"
)

const (
	ScopeDeploymentsRead  = jwt.ScopeDeploymentsRead
	ScopeDeploymentsWrite = jwt.ScopeDeploymentsWrite
)

func SetUpDeploymentRoutes(r *gin.Engine, h handler.DeploymentHandler, m middleware.AuthMiddleware) {
	deploymentRoutes := r.Group("/deployments", m.ValidateAndExtractJwt())
	deploymentRoutes.GET("", m.CheckUserPermission(ScopeDeploymentsRead), h.GetDeployments())
	deploymentRoutes.POST("", m.CheckUserPermission(ScopeDeploymentsWrite), h.AddDeployment())
	deploymentRoutes.GET("/active", m.CheckUserPermission(ScopeDeploymentsRead), h.GetActiveDeployment())
	deploymentRoutes.PUT("/active", m.CheckUserPermission(ScopeDeploymentsWrite), h.SetActiveDeployment())
	deploymentRoutes.POST("/reset", m.CheckUserPermission(ScopeDeploymentsWrite), h.ResetDeployments())
	deploymentRoutes.GET("/:index/uptime", m.CheckUserPermission(ScopeDeploymentsRead), h.GetUptimePercentage())

	r.GET("/health", m.ValidateAndExtractJwt(), m.CheckUserPermission(ScopeDeploymentsRead), h.CheckHealth())
	r.GET("/export", m.ValidateAndExtractJwt(), m.CheckUserPermission(ScopeDeploymentsRead), h.ExportWorkbook())

	metricsRoutes := r.Group("/metrics", m.ValidateAndExtractJwt())
	metricsRoutes.GET("/summary", m.CheckUserPermission(ScopeDeploymentsRead), h.GetMetricsSummary())
	metricsRoutes.POST("/reset", m.CheckUserPermission(ScopeDeploymentsWrite), h.ResetMetrics())
}
