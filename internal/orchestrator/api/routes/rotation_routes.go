package routes

import (
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/api/handler"
	"github.com/digirealtydrew93/tackettweb/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func SetUpRotationRoutes(r *gin.Engine, h handler.RotationHandler, m middleware.AuthMiddleware) {
	rotationRoutes := r.Group("/rotation", m.ValidateAndExtractJwt())
	rotationRoutes.GET("", m.CheckUserPermission(ScopeDeploymentsRead), h.GetRotationStatus())
	rotationRoutes.GET("/next", m.CheckUserPermission(ScopeDeploymentsRead), h.GetNextTarget())
	rotationRoutes.GET("/schedule", m.CheckUserPermission(ScopeDeploymentsRead), h.GetSchedule())
	rotationRoutes.POST("/:index/mark", m.CheckUserPermission(ScopeDeploymentsWrite), h.MarkDeployed())
	rotationRoutes.POST("/reset", m.CheckUserPermission(ScopeDeploymentsWrite), h.ResetRotation())
}
