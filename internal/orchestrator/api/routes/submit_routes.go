package routes

import (
	"net/http"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/api/handler"
	"github.com/digirealtydrew93/tackettweb/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// SetUpSubmitRoutes exposes the inbound submission endpoint. Only POST is
// accepted; every other method gets 405 with an Allow header.
func SetUpSubmitRoutes(r *gin.Engine, submitPath string, h handler.SubmitHandler, limiter middleware.RateLimiter) {
	r.POST(submitPath, limiter.Limit(), h.Submit())
	notAllowed := h.MethodNotAllowed()
	for _, method := range []string{
		http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead, http.MethodOptions,
	} {
		r.Handle(method, submitPath, notAllowed)
	}
}
