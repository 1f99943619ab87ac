package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/api/dto/response"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxSubmitBody = 1 << 20

type SubmitHandler interface {
	Submit() gin.HandlerFunc
	MethodNotAllowed() gin.HandlerFunc
}

type submitHandler struct {
	logger Logger
	router router.Router
}

func (s *submitHandler) Submit() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxSubmitBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponse{Error: "Request body too large"})
				return
			}
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request body"})
			return
		}
		res, err := s.router.Route(c, body)
		if err != nil {
			err = fmt.Errorf("SubmitHandler.Submit: %w", err)
			s.logger.LoggingError(c, err, "failed to route submission", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Internal Server Error"})
			return
		}
		contentType := res.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		c.Data(res.StatusCode, contentType, res.Body)
	}
}

func (s *submitHandler) MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Allow", http.MethodPost)
		c.JSON(http.StatusMethodNotAllowed, response.ErrorResponse{Error: "Method not allowed"})
	}
}

func NewSubmitHandler(logger *zap.Logger, r router.Router) SubmitHandler {
	return &submitHandler{
		logger: NewLogger(logger),
		router: r,
	}
}
