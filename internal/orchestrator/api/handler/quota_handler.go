package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/api/dto/response"
	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/quota"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuotaHandler interface {
	GetQuotaStatus() gin.HandlerFunc
	GetQuotaConfig() gin.HandlerFunc
	RecordDelivery() gin.HandlerFunc
	ResetQuota() gin.HandlerFunc
}

type quotaHandler struct {
	logger  Logger
	tracker quota.Tracker
}

func (q *quotaHandler) internalError(c *gin.Context, err error, desc string) {
	q.logger.LoggingError(c, err, desc, zap.ErrorLevel)
	c.JSON(http.StatusInternalServerError, response.Response{
		Message: "Internal Server Error",
	})
}

func (q *quotaHandler) GetQuotaStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		status, err := q.tracker.Status(c)
		if err != nil {
			q.internalError(c, fmt.Errorf("QuotaHandler.GetQuotaStatus: %w", err), "failed to load quota status")
			return
		}
		c.JSON(http.StatusOK, status)
	}
}

func (q *quotaHandler) GetQuotaConfig() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := q.tracker.Config(c)
		if err != nil {
			q.internalError(c, fmt.Errorf("QuotaHandler.GetQuotaConfig: %w", err), "failed to load quota config")
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

func (q *quotaHandler) RecordDelivery() gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Index must be an integer",
			})
			return
		}
		res, err := q.tracker.RecordDelivery(c, index)
		if err != nil {
			if errors.Is(err, apperrors.ErrInvalidIndex) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid deployment index",
				})
				return
			}
			q.internalError(c, fmt.Errorf("QuotaHandler.RecordDelivery: %w", err), "failed to record delivery")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func (q *quotaHandler) ResetQuota() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := q.tracker.Reset(c); err != nil {
			q.internalError(c, fmt.Errorf("QuotaHandler.ResetQuota: %w", err), "failed to reset quota")
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Quota counters reset",
		})
	}
}

func NewQuotaHandler(logger *zap.Logger, tracker quota.Tracker) QuotaHandler {
	return &quotaHandler{
		logger:  NewLogger(logger),
		tracker: tracker,
	}
}
