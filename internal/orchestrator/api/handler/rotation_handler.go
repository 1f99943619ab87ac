package handler

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/api/dto/response"
	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/rotation"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RotationHandler interface {
	GetRotationStatus() gin.HandlerFunc
	GetNextTarget() gin.HandlerFunc
	GetSchedule() gin.HandlerFunc
	MarkDeployed() gin.HandlerFunc
	ResetRotation() gin.HandlerFunc
}

type rotationHandler struct {
	logger    Logger
	scheduler rotation.Scheduler
}

func (r *rotationHandler) internalError(c *gin.Context, err error, desc string) {
	r.logger.LoggingError(c, err, desc, zap.ErrorLevel)
	c.JSON(http.StatusInternalServerError, response.Response{
		Message: "Internal Server Error",
	})
}

// GetRotationStatus lists deployments most recently deployed first; never
// deployed ones come last in registry order.
func (r *rotationHandler) GetRotationStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		log, err := r.scheduler.Status(c)
		if err != nil {
			r.internalError(c, fmt.Errorf("RotationHandler.GetRotationStatus: %w", err), "failed to load rotation status")
			return
		}
		entries := append([]model.RotationEntry(nil), log.Deployments...)
		sort.SliceStable(entries, func(i, j int) bool {
			a, b := entries[i].LastDeployed, entries[j].LastDeployed
			if a == nil || b == nil {
				return a != nil
			}
			return a.After(*b)
		})
		log.Deployments = entries
		c.JSON(http.StatusOK, log)
	}
}

func (r *rotationHandler) GetNextTarget() gin.HandlerFunc {
	return func(c *gin.Context) {
		next, err := r.scheduler.NextTarget(c)
		if err != nil {
			if errors.Is(err, apperrors.ErrNoDeployments) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "No deployments registered",
				})
				return
			}
			r.internalError(c, fmt.Errorf("RotationHandler.GetNextTarget: %w", err), "failed to compute next rotation target")
			return
		}
		c.JSON(http.StatusOK, next)
	}
}

func (r *rotationHandler) GetSchedule() gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := strconv.Atoi(c.DefaultQuery("n", "5"))
		if err != nil || n <= 0 || n > rotation.MaxScheduleLength {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: fmt.Sprintf("n must be an integer between 1 and %d", rotation.MaxScheduleLength),
			})
			return
		}
		targets, err := r.scheduler.Schedule(c, n)
		if err != nil {
			if errors.Is(err, apperrors.ErrNoDeployments) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "No deployments registered",
				})
				return
			}
			r.internalError(c, fmt.Errorf("RotationHandler.GetSchedule: %w", err), "failed to compute rotation schedule")
			return
		}
		c.JSON(http.StatusOK, targets)
	}
}

func (r *rotationHandler) MarkDeployed() gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Index must be an integer",
			})
			return
		}
		res, err := r.scheduler.MarkDeployed(c, index)
		if err != nil {
			if errors.Is(err, apperrors.ErrInvalidIndex) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid deployment index",
				})
				return
			}
			r.internalError(c, fmt.Errorf("RotationHandler.MarkDeployed: %w", err), "failed to mark deployment")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func (r *rotationHandler) ResetRotation() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := r.scheduler.Reset(c); err != nil {
			r.internalError(c, fmt.Errorf("RotationHandler.ResetRotation: %w", err), "failed to reset rotation log")
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Rotation log reset",
		})
	}
}

func NewRotationHandler(logger *zap.Logger, scheduler rotation.Scheduler) RotationHandler {
	return &rotationHandler{
		logger:    NewLogger(logger),
		scheduler: scheduler,
	}
}
