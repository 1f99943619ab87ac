package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/api/dto/request"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/api/dto/response"
	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/health"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const recentSwitches = 5

type DeploymentHandler interface {
	GetDeployments() gin.HandlerFunc
	GetActiveDeployment() gin.HandlerFunc
	AddDeployment() gin.HandlerFunc
	SetActiveDeployment() gin.HandlerFunc
	ResetDeployments() gin.HandlerFunc
	CheckHealth() gin.HandlerFunc
	GetMetricsSummary() gin.HandlerFunc
	ResetMetrics() gin.HandlerFunc
	ExportWorkbook() gin.HandlerFunc
	GetUptimePercentage() gin.HandlerFunc
}

type deploymentHandler struct {
	logger          Logger
	registryService service.RegistryService
	monitor         health.Monitor
}

func (d *deploymentHandler) internalError(c *gin.Context, err error, desc string) {
	d.logger.LoggingError(c, err, desc, zap.ErrorLevel)
	c.JSON(http.StatusInternalServerError, response.Response{
		Message: "Internal Server Error",
	})
}

func (d *deploymentHandler) GetDeployments() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := d.registryService.List(c)
		if err != nil {
			d.internalError(c, fmt.Errorf("DeploymentHandler.GetDeployments: %w", err), "failed to load deployments")
			return
		}
		c.JSON(http.StatusOK, response.NewRegistryResponse(cfg))
	}
}

func (d *deploymentHandler) GetActiveDeployment() gin.HandlerFunc {
	return func(c *gin.Context) {
		active, err := d.registryService.Active(c)
		if err != nil {
			d.internalError(c, fmt.Errorf("DeploymentHandler.GetActiveDeployment: %w", err), "failed to load active deployment")
			return
		}
		c.JSON(http.StatusOK, response.NewDeploymentResponse(active))
	}
}

func (d *deploymentHandler) AddDeployment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.AddDeploymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		added, err := d.registryService.Add(c, req.Name, req.URL)
		if err != nil {
			d.internalError(c, fmt.Errorf("DeploymentHandler.AddDeployment: %w", err), "failed to add deployment")
			return
		}
		c.JSON(http.StatusCreated, response.NewDeploymentResponse(added))
	}
}

func (d *deploymentHandler) SetActiveDeployment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.SetActiveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		event, err := d.registryService.SetActive(c, *req.Index)
		if err != nil {
			if errors.Is(err, apperrors.ErrInvalidIndex) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid deployment index",
				})
				return
			}
			d.internalError(c, fmt.Errorf("DeploymentHandler.SetActiveDeployment: %w", err), "failed to switch active deployment")
			return
		}
		active, err := d.registryService.Active(c)
		if err != nil {
			d.internalError(c, fmt.Errorf("DeploymentHandler.SetActiveDeployment: %w", err), "failed to load active deployment")
			return
		}
		c.JSON(http.StatusOK, response.SwitchResponse{
			Switched: event != nil,
			Active:   response.NewDeploymentResponse(active),
			Event:    event,
		})
	}
}

func (d *deploymentHandler) ResetDeployments() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := d.registryService.Reset(c)
		if err != nil {
			d.internalError(c, fmt.Errorf("DeploymentHandler.ResetDeployments: %w", err), "failed to reset deployments")
			return
		}
		c.JSON(http.StatusOK, response.NewRegistryResponse(cfg))
	}
}

func (d *deploymentHandler) CheckHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := d.monitor.Check(c)
		if err != nil {
			d.internalError(c, fmt.Errorf("DeploymentHandler.CheckHealth: %w", err), "failed to check deployments health")
			return
		}
		res := make([]response.HealthResponse, 0, len(results))
		for _, r := range results {
			res = append(res, response.HealthResponse{
				Index:          r.Index,
				Name:           r.Name,
				URL:            r.URL,
				Status:         r.Status,
				Healthy:        r.Probe.Healthy,
				StatusCode:     r.Probe.StatusCode,
				ResponseTimeMs: r.Probe.ResponseTime.Milliseconds(),
				FailureCount:   r.FailureCount,
				Error:          r.Probe.Error,
			})
		}
		c.JSON(http.StatusOK, res)
	}
}

func (d *deploymentHandler) GetMetricsSummary() gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := d.registryService.Metrics(c)
		if err != nil {
			d.internalError(c, fmt.Errorf("DeploymentHandler.GetMetricsSummary: %w", err), "failed to load metrics")
			return
		}
		c.JSON(http.StatusOK, response.NewMetricsSummaryResponse(m, recentSwitches))
	}
}

func (d *deploymentHandler) ResetMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := d.registryService.ResetMetrics(c); err != nil {
			d.internalError(c, fmt.Errorf("DeploymentHandler.ResetMetrics: %w", err), "failed to reset metrics")
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Metrics reset",
		})
	}
}

func (d *deploymentHandler) ExportWorkbook() gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf bytes.Buffer
		if err := d.registryService.Export(c, &buf); err != nil {
			d.internalError(c, fmt.Errorf("DeploymentHandler.ExportWorkbook: %w", err), "failed to export deployments")
			return
		}
		fileName := fmt.Sprintf("deployments-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}

func (d *deploymentHandler) GetUptimePercentage() gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Index must be an integer",
			})
			return
		}
		startTime, err := time.Parse("2006-01-02", c.Query("start_date"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid start date",
			})
			return
		}
		endTime, err := time.Parse("2006-01-02", c.Query("end_date"))
		if err != nil || endTime.Before(startTime) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		endTimeFinal := endTime.AddDate(0, 0, 1)
		res, err := d.registryService.Uptime(c, index, startTime, endTimeFinal)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrInvalidIndex):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid deployment index",
				})
			case errors.Is(err, apperrors.ErrProbeHistoryUnavailable):
				c.JSON(http.StatusNotImplemented, response.Response{
					Message: "Probe history is not configured",
				})
			default:
				d.internalError(c, fmt.Errorf("DeploymentHandler.GetUptimePercentage: %w", err),
					fmt.Sprintf("failed to get uptime percentage of deployment %d from %s to %s", index, startTime, endTime))
			}
			return
		}
		c.JSON(http.StatusOK, response.UptimeResponse{
			UptimePercentage: res,
		})
	}
}

func NewDeploymentHandler(logger *zap.Logger, registryService service.RegistryService, monitor health.Monitor) DeploymentHandler {
	return &deploymentHandler{
		logger:          NewLogger(logger),
		registryService: registryService,
		monitor:         monitor,
	}
}
