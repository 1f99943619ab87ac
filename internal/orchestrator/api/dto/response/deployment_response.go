package response

import (
	"time"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
)

type DeploymentResponse struct {
	Index        int    `json:"index"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	Status       string `json:"status"`
	FailureCount int    `json:"failure_count"`
}

type RegistryResponse struct {
	ActiveIndex         int                  `json:"active_index"`
	AutoSwitchEnabled   bool                 `json:"auto_switch_enabled"`
	HealthCheckInterval string               `json:"health_check_interval"`
	FailureThreshold    int                  `json:"failure_threshold"`
	SmsLimit            int                  `json:"sms_limit"`
	Deployments         []DeploymentResponse `json:"deployments"`
	LastUpdated         *time.Time           `json:"last_updated,omitempty"`
}

type SwitchResponse struct {
	Switched bool               `json:"switched"`
	Active   DeploymentResponse `json:"active"`
	Event    *model.SwitchEvent `json:"event,omitempty"`
}

type HealthResponse struct {
	Index          int    `json:"index"`
	Name           string `json:"name"`
	URL            string `json:"url"`
	Status         string `json:"status"`
	Healthy        bool   `json:"healthy"`
	StatusCode     int    `json:"status_code"`
	ResponseTimeMs int64  `json:"response_time_ms"`
	FailureCount   int    `json:"failure_count"`
	Error          string `json:"error,omitempty"`
}

type DeploymentStatsResponse struct {
	Checks            int64 `json:"checks"`
	SuccessRate       int   `json:"success_rate"`
	AvgResponseTimeMs int64 `json:"avg_response_time_ms"`
}

type MetricsSummaryResponse struct {
	StartTime          time.Time                          `json:"start_time"`
	TotalRequests      int64                              `json:"total_requests"`
	SuccessfulRequests int64                              `json:"successful_requests"`
	FailedRequests     int64                              `json:"failed_requests"`
	Uptime             int                                `json:"uptime"`
	LastHealthCheck    *time.Time                         `json:"last_health_check"`
	RecentSwitches     []model.SwitchEvent                `json:"recent_switches"`
	DeploymentStats    map[string]DeploymentStatsResponse `json:"deployment_stats"`
}

func NewDeploymentResponse(d model.Deployment) DeploymentResponse {
	return DeploymentResponse{
		Index:        d.Index,
		Name:         d.Name,
		URL:          d.URL,
		Status:       d.Status,
		FailureCount: d.FailureCount,
	}
}

func NewRegistryResponse(cfg model.RegistryConfig) RegistryResponse {
	deployments := make([]DeploymentResponse, 0, len(cfg.Deployments))
	for _, d := range cfg.Deployments {
		deployments = append(deployments, NewDeploymentResponse(d))
	}
	return RegistryResponse{
		ActiveIndex:         cfg.ActiveIndex,
		AutoSwitchEnabled:   cfg.AutoSwitchEnabled,
		HealthCheckInterval: cfg.Interval().String(),
		FailureThreshold:    cfg.FailureThreshold,
		SmsLimit:            cfg.SmsLimit,
		Deployments:         deployments,
		LastUpdated:         cfg.LastUpdated,
	}
}

// NewMetricsSummaryResponse keeps the last recent switches, most recent first.
func NewMetricsSummaryResponse(m model.Metrics, recent int) MetricsSummaryResponse {
	switches := m.RecentSwitches(recent)
	reversed := make([]model.SwitchEvent, 0, len(switches))
	for i := len(switches) - 1; i >= 0; i-- {
		reversed = append(reversed, switches[i])
	}
	stats := make(map[string]DeploymentStatsResponse, len(m.DeploymentStats))
	for name, s := range m.DeploymentStats {
		stats[name] = DeploymentStatsResponse{
			Checks:            s.Checks,
			SuccessRate:       s.SuccessRate(),
			AvgResponseTimeMs: s.AvgResponseTime,
		}
	}
	return MetricsSummaryResponse{
		StartTime:          m.StartTime,
		TotalRequests:      m.TotalRequests,
		SuccessfulRequests: m.SuccessfulRequests,
		FailedRequests:     m.FailedRequests,
		Uptime:             m.Uptime,
		LastHealthCheck:    m.LastHealthCheck,
		RecentSwitches:     reversed,
		DeploymentStats:    stats,
	}
}
