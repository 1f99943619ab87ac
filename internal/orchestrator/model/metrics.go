package model

import (
	"math"
	"time"
)

// MaxSwitchHistory bounds Metrics.Switches.
const MaxSwitchHistory = 100

const (
	SwitchTriggerHealth   = "health"
	SwitchTriggerQuota    = "quota"
	SwitchTriggerManual   = "manual"
	SwitchTriggerRotation = "rotation"
)

type SwitchEvent struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	Reason          string    `json:"reason"`
	Trigger         string    `json:"trigger"`
	FromIndex       int       `json:"fromIndex"`
	DeploymentIndex int       `json:"deploymentIndex"`
}

type DeploymentStats struct {
	Checks           int64 `json:"checks"`
	Successes        int64 `json:"successes"`
	AvgResponseTime  int64 `json:"avgResponseTime"` // milliseconds, running mean
	LastResponseTime int64 `json:"lastResponseTime"`
}

func (s DeploymentStats) SuccessRate() int {
	if s.Checks == 0 {
		return 0
	}
	return int(math.Round(float64(s.Successes) * 100 / float64(s.Checks)))
}

// Metrics counts health-check ticks (TotalRequests) and probe outcomes
// (SuccessfulRequests, FailedRequests) across all deployments.
type Metrics struct {
	StartTime          time.Time                  `json:"startTime"`
	TotalRequests      int64                      `json:"totalRequests"`
	SuccessfulRequests int64                      `json:"successfulRequests"`
	FailedRequests     int64                      `json:"failedRequests"`
	Uptime             int                        `json:"uptime"`
	LastHealthCheck    *time.Time                 `json:"lastHealthCheck"`
	Switches           []SwitchEvent              `json:"switches"`
	DeploymentStats    map[string]DeploymentStats `json:"deploymentStats"`
}

func DefaultMetrics(now time.Time) Metrics {
	return Metrics{
		StartTime:       now.UTC(),
		Uptime:          100,
		Switches:        []SwitchEvent{},
		DeploymentStats: map[string]DeploymentStats{},
	}
}

func (m *Metrics) AppendSwitch(event SwitchEvent) {
	m.Switches = append(m.Switches, event)
	if len(m.Switches) > MaxSwitchHistory {
		m.Switches = append([]SwitchEvent(nil), m.Switches[len(m.Switches)-MaxSwitchHistory:]...)
	}
}

func (m *Metrics) RecentSwitches(n int) []SwitchEvent {
	if len(m.Switches) <= n {
		return m.Switches
	}
	return m.Switches[len(m.Switches)-n:]
}

func (m *Metrics) RecordProbe(name string, healthy bool, responseTime time.Duration) {
	if m.DeploymentStats == nil {
		m.DeploymentStats = map[string]DeploymentStats{}
	}
	stats := m.DeploymentStats[name]
	ms := responseTime.Milliseconds()
	stats.Checks++
	if healthy {
		stats.Successes++
		m.SuccessfulRequests++
	} else {
		m.FailedRequests++
	}
	stats.AvgResponseTime += (ms - stats.AvgResponseTime) / stats.Checks
	stats.LastResponseTime = ms
	m.DeploymentStats[name] = stats
}

// RecomputeUptime sets Uptime to successful probes over all probes, which equals
// successful / (ticks * endpointCount) while the registry size is constant.
func (m *Metrics) RecomputeUptime() {
	total := m.SuccessfulRequests + m.FailedRequests
	if total == 0 {
		m.Uptime = 100
		return
	}
	m.Uptime = int(math.Round(float64(m.SuccessfulRequests) * 100 / float64(total)))
}
