package model

import "time"

const (
	DeploymentStatusActive  = "active"
	DeploymentStatusStandby = "standby"
)

const (
	DefaultHealthCheckInterval = 30000 // milliseconds
	DefaultFailureThreshold    = 3
	DefaultSmsLimit            = 50
	DefaultSubmitPath          = "/api/submit"
	DefaultProbePath           = "/functions/submit"
)

type Deployment struct {
	Index        int    `json:"index"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	Status       string `json:"status"`
	FailureCount int    `json:"failureCount"`
}

// RegistryConfig is the persisted deployment registry. ActiveIndex is the single
// source of truth for routing; Status fields are derived from it by Normalize.
type RegistryConfig struct {
	ActiveIndex         int          `json:"activeIndex"`
	AutoSwitchEnabled   bool         `json:"autoSwitchEnabled"`
	HealthCheckInterval int64        `json:"healthCheckInterval"` // milliseconds
	FailureThreshold    int          `json:"failureThreshold"`
	SmsLimit            int          `json:"smsLimit"`
	SubmitPath          string       `json:"submitPath"`
	ProbePath           string       `json:"probePath"`
	Deployments         []Deployment `json:"deployments"`
	LastUpdated         *time.Time   `json:"lastUpdated,omitempty"`
}

func DefaultRegistryConfig() RegistryConfig {
	cfg := RegistryConfig{
		ActiveIndex:         0,
		AutoSwitchEnabled:   true,
		HealthCheckInterval: DefaultHealthCheckInterval,
		FailureThreshold:    DefaultFailureThreshold,
		SmsLimit:            DefaultSmsLimit,
		SubmitPath:          DefaultSubmitPath,
		ProbePath:           DefaultProbePath,
		Deployments: []Deployment{
			{Name: "Primary (Production)", URL: "http://localhost:8081"},
			{Name: "Secondary (Staging)", URL: "http://localhost:8082"},
			{Name: "Tertiary (Development)", URL: "http://localhost:8083"},
		},
	}
	cfg.Normalize()
	return cfg
}

// ApplyDefaults fills policy fields that older documents may not carry.
func (c *RegistryConfig) ApplyDefaults() {
	if c.HealthCheckInterval <= 0 {
		c.HealthCheckInterval = DefaultHealthCheckInterval
	}
	if c.FailureThreshold <= 0 {
		c.FailureThreshold = DefaultFailureThreshold
	}
	if c.SmsLimit <= 0 {
		c.SmsLimit = DefaultSmsLimit
	}
	if c.SubmitPath == "" {
		c.SubmitPath = DefaultSubmitPath
	}
	if c.ProbePath == "" {
		c.ProbePath = DefaultProbePath
	}
}

func (c RegistryConfig) InRange(index int) bool {
	return index >= 0 && index < len(c.Deployments)
}

func (c RegistryConfig) Interval() time.Duration {
	return time.Duration(c.HealthCheckInterval) * time.Millisecond
}

func (c RegistryConfig) Active() Deployment {
	return c.Deployments[c.ActiveIndex]
}

// Normalize rewrites every Index from its position and every Status from ActiveIndex,
// so exactly one deployment is active.
func (c *RegistryConfig) Normalize() {
	for i := range c.Deployments {
		c.Deployments[i].Index = i
		if i == c.ActiveIndex {
			c.Deployments[i].Status = DeploymentStatusActive
		} else {
			c.Deployments[i].Status = DeploymentStatusStandby
		}
	}
}

// SetActive promotes index to active. The caller must check InRange first.
func (c *RegistryConfig) SetActive(index int) {
	c.ActiveIndex = index
	c.Deployments[index].FailureCount = 0
	c.Normalize()
}

func (c *RegistryConfig) Add(name, url string) Deployment {
	c.Deployments = append(c.Deployments, Deployment{
		Name: name,
		URL:  url,
	})
	c.Normalize()
	return c.Deployments[len(c.Deployments)-1]
}

func (c RegistryConfig) Label(index int) string {
	return c.Deployments[index].Name
}
