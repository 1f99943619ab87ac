package repository

import (
	"fmt"
	"os"
	"time"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"gopkg.in/yaml.v3"
)

type registrySeed struct {
	ActiveIndex         int           `yaml:"activeIndex"`
	AutoSwitchEnabled   *bool         `yaml:"autoSwitchEnabled"`
	HealthCheckInterval time.Duration `yaml:"healthCheckInterval"`
	FailureThreshold    int           `yaml:"failureThreshold"`
	SmsLimit            int           `yaml:"smsLimit"`
	SubmitPath          string        `yaml:"submitPath"`
	ProbePath           string        `yaml:"probePath"`
	Deployments         []struct {
		Name string `yaml:"name"`
		URL  string `yaml:"url"`
	} `yaml:"deployments"`
}

// LoadRegistrySeed reads the initial registry from a YAML file. It is only
// consulted when no registry document has been persisted yet.
func LoadRegistrySeed(path string) (model.RegistryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.RegistryConfig{}, fmt.Errorf("LoadRegistrySeed: %w", err)
	}
	var seed registrySeed
	if err = yaml.Unmarshal(data, &seed); err != nil {
		return model.RegistryConfig{}, fmt.Errorf("LoadRegistrySeed: %w", err)
	}

	cfg := model.RegistryConfig{
		ActiveIndex:         seed.ActiveIndex,
		AutoSwitchEnabled:   true,
		HealthCheckInterval: seed.HealthCheckInterval.Milliseconds(),
		FailureThreshold:    seed.FailureThreshold,
		SmsLimit:            seed.SmsLimit,
		SubmitPath:          seed.SubmitPath,
		ProbePath:           seed.ProbePath,
		Deployments:         make([]model.Deployment, 0, len(seed.Deployments)),
	}
	if seed.AutoSwitchEnabled != nil {
		cfg.AutoSwitchEnabled = *seed.AutoSwitchEnabled
	}
	for _, d := range seed.Deployments {
		cfg.Deployments = append(cfg.Deployments, model.Deployment{Name: d.Name, URL: d.URL})
	}
	cfg.ApplyDefaults()
	cfg.Normalize()
	return cfg, nil
}
