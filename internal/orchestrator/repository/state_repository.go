package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/config"
	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
)

// StateRepository loads and saves the orchestrator documents. Every mutation in
// the system is load, modify, save; nothing caches a document between calls.
type StateRepository interface {
	LoadRegistry(ctx context.Context) (model.RegistryConfig, error)
	SaveRegistry(ctx context.Context, cfg *model.RegistryConfig) error
	LoadMetrics(ctx context.Context) (model.Metrics, error)
	SaveMetrics(ctx context.Context, metrics *model.Metrics) error
	LoadQuota(ctx context.Context, deployments []model.Deployment) (model.QuotaLog, error)
	SaveQuota(ctx context.Context, log *model.QuotaLog) error
	LoadRotation(ctx context.Context, deployments []model.Deployment) (model.RotationLog, error)
	SaveRotation(ctx context.Context, log *model.RotationLog) error
	Reset(ctx context.Context, key string) error
}

type stateRepository struct {
	store     DocumentStore
	overrides config.OverrideConfig
	seedFile  string
	now       func() time.Time
}

func (s *stateRepository) load(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) {
			return false, nil
		}
		return false, err
	}
	if err = json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("%w: %s: %v", apperrors.ErrCorruptDocument, key, err)
	}
	return true, nil
}

func (s *stateRepository) save(ctx context.Context, key string, in interface{}) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}
	return s.store.Put(ctx, key, data)
}

func (s *stateRepository) stamp() *time.Time {
	t := s.now().UTC()
	return &t
}

func (s *stateRepository) defaultRegistry() (model.RegistryConfig, error) {
	if s.seedFile == "" {
		return model.DefaultRegistryConfig(), nil
	}
	return LoadRegistrySeed(s.seedFile)
}

// applyOverrides layers environment values over a loaded registry. The active
// index override only seeds a registry that was never persisted, so later
// failovers are not undone on the next load.
func (s *stateRepository) applyOverrides(cfg *model.RegistryConfig, seeding bool) {
	o := s.overrides
	for i, url := range o.DeploymentURLs {
		if url == "" {
			continue
		}
		if i < len(cfg.Deployments) {
			cfg.Deployments[i].URL = url
			continue
		}
		cfg.Deployments = append(cfg.Deployments, model.Deployment{
			Name: fmt.Sprintf("Deployment %d", i+1),
			URL:  url,
		})
	}
	if seeding && o.ActiveIndex != nil {
		cfg.ActiveIndex = *o.ActiveIndex
	}
	if o.HealthCheckInterval != nil {
		cfg.HealthCheckInterval = o.HealthCheckInterval.Milliseconds()
	}
	if o.FailureThreshold != nil {
		cfg.FailureThreshold = *o.FailureThreshold
	}
	if o.SmsLimit != nil {
		cfg.SmsLimit = *o.SmsLimit
	}
	if o.AutoSwitchEnabled != nil {
		cfg.AutoSwitchEnabled = *o.AutoSwitchEnabled
	}
}

func validateRegistry(cfg *model.RegistryConfig) error {
	if len(cfg.Deployments) == 0 {
		return fmt.Errorf("%w: no deployments", apperrors.ErrInvalidRegistry)
	}
	if !cfg.InRange(cfg.ActiveIndex) {
		return fmt.Errorf("%w: active index %d out of range [0, %d)", apperrors.ErrInvalidRegistry, cfg.ActiveIndex, len(cfg.Deployments))
	}
	return nil
}

func (s *stateRepository) LoadRegistry(ctx context.Context) (model.RegistryConfig, error) {
	var cfg model.RegistryConfig
	found, err := s.load(ctx, KeyRegistry, &cfg)
	if err != nil {
		return model.RegistryConfig{}, fmt.Errorf("StateRepository.LoadRegistry: %w", err)
	}
	if !found {
		cfg, err = s.defaultRegistry()
		if err != nil {
			return model.RegistryConfig{}, fmt.Errorf("StateRepository.LoadRegistry: %w", err)
		}
	}
	s.applyOverrides(&cfg, !found)
	cfg.ApplyDefaults()
	if err = validateRegistry(&cfg); err != nil {
		return model.RegistryConfig{}, fmt.Errorf("StateRepository.LoadRegistry: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

func (s *stateRepository) SaveRegistry(ctx context.Context, cfg *model.RegistryConfig) error {
	if err := validateRegistry(cfg); err != nil {
		return fmt.Errorf("StateRepository.SaveRegistry: %w", err)
	}
	cfg.Normalize()
	cfg.LastUpdated = s.stamp()
	if err := s.save(ctx, KeyRegistry, cfg); err != nil {
		return fmt.Errorf("StateRepository.SaveRegistry: %w", err)
	}
	return nil
}

func (s *stateRepository) LoadMetrics(ctx context.Context) (model.Metrics, error) {
	metrics := model.DefaultMetrics(s.now())
	if _, err := s.load(ctx, KeyMetrics, &metrics); err != nil {
		return model.Metrics{}, fmt.Errorf("StateRepository.LoadMetrics: %w", err)
	}
	if metrics.Switches == nil {
		metrics.Switches = []model.SwitchEvent{}
	}
	if metrics.DeploymentStats == nil {
		metrics.DeploymentStats = map[string]model.DeploymentStats{}
	}
	return metrics, nil
}

func (s *stateRepository) SaveMetrics(ctx context.Context, metrics *model.Metrics) error {
	if err := s.save(ctx, KeyMetrics, metrics); err != nil {
		return fmt.Errorf("StateRepository.SaveMetrics: %w", err)
	}
	return nil
}

func (s *stateRepository) LoadQuota(ctx context.Context, deployments []model.Deployment) (model.QuotaLog, error) {
	log := model.QuotaLog{Deployments: []model.QuotaEntry{}}
	if _, err := s.load(ctx, KeyQuotaLog, &log); err != nil {
		return model.QuotaLog{}, fmt.Errorf("StateRepository.LoadQuota: %w", err)
	}
	log.Align(deployments)
	return log, nil
}

func (s *stateRepository) SaveQuota(ctx context.Context, log *model.QuotaLog) error {
	log.LastUpdated = s.stamp()
	if err := s.save(ctx, KeyQuotaLog, log); err != nil {
		return fmt.Errorf("StateRepository.SaveQuota: %w", err)
	}
	return nil
}

func (s *stateRepository) LoadRotation(ctx context.Context, deployments []model.Deployment) (model.RotationLog, error) {
	log := model.RotationLog{Deployments: []model.RotationEntry{}}
	if _, err := s.load(ctx, KeyRotationLog, &log); err != nil {
		return model.RotationLog{}, fmt.Errorf("StateRepository.LoadRotation: %w", err)
	}
	log.Align(deployments)
	return log, nil
}

func (s *stateRepository) SaveRotation(ctx context.Context, log *model.RotationLog) error {
	log.LastUpdated = s.stamp()
	if err := s.save(ctx, KeyRotationLog, log); err != nil {
		return fmt.Errorf("StateRepository.SaveRotation: %w", err)
	}
	return nil
}

// Reset deletes a document so the next load yields its defaults.
func (s *stateRepository) Reset(ctx context.Context, key string) error {
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("StateRepository.Reset: %w", err)
	}
	return nil
}

func NewStateRepository(store DocumentStore, overrides config.OverrideConfig, seedFile string, now func() time.Time) StateRepository {
	if now == nil {
		now = time.Now
	}
	return &stateRepository{
		store:     store,
		overrides: overrides,
		seedFile:  seedFile,
		now:       now,
	}
}
