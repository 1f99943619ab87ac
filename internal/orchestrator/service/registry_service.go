package service

import (
	"context"
	"fmt"
	"io"
	"time"

	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/export"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/metrics"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/notifier"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/reconciler"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/repository"
	"go.uber.org/zap"
)

const ManualSwitchReason = "Manual switch"

type RegistryService interface {
	List(ctx context.Context) (model.RegistryConfig, error)
	Active(ctx context.Context) (model.Deployment, error)
	// SetActive switches traffic to index. The returned event is nil when index
	// was already active.
	SetActive(ctx context.Context, index int) (*model.SwitchEvent, error)
	Add(ctx context.Context, name string, url string) (model.Deployment, error)
	// Reset drops the persisted registry so defaults (or the seed file) apply.
	Reset(ctx context.Context) (model.RegistryConfig, error)
	Metrics(ctx context.Context) (model.Metrics, error)
	ResetMetrics(ctx context.Context) error
	Export(ctx context.Context, w io.Writer) error
	// Uptime returns the percentage of healthy probes of deployment index in
	// [startTime, endTime), from the probe history.
	Uptime(ctx context.Context, index int, startTime time.Time, endTime time.Time) (float64, error)
}

type registryService struct {
	stateRepo repository.StateRepository
	probeRepo repository.ProbeRepository
	notifier  notifier.SwitchNotifier
	logger    *zap.Logger
	now       func() time.Time
}

func (r *registryService) List(ctx context.Context) (model.RegistryConfig, error) {
	cfg, err := r.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return model.RegistryConfig{}, fmt.Errorf("RegistryService.List: %w", err)
	}
	return cfg, nil
}

func (r *registryService) Active(ctx context.Context) (model.Deployment, error) {
	cfg, err := r.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return model.Deployment{}, fmt.Errorf("RegistryService.Active: %w", err)
	}
	return cfg.Active(), nil
}

func (r *registryService) SetActive(ctx context.Context, index int) (*model.SwitchEvent, error) {
	cfg, err := r.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return nil, fmt.Errorf("RegistryService.SetActive: %w", err)
	}
	if !cfg.InRange(index) {
		return nil, fmt.Errorf("RegistryService.SetActive: %w: %d", apperrors.ErrInvalidIndex, index)
	}
	decision := reconciler.Manual(&cfg, index, model.SwitchTriggerManual, ManualSwitchReason)
	if !decision.Switch {
		return nil, nil
	}
	metricsDoc, err := r.stateRepo.LoadMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("RegistryService.SetActive: %w", err)
	}
	event, ok := reconciler.Apply(&cfg, &metricsDoc, decision, r.now())
	if !ok {
		return nil, nil
	}
	if err = r.stateRepo.SaveRegistry(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("RegistryService.SetActive: %w", err)
	}
	if err = r.stateRepo.SaveMetrics(ctx, &metricsDoc); err != nil {
		return nil, fmt.Errorf("RegistryService.SetActive: %w", err)
	}
	metrics.Switches.WithLabelValues(event.Trigger).Inc()
	metrics.ActiveDeployment.Set(float64(cfg.ActiveIndex))
	r.logger.Info("active deployment switched manually",
		zap.String("from", event.From), zap.String("to", event.To), zap.Int("deployment_index", index))

	if err = r.notifier.SwitchOccurred(ctx, event); err != nil {
		r.logger.Error("failed to notify switch", zap.Error(err))
	}
	return &event, nil
}

func (r *registryService) Add(ctx context.Context, name string, url string) (model.Deployment, error) {
	cfg, err := r.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return model.Deployment{}, fmt.Errorf("RegistryService.Add: %w", err)
	}
	d := cfg.Add(name, url)
	if err = r.stateRepo.SaveRegistry(ctx, &cfg); err != nil {
		return model.Deployment{}, fmt.Errorf("RegistryService.Add: %w", err)
	}
	r.logger.Info("deployment added", zap.Int("deployment_index", d.Index), zap.String("deployment", d.Name), zap.String("url", d.URL))
	return d, nil
}

func (r *registryService) Reset(ctx context.Context) (model.RegistryConfig, error) {
	if err := r.stateRepo.Reset(ctx, repository.KeyRegistry); err != nil {
		return model.RegistryConfig{}, fmt.Errorf("RegistryService.Reset: %w", err)
	}
	cfg, err := r.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return model.RegistryConfig{}, fmt.Errorf("RegistryService.Reset: %w", err)
	}
	if err = r.stateRepo.SaveRegistry(ctx, &cfg); err != nil {
		return model.RegistryConfig{}, fmt.Errorf("RegistryService.Reset: %w", err)
	}
	r.logger.Info("deployment registry reset", zap.Int("deployments", len(cfg.Deployments)))
	return cfg, nil
}

func (r *registryService) Metrics(ctx context.Context) (model.Metrics, error) {
	m, err := r.stateRepo.LoadMetrics(ctx)
	if err != nil {
		return model.Metrics{}, fmt.Errorf("RegistryService.Metrics: %w", err)
	}
	return m, nil
}

func (r *registryService) ResetMetrics(ctx context.Context) error {
	if err := r.stateRepo.Reset(ctx, repository.KeyMetrics); err != nil {
		return fmt.Errorf("RegistryService.ResetMetrics: %w", err)
	}
	r.logger.Info("metrics reset")
	return nil
}

func (r *registryService) Export(ctx context.Context, w io.Writer) error {
	cfg, err := r.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return fmt.Errorf("RegistryService.Export: %w", err)
	}
	m, err := r.stateRepo.LoadMetrics(ctx)
	if err != nil {
		return fmt.Errorf("RegistryService.Export: %w", err)
	}
	quota, err := r.stateRepo.LoadQuota(ctx, cfg.Deployments)
	if err != nil {
		return fmt.Errorf("RegistryService.Export: %w", err)
	}
	rotation, err := r.stateRepo.LoadRotation(ctx, cfg.Deployments)
	if err != nil {
		return fmt.Errorf("RegistryService.Export: %w", err)
	}
	err = export.Write(w, export.Snapshot{
		Registry: cfg,
		Metrics:  m,
		Quota:    quota,
		Rotation: rotation,
	})
	if err != nil {
		return fmt.Errorf("RegistryService.Export: %w", err)
	}
	return nil
}

func (r *registryService) Uptime(ctx context.Context, index int, startTime time.Time, endTime time.Time) (float64, error) {
	if r.probeRepo == nil {
		return 0, fmt.Errorf("RegistryService.Uptime: %w", apperrors.ErrProbeHistoryUnavailable)
	}
	cfg, err := r.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return 0, fmt.Errorf("RegistryService.Uptime: %w", err)
	}
	if !cfg.InRange(index) {
		return 0, fmt.Errorf("RegistryService.Uptime: %w: %d", apperrors.ErrInvalidIndex, index)
	}
	uptime, err := r.probeRepo.GetUptimePercentage(ctx, cfg.Deployments[index].Name, startTime, endTime)
	if err != nil {
		return 0, fmt.Errorf("RegistryService.Uptime: %w", err)
	}
	return uptime, nil
}

// NewRegistryService builds the operator service. probeRepo may be nil when no
// probe history store is configured.
func NewRegistryService(stateRepo repository.StateRepository, probeRepo repository.ProbeRepository, switchNotifier notifier.SwitchNotifier, logger *zap.Logger) RegistryService {
	if switchNotifier == nil {
		switchNotifier = notifier.NewNopNotifier()
	}
	return &registryService{
		stateRepo: stateRepo,
		probeRepo: probeRepo,
		notifier:  switchNotifier,
		logger:    logger,
		now:       time.Now,
	}
}
