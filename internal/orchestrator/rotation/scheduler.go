package rotation

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/metrics"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/notifier"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/reconciler"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/repository"
	"go.uber.org/zap"
)

// MaxScheduleLength caps how many targets Schedule plans.
const MaxScheduleLength = 100

type MarkResult struct {
	Entry  model.RotationEntry `json:"entry"`
	Switch *model.SwitchEvent  `json:"switch,omitempty"`
}

type Scheduler interface {
	// NextTarget returns the deployment that should receive the next release:
	// one never deployed to, else the least recently deployed.
	NextTarget(ctx context.Context) (model.RotationEntry, error)
	// MarkDeployed records a release to index and makes it the active deployment.
	MarkDeployed(ctx context.Context, index int) (MarkResult, error)
	Status(ctx context.Context) (model.RotationLog, error)
	Reset(ctx context.Context) error
	// Schedule lists the next n targets, assuming each is marked in turn. n is
	// capped at MaxScheduleLength.
	Schedule(ctx context.Context, n int) ([]model.RotationEntry, error)
}

type scheduler struct {
	stateRepo repository.StateRepository
	notifier  notifier.SwitchNotifier
	logger    *zap.Logger
	now       func() time.Time
}

func (s *scheduler) load(ctx context.Context) (model.RegistryConfig, model.RotationLog, error) {
	cfg, err := s.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return model.RegistryConfig{}, model.RotationLog{}, err
	}
	log, err := s.stateRepo.LoadRotation(ctx, cfg.Deployments)
	if err != nil {
		return model.RegistryConfig{}, model.RotationLog{}, err
	}
	return cfg, log, nil
}

func (s *scheduler) NextTarget(ctx context.Context) (model.RotationEntry, error) {
	_, log, err := s.load(ctx)
	if err != nil {
		return model.RotationEntry{}, fmt.Errorf("Scheduler.NextTarget: %w", err)
	}
	next := log.NextTarget()
	if next < 0 {
		return model.RotationEntry{}, fmt.Errorf("Scheduler.NextTarget: %w", apperrors.ErrNoDeployments)
	}
	return log.Deployments[next], nil
}

func (s *scheduler) MarkDeployed(ctx context.Context, index int) (MarkResult, error) {
	cfg, log, err := s.load(ctx)
	if err != nil {
		return MarkResult{}, fmt.Errorf("Scheduler.MarkDeployed: %w", err)
	}
	if !cfg.InRange(index) {
		return MarkResult{}, fmt.Errorf("Scheduler.MarkDeployed: %w: %d", apperrors.ErrInvalidIndex, index)
	}

	now := s.now()
	log.Mark(index, now)
	if err = s.stateRepo.SaveRotation(ctx, &log); err != nil {
		return MarkResult{}, fmt.Errorf("Scheduler.MarkDeployed: %w", err)
	}
	res := MarkResult{Entry: log.Deployments[index]}
	s.logger.Info("deployment marked as deployed",
		zap.Int("deployment_index", index), zap.String("deployment", cfg.Deployments[index].Name),
		zap.Int("deploy_count", log.Deployments[index].DeployCount))

	decision := reconciler.Manual(&cfg, index, model.SwitchTriggerRotation, "Rotation deployment")
	if !decision.Switch {
		return res, nil
	}
	metricsDoc, err := s.stateRepo.LoadMetrics(ctx)
	if err != nil {
		return res, fmt.Errorf("Scheduler.MarkDeployed: %w", err)
	}
	event, ok := reconciler.Apply(&cfg, &metricsDoc, decision, now)
	if !ok {
		return res, nil
	}
	if err = s.stateRepo.SaveRegistry(ctx, &cfg); err != nil {
		return res, fmt.Errorf("Scheduler.MarkDeployed: %w", err)
	}
	if err = s.stateRepo.SaveMetrics(ctx, &metricsDoc); err != nil {
		return res, fmt.Errorf("Scheduler.MarkDeployed: %w", err)
	}
	res.Switch = &event
	metrics.Switches.WithLabelValues(event.Trigger).Inc()
	metrics.ActiveDeployment.Set(float64(cfg.ActiveIndex))
	if err = s.notifier.SwitchOccurred(ctx, event); err != nil {
		s.logger.Error("failed to notify switch", zap.Error(err))
	}
	return res, nil
}

func (s *scheduler) Status(ctx context.Context) (model.RotationLog, error) {
	_, log, err := s.load(ctx)
	if err != nil {
		return model.RotationLog{}, fmt.Errorf("Scheduler.Status: %w", err)
	}
	return log, nil
}

func (s *scheduler) Reset(ctx context.Context) error {
	if err := s.stateRepo.Reset(ctx, repository.KeyRotationLog); err != nil {
		return fmt.Errorf("Scheduler.Reset: %w", err)
	}
	s.logger.Info("rotation log reset")
	return nil
}

func (s *scheduler) Schedule(ctx context.Context, n int) ([]model.RotationEntry, error) {
	_, log, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("Scheduler.Schedule: %w", err)
	}
	if len(log.Deployments) == 0 {
		return nil, fmt.Errorf("Scheduler.Schedule: %w", apperrors.ErrNoDeployments)
	}

	if n > MaxScheduleLength {
		n = MaxScheduleLength
	}
	sim := model.RotationLog{Deployments: append([]model.RotationEntry(nil), log.Deployments...)}
	at := s.now()
	targets := make([]model.RotationEntry, 0, n)
	for i := 0; i < n; i++ {
		next := sim.NextTarget()
		targets = append(targets, log.Deployments[next])
		at = at.Add(time.Second)
		sim.Mark(next, at)
	}
	return targets, nil
}

func NewScheduler(stateRepo repository.StateRepository, switchNotifier notifier.SwitchNotifier, logger *zap.Logger) Scheduler {
	if switchNotifier == nil {
		switchNotifier = notifier.NewNopNotifier()
	}
	return &scheduler{
		stateRepo: stateRepo,
		notifier:  switchNotifier,
		logger:    logger,
		now:       time.Now,
	}
}
