package quota

import (
	"context"
	"fmt"
	"math"
	"time"

	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/metrics"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/notifier"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/reconciler"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/repository"
	"go.uber.org/zap"
)

type DeliveryResult struct {
	Index        int                `json:"index"`
	Name         string             `json:"name"`
	SmsCount     int                `json:"smsCount"`
	Limit        int                `json:"limit"`
	TotalSmsSent int64              `json:"totalSmsSent"`
	ActiveIndex  int                `json:"activeIndex"`
	Switch       *model.SwitchEvent `json:"switch,omitempty"`
}

type StatusEntry struct {
	Index     int        `json:"index"`
	Name      string     `json:"name"`
	SmsCount  int        `json:"smsCount"`
	Percent   int        `json:"percent"`
	Active    bool       `json:"active"`
	LastReset *time.Time `json:"lastReset"`
}

type Status struct {
	Limit        int           `json:"limit"`
	ActiveIndex  int           `json:"activeIndex"`
	TotalSmsSent int64         `json:"totalSmsSent"`
	Deployments  []StatusEntry `json:"deployments"`
	LastUpdated  *time.Time    `json:"lastUpdated,omitempty"`
}

type Config struct {
	Limit        int    `json:"limit"`
	ActiveIndex  int    `json:"activeIndex"`
	ActiveName   string `json:"activeName"`
	ActiveCount  int    `json:"activeCount"`
	LimitReached bool   `json:"limitReached"`
}

type Tracker interface {
	// RecordDelivery counts one successful delivery against index and switches
	// the active deployment on the delivery that reaches the limit.
	RecordDelivery(ctx context.Context, index int) (DeliveryResult, error)
	Status(ctx context.Context) (Status, error)
	Reset(ctx context.Context) error
	Config(ctx context.Context) (Config, error)
}

type tracker struct {
	stateRepo repository.StateRepository
	notifier  notifier.SwitchNotifier
	logger    *zap.Logger
	now       func() time.Time
}

func percent(count int, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Round(float64(count) * 100 / float64(limit)))
}

func (t *tracker) RecordDelivery(ctx context.Context, index int) (DeliveryResult, error) {
	cfg, err := t.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return DeliveryResult{}, fmt.Errorf("Tracker.RecordDelivery: %w", err)
	}
	if !cfg.InRange(index) {
		return DeliveryResult{}, fmt.Errorf("Tracker.RecordDelivery: %w: %d", apperrors.ErrInvalidIndex, index)
	}
	log, err := t.stateRepo.LoadQuota(ctx, cfg.Deployments)
	if err != nil {
		return DeliveryResult{}, fmt.Errorf("Tracker.RecordDelivery: %w", err)
	}

	log.Deployments[index].SmsCount++
	log.TotalSmsSent++
	metrics.QuotaDeliveries.WithLabelValues(cfg.Deployments[index].Name).Inc()
	if err = t.stateRepo.SaveQuota(ctx, &log); err != nil {
		return DeliveryResult{}, fmt.Errorf("Tracker.RecordDelivery: %w", err)
	}

	res := DeliveryResult{
		Index:        index,
		Name:         cfg.Deployments[index].Name,
		SmsCount:     log.Deployments[index].SmsCount,
		Limit:        cfg.SmsLimit,
		TotalSmsSent: log.TotalSmsSent,
		ActiveIndex:  cfg.ActiveIndex,
	}

	decision := reconciler.QuotaDecision(&cfg, &log, index)
	if !decision.Switch {
		return res, nil
	}
	metricsDoc, err := t.stateRepo.LoadMetrics(ctx)
	if err != nil {
		return res, fmt.Errorf("Tracker.RecordDelivery: %w", err)
	}
	event, ok := reconciler.Apply(&cfg, &metricsDoc, decision, t.now())
	if !ok {
		return res, nil
	}
	if err = t.stateRepo.SaveRegistry(ctx, &cfg); err != nil {
		return res, fmt.Errorf("Tracker.RecordDelivery: %w", err)
	}
	if err = t.stateRepo.SaveMetrics(ctx, &metricsDoc); err != nil {
		return res, fmt.Errorf("Tracker.RecordDelivery: %w", err)
	}
	res.ActiveIndex = cfg.ActiveIndex
	res.Switch = &event
	metrics.Switches.WithLabelValues(event.Trigger).Inc()
	metrics.ActiveDeployment.Set(float64(cfg.ActiveIndex))
	t.logger.Warn("switched active deployment",
		zap.String("from", event.From), zap.String("to", event.To),
		zap.String("reason", event.Reason), zap.String("trigger", event.Trigger))

	if err = t.notifier.SwitchOccurred(ctx, event); err != nil {
		t.logger.Error("failed to notify switch", zap.Error(err))
	}
	return res, nil
}

func (t *tracker) Status(ctx context.Context) (Status, error) {
	cfg, err := t.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("Tracker.Status: %w", err)
	}
	log, err := t.stateRepo.LoadQuota(ctx, cfg.Deployments)
	if err != nil {
		return Status{}, fmt.Errorf("Tracker.Status: %w", err)
	}
	status := Status{
		Limit:        cfg.SmsLimit,
		ActiveIndex:  cfg.ActiveIndex,
		TotalSmsSent: log.TotalSmsSent,
		Deployments:  make([]StatusEntry, 0, len(log.Deployments)),
		LastUpdated:  log.LastUpdated,
	}
	for i, e := range log.Deployments {
		status.Deployments = append(status.Deployments, StatusEntry{
			Index:     i,
			Name:      e.Name,
			SmsCount:  e.SmsCount,
			Percent:   percent(e.SmsCount, cfg.SmsLimit),
			Active:    i == cfg.ActiveIndex,
			LastReset: e.LastReset,
		})
	}
	return status, nil
}

func (t *tracker) Reset(ctx context.Context) error {
	cfg, err := t.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return fmt.Errorf("Tracker.Reset: %w", err)
	}
	log, err := t.stateRepo.LoadQuota(ctx, cfg.Deployments)
	if err != nil {
		return fmt.Errorf("Tracker.Reset: %w", err)
	}
	log.Reset(t.now())
	if err = t.stateRepo.SaveQuota(ctx, &log); err != nil {
		return fmt.Errorf("Tracker.Reset: %w", err)
	}
	t.logger.Info("quota counters reset", zap.Int("deployments", len(log.Deployments)))
	return nil
}

func (t *tracker) Config(ctx context.Context) (Config, error) {
	cfg, err := t.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return Config{}, fmt.Errorf("Tracker.Config: %w", err)
	}
	log, err := t.stateRepo.LoadQuota(ctx, cfg.Deployments)
	if err != nil {
		return Config{}, fmt.Errorf("Tracker.Config: %w", err)
	}
	count := log.Count(cfg.ActiveIndex)
	return Config{
		Limit:        cfg.SmsLimit,
		ActiveIndex:  cfg.ActiveIndex,
		ActiveName:   cfg.Active().Name,
		ActiveCount:  count,
		LimitReached: count >= cfg.SmsLimit,
	}, nil
}

func NewTracker(stateRepo repository.StateRepository, switchNotifier notifier.SwitchNotifier, logger *zap.Logger) Tracker {
	if switchNotifier == nil {
		switchNotifier = notifier.NewNopNotifier()
	}
	return &tracker{
		stateRepo: stateRepo,
		notifier:  switchNotifier,
		logger:    logger,
		now:       time.Now,
	}
}
