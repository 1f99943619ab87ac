package health

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/metrics"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/notifier"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/reconciler"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/repository"
	"go.uber.org/zap"
)

const tickTimeout = 2 * time.Minute

type DeploymentHealth struct {
	Index        int
	Name         string
	URL          string
	Status       string
	FailureCount int
	Probe        ProbeResult
}

type TickReport struct {
	Results     []DeploymentHealth
	ActiveIndex int
	Switch      *model.SwitchEvent
	NoCandidate bool
}

type Monitor interface {
	// Start runs one tick immediately, then one per registry interval until Stop.
	Start()
	Stop()
	Tick(ctx context.Context) (TickReport, error)
	// Check probes every deployment without touching persisted state.
	Check(ctx context.Context) ([]DeploymentHealth, error)
}

type monitor struct {
	stateRepo repository.StateRepository
	prober    Prober
	notifier  notifier.SwitchNotifier
	probeSink notifier.ProbeSink
	logger    *zap.Logger
	now       func() time.Time

	started  atomic.Bool
	stopChan chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func (m *monitor) Start() {
	if !m.started.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer close(m.done)
		interval := m.onTick()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if next := m.onTick(); next != interval {
					interval = next
					ticker.Reset(interval)
				}
			case <-m.stopChan:
				return
			}
		}
	}()
}

func (m *monitor) Stop() {
	if !m.started.Load() {
		return
	}
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
	<-m.done
}

// onTick returns the interval to wait before the next tick, re-read from the
// registry so interval changes apply without a restart.
func (m *monitor) onTick() time.Duration {
	ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
	defer cancel()
	report, err := m.Tick(ctx)
	if err != nil {
		m.logger.Error("health check tick failed", zap.Error(err))
		return time.Duration(model.DefaultHealthCheckInterval) * time.Millisecond
	}
	m.logger.Debug("health check tick completed",
		zap.Int("active_index", report.ActiveIndex), zap.Int("deployments", len(report.Results)))

	cfg, err := m.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return time.Duration(model.DefaultHealthCheckInterval) * time.Millisecond
	}
	return cfg.Interval()
}

func (m *monitor) probeAll(ctx context.Context, cfg *model.RegistryConfig) []DeploymentHealth {
	results := make([]DeploymentHealth, 0, len(cfg.Deployments))
	for i, d := range cfg.Deployments {
		res := m.prober.Probe(ctx, d.URL, cfg.ProbePath)
		results = append(results, DeploymentHealth{
			Index:        i,
			Name:         d.Name,
			URL:          d.URL,
			Status:       d.Status,
			FailureCount: d.FailureCount,
			Probe:        res,
		})
		metrics.ProbeResults.WithLabelValues(d.Name, strconv.FormatBool(res.Healthy)).Inc()
		metrics.ProbeDuration.WithLabelValues(d.Name).Observe(res.ResponseTime.Seconds())
	}
	return results
}

func (m *monitor) Check(ctx context.Context) ([]DeploymentHealth, error) {
	cfg, err := m.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return nil, fmt.Errorf("Monitor.Check: %w", err)
	}
	return m.probeAll(ctx, &cfg), nil
}

func (m *monitor) Tick(ctx context.Context) (TickReport, error) {
	cfg, err := m.stateRepo.LoadRegistry(ctx)
	if err != nil {
		return TickReport{}, fmt.Errorf("Monitor.Tick: %w", err)
	}
	metricsDoc, err := m.stateRepo.LoadMetrics(ctx)
	if err != nil {
		return TickReport{}, fmt.Errorf("Monitor.Tick: %w", err)
	}
	var quota *model.QuotaLog
	if q, e := m.stateRepo.LoadQuota(ctx, cfg.Deployments); e != nil {
		m.logger.Warn("quota log unavailable, choosing failover target without quota", zap.Error(e))
	} else {
		quota = &q
	}

	results := m.probeAll(ctx, &cfg)
	for i, r := range results {
		if r.Probe.Healthy {
			cfg.Deployments[i].FailureCount = 0
		} else {
			cfg.Deployments[i].FailureCount++
			m.logger.Warn("deployment failed health check",
				zap.Int("deployment_index", i), zap.String("deployment", r.Name),
				zap.Int("status_code", r.Probe.StatusCode), zap.String("error", r.Probe.Error),
				zap.Int("failure_count", cfg.Deployments[i].FailureCount))
		}
		results[i].FailureCount = cfg.Deployments[i].FailureCount
	}

	now := m.now()
	report := TickReport{Results: results}
	decision := reconciler.HealthDecision(&cfg, quota)
	active := cfg.Active()
	if decision.NoCandidate {
		report.NoCandidate = true
		m.logger.Warn("active deployment unhealthy and no healthy standby, keeping it active",
			zap.Int("deployment_index", cfg.ActiveIndex), zap.String("deployment", active.Name),
			zap.Int("failure_count", active.FailureCount))
	}
	if event, ok := reconciler.Apply(&cfg, &metricsDoc, decision, now); ok {
		report.Switch = &event
		metrics.Switches.WithLabelValues(event.Trigger).Inc()
		m.logger.Warn("switched active deployment",
			zap.String("from", event.From), zap.String("to", event.To),
			zap.String("reason", event.Reason), zap.String("trigger", event.Trigger))
	}

	metricsDoc.TotalRequests++
	for _, r := range results {
		metricsDoc.RecordProbe(r.Name, r.Probe.Healthy, r.Probe.ResponseTime)
	}
	metricsDoc.RecomputeUptime()
	checkedAt := now.UTC()
	metricsDoc.LastHealthCheck = &checkedAt

	for i, r := range results {
		results[i].Status = cfg.Deployments[r.Index].Status
		results[i].FailureCount = cfg.Deployments[r.Index].FailureCount
		metrics.DeploymentFailures.WithLabelValues(r.Name).Set(float64(cfg.Deployments[r.Index].FailureCount))
	}
	report.ActiveIndex = cfg.ActiveIndex
	metrics.ActiveDeployment.Set(float64(cfg.ActiveIndex))

	if err = m.stateRepo.SaveRegistry(ctx, &cfg); err != nil {
		return report, fmt.Errorf("Monitor.Tick: %w", err)
	}
	if err = m.stateRepo.SaveMetrics(ctx, &metricsDoc); err != nil {
		return report, fmt.Errorf("Monitor.Tick: %w", err)
	}

	m.publish(ctx, report, active, cfg.FailureThreshold)
	return report, nil
}

// publish sends the tick's side effects. Failures are logged only: the state
// is already saved and the next tick proceeds regardless.
func (m *monitor) publish(ctx context.Context, report TickReport, active model.Deployment, threshold int) {
	if report.Switch != nil {
		if err := m.notifier.SwitchOccurred(ctx, *report.Switch); err != nil {
			m.logger.Error("failed to notify switch", zap.Error(err))
		}
	}
	// Alert once, on the tick the active deployment reaches the threshold.
	if report.NoCandidate && active.FailureCount == threshold {
		if err := m.notifier.NoCandidate(ctx, active, threshold); err != nil {
			m.logger.Error("failed to notify missing failover candidate", zap.Error(err))
		}
	}

	records := make([]repository.ProbeRecord, 0, len(report.Results))
	for _, r := range report.Results {
		rec := repository.ProbeRecord{
			DeploymentIndex: r.Index,
			DeploymentName:  r.Name,
			URL:             r.URL,
			Healthy:         r.Probe.Healthy,
			StatusCode:      r.Probe.StatusCode,
			ResponseTimeMs:  r.Probe.ResponseTime.Milliseconds(),
			Error:           r.Probe.Error,
			Timestamp:       r.Probe.Timestamp,
		}
		if rec.Healthy {
			rec.StatusNumeric = 1
		}
		records = append(records, rec)
	}
	if err := m.probeSink.IndexProbes(ctx, records); err != nil {
		m.logger.Error("failed to index probe records", zap.Error(err))
	}
}

func NewMonitor(stateRepo repository.StateRepository, prober Prober, switchNotifier notifier.SwitchNotifier, probeSink notifier.ProbeSink, logger *zap.Logger) Monitor {
	if switchNotifier == nil {
		switchNotifier = notifier.NewNopNotifier()
	}
	if probeSink == nil {
		probeSink = notifier.NewNopProbeSink()
	}
	return &monitor{
		stateRepo: stateRepo,
		prober:    prober,
		notifier:  switchNotifier,
		probeSink: probeSink,
		logger:    logger,
		now:       time.Now,
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
	}
}
