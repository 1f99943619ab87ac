package health

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/config"
	mocknotifier "github.com/digirealtydrew93/tackettweb/internal/orchestrator/mocks/notifier"
	mockrepository "github.com/digirealtydrew93/tackettweb/internal/orchestrator/mocks/repository"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/notifier"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// fakeProber answers from a per-URL health table.
type fakeProber struct {
	mu      sync.Mutex
	healthy map[string]bool
	calls   atomic.Int32
}

func (p *fakeProber) set(url string, healthy bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.healthy[url] = healthy
}

func (p *fakeProber) Probe(_ context.Context, baseURL string, _ string) ProbeResult {
	p.calls.Add(1)
	p.mu.Lock()
	defer p.mu.Unlock()
	res := ProbeResult{Healthy: p.healthy[baseURL], ResponseTime: 10 * time.Millisecond, Timestamp: fixedNow}
	if res.Healthy {
		res.StatusCode = 405
	} else {
		res.StatusCode = 500
		res.Error = "unexpected status 500"
	}
	return res
}

func newTestRepo(t *testing.T, interval int64) repository.StateRepository {
	repo := repository.NewStateRepository(repository.NewFileStore(t.TempDir()), config.OverrideConfig{}, "", func() time.Time { return fixedNow })
	cfg := model.DefaultRegistryConfig()
	cfg.Deployments = nil
	cfg.Add("A", "http://a")
	cfg.Add("B", "http://b")
	cfg.Add("C", "http://c")
	cfg.HealthCheckInterval = interval
	require.NoError(t, repo.SaveRegistry(context.Background(), &cfg))
	return repo
}

func newTestMonitor(repo repository.StateRepository, prober Prober, n notifier.SwitchNotifier, sink notifier.ProbeSink) *monitor {
	m := NewMonitor(repo, prober, n, sink, zap.NewNop()).(*monitor)
	m.now = func() time.Time { return fixedNow }
	return m
}

func TestMonitor_Tick_FailoverAtThreshold(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := newTestRepo(t, 1000)
	prober := &fakeProber{healthy: map[string]bool{"http://a": false, "http://b": true, "http://c": true}}
	switchNotifier := mocknotifier.NewMockSwitchNotifier(ctrl)
	probeSink := mocknotifier.NewMockProbeSink(ctrl)

	probeSink.EXPECT().
		IndexProbes(ctx, gomock.Len(3)).
		Return(nil).
		Times(3)
	switchNotifier.EXPECT().
		SwitchOccurred(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event model.SwitchEvent) error {
			assert.Equal(t, "A", event.From)
			assert.Equal(t, "B", event.To)
			assert.Equal(t, model.SwitchTriggerHealth, event.Trigger)
			assert.Equal(t, "Failed 3 health checks", event.Reason)
			return nil
		}).
		Times(1)

	m := newTestMonitor(repo, prober, switchNotifier, probeSink)

	for tick := 1; tick <= 2; tick++ {
		report, err := m.Tick(ctx)
		require.NoError(t, err)
		assert.Nil(t, report.Switch)
		assert.Equal(t, 0, report.ActiveIndex)
		assert.Equal(t, tick, report.Results[0].FailureCount)
	}

	report, err := m.Tick(ctx)
	require.NoError(t, err)
	require.NotNil(t, report.Switch)
	assert.Equal(t, 1, report.ActiveIndex)
	assert.False(t, report.NoCandidate)

	cfg, err := repo.LoadRegistry(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.ActiveIndex)
	assert.Equal(t, model.DeploymentStatusStandby, cfg.Deployments[0].Status)
	assert.Equal(t, model.DeploymentStatusActive, cfg.Deployments[1].Status)
	assert.Equal(t, 0, cfg.Deployments[0].FailureCount)

	metricsDoc, err := repo.LoadMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), metricsDoc.TotalRequests)
	assert.Equal(t, int64(6), metricsDoc.SuccessfulRequests)
	assert.Equal(t, int64(3), metricsDoc.FailedRequests)
	assert.Equal(t, 67, metricsDoc.Uptime)
	require.Len(t, metricsDoc.Switches, 1)
	assert.NotEmpty(t, metricsDoc.Switches[0].ID)
	require.NotNil(t, metricsDoc.LastHealthCheck)
}

func TestMonitor_Tick_PrefersDeploymentUnderQuota(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := newTestRepo(t, 1000)

	cfg, err := repo.LoadRegistry(ctx)
	require.NoError(t, err)
	cfg.Deployments[0].FailureCount = 2
	require.NoError(t, repo.SaveRegistry(ctx, &cfg))
	quota, err := repo.LoadQuota(ctx, cfg.Deployments)
	require.NoError(t, err)
	quota.Deployments[1].SmsCount = cfg.SmsLimit
	require.NoError(t, repo.SaveQuota(ctx, &quota))

	prober := &fakeProber{healthy: map[string]bool{"http://a": false, "http://b": true, "http://c": true}}
	switchNotifier := mocknotifier.NewMockSwitchNotifier(ctrl)
	switchNotifier.EXPECT().SwitchOccurred(ctx, gomock.Any()).Return(nil)

	m := newTestMonitor(repo, prober, switchNotifier, nil)
	report, err := m.Tick(ctx)

	require.NoError(t, err)
	require.NotNil(t, report.Switch)
	assert.Equal(t, 2, report.ActiveIndex)
}

func TestMonitor_Tick_NoCandidate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := newTestRepo(t, 1000)
	prober := &fakeProber{healthy: map[string]bool{}}
	switchNotifier := mocknotifier.NewMockSwitchNotifier(ctrl)

	switchNotifier.EXPECT().
		NoCandidate(ctx, gomock.Any(), 3).
		DoAndReturn(func(_ context.Context, active model.Deployment, _ int) error {
			assert.Equal(t, "A", active.Name)
			assert.Equal(t, 3, active.FailureCount)
			return errors.New("smtp unavailable")
		}).
		Times(1)

	m := newTestMonitor(repo, prober, switchNotifier, nil)
	for tick := 1; tick <= 4; tick++ {
		report, err := m.Tick(ctx)
		require.NoError(t, err)
		assert.Nil(t, report.Switch)
		assert.Equal(t, 0, report.ActiveIndex)
		assert.Equal(t, tick >= 3, report.NoCandidate)
	}

	cfg, err := repo.LoadRegistry(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.ActiveIndex)
	for _, d := range cfg.Deployments {
		assert.Equal(t, 4, d.FailureCount)
	}
}

func TestMonitor_Tick_AutoSwitchDisabled(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, 1000)
	cfg, err := repo.LoadRegistry(ctx)
	require.NoError(t, err)
	cfg.AutoSwitchEnabled = false
	cfg.Deployments[0].FailureCount = 5
	require.NoError(t, repo.SaveRegistry(ctx, &cfg))

	prober := &fakeProber{healthy: map[string]bool{"http://b": true, "http://c": true}}
	m := newTestMonitor(repo, prober, nil, nil)
	report, err := m.Tick(ctx)

	require.NoError(t, err)
	assert.Nil(t, report.Switch)
	assert.False(t, report.NoCandidate)
	assert.Equal(t, 6, report.Results[0].FailureCount)
}

func TestMonitor_Tick_RecoveryResetsFailures(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, 1000)
	prober := &fakeProber{healthy: map[string]bool{"http://a": true, "http://b": false, "http://c": true}}
	m := newTestMonitor(repo, prober, nil, nil)

	_, err := m.Tick(ctx)
	require.NoError(t, err)
	prober.set("http://b", true)
	report, err := m.Tick(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, report.Results[1].FailureCount)
}

func TestMonitor_Tick_Errors(t *testing.T) {
	ctx := context.Background()
	cfg := model.DefaultRegistryConfig()

	testCases := []struct {
		name       string
		setupMocks func(stateRepo *mockrepository.MockStateRepository)
	}{
		{
			name: "registry load fails",
			setupMocks: func(stateRepo *mockrepository.MockStateRepository) {
				stateRepo.EXPECT().LoadRegistry(ctx).Return(model.RegistryConfig{}, errors.New("disk error"))
			},
		},
		{
			name: "metrics load fails",
			setupMocks: func(stateRepo *mockrepository.MockStateRepository) {
				stateRepo.EXPECT().LoadRegistry(ctx).Return(cfg, nil)
				stateRepo.EXPECT().LoadMetrics(ctx).Return(model.Metrics{}, errors.New("disk error"))
			},
		},
		{
			name: "registry save fails",
			setupMocks: func(stateRepo *mockrepository.MockStateRepository) {
				stateRepo.EXPECT().LoadRegistry(ctx).Return(cfg, nil)
				stateRepo.EXPECT().LoadMetrics(ctx).Return(model.DefaultMetrics(fixedNow), nil)
				stateRepo.EXPECT().LoadQuota(ctx, gomock.Any()).Return(model.QuotaLog{}, errors.New("corrupt"))
				stateRepo.EXPECT().SaveRegistry(ctx, gomock.Any()).Return(errors.New("disk full"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			stateRepo := mockrepository.NewMockStateRepository(ctrl)
			tc.setupMocks(stateRepo)

			m := newTestMonitor(stateRepo, &fakeProber{healthy: map[string]bool{}}, nil, nil)
			_, err := m.Tick(ctx)

			assert.Error(t, err)
		})
	}
}

func TestMonitor_Check(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, 1000)
	prober := &fakeProber{healthy: map[string]bool{"http://a": true, "http://c": true}}
	m := newTestMonitor(repo, prober, nil, nil)

	results, err := m.Check(ctx)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.True(t, results[0].Probe.Healthy)
	assert.False(t, results[1].Probe.Healthy)
	assert.Equal(t, model.DeploymentStatusActive, results[0].Status)

	cfg, err := repo.LoadRegistry(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Deployments[1].FailureCount)
}

func TestMonitor_StartStop(t *testing.T) {
	repo := newTestRepo(t, 10)
	prober := &fakeProber{healthy: map[string]bool{"http://a": true, "http://b": true, "http://c": true}}
	m := newTestMonitor(repo, prober, nil, nil)

	m.Start()
	m.Start()
	assert.Eventually(t, func() bool {
		return prober.calls.Load() >= 6
	}, 2*time.Second, 5*time.Millisecond)
	m.Stop()
	m.Stop()

	calls := prober.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, prober.calls.Load())
}

func TestMonitor_StopWithoutStart(t *testing.T) {
	m := NewMonitor(nil, nil, nil, nil, zap.NewNop())
	done := make(chan struct{})
	go func() {
		m.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked without Start")
	}
}
