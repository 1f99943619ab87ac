package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
	mocknotifier "github.com/digirealtydrew93/tackettweb/internal/orchestrator/mocks/notifier"
	mockrepository "github.com/digirealtydrew93/tackettweb/internal/orchestrator/mocks/repository"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/notifier"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestRegistryService(stateRepo repository.StateRepository, probeRepo repository.ProbeRepository, n notifier.SwitchNotifier) RegistryService {
	s := NewRegistryService(stateRepo, probeRepo, n, zap.NewNop()).(*registryService)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestRegistryService_SetActive(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		index         int
		setupMocks    func(stateRepo *mockrepository.MockStateRepository, n *mocknotifier.MockSwitchNotifier)
		expectSwitch  bool
		expectedError error
		expectErr     bool
	}{
		{
			name:  "Success switch to standby",
			index: 1,
			setupMocks: func(stateRepo *mockrepository.MockStateRepository, n *mocknotifier.MockSwitchNotifier) {
				stateRepo.EXPECT().LoadRegistry(ctx).Return(model.DefaultRegistryConfig(), nil)
				stateRepo.EXPECT().LoadMetrics(ctx).Return(model.DefaultMetrics(fixedNow), nil)
				stateRepo.EXPECT().
					SaveRegistry(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, cfg *model.RegistryConfig) error {
						assert.Equal(t, 1, cfg.ActiveIndex)
						assert.Equal(t, model.DeploymentStatusActive, cfg.Deployments[1].Status)
						return nil
					})
				stateRepo.EXPECT().
					SaveMetrics(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, m *model.Metrics) error {
						require.Len(t, m.Switches, 1)
						assert.Equal(t, ManualSwitchReason, m.Switches[0].Reason)
						return nil
					})
				n.EXPECT().SwitchOccurred(ctx, gomock.Any()).Return(errors.New("kafka down"))
			},
			expectSwitch: true,
		},
		{
			name:  "Success already active",
			index: 0,
			setupMocks: func(stateRepo *mockrepository.MockStateRepository, n *mocknotifier.MockSwitchNotifier) {
				stateRepo.EXPECT().LoadRegistry(ctx).Return(model.DefaultRegistryConfig(), nil)
			},
		},
		{
			name:  "Error index out of range",
			index: 3,
			setupMocks: func(stateRepo *mockrepository.MockStateRepository, n *mocknotifier.MockSwitchNotifier) {
				stateRepo.EXPECT().LoadRegistry(ctx).Return(model.DefaultRegistryConfig(), nil)
			},
			expectedError: apperrors.ErrInvalidIndex,
			expectErr:     true,
		},
		{
			name:  "Error save registry",
			index: 2,
			setupMocks: func(stateRepo *mockrepository.MockStateRepository, n *mocknotifier.MockSwitchNotifier) {
				stateRepo.EXPECT().LoadRegistry(ctx).Return(model.DefaultRegistryConfig(), nil)
				stateRepo.EXPECT().LoadMetrics(ctx).Return(model.DefaultMetrics(fixedNow), nil)
				stateRepo.EXPECT().SaveRegistry(ctx, gomock.Any()).Return(errors.New("disk full"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			stateRepo := mockrepository.NewMockStateRepository(ctrl)
			n := mocknotifier.NewMockSwitchNotifier(ctrl)
			tc.setupMocks(stateRepo, n)

			event, err := newTestRegistryService(stateRepo, nil, n).SetActive(ctx, tc.index)

			if tc.expectErr {
				assert.Error(t, err)
				if tc.expectedError != nil {
					assert.ErrorIs(t, err, tc.expectedError)
				}
				return
			}
			require.NoError(t, err)
			if tc.expectSwitch {
				require.NotNil(t, event)
				assert.Equal(t, model.SwitchTriggerManual, event.Trigger)
				assert.Equal(t, tc.index, event.DeploymentIndex)
			} else {
				assert.Nil(t, event)
			}
		})
	}
}

func TestRegistryService_Add(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	stateRepo := mockrepository.NewMockStateRepository(ctrl)
	stateRepo.EXPECT().LoadRegistry(ctx).Return(model.DefaultRegistryConfig(), nil)
	stateRepo.EXPECT().
		SaveRegistry(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg *model.RegistryConfig) error {
			assert.Len(t, cfg.Deployments, 4)
			return nil
		})

	d, err := newTestRegistryService(stateRepo, nil, nil).Add(ctx, "Canary", "http://canary")

	require.NoError(t, err)
	assert.Equal(t, 3, d.Index)
	assert.Equal(t, model.DeploymentStatusStandby, d.Status)
}

func TestRegistryService_Reset(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	stateRepo := mockrepository.NewMockStateRepository(ctrl)
	gomock.InOrder(
		stateRepo.EXPECT().Reset(ctx, repository.KeyRegistry).Return(nil),
		stateRepo.EXPECT().LoadRegistry(ctx).Return(model.DefaultRegistryConfig(), nil),
		stateRepo.EXPECT().SaveRegistry(ctx, gomock.Any()).Return(nil),
	)

	cfg, err := newTestRegistryService(stateRepo, nil, nil).Reset(ctx)

	require.NoError(t, err)
	assert.Len(t, cfg.Deployments, 3)
}

func TestRegistryService_ResetMetrics(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	stateRepo := mockrepository.NewMockStateRepository(ctrl)
	stateRepo.EXPECT().Reset(ctx, repository.KeyMetrics).Return(errors.New("permission denied"))

	err := newTestRegistryService(stateRepo, nil, nil).ResetMetrics(ctx)

	assert.Error(t, err)
}

func TestRegistryService_Uptime(t *testing.T) {
	ctx := context.Background()
	startDate := fixedNow.Add(-24 * time.Hour)
	endDate := fixedNow

	testCases := []struct {
		name          string
		index         int
		withProbeRepo bool
		setupMocks    func(stateRepo *mockrepository.MockStateRepository, probeRepo *mockrepository.MockProbeRepository)
		output        float64
		expectedError error
		expectErr     bool
	}{
		{
			name:          "Success Get uptime percentage",
			index:         1,
			withProbeRepo: true,
			setupMocks: func(stateRepo *mockrepository.MockStateRepository, probeRepo *mockrepository.MockProbeRepository) {
				stateRepo.EXPECT().LoadRegistry(ctx).Return(model.DefaultRegistryConfig(), nil)
				probeRepo.EXPECT().
					GetUptimePercentage(ctx, "Secondary (Staging)", startDate, endDate).
					Return(99.5, nil)
			},
			output: 99.5,
		},
		{
			name:          "Error probe repository fails",
			index:         0,
			withProbeRepo: true,
			setupMocks: func(stateRepo *mockrepository.MockStateRepository, probeRepo *mockrepository.MockProbeRepository) {
				stateRepo.EXPECT().LoadRegistry(ctx).Return(model.DefaultRegistryConfig(), nil)
				probeRepo.EXPECT().
					GetUptimePercentage(ctx, "Primary (Production)", startDate, endDate).
					Return(0.0, errors.New("es error"))
			},
			expectErr: true,
		},
		{
			name:          "Error no probe history store",
			index:         0,
			setupMocks:    func(*mockrepository.MockStateRepository, *mockrepository.MockProbeRepository) {},
			expectedError: apperrors.ErrProbeHistoryUnavailable,
			expectErr:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			stateRepo := mockrepository.NewMockStateRepository(ctrl)
			probeRepo := mockrepository.NewMockProbeRepository(ctrl)
			tc.setupMocks(stateRepo, probeRepo)

			var s RegistryService
			if tc.withProbeRepo {
				s = newTestRegistryService(stateRepo, probeRepo, nil)
			} else {
				s = newTestRegistryService(stateRepo, nil, nil)
			}
			got, err := s.Uptime(ctx, tc.index, startDate, endDate)

			assert.Equal(t, tc.output, got)
			if tc.expectErr {
				assert.Error(t, err)
				if tc.expectedError != nil {
					assert.ErrorIs(t, err, tc.expectedError)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegistryService_Export(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	stateRepo := mockrepository.NewMockStateRepository(ctrl)
	cfg := model.DefaultRegistryConfig()
	stateRepo.EXPECT().LoadRegistry(ctx).Return(cfg, nil)
	stateRepo.EXPECT().LoadMetrics(ctx).Return(model.DefaultMetrics(fixedNow), nil)
	stateRepo.EXPECT().LoadQuota(ctx, cfg.Deployments).Return(model.NewQuotaLog(cfg.Deployments), nil)
	stateRepo.EXPECT().LoadRotation(ctx, cfg.Deployments).Return(model.NewRotationLog(cfg.Deployments), nil)

	var buf bytes.Buffer
	err := newTestRegistryService(stateRepo, nil, nil).Export(ctx, &buf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	name, err := f.GetCellValue("Deployments", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Primary (Production)", name)
}

func TestRegistryService_List_Error(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	stateRepo := mockrepository.NewMockStateRepository(ctrl)
	stateRepo.EXPECT().LoadRegistry(ctx).Return(model.RegistryConfig{}, apperrors.ErrCorruptDocument)

	_, err := newTestRegistryService(stateRepo, nil, nil).List(ctx)

	assert.ErrorIs(t, err, apperrors.ErrCorruptDocument)
}
