package rotation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/config"
	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
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

func newTestRepo(t *testing.T) repository.StateRepository {
	repo := repository.NewStateRepository(repository.NewFileStore(t.TempDir()), config.OverrideConfig{}, "", func() time.Time { return fixedNow })
	cfg := model.DefaultRegistryConfig()
	cfg.Deployments = nil
	cfg.Add("A", "http://a")
	cfg.Add("B", "http://b")
	cfg.Add("C", "http://c")
	require.NoError(t, repo.SaveRegistry(context.Background(), &cfg))
	return repo
}

// newTestScheduler advances its clock by one minute per call.
func newTestScheduler(repo repository.StateRepository, n notifier.SwitchNotifier) Scheduler {
	s := NewScheduler(repo, n, zap.NewNop()).(*scheduler)
	clock := fixedNow
	s.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return s
}

func TestScheduler_RotatesThroughDeployments(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := newTestRepo(t)
	switchNotifier := mocknotifier.NewMockSwitchNotifier(ctrl)
	switchNotifier.EXPECT().
		SwitchOccurred(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event model.SwitchEvent) error {
			assert.Equal(t, model.SwitchTriggerRotation, event.Trigger)
			assert.Equal(t, "Rotation deployment", event.Reason)
			return nil
		}).
		Times(3)
	s := newTestScheduler(repo, switchNotifier)

	// A is already active, so the first mark does not switch.
	expected := []int{0, 1, 2, 0}
	for i, want := range expected {
		next, err := s.NextTarget(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, next.Index, "step %d", i)

		res, err := s.MarkDeployed(ctx, next.Index)
		require.NoError(t, err)
		assert.Equal(t, want, res.Entry.Index)
		assert.Equal(t, i == 0, res.Switch == nil, "step %d", i)
	}

	status, err := s.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, status.TotalDeployments)
	assert.Equal(t, 2, status.Deployments[0].DeployCount)
	assert.Equal(t, 1, status.Deployments[1].DeployCount)

	cfg, err := repo.LoadRegistry(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.ActiveIndex)
}

func TestScheduler_MarkDeployed_InvalidIndex(t *testing.T) {
	repo := newTestRepo(t)

	_, err := newTestScheduler(repo, nil).MarkDeployed(context.Background(), 3)

	assert.ErrorIs(t, err, apperrors.ErrInvalidIndex)
}

func TestScheduler_Schedule(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	s := newTestScheduler(repo, nil)
	_, err := s.MarkDeployed(ctx, 1)
	require.NoError(t, err)

	targets, err := s.Schedule(ctx, 5)

	require.NoError(t, err)
	indexes := make([]int, 0, len(targets))
	for _, e := range targets {
		indexes = append(indexes, e.Index)
	}
	assert.Equal(t, []int{0, 2, 1, 0, 2}, indexes)

	status, err := s.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalDeployments)
}

func TestScheduler_Schedule_Capped(t *testing.T) {
	targets, err := newTestScheduler(newTestRepo(t), nil).Schedule(context.Background(), MaxScheduleLength*1000)

	require.NoError(t, err)
	assert.Len(t, targets, MaxScheduleLength)
}

func TestScheduler_Reset(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	s := newTestScheduler(repo, nil)
	_, err := s.MarkDeployed(ctx, 2)
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx))

	status, err := s.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, status.TotalDeployments)
	for _, e := range status.Deployments {
		assert.Nil(t, e.LastDeployed)
	}
}

func TestScheduler_Errors(t *testing.T) {
	ctx := context.Background()
	cfg := model.DefaultRegistryConfig()

	testCases := []struct {
		name       string
		setupMocks func(stateRepo *mockrepository.MockStateRepository)
		call       func(s Scheduler) error
	}{
		{
			name: "next target registry error",
			setupMocks: func(stateRepo *mockrepository.MockStateRepository) {
				stateRepo.EXPECT().LoadRegistry(ctx).Return(model.RegistryConfig{}, errors.New("disk error"))
			},
			call: func(s Scheduler) error {
				_, err := s.NextTarget(ctx)
				return err
			},
		},
		{
			name: "mark save fails",
			setupMocks: func(stateRepo *mockrepository.MockStateRepository) {
				stateRepo.EXPECT().LoadRegistry(ctx).Return(cfg, nil)
				stateRepo.EXPECT().LoadRotation(ctx, cfg.Deployments).Return(model.NewRotationLog(cfg.Deployments), nil)
				stateRepo.EXPECT().SaveRotation(ctx, gomock.Any()).Return(errors.New("disk full"))
			},
			call: func(s Scheduler) error {
				_, err := s.MarkDeployed(ctx, 1)
				return err
			},
		},
		{
			name: "schedule without deployments",
			setupMocks: func(stateRepo *mockrepository.MockStateRepository) {
				stateRepo.EXPECT().LoadRegistry(ctx).Return(cfg, nil)
				stateRepo.EXPECT().LoadRotation(ctx, cfg.Deployments).Return(model.RotationLog{}, nil)
			},
			call: func(s Scheduler) error {
				_, err := s.Schedule(ctx, 3)
				return err
			},
		},
		{
			name: "reset fails",
			setupMocks: func(stateRepo *mockrepository.MockStateRepository) {
				stateRepo.EXPECT().Reset(ctx, repository.KeyRotationLog).Return(errors.New("permission denied"))
			},
			call: func(s Scheduler) error {
				return s.Reset(ctx)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			stateRepo := mockrepository.NewMockStateRepository(ctrl)
			tc.setupMocks(stateRepo)

			err := tc.call(newTestScheduler(stateRepo, nil))

			assert.Error(t, err)
		})
	}
}
