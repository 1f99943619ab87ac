package service

import (
	"context"
	"errors"
	"testing"
	"time"

	mockrepository "github.com/digirealtydrew93/tackettweb/internal/orchestrator/mocks/repository"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/repository"
	mockmail "github.com/digirealtydrew93/tackettweb/pkg/mail"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestReportService_SendDailyReport(t *testing.T) {
	ctx := context.Background()
	startDate := fixedNow.Add(-24 * time.Hour)
	endDate := fixedNow
	recipient := "ops@example.com"
	cfg := model.DefaultRegistryConfig()
	quota := model.NewQuotaLog(cfg.Deployments)
	quota.Deployments[0].SmsCount = 12

	loadState := func(stateRepo *mockrepository.MockStateRepository) {
		stateRepo.EXPECT().LoadRegistry(ctx).Return(cfg, nil)
		stateRepo.EXPECT().LoadMetrics(ctx).Return(model.DefaultMetrics(fixedNow), nil)
		stateRepo.EXPECT().LoadQuota(ctx, cfg.Deployments).Return(quota, nil)
		stateRepo.EXPECT().LoadRotation(ctx, cfg.Deployments).Return(model.NewRotationLog(cfg.Deployments), nil)
	}

	testCases := []struct {
		name          string
		withProbeRepo bool
		setupMocks    func(stateRepo *mockrepository.MockStateRepository, probeRepo *mockrepository.MockProbeRepository, mailSender *mockmail.MockSender)
		expectErr     bool
	}{
		{
			name:          "Success Report sent with probe history",
			withProbeRepo: true,
			setupMocks: func(stateRepo *mockrepository.MockStateRepository, probeRepo *mockrepository.MockProbeRepository, mailSender *mockmail.MockSender) {
				loadState(stateRepo)
				probeRepo.EXPECT().
					GetUptimePercentage(ctx, gomock.Any(), startDate, endDate).
					Return(97.5, nil).
					Times(3)
				mailSender.EXPECT().
					SendMail(gomock.Any()).
					DoAndReturn(func(msg mockmail.Message) error {
						assert.Equal(t, []string{recipient}, msg.To)
						assert.Contains(t, msg.TextBody, "Primary (Production) (active): active, 12 SMS, uptime 97.50%")
						assert.Contains(t, msg.HTMLBody, "<td")
						if assert.Len(t, msg.Attachments, 1) {
							assert.Equal(t, "deployments-"+startDate.Format("2006-01-02")+".xlsx", msg.Attachments[0].Name)
						}
						return nil
					})
			},
		},
		{
			name: "Success Report sent without probe history",
			setupMocks: func(stateRepo *mockrepository.MockStateRepository, probeRepo *mockrepository.MockProbeRepository, mailSender *mockmail.MockSender) {
				loadState(stateRepo)
				mailSender.EXPECT().SendMail(gomock.Any()).Return(nil)
			},
		},
		{
			name:          "Success Probe history failure falls back",
			withProbeRepo: true,
			setupMocks: func(stateRepo *mockrepository.MockStateRepository, probeRepo *mockrepository.MockProbeRepository, mailSender *mockmail.MockSender) {
				loadState(stateRepo)
				probeRepo.EXPECT().
					GetUptimePercentage(ctx, gomock.Any(), startDate, endDate).
					Return(0.0, errors.New("es error")).
					Times(3)
				mailSender.EXPECT().SendMail(gomock.Any()).Return(nil)
			},
		},
		{
			name: "Error Failed to load registry",
			setupMocks: func(stateRepo *mockrepository.MockStateRepository, probeRepo *mockrepository.MockProbeRepository, mailSender *mockmail.MockSender) {
				stateRepo.EXPECT().LoadRegistry(ctx).Return(model.RegistryConfig{}, errors.New("disk error"))
			},
			expectErr: true,
		},
		{
			name: "Error Failed to load rotation log",
			setupMocks: func(stateRepo *mockrepository.MockStateRepository, probeRepo *mockrepository.MockProbeRepository, mailSender *mockmail.MockSender) {
				stateRepo.EXPECT().LoadRegistry(ctx).Return(cfg, nil)
				stateRepo.EXPECT().LoadMetrics(ctx).Return(model.DefaultMetrics(fixedNow), nil)
				stateRepo.EXPECT().LoadQuota(ctx, cfg.Deployments).Return(quota, nil)
				stateRepo.EXPECT().LoadRotation(ctx, cfg.Deployments).Return(model.RotationLog{}, errors.New("disk error"))
			},
			expectErr: true,
		},
		{
			name: "Error Failed to send mail",
			setupMocks: func(stateRepo *mockrepository.MockStateRepository, probeRepo *mockrepository.MockProbeRepository, mailSender *mockmail.MockSender) {
				loadState(stateRepo)
				mailSender.EXPECT().SendMail(gomock.Any()).Return(errors.New("smtp error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			stateRepo := mockrepository.NewMockStateRepository(ctrl)
			probeRepo := mockrepository.NewMockProbeRepository(ctrl)
			mailSender := mockmail.NewMockSender(ctrl)
			tc.setupMocks(stateRepo, probeRepo, mailSender)

			var history repository.ProbeRepository
			if tc.withProbeRepo {
				history = probeRepo
			}
			s := NewReportService(stateRepo, history, mailSender, recipient, zap.NewNop())
			err := s.SendDailyReport(ctx, startDate, endDate)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
