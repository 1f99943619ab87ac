package deployctl

import (
	"fmt"
	"time"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/bootstrap"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/config"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/health"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/jwt"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/notifier"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/quota"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/repository"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/rotation"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/service"
	"github.com/digirealtydrew93/tackettweb/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// DefaultLoader wires the components from the environment file named by the
// --env-file flag, the same way the server does.
func DefaultLoader(cmd *cobra.Command) (*Deps, func(), error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	logLevel, _ := cmd.Flags().GetString("log-level")

	appConfig, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	zapLogger := logger.NewLogger(logLevel, fileSyncer, "deployctl")

	store, closeStore, err := bootstrap.OpenDocumentStore(appConfig, zapLogger)
	if err != nil {
		_ = fileSyncer.Close()
		return nil, nil, fmt.Errorf("open state store: %w", err)
	}
	stateRepo := repository.NewStateRepository(store, appConfig.Overrides, appConfig.Store.SeedFile, time.Now)

	probeRepo, err := bootstrap.OpenProbeRepository(appConfig, zapLogger)
	if err != nil {
		zapLogger.Warn("probe history unavailable", zap.Error(err))
		probeRepo = nil
	}
	probeSink := notifier.NewNopProbeSink()
	if probeRepo != nil {
		probeSink = probeRepo
	}
	switchNotifier, closeNotifier := bootstrap.NewSwitchNotifier(appConfig, bootstrap.NewMailSender(appConfig), zapLogger)

	deps := &Deps{
		Registry:  service.NewRegistryService(stateRepo, probeRepo, switchNotifier, zapLogger),
		Monitor:   health.NewMonitor(stateRepo, health.NewProber(appConfig.Monitor.ProbeTimeout), switchNotifier, probeSink, zapLogger),
		Tracker:   quota.NewTracker(stateRepo, switchNotifier, zapLogger),
		Scheduler: rotation.NewScheduler(stateRepo, switchNotifier, zapLogger),
	}
	if appConfig.Auth.JwtSecret != "" {
		deps.Tokens = jwt.NewJwtUtils(appConfig.Auth.JwtSecret, appConfig.Auth.TokenTTL)
	}
	cleanup := func() {
		closeNotifier()
		closeStore()
		_ = zapLogger.Sync()
		_ = fileSyncer.Close()
	}
	return deps, cleanup, nil
}
