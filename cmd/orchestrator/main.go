package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/api/handler"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/api/routes"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/bootstrap"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/config"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/health"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/jwt"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/metrics"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/notifier"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/quota"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/repository"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/rotation"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/router"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/service"
	"github.com/digirealtydrew93/tackettweb/pkg/logger"
	"github.com/digirealtydrew93/tackettweb/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer, "orchestrator")
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file", zap.String("path", fileSyncer.Path()))
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	// set up state store
	store, closeStore, err := bootstrap.OpenDocumentStore(appConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to open state store", zap.String("backend", appConfig.Store.Backend), zap.Error(err))
	}
	defer closeStore()
	stateRepo := repository.NewStateRepository(store, appConfig.Overrides, appConfig.Store.SeedFile, time.Now)

	registry, err := stateRepo.LoadRegistry(context.Background())
	if err != nil {
		zapLogger.Fatal("failed to load deployment registry", zap.Error(err))
	}
	zapLogger.Info("deployment registry loaded",
		zap.Int("deployments", len(registry.Deployments)),
		zap.String("active", registry.Active().Name),
		zap.String("submit_path", registry.SubmitPath))

	// set up optional integrations
	probeRepo, err := bootstrap.OpenProbeRepository(appConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	}
	probeSink := notifier.NewNopProbeSink()
	if probeRepo != nil {
		probeSink = probeRepo
	}
	mailSender := bootstrap.NewMailSender(appConfig)
	switchNotifier, closeNotifier := bootstrap.NewSwitchNotifier(appConfig, mailSender, zapLogger)
	defer closeNotifier()

	// set up metrics
	metrics.MustInit()
	metrics.ActiveDeployment.Set(float64(registry.ActiveIndex))

	// set up dependencies
	deploymentRouter := router.NewRouter(stateRepo, router.NewDeploymentClient(appConfig.Router.RequestTimeout), appConfig.Router.WrapAround, zapLogger)
	monitor := health.NewMonitor(stateRepo, health.NewProber(appConfig.Monitor.ProbeTimeout), switchNotifier, probeSink, zapLogger)
	tracker := quota.NewTracker(stateRepo, switchNotifier, zapLogger)
	scheduler := rotation.NewScheduler(stateRepo, switchNotifier, zapLogger)
	registryService := service.NewRegistryService(stateRepo, probeRepo, switchNotifier, zapLogger)

	submitHandler := handler.NewSubmitHandler(zapLogger, deploymentRouter)
	limiter := middleware.NewRateLimiter(appConfig.Router.RateLimitRPS, appConfig.Router.RateLimitBurst, func(_ *gin.Context) {
		metrics.RateLimitBlocks.Inc()
	})

	// Create cronjob for quota reset
	resetJob, err := quota.NewResetJob(appConfig.Quota.ResetSchedule, tracker, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to create cron job for quota reset", zap.Error(err))
	}
	resetJob.Start()
	defer resetJob.Stop()

	// Create cronjob for status report
	if mailSender != nil {
		reportService := service.NewReportService(stateRepo, probeRepo, mailSender, appConfig.Mail.AlertEmail, zapLogger)
		cronJob := cron.New()
		_, err = cronJob.AddFunc(appConfig.Mail.ReportSchedule, func() {
			ctx2, cancel2 := context.WithTimeout(context.Background(), 30*time.Second)
			zapLogger.Info("cronjob called")
			e := reportService.SendDailyReport(ctx2, time.Now().Add(-time.Hour*24), time.Now())
			cancel2()
			if e != nil {
				zapLogger.Error("failed to send deployment report", zap.Error(e))
			}
		})
		if err != nil {
			zapLogger.Fatal("failed to create cron job for deployment report", zap.Error(err))
		}
		cronJob.Start()
		defer cronJob.Stop()
	}

	if appConfig.Server.MonitorEnabled {
		monitor.Start()
		defer monitor.Stop()
	} else {
		zapLogger.Info("health monitor disabled")
	}

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestMetrics(func(method string, path string, status int, elapsed time.Duration) {
		metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
	}))

	routes.SetUpSubmitRoutes(r, registry.SubmitPath, submitHandler, limiter)
	routes.SetUpObservabilityRoutes(r, promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	if appConfig.Auth.JwtSecret != "" {
		m := middleware.NewAuthMiddleware(jwt.NewJwtUtils(appConfig.Auth.JwtSecret, appConfig.Auth.TokenTTL))
		routes.SetUpDeploymentRoutes(r, handler.NewDeploymentHandler(zapLogger, registryService, monitor), m)
		routes.SetUpQuotaRoutes(r, handler.NewQuotaHandler(zapLogger, tracker), m)
		routes.SetUpRotationRoutes(r, handler.NewRotationHandler(zapLogger, scheduler), m)
	} else {
		zapLogger.Warn("ADMIN_JWT_SECRET not set, admin API disabled")
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
