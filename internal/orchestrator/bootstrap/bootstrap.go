// Package bootstrap wires the storage backend and optional integrations from
// configuration. Both the server and the operator CLI start from here.
package bootstrap

import (
	"fmt"

	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/config"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/notifier"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/repository"
	"github.com/digirealtydrew93/tackettweb/pkg/infra"
	"github.com/digirealtydrew93/tackettweb/pkg/mail"
	"go.uber.org/zap"
)

// OpenDocumentStore connects the configured state backend. The returned
// cleanup releases the connection and is never nil.
func OpenDocumentStore(cfg config.AppConfig, logger *zap.Logger) (repository.DocumentStore, func(), error) {
	switch cfg.Store.Backend {
	case "", config.StateBackendFile:
		return repository.NewFileStore(cfg.Store.Dir), func() {}, nil
	case config.StateBackendRedis:
		client, err := infra.NewRedisConnection(infra.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("OpenDocumentStore: %w", err)
		}
		logger.Info("connected to redis successfully")
		return repository.NewRedisStore(client, cfg.Store.KeyPrefix), func() { _ = client.Close() }, nil
	case config.StateBackendPostgres:
		db, err := infra.NewPostgresConnection(infra.PostgresConfig{
			Host:         cfg.Postgres.Host,
			Port:         cfg.Postgres.Port,
			User:         cfg.Postgres.User,
			Password:     cfg.Postgres.Password,
			DBName:       cfg.Postgres.DBName,
			SSLMode:      cfg.Postgres.SSLMode,
			MaxOpenConns: cfg.Postgres.MaxConns,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("OpenDocumentStore: %w", err)
		}
		if err = db.AutoMigrate(&repository.StateDocument{}); err != nil {
			return nil, nil, fmt.Errorf("OpenDocumentStore: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("OpenDocumentStore: %w", err)
		}
		logger.Info("connected to postgres successfully")
		return repository.NewPostgresStore(db), func() { _ = sqlDB.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("OpenDocumentStore: unknown state backend %q", cfg.Store.Backend)
	}
}

// OpenProbeRepository returns nil when no Elasticsearch cluster is configured.
func OpenProbeRepository(cfg config.AppConfig, logger *zap.Logger) (repository.ProbeRepository, error) {
	if len(cfg.Elasticsearch.Addresses) == 0 {
		return nil, nil
	}
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: cfg.Elasticsearch.Addresses,
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenProbeRepository: %w", err)
	}
	logger.Info("connected to elasticsearch successfully")
	return repository.NewProbeRepository(esClient, cfg.Elasticsearch.ProbeIndex), nil
}

// NewMailSender returns nil when mail is not configured.
func NewMailSender(cfg config.AppConfig) mail.Sender {
	if !cfg.Mail.Enabled() {
		return nil
	}
	return mail.NewMailSender(cfg.Mail.Email, cfg.Mail.Password, cfg.Mail.Host, cfg.Mail.Port)
}

// NewSwitchNotifier fans switch events out to Kafka and mail, whichever are
// configured. The cleanup flushes the Kafka writer.
func NewSwitchNotifier(cfg config.AppConfig, mailSender mail.Sender, logger *zap.Logger) (notifier.SwitchNotifier, func()) {
	var notifiers []notifier.SwitchNotifier
	cleanup := func() {}
	if len(cfg.Kafka.Brokers) > 0 {
		writer := infra.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.SwitchTopic)
		notifiers = append(notifiers, notifier.NewKafkaNotifier(writer))
		cleanup = func() {
			if err := writer.Close(); err != nil {
				logger.Error("failed to close kafka writer", zap.Error(err))
			}
		}
		logger.Info("publishing switch events to kafka", zap.String("topic", cfg.Kafka.SwitchTopic))
	}
	if mailSender != nil {
		notifiers = append(notifiers, notifier.NewMailNotifier(mailSender, cfg.Mail.AlertEmail))
		logger.Info("mailing switch alerts", zap.String("recipient", cfg.Mail.AlertEmail))
	}
	if len(notifiers) == 0 {
		return notifier.NewNopNotifier(), cleanup
	}
	return notifier.NewMultiNotifier(notifiers...), cleanup
}
