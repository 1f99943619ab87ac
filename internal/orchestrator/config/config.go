package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StateBackendFile     = "file"
	StateBackendRedis    = "redis"
	StateBackendPostgres = "postgres"
)

type AppConfig struct {
	Server        ServerConfig
	Router        RouterConfig
	Monitor       MonitorConfig
	Quota         QuotaConfig
	Store         StoreConfig
	Redis         RedisConfig
	Postgres      PostgresConfig
	Overrides     OverrideConfig
	Kafka         KafkaConfig
	Elasticsearch ElasticsearchConfig
	Mail          MailConfig
	Auth          AuthConfig
}

type ServerConfig struct {
	Port           string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile        string `envconfig:"LOG_FILE" default:"./log/orchestrator.log"`
	MonitorEnabled bool   `envconfig:"MONITOR_ENABLED" default:"true"`
}

type RouterConfig struct {
	RequestTimeout time.Duration `envconfig:"ROUTER_REQUEST_TIMEOUT" default:"10s"`
	WrapAround     bool          `envconfig:"ROUTER_WRAP_AROUND" default:"false"`
	RateLimitRPS   float64       `envconfig:"ROUTER_RATE_LIMIT_RPS" default:"10"`
	RateLimitBurst int           `envconfig:"ROUTER_RATE_LIMIT_BURST" default:"20"`
}

type MonitorConfig struct {
	ProbeTimeout time.Duration `envconfig:"MONITOR_PROBE_TIMEOUT" default:"5s"`
}

type QuotaConfig struct {
	ResetSchedule string `envconfig:"QUOTA_RESET_CRON" default:"0 0 * * *"`
}

type StoreConfig struct {
	Backend   string `envconfig:"STATE_BACKEND" default:"file"`
	Dir       string `envconfig:"STATE_DIR" default:"."`
	SeedFile  string `envconfig:"REGISTRY_SEED_FILE"`
	KeyPrefix string `envconfig:"STATE_KEY_PREFIX" default:"orchestrator:"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	PoolSize int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER"`
	Password string `envconfig:"POSTGRES_PASSWORD"`
	DBName   string `envconfig:"POSTGRES_DB"`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
	MaxConns int    `envconfig:"POSTGRES_MAX_CONNS" default:"5"`
}

// OverrideConfig holds optional environment overrides applied on top of the
// persisted registry each time it is loaded. Nil means "use the registry value".
type OverrideConfig struct {
	DeploymentURLs      []string       `envconfig:"DEPLOYMENT_URLS"`
	ActiveIndex         *int           `envconfig:"ACTIVE_API_INDEX"`
	HealthCheckInterval *time.Duration `envconfig:"HEALTH_CHECK_INTERVAL"`
	FailureThreshold    *int           `envconfig:"FAILURE_THRESHOLD"`
	SmsLimit            *int           `envconfig:"SMS_LIMIT_PER_DEPLOYMENT"`
	AutoSwitchEnabled   *bool          `envconfig:"AUTO_SWITCH_ENABLED"`
}

type KafkaConfig struct {
	Brokers     []string `envconfig:"KAFKA_BROKERS"`
	SwitchTopic string   `envconfig:"KAFKA_SWITCH_TOPIC" default:"deployment-switches"`
}

type ElasticsearchConfig struct {
	Addresses  []string `envconfig:"ELASTICSEARCH_ADDRESSES"`
	Username   string   `envconfig:"ELASTICSEARCH_USERNAME"`
	Password   string   `envconfig:"ELASTICSEARCH_PASSWORD"`
	ProbeIndex string   `envconfig:"ELASTICSEARCH_PROBE_INDEX" default:"deployment_probes"`
}

type MailConfig struct {
	Email      string `envconfig:"MAIL_EMAIL"`
	Password   string `envconfig:"MAIL_PASSWORD"`
	Host       string `envconfig:"MAIL_HOST"`
	Port       int    `envconfig:"MAIL_PORT" default:"587"`
	AlertEmail string `envconfig:"MAIL_ALERT_EMAIL"`
	// ReportSchedule is the cron spec of the deployment status report mail.
	ReportSchedule string `envconfig:"MAIL_REPORT_CRON" default:"0 0 * * *"`
}

func (m MailConfig) Enabled() bool {
	return m.Email != "" && m.Host != "" && m.AlertEmail != ""
}

type AuthConfig struct {
	JwtSecret string        `envconfig:"ADMIN_JWT_SECRET"`
	TokenTTL  time.Duration `envconfig:"ADMIN_TOKEN_TTL" default:"12h"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
