package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int           `env:"HTTP_PORT"           envDefault:"1901"`
	HTTPReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT"   envDefault:"10s"`
	HTTPWriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT"  envDefault:"20s"`
	HTTPIdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT"   envDefault:"60s"`
	PostgresDSN      string        `env:"POSTGRES_DSN"`
	PostgresMaxConns int32         `env:"POSTGRES_MAX_CONNS"  envDefault:"10"`
	LogLevel         string        `env:"LOG_LEVEL"           envDefault:"info"`
	FrontendURL      string        `env:"FRONTEND_URL"        envDefault:"https://ams.ceyloniq.lk"`
	APIExposeErrors  bool          `env:"API_EXPOSE_ERRORS"   envDefault:"true"`
	ScopeListsByUnit bool          `env:"SCOPE_LISTS_BY_UNIT" envDefault:"false"`
	MigrateOnStartup bool          `env:"MIGRATE_ON_STARTUP"  envDefault:"true"`
	JWT              JWTConfig
	Mailer           MailerConfig
	Push             PushConfig
	Kafka            KafkaConfig
	Jobs             JobsConfig
}

type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET"`
	SessionTTL time.Duration `env:"JWT_SESSION_TTL" envDefault:"720h"`
	SetupTTL   time.Duration `env:"JWT_SETUP_TTL"   envDefault:"24h"`
	ResetTTL   time.Duration `env:"JWT_RESET_TTL"   envDefault:"1h"`
}

type MailerConfig struct {
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT"      envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"IT Division"`
}

type PushConfig struct {
	// CredentialsFile is a Firebase service-account JSON key. Push is disabled without it.
	CredentialsFile string        `env:"PUSH_CREDENTIALS_FILE"`
	ProjectID       string        `env:"PUSH_PROJECT_ID"`
	Timeout         time.Duration `env:"PUSH_TIMEOUT"          envDefault:"10s"`
	RetryAttempts   int           `env:"PUSH_RETRY_ATTEMPTS"   envDefault:"3"`
}

type KafkaConfig struct {
	Brokers    []string `env:"KAFKA_BROKERS"     envSeparator:","`
	AuditTopic string   `env:"KAFKA_AUDIT_TOPIC" envDefault:"itams.audit"`
	ConsumerID string   `env:"KAFKA_CONSUMER_ID" envDefault:"itams-audit-writer"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type JobsConfig struct {
	WarrantyAlertsEnabled  bool          `env:"JOB_WARRANTY_ALERTS_ENABLED"  envDefault:"true"`
	WarrantyAlertsInterval time.Duration `env:"JOB_WARRANTY_ALERTS_INTERVAL" envDefault:"24h"`
	WarrantyAlertDays      int           `env:"JOB_WARRANTY_ALERT_DAYS"      envDefault:"30"`
	TokenCleanupInterval   time.Duration `env:"JOB_TOKEN_CLEANUP_INTERVAL"   envDefault:"1h"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	if c.JWT.Secret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return c, nil
}
