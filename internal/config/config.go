package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	JWT       JWTConfig
	S3        S3Config
	Kafka     KafkaConfig
	Messaging MessagingConfig
	Log       LogConfig
	Rules     RulesConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds the settings used to verify market participant tokens.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// S3Config holds the settings of the inbound document archive.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Enabled   bool   `mapstructure:"enabled"`
}

// KafkaConfig holds message hub settings.
type KafkaConfig struct {
	Brokers  []string          `mapstructure:"brokers"`
	ClientID string            `mapstructure:"client_id"`
	Topics   map[string]string `mapstructure:"topics"`
}

// MessagingConfig selects the event publisher.
type MessagingConfig struct {
	Provider string `mapstructure:"provider"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RulesConfig holds the tunable parameters of the validation rules.
type RulesConfig struct {
	TimeZone       string `mapstructure:"time_zone"`
	StartDateFirst int    `mapstructure:"start_date_first"`
	StartDateLast  int    `mapstructure:"start_date_last"`
}

// Event types and their default topics.
var defaultTopics = map[string]string{
	"charge_information.accepted": "charge-information-accepted",
	"charge_information.rejected": "charge-information-rejected",
	"charge_price.accepted":       "charge-price-accepted",
	"charge_price.rejected":       "charge-price-rejected",
	"charge_prices.updated":       "charge-prices-updated",
}

// Load reads configuration from environment variables with the CHARGES_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CHARGES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "charges")
	v.SetDefault("db.password", "charges_secret")
	v.SetDefault("db.name", "charges_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "datahub")

	// S3 defaults
	v.SetDefault("s3.region", "eu-north-1")
	v.SetDefault("s3.bucket", "charges-inbound-documents")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.enabled", false)

	// Messaging defaults
	v.SetDefault("messaging.provider", "noop")
	v.SetDefault("kafka.brokers", "localhost:9092")
	v.SetDefault("kafka.client_id", "charges")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Rules defaults
	v.SetDefault("rules.time_zone", "Europe/Copenhagen")
	v.SetDefault("rules.start_date_first", -720)
	v.SetDefault("rules.start_date_last", 1095)

	envBindings := map[string]string{
		"server.port":            "CHARGES_SERVER_PORT",
		"server.read_timeout":    "CHARGES_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "CHARGES_SERVER_WRITE_TIMEOUT",
		"server.environment":     "CHARGES_SERVER_ENVIRONMENT",
		"db.host":                "CHARGES_DB_HOST",
		"db.port":                "CHARGES_DB_PORT",
		"db.user":                "CHARGES_DB_USER",
		"db.password":            "CHARGES_DB_PASSWORD",
		"db.name":                "CHARGES_DB_NAME",
		"db.sslmode":             "CHARGES_DB_SSLMODE",
		"db.max_open":            "CHARGES_DB_MAX_OPEN",
		"db.max_idle":            "CHARGES_DB_MAX_IDLE",
		"jwt.secret":             "CHARGES_JWT_SECRET",
		"jwt.issuer":             "CHARGES_JWT_ISSUER",
		"s3.region":              "CHARGES_S3_REGION",
		"s3.bucket":              "CHARGES_S3_BUCKET",
		"s3.endpoint":            "CHARGES_S3_ENDPOINT",
		"s3.access_key":          "CHARGES_S3_ACCESS_KEY",
		"s3.secret_key":          "CHARGES_S3_SECRET_KEY",
		"s3.enabled":             "CHARGES_S3_ENABLED",
		"messaging.provider":     "CHARGES_MESSAGING_PROVIDER",
		"kafka.brokers":          "CHARGES_KAFKA_BROKERS",
		"kafka.client_id":        "CHARGES_KAFKA_CLIENT_ID",
		"log.level":              "CHARGES_LOG_LEVEL",
		"log.format":             "CHARGES_LOG_FORMAT",
		"rules.time_zone":        "CHARGES_RULES_TIME_ZONE",
		"rules.start_date_first": "CHARGES_RULES_START_DATE_FIRST",
		"rules.start_date_last":  "CHARGES_RULES_START_DATE_LAST",
	}
	for eventType := range defaultTopics {
		key := "kafka.topics." + eventType
		_ = v.BindEnv(key, "CHARGES_KAFKA_TOPIC_"+envSuffix(eventType))
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Container platforms set a PORT env var. Use it if CHARGES_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CHARGES_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret: v.GetString("jwt.secret"),
		Issuer: v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
		Enabled:   v.GetBool("s3.enabled"),
	}
	cfg.Messaging = MessagingConfig{
		Provider: v.GetString("messaging.provider"),
	}

	topics := make(map[string]string, len(defaultTopics))
	for eventType, topic := range defaultTopics {
		if t := v.GetString("kafka.topics." + eventType); t != "" {
			topic = t
		}
		topics[eventType] = topic
	}
	cfg.Kafka = KafkaConfig{
		Brokers:  splitList(v.GetString("kafka.brokers")),
		ClientID: v.GetString("kafka.client_id"),
		Topics:   topics,
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Rules = RulesConfig{
		TimeZone:       v.GetString("rules.time_zone"),
		StartDateFirst: v.GetInt("rules.start_date_first"),
		StartDateLast:  v.GetInt("rules.start_date_last"),
	}
	if cfg.Rules.StartDateFirst > cfg.Rules.StartDateLast {
		return nil, fmt.Errorf("rules start date interval [%d, %d] is empty",
			cfg.Rules.StartDateFirst, cfg.Rules.StartDateLast)
	}

	return cfg, nil
}

// envSuffix turns an event type such as charge_prices.updated into CHARGE_PRICES_UPDATED.
func envSuffix(eventType string) string {
	return strings.ToUpper(strings.NewReplacer(".", "_").Replace(eventType))
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
