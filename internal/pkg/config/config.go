package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/log_messages"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds server-level config
type ServerConfig struct {
	Port               int           `yaml:"port"`
	APIPrefix          string        `yaml:"api_prefix"`
	CorsAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout_seconds"`
}

type LogConfig struct {
	LogLevel string `yaml:"level"`
}

// MongoDB connection config
type MongoConfig struct {
	Username        string        `yaml:"username"`
	Password        string        `yaml:"password"`
	URI             string        `yaml:"uri"`
	DBName          string        `yaml:"db_name"`
	MaxPoolSize     uint64        `yaml:"max_pool_size"`
	MinPoolSize     uint64        `yaml:"min_pool_size"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_minutes"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout_seconds"`
}

// Redis connection config
type RedisConfig struct {
	Addr           string        `yaml:"addr"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	EnableTLS      bool          `yaml:"enable_tls"`
	ConnectTimeout time.Duration `yaml:"connect_timeout_seconds"`
	CertContent    string        `yaml:"cert_content"`
}

// Kafka producer config for the collection event stream
type KafkaConfig struct {
	Server           string `yaml:"server"`
	EventsTopic      string `yaml:"events_topic"`
	SecurityProtocol string `yaml:"security_protocol"`
	SASLMechanism    string `yaml:"sasl_mechanism"`
	SASLUsername     string `yaml:"sasl_username"`
	SASLPassword     string `yaml:"sasl_password"`
	ClientID         string `yaml:"client_id"`
}

type PubSubConfig struct {
	ProjectID         string `yaml:"project_id"`
	NotificationTopic string `yaml:"notification_topic"`
}

type GCSConfig struct {
	BucketName string `yaml:"bucket_name"`
	FolderName string `yaml:"folder_name"`
}

type OtelConfig struct {
	ServiceName  string `yaml:"service_name"`
	CollectorURL string `yaml:"collector_url"`
}

type LoansConfig struct {
	MemberSearchCap int64 `yaml:"member_search_cap"`
}

type ProfixConfig struct {
	Variance      float64       `yaml:"variance"`
	FailureRate   float64       `yaml:"failure_rate"`
	SyncRecordTTL time.Duration `yaml:"sync_record_ttl_hours"`
}

type SeedConfig struct {
	OnStartup bool `yaml:"on_startup"`
	Members   int  `yaml:"members"`
}

// AppConfig is the main config struct that holds all configs
type AppConfig struct {
	Server  ServerConfig `yaml:"server"`
	Logging LogConfig    `yaml:"logging"`
	Mongo   MongoConfig  `yaml:"mongo"`
	Redis   RedisConfig  `yaml:"redis"`
	Kafka   KafkaConfig  `yaml:"kafka"`
	PubSub  PubSubConfig `yaml:"pubsub"`
	GCS     GCSConfig    `yaml:"gcs"`
	Otel    OtelConfig   `yaml:"otel"`
	Loans   LoansConfig  `yaml:"loans"`
	Profix  ProfixConfig `yaml:"profix"`
	Seed    SeedConfig   `yaml:"seed"`
}

func (c MongoConfig) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}

func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

func (c KafkaConfig) Enabled() bool {
	return strings.TrimSpace(c.Server) != "" && strings.TrimSpace(c.EventsTopic) != ""
}

func (c PubSubConfig) Enabled() bool {
	return c.ProjectID != "" && c.NotificationTopic != ""
}

func (c GCSConfig) Enabled() bool {
	return c.BucketName != ""
}

func (c OtelConfig) Enabled() bool {
	return c.CollectorURL != ""
}

func assignDefaultConfigValues(cfg *AppConfig) *AppConfig {

	// server config defaults
	cfg.Server.Port = GetEnvOrDefaultAsInt("SERVER_PORT", orInt(cfg.Server.Port, 8000))
	cfg.Server.APIPrefix = GetEnvOrDefaultAsString("API_PREFIX", orString(cfg.Server.APIPrefix, consts.DefaultAPIPrefix))
	if origins := GetEnvOrDefaultAsString("CORS_ALLOWED_ORIGINS", ""); origins != "" {
		cfg.Server.CorsAllowedOrigins = splitAndTrim(origins)
	}
	if len(cfg.Server.CorsAllowedOrigins) == 0 {
		cfg.Server.CorsAllowedOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"https://localhost:3000",
		}
	}
	cfg.Server.ShutdownTimeout = time.Duration(GetEnvOrDefaultAsInt("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second

	// log config defaults
	cfg.Logging.LogLevel = GetEnvOrDefaultAsString("LOG_LEVEL", orString(cfg.Logging.LogLevel, "info"))

	// MongoDB config defaults
	cfg.Mongo.URI = GetEnvOrDefaultAsString("MONGO_URL", orString(cfg.Mongo.URI, "mongodb://localhost:27017"))
	cfg.Mongo.DBName = GetEnvOrDefaultAsString("DB_NAME", orString(cfg.Mongo.DBName, "stima_sacco"))
	cfg.Mongo.Username = GetEnvOrDefaultAsString("MONGO_USERNAME", cfg.Mongo.Username)
	cfg.Mongo.Password = GetEnvOrDefaultAsString("MONGO_PASSWORD", cfg.Mongo.Password)
	cfg.Mongo.MaxPoolSize = GetEnvOrDefaultAsUint64("MONGO_MAX_POOL_SIZE", orUint64(cfg.Mongo.MaxPoolSize, 20))
	cfg.Mongo.MinPoolSize = GetEnvOrDefaultAsUint64("MONGO_MIN_POOL_SIZE", orUint64(cfg.Mongo.MinPoolSize, 5))
	cfg.Mongo.MaxConnIdleTime = time.Duration(GetEnvOrDefaultAsInt("MONGO_MAX_CONN_IDLE_MINUTES", 30)) * time.Minute
	cfg.Mongo.ConnectTimeout = time.Duration(GetEnvOrDefaultAsInt("MONGO_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second

	// Redis config defaults
	cfg.Redis.Addr = GetEnvOrDefaultAsString("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = GetEnvOrDefaultAsString("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = GetEnvOrDefaultAsInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.EnableTLS = GetEnvOrDefaultAsInt("REDIS_ENABLE_TLS", boolToInt(cfg.Redis.EnableTLS)) == 1
	cfg.Redis.ConnectTimeout = time.Duration(GetEnvOrDefaultAsInt("REDIS_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second
	cfg.Redis.CertContent = GetEnvOrDefaultAsString("REDIS_TLS_CERT", cfg.Redis.CertContent)

	// Kafka config defaults
	cfg.Kafka.Server = GetEnvOrDefaultAsString("KAFKA_SERVER", cfg.Kafka.Server)
	cfg.Kafka.EventsTopic = GetEnvOrDefaultAsString("KAFKA_EVENTS_TOPIC", orString(cfg.Kafka.EventsTopic, "collection-events"))
	cfg.Kafka.SecurityProtocol = GetEnvOrDefaultAsString("KAFKA_SECURITY_PROTOCOL", orString(cfg.Kafka.SecurityProtocol, "PLAINTEXT"))
	cfg.Kafka.SASLMechanism = GetEnvOrDefaultAsString("KAFKA_SASL_MECHANISM", cfg.Kafka.SASLMechanism)
	cfg.Kafka.SASLUsername = GetEnvOrDefaultAsString("KAFKA_SASL_USERNAME", cfg.Kafka.SASLUsername)
	cfg.Kafka.SASLPassword = GetEnvOrDefaultAsString("KAFKA_SASL_PASSWORD", cfg.Kafka.SASLPassword)
	cfg.Kafka.ClientID = GetEnvOrDefaultAsString("KAFKA_CLIENT_ID", orString(cfg.Kafka.ClientID, consts.ServiceName))

	// PubSub config defaults
	cfg.PubSub.ProjectID = GetEnvOrDefaultAsString("PROJECT_ID", cfg.PubSub.ProjectID)
	cfg.PubSub.NotificationTopic = GetEnvOrDefaultAsString("PUBSUB_NOTIFICATION_TOPIC", cfg.PubSub.NotificationTopic)

	// GCS config defaults
	cfg.GCS.BucketName = GetEnvOrDefaultAsString("GCS_BUCKET_NAME", cfg.GCS.BucketName)
	cfg.GCS.FolderName = GetEnvOrDefaultAsString("GCS_FOLDER_NAME", orString(cfg.GCS.FolderName, consts.GCSReportFolder))

	// Otel config defaults
	cfg.Otel.ServiceName = GetEnvOrDefaultAsString("OTEL_SERVICE_NAME", orString(cfg.Otel.ServiceName, consts.ServiceName))
	cfg.Otel.CollectorURL = GetEnvOrDefaultAsString("OTEL_COLLECTOR_URL", cfg.Otel.CollectorURL)

	// Domain defaults
	cfg.Loans.MemberSearchCap = int64(GetEnvOrDefaultAsInt("LOANS_MEMBER_SEARCH_CAP",
		int(orInt64(cfg.Loans.MemberSearchCap, consts.DefaultMemberSearchCap))))
	cfg.Profix.Variance = GetEnvOrDefaultAsFloat("PROFIX_VARIANCE", orFloat(cfg.Profix.Variance, 0.05))
	cfg.Profix.FailureRate = GetEnvOrDefaultAsFloat("PROFIX_FAILURE_RATE", cfg.Profix.FailureRate)
	cfg.Profix.SyncRecordTTL = time.Duration(GetEnvOrDefaultAsInt("PROFIX_SYNC_RECORD_TTL_HOURS", 24)) * time.Hour
	cfg.Seed.OnStartup = GetEnvOrDefaultAsInt("SEED_ON_STARTUP", boolToInt(cfg.Seed.OnStartup)) == 1
	cfg.Seed.Members = GetEnvOrDefaultAsInt("SEED_MEMBERS", orInt(cfg.Seed.Members, 1000))

	return cfg
}

// LoadFromConfigFilePath loads and parses the config file into AppConfig.
// A missing file is not an error: the service can run on env variables alone.
func LoadFromConfigFilePath(configPath string) (*AppConfig, error) {
	var cfg AppConfig

	// #nosec G304: configPath comes from the operator controlled CONFIG_PATH
	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("Config file not found, using environment only", slog.String("path", configPath))
	case err != nil:
		logger.Error("Failed to read config file", err, slog.String("path", configPath))
		return nil, fmt.Errorf(log_messages.ErrorReadingConfigFile, configPath, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			logger.Error("Failed to unmarshal config", err)
			return nil, fmt.Errorf(log_messages.ErrorUnmarshallingConfig, err)
		}
	}

	defaultCfg := assignDefaultConfigValues(&cfg)

	if err := validateConfig(defaultCfg); err != nil {
		logger.Error("Config validation failed", err)
		return nil, err
	}

	logger.Info(log_messages.ConfigLoaded, slog.String("path", configPath))

	return defaultCfg, nil
}

func validateConfig(cfg *AppConfig) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if !strings.HasPrefix(cfg.Server.APIPrefix, "/") {
		return fmt.Errorf("server.api_prefix must start with '/', got %q", cfg.Server.APIPrefix)
	}

	mongo := cfg.Mongo
	if mongo.DBName == "" {
		return fmt.Errorf("mongo.db_name must be set")
	}
	if mongo.MinPoolSize > mongo.MaxPoolSize {
		return fmt.Errorf("mongo.min_pool_size (%d) must not exceed mongo.max_pool_size (%d)",
			mongo.MinPoolSize, mongo.MaxPoolSize)
	}
	if mongo.MaxPoolSize < 1 || mongo.MaxPoolSize > 100 {
		return fmt.Errorf("mongo.max_pool_size must be between 1 and 100, got %d", mongo.MaxPoolSize)
	}

	if cfg.Loans.MemberSearchCap < 1 {
		return fmt.Errorf("loans.member_search_cap must be at least 1, got %d", cfg.Loans.MemberSearchCap)
	}

	profix := cfg.Profix
	if profix.Variance <= 0 || profix.Variance > 0.5 {
		return fmt.Errorf("profix.variance must be in (0, 0.5], got %v", profix.Variance)
	}
	if profix.FailureRate < 0 || profix.FailureRate > 1 {
		return fmt.Errorf("profix.failure_rate must be in [0, 1], got %v", profix.FailureRate)
	}

	if cfg.Seed.Members < 0 {
		return fmt.Errorf("seed.members must not be negative, got %d", cfg.Seed.Members)
	}

	return nil
}

// GetEnvOrDefaultAsInt returns the value of the given env variable
// as an int or the default value if not set or invalid.
func GetEnvOrDefaultAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(strings.TrimSpace(valueStr), 10, 64)
	if err != nil {
		return defaultValue
	}
	return int(value)
}

// GetEnvOrDefaultAsUint64 returns the value of the env variable
// as uint64 or the default value if not set or invalid.
func GetEnvOrDefaultAsUint64(key string, defaultValue uint64) uint64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseUint(strings.TrimSpace(valueStr), 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func GetEnvOrDefaultAsFloat(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(valueStr), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func GetEnvOrDefaultAsString(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		if strings.TrimSpace(val) != "" {
			return val
		}
	}
	return defaultVal
}

// LoadFromConfig loads a .env file when present, then the YAML config at CONFIG_PATH.
func LoadFromConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Error loading .env file", slog.String("error", err.Error()))
	}

	configPath := GetEnvOrDefaultAsString("CONFIG_PATH", "configs/config.yaml")

	cfg, err := LoadFromConfigFilePath(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	return cfg, nil
}

func splitAndTrim(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func orInt64(v, def int64) int64 {
	if v == 0 {
		return def
	}
	return v
}

func orUint64(v, def uint64) uint64 {
	if v == 0 {
		return def
	}
	return v
}

func orFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
