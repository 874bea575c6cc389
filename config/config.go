package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage Configuration
	Postgres PostgresConfig
	Redis    RedisConfig

	// Alerting Configuration
	Alert     AlertConfig
	RiskEvent RiskEventConfig
	Risk      RiskConfig

	// Conversational model
	LLM LLMConfig

	// Authentication & Security Configuration
	Internal InternalConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
	CORS CORSConfig
}

// CORSConfig lists the browser origins allowed to call the chat API.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
	MaxAge           int
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for the risk event store.
type PostgresConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig is the configuration for the risk event stream.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	UseTLS   bool

	// Connection pool settings
	MaxRetries      int
	MinIdleConns    int
	PoolSize        int
	PoolTimeout     time.Duration
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration

	Stream       string
	StreamMaxLen int64
}

// AlertConfig configures both alert channels and the dispatch bound.
type AlertConfig struct {
	ServiceName     string
	DispatchTimeout time.Duration
	Webhook         WebhookConfig
	Telegram        TelegramConfig
}

// WebhookConfig is the primary channel.
type WebhookConfig struct {
	URL        string
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
}

// TelegramConfig is the secondary channel.
type TelegramConfig struct {
	Token      string
	ChatID     string
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
}

type RiskEventConfig struct {
	Timeout time.Duration
}

// RiskConfig points at optional artifact overrides. Empty paths use the embedded defaults.
type RiskConfig struct {
	LexiconPath   string
	ResponsesPath string
}

type LLMConfig struct {
	BaseURL      string
	APIKey       string
	Model        string
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
	Timeout      time.Duration
}

type InternalConfig struct {
	Key string
}

// secrets are read from the process environment under their conventional names.
type secrets struct {
	WebhookURL       string `env:"ALERT_WEBHOOK_URL"`
	TelegramToken    string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `env:"TELEGRAM_CHAT_ID"`
	LLMAPIKey        string `env:"LLM_API_KEY"`
	InternalKey      string `env:"INTERNAL_KEY"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	RedisPassword    string `env:"REDIS_PASSWORD"`
}

// Load reads crisis-alert-config.yaml from the standard locations, then the environment.
func Load() (*Config, error) {
	return load("")
}

// LoadFile is Load with an explicit config file.
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("crisis-alert-config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/crisis-alert/")
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// Read config file (optional - will use env vars if file not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = v.GetString("environment.name")

	// HTTP server
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.CORS.AllowedOrigins = v.GetStringSlice("http_server.cors.allowed_origins")
	cfg.HTTPServer.CORS.AllowCredentials = v.GetBool("http_server.cors.allow_credentials")
	cfg.HTTPServer.CORS.MaxAge = v.GetInt("http_server.cors.max_age")

	// Logger
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Enabled = v.GetBool("postgres.enabled")
	cfg.Postgres.Host = v.GetString("postgres.host")
	cfg.Postgres.Port = v.GetInt("postgres.port")
	cfg.Postgres.User = v.GetString("postgres.user")
	cfg.Postgres.Password = v.GetString("postgres.password")
	cfg.Postgres.DBName = v.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = v.GetString("postgres.sslmode")

	// Redis
	cfg.Redis.Enabled = v.GetBool("redis.enabled")
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Redis.UseTLS = v.GetBool("redis.use_tls")
	cfg.Redis.MaxRetries = v.GetInt("redis.max_retries")
	cfg.Redis.MinIdleConns = v.GetInt("redis.min_idle_conns")
	cfg.Redis.PoolSize = v.GetInt("redis.pool_size")
	cfg.Redis.PoolTimeout = v.GetDuration("redis.pool_timeout")
	cfg.Redis.ConnMaxIdleTime = v.GetDuration("redis.conn_max_idle_time")
	cfg.Redis.ConnMaxLifetime = v.GetDuration("redis.conn_max_lifetime")
	cfg.Redis.Stream = v.GetString("redis.stream")
	cfg.Redis.StreamMaxLen = v.GetInt64("redis.stream_max_len")

	// Alert
	cfg.Alert.ServiceName = v.GetString("alert.service_name")
	cfg.Alert.DispatchTimeout = v.GetDuration("alert.dispatch_timeout")
	cfg.Alert.Webhook.URL = v.GetString("alert.webhook.url")
	cfg.Alert.Webhook.Timeout = v.GetDuration("alert.webhook.timeout")
	cfg.Alert.Webhook.RetryCount = v.GetInt("alert.webhook.retry_count")
	cfg.Alert.Webhook.RetryDelay = v.GetDuration("alert.webhook.retry_delay")
	cfg.Alert.Telegram.Token = v.GetString("alert.telegram.token")
	cfg.Alert.Telegram.ChatID = v.GetString("alert.telegram.chat_id")
	cfg.Alert.Telegram.BaseURL = v.GetString("alert.telegram.base_url")
	cfg.Alert.Telegram.Timeout = v.GetDuration("alert.telegram.timeout")
	cfg.Alert.Telegram.RetryCount = v.GetInt("alert.telegram.retry_count")

	// Risk event log
	cfg.RiskEvent.Timeout = v.GetDuration("risk_event.timeout")

	// Risk artifacts
	cfg.Risk.LexiconPath = v.GetString("risk.lexicon_path")
	cfg.Risk.ResponsesPath = v.GetString("risk.responses_path")

	// LLM
	cfg.LLM.BaseURL = v.GetString("llm.base_url")
	cfg.LLM.APIKey = v.GetString("llm.api_key")
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.SystemPrompt = v.GetString("llm.system_prompt")
	cfg.LLM.Temperature = v.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = v.GetInt("llm.max_tokens")
	cfg.LLM.Timeout = v.GetDuration("llm.timeout")

	// Internal
	cfg.Internal.Key = v.GetString("internal.key")

	if err := overlaySecrets(cfg); err != nil {
		return nil, err
	}

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func overlaySecrets(cfg *Config) error {
	var s secrets
	if err := env.Parse(&s); err != nil {
		return fmt.Errorf("error reading secrets from environment: %w", err)
	}
	set := func(dst *string, val string) {
		if val != "" {
			*dst = val
		}
	}
	set(&cfg.Alert.Webhook.URL, s.WebhookURL)
	set(&cfg.Alert.Telegram.Token, s.TelegramToken)
	set(&cfg.Alert.Telegram.ChatID, s.TelegramChatID)
	set(&cfg.LLM.APIKey, s.LLMAPIKey)
	set(&cfg.Internal.Key, s.InternalKey)
	set(&cfg.Postgres.Password, s.PostgresPassword)
	set(&cfg.Redis.Password, s.RedisPassword)
	return nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// HTTP server
	v.SetDefault("http_server.host", "0.0.0.0")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("http_server.cors.allowed_origins", []string{"*"})
	v.SetDefault("http_server.cors.allow_credentials", false)
	v.SetDefault("http_server.cors.max_age", 86400)

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)

	// Postgres
	v.SetDefault("postgres.enabled", true)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.dbname", "crisis_alert")
	v.SetDefault("postgres.sslmode", "disable")

	// Redis
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.use_tls", false)
	v.SetDefault("redis.max_retries", 3)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.pool_size", 20)
	v.SetDefault("redis.pool_timeout", 4*time.Second)
	v.SetDefault("redis.conn_max_idle_time", 5*time.Minute)
	v.SetDefault("redis.conn_max_lifetime", 30*time.Minute)
	v.SetDefault("redis.stream", "risk-events")
	v.SetDefault("redis.stream_max_len", 100000)

	// Alert
	v.SetDefault("alert.service_name", "Break_IA")
	v.SetDefault("alert.dispatch_timeout", 20*time.Second)
	v.SetDefault("alert.webhook.url", "")
	v.SetDefault("alert.webhook.timeout", 10*time.Second)
	v.SetDefault("alert.webhook.retry_count", 0)
	v.SetDefault("alert.webhook.retry_delay", 500*time.Millisecond)
	v.SetDefault("alert.telegram.token", "")
	v.SetDefault("alert.telegram.chat_id", "")
	v.SetDefault("alert.telegram.base_url", "https://api.telegram.org")
	v.SetDefault("alert.telegram.timeout", 10*time.Second)
	v.SetDefault("alert.telegram.retry_count", 0)

	// Risk event log
	v.SetDefault("risk_event.timeout", 5*time.Second)

	// Risk artifacts
	v.SetDefault("risk.lexicon_path", "")
	v.SetDefault("risk.responses_path", "")

	// LLM
	v.SetDefault("llm.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gpt-4")
	v.SetDefault("llm.system_prompt", "")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_tokens", 1000)
	v.SetDefault("llm.timeout", 30*time.Second)

	// Internal
	v.SetDefault("internal.key", "")
}

// validate rejects malformed values only. Missing alert channel settings are
// reported per dispatch, not at startup.
func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}
	if cfg.HTTPServer.CORS.MaxAge < 0 {
		return fmt.Errorf("http_server.cors.max_age must not be negative")
	}

	durations := map[string]time.Duration{
		"alert.dispatch_timeout": cfg.Alert.DispatchTimeout,
		"alert.webhook.timeout":  cfg.Alert.Webhook.Timeout,
		"alert.telegram.timeout": cfg.Alert.Telegram.Timeout,
		"risk_event.timeout":     cfg.RiskEvent.Timeout,
		"llm.timeout":            cfg.LLM.Timeout,
	}
	for key, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	if cfg.Alert.Webhook.RetryCount < 0 || cfg.Alert.Telegram.RetryCount < 0 {
		return fmt.Errorf("alert retry counts must not be negative")
	}

	for key, p := range map[string]string{
		"risk.lexicon_path":   cfg.Risk.LexiconPath,
		"risk.responses_path": cfg.Risk.ResponsesPath,
	} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("%s is not readable: %w", key, err)
		}
	}

	if cfg.Postgres.Enabled && cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required when postgres is enabled")
	}
	if cfg.Redis.Enabled && cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required when redis is enabled")
	}

	return nil
}
