package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// AuthMode selects the identity-resolution strategy at startup. The two
// modes are mutually exclusive per deployment, never switched per request.
type AuthMode string

const (
	AuthModeAnonymous    AuthMode = "anonymous"
	AuthModeCredentialed AuthMode = "credentialed"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig      `mapstructure:"auth"`
	Teacher   TeacherConfig   `mapstructure:"teacher"`
	Redis     RedisConfig     `mapstructure:"redis"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Tracing   TracingConfig   `mapstructure:"tracing"`

	// 运行时标志（命令行参数，不来自配置文件）
	ForceMigrate bool `mapstructure:"-"`
	MigrateOnly  bool `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
	Name string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string `mapstructure:"sslmode"`
}

type AuthConfig struct {
	Mode          AuthMode      `mapstructure:"mode"`
	JWTSecret     string        `mapstructure:"jwt_secret"`
	SessionExpire time.Duration `mapstructure:"session_hours"`
	CookieName    string        `mapstructure:"cookie_name"`
}

// TeacherConfig holds the shared dashboard credential. The check itself is a
// placeholder scheme; the pair is environment-configurable so deployments do
// not ship the default.
type TeacherConfig struct {
	Username string
	Password string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("LESSONS")
	viper.AutomaticEnv()

	// Database: the PG* names match what the original deployment exported.
	viper.BindEnv("database.host", "PGHOST")
	viper.BindEnv("database.port", "PGPORT")
	viper.BindEnv("database.user", "PGUSER")
	viper.BindEnv("database.password", "PGPASSWORD")
	viper.BindEnv("database.dbname", "PGDATABASE")

	// Auth
	viper.BindEnv("auth.mode", "AUTH_MODE")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")

	// Teacher dashboard credential
	viper.BindEnv("teacher.username", "TEACHER_USERNAME")
	viper.BindEnv("teacher.password", "TEACHER_PASSWORD")

	// Redis
	viper.BindEnv("redis.enabled", "REDIS_ENABLED")
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Auth.SessionExpire = cfg.Auth.SessionExpire * time.Hour

	if cfg.Auth.Mode == "" {
		cfg.Auth.Mode = AuthModeAnonymous
	}
	if cfg.Auth.Mode != AuthModeAnonymous && cfg.Auth.Mode != AuthModeCredentialed {
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = "session_token"
	}

	// 生产环境校验 JWT Secret 强度
	if cfg.Server.Mode == "release" && cfg.Auth.Mode == AuthModeCredentialed && len(cfg.Auth.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.Auth.JWTSecret))
	}

	return &cfg, nil
}

// Provider hands out the current config snapshot and lets the config watcher
// swap in a reloaded one. Middleware reads teacher credentials and CORS
// origins through it so a reload takes effect without a restart.
type Provider struct {
	mu  sync.RWMutex
	cfg *Config
}

func NewProvider(cfg *Config) *Provider {
	return &Provider{cfg: cfg}
}

func (p *Provider) Get() *Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg
}

func (p *Provider) Swap(cfg *Config) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg = cfg
}
