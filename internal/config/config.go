package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Recorder  RecorderConfig  `mapstructure:"recorder"`
	Finance   FinanceConfig   `mapstructure:"finance"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host         string   `mapstructure:"host"`
	Port         int      `mapstructure:"port"`
	ReadTimeout  int      `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout int      `mapstructure:"write_timeout"` // milliseconds
	CORSOrigins  []string `mapstructure:"cors_origins"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig caps requests per client IP per window. A zero Requests
// value or an empty Redis address disables limiting.
type RateLimitConfig struct {
	Requests      int `mapstructure:"requests"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

// RecorderConfig points at the sqlite file assessments are persisted to.
// An empty path disables persistence.
type RecorderConfig struct {
	Path string `mapstructure:"path"`
}

// FinanceConfig carries the tunable projection bounds.
type FinanceConfig struct {
	MaxProjectionYears int     `mapstructure:"max_projection_years"`
	MaxMonthlyAmount   float64 `mapstructure:"max_monthly_amount"`
}
