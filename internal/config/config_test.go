package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
app:
  name: advice-engine
  environment: test
server:
  host: 127.0.0.1
  port: 9000
logging:
  level: debug
  format: console
redis:
  address: localhost:6379
rate_limit:
  requests: 100
recorder:
  path: /tmp/advice.db
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 60, cfg.RateLimit.WindowSeconds, "window should default when requests are set")
	assert.Equal(t, 50, cfg.Finance.MaxProjectionYears)
	assert.Equal(t, "/tmp/advice.db", cfg.Recorder.Path)
}

func TestValidateRejectsRateLimitWithoutRedis(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.RateLimit.Requests = 10
	cfg.Redis.Address = ""

	assert.Error(t, validateConfig(cfg))
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Server.Port = 70000

	assert.Error(t, validateConfig(cfg))
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, float64(1000000), cfg.Finance.MaxMonthlyAmount)
	assert.NoError(t, validateConfig(cfg))
}
