package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "oracle", cfg.DB.Driver)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "prose", cfg.Tagger.Source)
	assert.Equal(t, 0.8, cfg.Speaking.SemanticThreshold)
	assert.Equal(t, 0.9, cfg.Speaking.TokenThreshold)
	assert.Equal(t, 8, cfg.Points.TeamConcurrency)
	assert.Equal(t, 15*time.Minute, cfg.Auth.JWT.AccessTokenTTL)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
db:
  host: db.internal
  port: 1600
  user: speak
  name: SPEAK
server:
  port: 9000
speaking:
  semantic_threshold: 0.75
tagger:
  source: ollama
  ollama:
    model: llama3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("REDIS_ADDRESS", "redis:6380")
	t.Setenv("POINTS_TEAM_CONCURRENCY", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 1600, cfg.DB.Port)
	assert.Equal(t, "s3cret", cfg.DB.Password)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 0.75, cfg.Speaking.SemanticThreshold)
	assert.Equal(t, 0.9, cfg.Speaking.TokenThreshold)
	assert.Equal(t, "ollama", cfg.Tagger.Source)
	assert.Equal(t, "llama3", cfg.Tagger.Ollama.Model)
	assert.Equal(t, "redis:6380", cfg.Redis.Address)
	assert.Equal(t, 3, cfg.Points.TeamConcurrency)
}

func TestLoadConfig_RejectsThresholdOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero semantic", "SPEAKING_SEMANTIC_THRESHOLD", "0"},
		{"negative semantic", "SPEAKING_SEMANTIC_THRESHOLD", "-0.5"},
		{"token above one", "SPEAKING_TOKEN_THRESHOLD", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIG_DIR", t.TempDir())
			t.Setenv(tt.key, tt.value)

			cfg, err := LoadConfig()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}

	t.Run("one is allowed", func(t *testing.T) {
		t.Setenv("CONFIG_DIR", t.TempDir())
		t.Setenv("SPEAKING_TOKEN_THRESHOLD", "1")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 1.0, cfg.Speaking.TokenThreshold)
	})
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := &Config{DB: DBConfig{Driver: "oracle", Host: "h", Port: 1521, User: "u", Password: "p", DBName: "svc"}}
	assert.Equal(t, "oracle://u:p@h:1521/svc", cfg.GetDSN())

	cfg.DB.Driver = "godror"
	assert.Equal(t, `user="u" password="p" connectString="h:1521/svc"`, cfg.GetDSN())
}

func TestConfig_ParseTTLStringOrDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 2*time.Hour, cfg.ParseTTLStringOrDefault("2h", time.Minute))
	assert.Equal(t, time.Minute, cfg.ParseTTLStringOrDefault("", time.Minute))
	assert.Equal(t, time.Minute, cfg.ParseTTLStringOrDefault("soon", time.Minute))
	assert.Equal(t, time.Minute, cfg.ParseTTLStringOrDefault("-5s", time.Minute))
}
