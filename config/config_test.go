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
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8081", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Equal(t, 65.0, cfg.BookingFee)
	assert.Equal(t, "properties_queue", cfg.PropertiesQueue)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
port: "9090"
api_base_url: http://api.internal:8000/
api_timeout: 5s
booking_fee: 40
allowed_origins:
  - https://listings.example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("PORT", "7070")
	t.Setenv("CATALOG_CACHE_TTL", "0s")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "http://api.internal:8000", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, 40.0, cfg.BookingFee)
	assert.Equal(t, time.Duration(0), cfg.CatalogCacheTTL)
	assert.Equal(t, []string{"https://listings.example.com"}, cfg.AllowedOrigins)
}

func TestLoadConfig_InvalidEnv(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_NegativeFee(t *testing.T) {
	t.Setenv("BOOKING_FEE", "-1")
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
}
