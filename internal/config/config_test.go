package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "docintel.db", cfg.Store.DatabaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "local", cfg.OCR.Provider)
	assert.Equal(t, "pdftotext", cfg.OCR.PdfToTextPath)
	assert.Equal(t, "pixtral-large-latest", cfg.Mistral.OCRModel)
	assert.Equal(t, "mistral-large-latest", cfg.Mistral.ChatModel)
	assert.Equal(t, "anthropic", cfg.Analysis.Provider)
	assert.Equal(t, 6000, cfg.Analysis.MaxTokens)
	assert.Equal(t, 2000, cfg.Analysis.ReplyMaxTokens)
	assert.InDelta(t, 0.7, cfg.Analysis.Temperature, 0.001)
	assert.Equal(t, 4, cfg.Analysis.Concurrency)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
store:
  driver: postgres
  database_url: postgres://localhost/docintel
log:
  level: debug
  format: console
server:
  port: 9090
analysis:
  concurrency: 8
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "postgres://localhost/docintel", cfg.Store.DatabaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 8, cfg.Analysis.Concurrency)
	// Defaults still apply for unset values
	assert.Equal(t, 6000, cfg.Analysis.MaxTokens)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
store:
  driver: sqlite
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("DOCINTEL_STORE_DRIVER", "postgres")
	t.Setenv("DOCINTEL_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("DOCINTEL_SERVER_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

// validDefaults returns a Config with all defaults populated for validation tests.
func validDefaults() *Config {
	cfg := &Config{}
	cfg.Store.DatabaseURL = "docintel.db"
	cfg.Analysis.Provider = "anthropic"
	cfg.Analysis.MaxTokens = 6000
	cfg.Analysis.Temperature = 0.7
	cfg.Analysis.Concurrency = 4
	cfg.Server.Port = 8080
	return cfg
}

func TestValidateAnalyze_AllPresent(t *testing.T) {
	cfg := validDefaults()
	cfg.Anthropic.Key = "sk-ant-key"

	assert.NoError(t, cfg.Validate("analyze"))
}

func TestValidateAnalyze_MissingKey(t *testing.T) {
	cfg := validDefaults()

	err := cfg.Validate("analyze")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic.key is required")
}

func TestValidateAnalyze_MistralProvider(t *testing.T) {
	cfg := validDefaults()
	cfg.Analysis.Provider = "mistral"

	err := cfg.Validate("analyze")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mistral.key is required")

	cfg.Mistral.Key = "m-key"
	assert.NoError(t, cfg.Validate("analyze"))
}

func TestValidateAnalyze_UnknownProvider(t *testing.T) {
	cfg := validDefaults()
	cfg.Anthropic.Key = "k"
	cfg.Analysis.Provider = "openai"

	err := cfg.Validate("analyze")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "analysis.provider must be anthropic or mistral")
}

func TestValidateOCR_MistralNeedsKey(t *testing.T) {
	cfg := validDefaults()
	cfg.OCR.Provider = "mistral"

	err := cfg.Validate("ocr")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mistral.key is required for ocr.provider=mistral")

	cfg.Mistral.Key = "m-key"
	assert.NoError(t, cfg.Validate("ocr"))
}

func TestValidateServe_InvalidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Anthropic.Key = "k"
	cfg.Server.Port = 0

	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port must be > 0")
}

func TestValidateUnknownMode(t *testing.T) {
	cfg := validDefaults()
	err := cfg.Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestValidateConcurrencyBounds(t *testing.T) {
	cfg := validDefaults()
	cfg.Anthropic.Key = "k"

	cfg.Analysis.Concurrency = 0
	err := cfg.Validate("analyze")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "analysis.concurrency must be between 1 and 32")

	cfg.Analysis.Concurrency = 33
	err = cfg.Validate("analyze")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "analysis.concurrency must be between 1 and 32")

	cfg.Analysis.Concurrency = 32
	assert.NoError(t, cfg.Validate("analyze"))
}

func TestValidateTemperatureBounds(t *testing.T) {
	cfg := validDefaults()
	cfg.Anthropic.Key = "k"

	cfg.Analysis.Temperature = -0.1
	err := cfg.Validate("analyze")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "analysis.temperature")

	cfg.Analysis.Temperature = 2.1
	err = cfg.Validate("analyze")
	assert.Error(t, err)

	cfg.Analysis.Temperature = 0.7
	assert.NoError(t, cfg.Validate("analyze"))
}

func TestValidateMissingDatabaseURL(t *testing.T) {
	cfg := validDefaults()
	cfg.Anthropic.Key = "k"
	cfg.Store.DatabaseURL = ""

	err := cfg.Validate("analyze")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "store.database_url is required")
}
