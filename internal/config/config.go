package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	OCR       OCRConfig       `yaml:"ocr" mapstructure:"ocr"`
	Mistral   MistralConfig   `yaml:"mistral" mapstructure:"mistral"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Analysis  AnalysisConfig  `yaml:"analysis" mapstructure:"analysis"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// OCRConfig configures PDF text extraction.
type OCRConfig struct {
	Provider      string `yaml:"provider" mapstructure:"provider"`
	PdfToTextPath string `yaml:"pdftotext_path" mapstructure:"pdftotext_path"`
}

// MistralConfig holds Mistral API settings, used for both OCR and chat.
type MistralConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	OCRModel  string `yaml:"ocr_model" mapstructure:"ocr_model"`
	ChatModel string `yaml:"chat_model" mapstructure:"chat_model"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Model string `yaml:"model" mapstructure:"model"`
}

// AnalysisConfig configures the document analysis run.
type AnalysisConfig struct {
	Provider       string  `yaml:"provider" mapstructure:"provider"`
	MaxTokens      int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	ReplyMaxTokens int     `yaml:"reply_max_tokens" mapstructure:"reply_max_tokens"`
	Temperature    float64 `yaml:"temperature" mapstructure:"temperature"`
	Concurrency    int     `yaml:"concurrency" mapstructure:"concurrency"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("DOCINTEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "docintel.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("ocr.provider", "local")
	v.SetDefault("ocr.pdftotext_path", "pdftotext")
	v.SetDefault("mistral.ocr_model", "pixtral-large-latest")
	v.SetDefault("mistral.chat_model", "mistral-large-latest")
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("analysis.provider", "anthropic")
	v.SetDefault("analysis.max_tokens", 6000)
	v.SetDefault("analysis.reply_max_tokens", 2000)
	v.SetDefault("analysis.temperature", 0.7)
	v.SetDefault("analysis.concurrency", 4)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks that the fields a command depends on are set. Mode names
// the command: "ocr", "analyze", or "serve".
func (c *Config) Validate(mode string) error {
	var problems []string

	requireProvider := func() {
		switch c.Analysis.Provider {
		case "anthropic", "":
			if c.Anthropic.Key == "" {
				problems = append(problems, "anthropic.key is required")
			}
		case "mistral":
			if c.Mistral.Key == "" {
				problems = append(problems, "mistral.key is required")
			}
		default:
			problems = append(problems, "analysis.provider must be anthropic or mistral")
		}
		if c.Analysis.MaxTokens < 1 {
			problems = append(problems, "analysis.max_tokens must be > 0")
		}
		if c.Analysis.Concurrency < 1 || c.Analysis.Concurrency > 32 {
			problems = append(problems, "analysis.concurrency must be between 1 and 32")
		}
		if c.Analysis.Temperature < 0 || c.Analysis.Temperature > 2 {
			problems = append(problems, "analysis.temperature must be between 0 and 2")
		}
	}
	requireOCR := func() {
		if c.OCR.Provider == "mistral" && c.Mistral.Key == "" {
			problems = append(problems, "mistral.key is required for ocr.provider=mistral")
		}
	}

	switch mode {
	case "ocr":
		requireOCR()
	case "analyze":
		requireOCR()
		requireProvider()
	case "serve":
		requireOCR()
		requireProvider()
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if c.Store.DatabaseURL == "" {
		problems = append(problems, "store.database_url is required")
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
