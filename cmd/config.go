package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ingrediq/docintel-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml in the current directory",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := "config.yaml"
		if _, err := os.Stat(path); err == nil {
			return eris.Errorf("%s already exists", path)
		}

		defaults := config.Config{
			Store: config.StoreConfig{Driver: "sqlite", DatabaseURL: "docintel.db"},
			OCR:   config.OCRConfig{Provider: "local", PdfToTextPath: "pdftotext"},
			Mistral: config.MistralConfig{
				OCRModel:  "pixtral-large-latest",
				ChatModel: "mistral-large-latest",
			},
			Anthropic: config.AnthropicConfig{Model: "claude-sonnet-4-5-20250929"},
			Analysis: config.AnalysisConfig{
				Provider:       "anthropic",
				MaxTokens:      6000,
				ReplyMaxTokens: 2000,
				Temperature:    0.7,
				Concurrency:    4,
			},
			Server: config.ServerConfig{Port: 8080},
			Log:    config.LogConfig{Level: "info", Format: "json"},
		}

		out, err := yaml.Marshal(defaults)
		if err != nil {
			return eris.Wrap(err, "marshal config")
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return eris.Wrapf(err, "write %s", path)
		}

		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		shown := *cfg
		shown.Anthropic.Key = redact(shown.Anthropic.Key)
		shown.Mistral.Key = redact(shown.Mistral.Key)

		out, err := yaml.Marshal(shown)
		if err != nil {
			return eris.Wrap(err, "marshal config")
		}
		fmt.Print(string(out))
		return nil
	},
}

func redact(key string) string {
	if key == "" {
		return ""
	}
	return "[redacted]"
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
