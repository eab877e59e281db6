package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ingrediq/docintel-cli/internal/analysis"
	"github.com/ingrediq/docintel-cli/internal/export"
	"github.com/ingrediq/docintel-cli/internal/model"
	"github.com/ingrediq/docintel-cli/internal/ocr"
	anthropicpkg "github.com/ingrediq/docintel-cli/pkg/anthropic"
	"github.com/ingrediq/docintel-cli/pkg/mistral"
)

var analyzeXLSX string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <pdf>...",
	Short: "Extract text from documents and run the full question battery",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("analyze"); err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}

		extractor, err := ocr.NewExtractor(cfg.OCR, cfg.Mistral)
		if err != nil {
			return err
		}

		docs, err := ocr.IngestFiles(ctx, extractor, args)
		if err != nil {
			return err
		}

		run, err := st.CreateRun(ctx, docs)
		if err != nil {
			return err
		}
		zap.L().Info("run created", zap.String("run_id", run.ID), zap.Int("documents", len(docs)))

		if err := st.UpdateRunStatus(ctx, run.ID, model.RunStatusRunning); err != nil {
			return err
		}

		completer, modelID, err := newCompleter()
		if err != nil {
			return err
		}
		pipe := analysis.NewPipeline(completer, pipelineOptions(modelID))

		result, err := pipe.Run(ctx, docs)
		if err != nil {
			if stErr := st.UpdateRunStatus(ctx, run.ID, model.RunStatusFailed); stErr != nil {
				zap.L().Error("mark run failed", zap.String("run_id", run.ID), zap.Error(stErr))
			}
			return err
		}

		if err := st.UpdateRunResult(ctx, run.ID, result); err != nil {
			return err
		}

		if analyzeXLSX != "" {
			if err := export.WriteWorkbook(analyzeXLSX, docs, result); err != nil {
				return err
			}
			zap.L().Info("workbook written", zap.String("path", analyzeXLSX))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"run_id":  run.ID,
			"model":   result.Model,
			"summary": result.Summary,
		})
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "also write an xlsx workbook to this path")
	rootCmd.AddCommand(analyzeCmd)
}

// newCompleter builds the configured LLM backend and returns it with the
// model identifier analysis calls should pass through.
func newCompleter() (analysis.Completer, string, error) {
	switch cfg.Analysis.Provider {
	case "anthropic", "":
		return analysis.NewAnthropicCompleter(anthropicpkg.NewClient(cfg.Anthropic.Key)), cfg.Anthropic.Model, nil
	case "mistral":
		client := mistral.NewClient(cfg.Mistral.Key, mistral.WithModel(cfg.Mistral.ChatModel))
		return analysis.NewMistralCompleter(client), cfg.Mistral.ChatModel, nil
	default:
		return nil, "", eris.Errorf("unsupported analysis provider: %s", cfg.Analysis.Provider)
	}
}

func pipelineOptions(modelID string) analysis.Options {
	return analysis.Options{
		Model:          modelID,
		MaxTokens:      cfg.Analysis.MaxTokens,
		ReplyMaxTokens: cfg.Analysis.ReplyMaxTokens,
		Temperature:    cfg.Analysis.Temperature,
		Concurrency:    cfg.Analysis.Concurrency,
	}
}
