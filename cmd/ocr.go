package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ingrediq/docintel-cli/internal/export"
	"github.com/ingrediq/docintel-cli/internal/ocr"
)

var (
	ocrFormat string
	ocrOut    string
)

var ocrCmd = &cobra.Command{
	Use:   "ocr <pdf>...",
	Short: "Extract text from documents without running analysis",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("ocr"); err != nil {
			return err
		}

		extractor, err := ocr.NewExtractor(cfg.OCR, cfg.Mistral)
		if err != nil {
			return err
		}

		docs, err := ocr.IngestFiles(ctx, extractor, args)
		if err != nil {
			return err
		}

		var out []byte
		switch ocrFormat {
		case "text":
			out = []byte(export.OCRText(docs))
		case "json":
			out, err = export.OCRJSON(docs)
			if err != nil {
				return err
			}
		default:
			return eris.Errorf("unsupported format: %s (want text or json)", ocrFormat)
		}

		if ocrOut == "" {
			fmt.Print(string(out))
			return nil
		}
		if err := os.WriteFile(ocrOut, out, 0o644); err != nil {
			return eris.Wrapf(err, "write %s", ocrOut)
		}
		zap.L().Info("ocr results written", zap.String("path", ocrOut), zap.Int("documents", len(docs)))
		return nil
	},
}

func init() {
	ocrCmd.Flags().StringVar(&ocrFormat, "format", "text", "output format (text, json)")
	ocrCmd.Flags().StringVarP(&ocrOut, "out", "o", "", "write output to this path instead of stdout")
	rootCmd.AddCommand(ocrCmd)
}
