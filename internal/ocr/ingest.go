package ocr

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ingrediq/docintel-cli/internal/model"
)

// noTextExtracted stands in for documents the extractor produced nothing for.
const noTextExtracted = "No text extracted."

// IngestFiles runs the extractor over each path and returns one Document per
// input, in order. Extraction failures never abort the batch: the failing
// document's text is replaced with an error marker so downstream stages keep
// a consistent document list.
func IngestFiles(ctx context.Context, extractor Extractor, paths []string) ([]model.Document, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	docs := make([]model.Document, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := filepath.Base(path)
		text, err := extractor.ExtractText(ctx, path)
		switch {
		case err != nil:
			zap.L().Warn("text extraction failed",
				zap.String("file", name),
				zap.Error(err))
			text = fmt.Sprintf("Error processing document: %v", err)
		case strings.TrimSpace(text) == "":
			text = noTextExtracted
		}

		docs = append(docs, model.Document{
			ID:          uuid.NewString(),
			DisplayName: name,
			RawText:     text,
		})
	}

	return docs, nil
}
