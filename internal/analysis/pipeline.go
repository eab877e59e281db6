package analysis

import (
	"context"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ingrediq/docintel-cli/internal/budget"
	"github.com/ingrediq/docintel-cli/internal/catalog"
	"github.com/ingrediq/docintel-cli/internal/model"
	"github.com/ingrediq/docintel-cli/internal/relevance"
)

// Options configures a pipeline run.
type Options struct {
	Model          string  // model identifier, passed through to the Completer
	MaxTokens      int     // content budget per category prompt (default 6000)
	ReplyMaxTokens int     // completion token cap (default 2000)
	Temperature    float64 // sampling temperature (default 0.7)
	Concurrency    int     // concurrent category analyses (default 4)
}

func (o Options) withDefaults() Options {
	if o.MaxTokens <= 0 {
		o.MaxTokens = budget.DefaultMaxTokens
	}
	if o.ReplyMaxTokens <= 0 {
		o.ReplyMaxTokens = 2000
	}
	if o.Temperature == 0 {
		o.Temperature = 0.7
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 4
	}
	return o
}

// Pipeline runs the fixed question battery over a document collection: one
// LLM call per category over budgeted content, parsed into analysis records.
type Pipeline struct {
	completer Completer
	opts      Options
}

// NewPipeline creates a pipeline backed by the given Completer.
func NewPipeline(completer Completer, opts Options) *Pipeline {
	return &Pipeline{completer: completer, opts: opts.withDefaults()}
}

// Run analyzes every category against the document collection and returns a
// fresh result map; re-runs replace prior results, never merge. Categories
// are submitted most-relevant-first and fan out concurrently; one failing
// category never aborts the run — it is recorded as an empty record list.
// On cancellation, categories that never completed have no map entry.
func (p *Pipeline) Run(ctx context.Context, docs []model.Document) (*model.RunResult, error) {
	if len(docs) == 0 {
		return nil, eris.New("analysis: no documents to analyze")
	}

	start := time.Now()
	corpus := model.CombineDocuments(docs)
	order := relevance.Order(corpus, catalog.Categories())

	zap.L().Info("starting analysis run",
		zap.Int("documents", len(docs)),
		zap.Int("corpus_chars", len(corpus)),
		zap.Int("estimated_tokens", budget.EstimateTokens(corpus)),
		zap.Strings("category_order", order),
	)

	result := make(model.AnalysisResult, len(order))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)
	for _, category := range order {
		g.Go(func() error {
			records, ran := p.analyzeCategory(gctx, corpus, category)
			if !ran {
				return nil
			}
			mu.Lock()
			result[category] = records
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // category goroutines never return errors

	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "analysis: run cancelled")
	}

	res := &model.RunResult{
		Analysis:      result,
		CategoryOrder: order,
		Summary:       result.Summarize(order),
		Model:         p.opts.Model,
		DurationMS:    time.Since(start).Milliseconds(),
	}

	zap.L().Info("analysis run complete",
		zap.Int("total_records", res.Summary.TotalRecords),
		zap.Int("answered", res.Summary.TotalAnswered),
		zap.Int64("duration_ms", res.DurationMS),
	)
	return res, nil
}

// analyzeCategory runs one category's question battery. It reports ran=false
// only when the context was cancelled before the call could be made; LLM
// failures and unparseable output both yield an empty (but present) record
// list so the category reads "analyzed, nothing found".
func (p *Pipeline) analyzeCategory(ctx context.Context, corpus, category string) (records []model.AnalysisRecord, ran bool) {
	if ctx.Err() != nil {
		return nil, false
	}

	log := zap.L().With(zap.String("category", category))
	questions := catalog.Questions(category)
	content := budget.SelectFromCorpus(corpus, category, p.opts.MaxTokens)

	text, err := p.completer.Complete(ctx, CompletionRequest{
		Model:       p.opts.Model,
		System:      SystemPrompt(category),
		Prompt:      BuildPrompt(content, questions, category),
		Temperature: p.opts.Temperature,
		MaxTokens:   p.opts.ReplyMaxTokens,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, false
		}
		log.Warn("category analysis failed", zap.Error(err))
		return []model.AnalysisRecord{}, true
	}

	records = Parse(text)
	if len(records) == 0 {
		log.Warn("analysis returned no structured results", zap.Int("response_chars", len(text)))
		return []model.AnalysisRecord{}, true
	}

	answered := 0
	for _, r := range records {
		if r.HasData() {
			answered++
		}
	}
	log.Info("category analysis complete",
		zap.Int("questions", len(questions)),
		zap.Int("records", len(records)),
		zap.Int("answered", answered),
	)
	return records, true
}
