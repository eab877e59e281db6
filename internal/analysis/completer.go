package analysis

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/ingrediq/docintel-cli/internal/resilience"
	"github.com/ingrediq/docintel-cli/pkg/anthropic"
	"github.com/ingrediq/docintel-cli/pkg/mistral"
)

// CompletionRequest is one chat call to the LLM collaborator. Model is
// passed through opaquely.
type CompletionRequest struct {
	Model       string
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Completer is the LLM seam: one prompt in, one response string out. No
// response schema is enforced here; that is entirely the parser's job.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// anthropicCompleter adapts the Anthropic messages client.
type anthropicCompleter struct {
	client anthropic.Client
}

// NewAnthropicCompleter wraps an Anthropic client as a Completer.
func NewAnthropicCompleter(client anthropic.Client) Completer {
	return &anthropicCompleter{client: client}
}

func (c *anthropicCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	temp := req.Temperature
	resp, err := resilience.DoVal(ctx, retryConfig("anthropic"), func(ctx context.Context) (*anthropic.MessageResponse, error) {
		return c.client.CreateMessage(ctx, anthropic.MessageRequest{
			Model:       req.Model,
			MaxTokens:   int64(req.MaxTokens),
			System:      []anthropic.SystemBlock{{Text: req.System}},
			Messages:    []anthropic.Message{{Role: "user", Content: req.Prompt}},
			Temperature: &temp,
		})
	})
	if err != nil {
		return "", eris.Wrap(err, "analysis: anthropic completion")
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", eris.New("analysis: empty completion response")
	}
	resp.Usage.LogCost(req.Model, "analysis")
	return text, nil
}

// mistralCompleter adapts the Mistral chat client.
type mistralCompleter struct {
	client *mistral.Client
}

// NewMistralCompleter wraps a Mistral chat client as a Completer.
func NewMistralCompleter(client *mistral.Client) Completer {
	return &mistralCompleter{client: client}
}

func (c *mistralCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	text, err := resilience.DoVal(ctx, retryConfig("mistral"), func(ctx context.Context) (string, error) {
		return c.client.ChatComplete(ctx, mistral.ChatRequest{
			Model: req.Model,
			Messages: []mistral.ChatMessage{
				{Role: "system", Content: req.System},
				{Role: "user", Content: req.Prompt},
			},
			Temperature: req.Temperature,
			MaxTokens:   req.MaxTokens,
		})
	})
	if err != nil {
		return "", eris.Wrap(err, "analysis: mistral completion")
	}
	return text, nil
}

// retryConfig is the backoff policy for provider calls; transient failures
// (429, 5xx, network timeouts) get up to two retries.
func retryConfig(service string) resilience.RetryConfig {
	cfg := resilience.DefaultRetryConfig()
	cfg.OnRetry = resilience.RetryLogger(service, "complete")
	return cfg
}
