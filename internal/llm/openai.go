package llm

import (
	"context"
	"fmt"
	"strings"

	"jobtrack/internal/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAI is the langchaingo-backed Completer. When no API key is configured
// the client still constructs; every call then fails with ErrUpstream so the
// rest of the app keeps working without a credential.
type OpenAI struct {
	model llms.Model
}

func NewOpenAI(cfg config.OpenAIConfig) (*OpenAI, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return &OpenAI{}, nil
	}

	model, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	return &OpenAI{model: model}, nil
}

func (o *OpenAI) Complete(ctx context.Context, system, prompt string, opts CallOptions) (string, error) {
	if o == nil || o.model == nil {
		return "", fmt.Errorf("%w: completion credential not configured", ErrUpstream)
	}

	callOpts := []llms.CallOption{llms.WithTemperature(opts.Temperature)}
	if opts.JSONMode {
		callOpts = append(callOpts, llms.WithJSONMode())
	}

	resp, err := o.model.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}, callOpts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrMalformedResponse)
	}
	return resp.Choices[0].Content, nil
}
