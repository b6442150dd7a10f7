package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/deepx/semspace/pkg/infra/httpx"
	"github.com/deepx/semspace/pkg/infra/providers"
	"github.com/mitchellh/mapstructure"
	"github.com/valyala/fastjson"
)

const (
	DefaultBaseURL = "http://localhost:11434"
	generatePath   = "/api/generate"
	vendor         = "ollama"
	maxErrorBody   = 256
)

// ollamaOptions are the provider options understood on top of the sampling
// parameters carried by providers.Config.
type ollamaOptions struct {
	KeepAlive     string  `mapstructure:"keep_alive"`
	NumCtx        int     `mapstructure:"num_ctx"`
	RepeatPenalty float64 `mapstructure:"repeat_penalty"`
}

type generateRequest struct {
	Model     string                 `json:"model"`
	Prompt    string                 `json:"prompt"`
	System    string                 `json:"system,omitempty"`
	Raw       bool                   `json:"raw"`
	Stream    bool                   `json:"stream"`
	KeepAlive string                 `json:"keep_alive,omitempty"`
	Options   map[string]interface{} `json:"options,omitempty"`
}

type client struct {
	httpClient httpx.Doer
	timeout    time.Duration
	parsers    fastjson.ParserPool
}

// NewOllamaClient returns a client for a local Ollama server. Without a system
// prompt, requests are sent in raw mode and the reply continues the prompt.
func NewOllamaClient(httpClient httpx.Doer, timeout time.Duration) providers.Client {
	return &client{
		httpClient: httpClient,
		timeout:    timeout,
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.Model == "" {
		return nil, providers.ErrModelRequired
	}

	var options ollamaOptions
	if len(config.Options) > 0 {
		if err := mapstructure.Decode(config.Options, &options); err != nil {
			return nil, fmt.Errorf("invalid ollama options: %w", err)
		}
	}

	req := buildRequest(config, options, prompt)
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	resp, err := httpx.PostJSON(ctx, c.httpClient, strings.TrimRight(baseURL, "/")+generatePath, nil, body, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}

	p := c.parsers.Get()
	defer c.parsers.Put(p)

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("%w: %d: %s", providers.ErrNonOKResponse, resp.StatusCode, errorMessage(p, resp.Body))
	}

	v, err := p.ParseBytes(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ollama response: %w", err)
	}

	promptTokens := v.GetInt("prompt_eval_count")
	completionTokens := v.GetInt("eval_count")
	model := string(v.GetStringBytes("model"))
	if model == "" {
		model = config.Model
	}

	return &providers.CompletionResponse{
		ID:           providers.ResponseID(ctx, vendor),
		Model:        model,
		Response:     string(v.GetStringBytes("response")),
		Continuation: req.Raw,
		Usage: providers.Usage{
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			TotalTokens:      promptTokens + completionTokens,
		},
	}, nil
}

// errorMessage pulls the "error" field out of a JSON error body and falls back
// to the raw body for proxies that answer with text or HTML.
func errorMessage(p *fastjson.Parser, body []byte) string {
	if v, err := p.ParseBytes(body); err == nil {
		if msg := v.GetStringBytes("error"); len(msg) > 0 {
			return string(msg)
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	return msg
}

func buildRequest(config *providers.Config, options ollamaOptions, prompt string) generateRequest {
	sampling := map[string]interface{}{}
	if config.MaxTokens > 0 {
		sampling["num_predict"] = config.MaxTokens
	}
	if config.Temperature > 0 {
		sampling["temperature"] = config.Temperature
	}
	if config.TopK > 0 {
		sampling["top_k"] = config.TopK
	}
	if config.TopP > 0 {
		sampling["top_p"] = config.TopP
	}
	if config.Seed != 0 {
		sampling["seed"] = config.Seed
	}
	if options.NumCtx > 0 {
		sampling["num_ctx"] = options.NumCtx
	}
	if options.RepeatPenalty > 0 {
		sampling["repeat_penalty"] = options.RepeatPenalty
	}

	return generateRequest{
		Model:     config.Model,
		Prompt:    prompt,
		System:    config.SystemPrompt,
		Raw:       config.SystemPrompt == "",
		Stream:    false,
		KeepAlive: options.KeepAlive,
		Options:   sampling,
	}
}
