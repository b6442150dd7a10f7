package gemini

import (
	"context"
	"fmt"
	"sync"

	"github.com/deepx/semspace/pkg/infra/providers"
	"golang.org/x/sync/singleflight"
	"google.golang.org/genai"
)

const vendor = "gemini"

type client struct {
	clientPool *sync.Map
	sf         singleflight.Group
}

func NewGeminiClient() providers.Client {
	return &client{
		clientPool: &sync.Map{},
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.Credentials.ApiKey == "" {
		return nil, providers.ErrAPIKeyRequired
	}
	if config.Model == "" {
		return nil, providers.ErrModelRequired
	}

	genaiClient, err := c.getOrCreateClient(ctx, config.Credentials.ApiKey, config.BaseURL)
	if err != nil {
		return nil, err
	}

	result, err := genaiClient.Models.GenerateContent(ctx, config.Model, genai.Text(prompt), generationConfig(config))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return nil, providers.ErrNoCompletion
	}

	resp := &providers.CompletionResponse{
		ID:       providers.ResponseID(ctx, vendor),
		Model:    config.Model,
		Response: text,
	}
	if result.ResponseID != "" {
		resp.ID = result.ResponseID
	}
	if usage := result.UsageMetadata; usage != nil {
		resp.Usage = providers.Usage{
			PromptTokens:     int(usage.PromptTokenCount),
			CompletionTokens: int(usage.CandidatesTokenCount),
			TotalTokens:      int(usage.TotalTokenCount),
		}
	}
	return resp, nil
}

func generationConfig(config *providers.Config) *genai.GenerateContentConfig {
	gc := &genai.GenerateContentConfig{}
	if config.SystemPrompt != "" {
		gc.SystemInstruction = genai.NewContentFromText(config.SystemPrompt, genai.RoleUser)
	}
	if config.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(config.MaxTokens) // #nosec G115
	}
	if config.Temperature > 0 {
		gc.Temperature = genai.Ptr(float32(config.Temperature))
	}
	if config.TopK > 0 {
		gc.TopK = genai.Ptr(float32(config.TopK))
	}
	if config.TopP > 0 {
		gc.TopP = genai.Ptr(float32(config.TopP))
	}
	if config.Seed != 0 {
		gc.Seed = genai.Ptr(int32(config.Seed)) // #nosec G115
	}
	return gc
}

func (c *client) getOrCreateClient(ctx context.Context, apiKey, baseURL string) (*genai.Client, error) {
	key := apiKey + "|" + baseURL
	if v, ok := c.clientPool.Load(key); ok {
		if cli, ok := v.(*genai.Client); ok {
			return cli, nil
		}
	}
	v, err, _ := c.sf.Do(key, func() (any, error) {
		if v2, ok := c.clientPool.Load(key); ok {
			return v2, nil
		}
		cfg := &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		}
		if baseURL != "" {
			cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
		}
		cli, err := genai.NewClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		c.clientPool.Store(key, cli)
		return cli, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*genai.Client), nil //nolint:errcheck
}
