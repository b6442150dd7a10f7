package openai

import (
	"context"
	"fmt"
	"sync"

	"github.com/deepx/semspace/pkg/infra/providers"
	"github.com/mitchellh/mapstructure"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"golang.org/x/sync/singleflight"
)

type openaiOptions struct {
	Organization     string  `mapstructure:"organization"`
	FrequencyPenalty float64 `mapstructure:"frequency_penalty"`
	PresencePenalty  float64 `mapstructure:"presence_penalty"`
}

type client struct {
	clientPool *sync.Map
	sf         singleflight.Group
	extraOpts  []option.RequestOption
}

// NewOpenaiClient returns a chat-completions client. top_k has no equivalent
// in the API and is ignored.
func NewOpenaiClient(opts ...option.RequestOption) providers.Client {
	return &client{
		clientPool: &sync.Map{},
		extraOpts:  opts,
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

	var options openaiOptions
	if len(config.Options) > 0 {
		if err := mapstructure.Decode(config.Options, &options); err != nil {
			return nil, fmt.Errorf("invalid openai options: %w", err)
		}
	}

	openaiClient := c.getOrCreateClient(config.Credentials.ApiKey, config.BaseURL, options.Organization)

	var messages []openai.ChatCompletionMessageParamUnion
	if config.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(config.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:    config.Model,
		Messages: messages,
	}
	if config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(config.MaxTokens))
	}
	if config.Temperature > 0 {
		params.Temperature = openai.Float(config.Temperature)
	}
	if config.TopP > 0 {
		params.TopP = openai.Float(config.TopP)
	}
	if config.Seed != 0 {
		params.Seed = openai.Int(config.Seed)
	}
	if options.FrequencyPenalty != 0 {
		params.FrequencyPenalty = openai.Float(options.FrequencyPenalty)
	}
	if options.PresencePenalty != 0 {
		params.PresencePenalty = openai.Float(options.PresencePenalty)
	}

	resp, err := openaiClient.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("OpenAI request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, providers.ErrNoCompletion
	}

	return &providers.CompletionResponse{
		ID:       resp.ID,
		Model:    resp.Model,
		Response: resp.Choices[0].Message.Content,
		Usage: providers.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}

func (c *client) getOrCreateClient(apiKey, baseURL, organization string) *openai.Client {
	key := apiKey + "|" + baseURL + "|" + organization
	if v, ok := c.clientPool.Load(key); ok {
		if cli, ok := v.(*openai.Client); ok {
			return cli
		}
	}
	v, _, _ := c.sf.Do(key, func() (any, error) {
		if v2, ok := c.clientPool.Load(key); ok {
			return v2, nil
		}
		opts := []option.RequestOption{option.WithAPIKey(apiKey)}
		if baseURL != "" {
			opts = append(opts, option.WithBaseURL(baseURL))
		}
		if organization != "" {
			opts = append(opts, option.WithOrganization(organization))
		}
		opts = append(opts, c.extraOpts...)
		cli := openai.NewClient(opts...)
		c.clientPool.Store(key, &cli)
		return &cli, nil
	})
	cli, _ := v.(*openai.Client) //nolint:errcheck
	return cli
}
