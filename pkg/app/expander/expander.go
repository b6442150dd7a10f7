package expander

import (
	"context"
	"errors"
	"fmt"

	"github.com/deepx/semspace/pkg/config"
	"github.com/deepx/semspace/pkg/domain/idea"
	"github.com/deepx/semspace/pkg/infra/providers"
	"github.com/sirupsen/logrus"
)

var ErrUnknownProfile = errors.New("unknown expansion profile")

//go:generate mockery --name=Expander --dir=. --output=./mocks --filename=expander_mock.go --case=underscore --with-expecter
type Expander interface {
	Expand(ctx context.Context, sentence string) ([]string, error)
	ExpandContinuum(ctx context.Context, sentence string) ([]string, error)
	ExpandForExplore(ctx context.Context, sentence string) ([]string, error)
}

type expander struct {
	logger   *logrus.Logger
	client   providers.Client
	base     providers.Config
	profiles map[string]Profile
}

func NewExpander(logger *logrus.Logger, client providers.Client, cfg config.GenerationConfig) Expander {
	return &expander{
		logger:   logger,
		client:   client,
		base:     baseConfig(cfg),
		profiles: Profiles(cfg.Profiles),
	}
}

func (e *expander) Expand(ctx context.Context, sentence string) ([]string, error) {
	return e.run(ctx, config.ProfileExpand, sentence)
}

func (e *expander) ExpandContinuum(ctx context.Context, sentence string) ([]string, error) {
	return e.run(ctx, config.ProfileContinuum, sentence)
}

func (e *expander) ExpandForExplore(ctx context.Context, sentence string) ([]string, error) {
	return e.run(ctx, config.ProfileExplore, sentence)
}

func (e *expander) run(ctx context.Context, name, sentence string) ([]string, error) {
	profile, ok := e.profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProfile, name)
	}

	prompt := profile.Prompt(sentence)
	cfg := e.base
	cfg.MaxTokens = profile.Sampling.MaxTokens
	cfg.Temperature = profile.Sampling.Temperature
	cfg.TopK = profile.Sampling.TopK
	cfg.TopP = profile.Sampling.TopP

	resp, err := e.client.Ask(ctx, &cfg, prompt)
	if err != nil {
		return nil, fmt.Errorf("%s generation failed: %w", name, err)
	}

	if resp.Blank() {
		e.logger.WithFields(logrus.Fields{
			"profile":  name,
			"provider": resp.Provider,
		}).Warn("model returned an empty completion")
	}

	ideas := idea.Parse(completionText(prompt, resp), profile.Fallback)
	e.logger.WithFields(logrus.Fields{
		"profile": name,
		"ideas":   len(ideas),
	}).Debug("expansion parsed")
	return ideas, nil
}

// completionText is the text ideas are parsed from. A raw completion continues
// the prompt, so the bullet the prompt opens belongs to its first line. A chat
// reply stands on its own and any preamble line is not an idea.
func completionText(prompt string, resp *providers.CompletionResponse) string {
	if resp.Continuation {
		return prompt + resp.Response
	}
	return resp.Response
}

func baseConfig(cfg config.GenerationConfig) providers.Config {
	pc := providers.Config{
		Credentials:  providers.Credentials{ApiKey: cfg.ApiKey},
		BaseURL:      cfg.BaseURL,
		Model:        cfg.Model,
		Seed:         cfg.Seed,
		SystemPrompt: cfg.SystemPrompt,
		Options:      cfg.Options,
	}
	if cfg.Azure != nil {
		pc.Credentials.Azure = &providers.AzureCredentials{
			Endpoint:    cfg.Azure.Endpoint,
			ApiVersion:  cfg.Azure.ApiVersion,
			UseIdentity: cfg.Azure.UseIdentity,
		}
	}
	if cfg.Bedrock != nil {
		pc.Credentials.AwsBedrock = &providers.AwsBedrockCredentials{
			Region:    cfg.Bedrock.Region,
			AccessKey: cfg.Bedrock.AccessKey,
			SecretKey: cfg.Bedrock.SecretKey,
			UseRole:   cfg.Bedrock.UseRole,
			RoleARN:   cfg.Bedrock.RoleARN,
		}
	}
	return pc
}
