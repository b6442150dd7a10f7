package factory

import (
	"fmt"
	"net/http"
	"time"

	"github.com/deepx/semspace/pkg/infra/httpx"
	"github.com/deepx/semspace/pkg/infra/providers"
	"github.com/deepx/semspace/pkg/infra/providers/anthropic"
	"github.com/deepx/semspace/pkg/infra/providers/azure"
	"github.com/deepx/semspace/pkg/infra/providers/bedrock"
	"github.com/deepx/semspace/pkg/infra/providers/gemini"
	"github.com/deepx/semspace/pkg/infra/providers/ollama"
	"github.com/deepx/semspace/pkg/infra/providers/openai"
)

const (
	ProviderOllama    = "ollama"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderBedrock   = "bedrock"
	ProviderAzure     = "azure"
)

//go:generate mockery --name=ProviderLocator --dir=. --output=./mocks --filename=provider_locator_mock.go --case=underscore --with-expecter

type ProviderLocator interface {
	Get(provider string) (providers.Client, error)
}

type providerLocator struct {
	httpClient httpx.Doer
	timeout    time.Duration
}

func NewProviderLocator(httpClient httpx.Doer, timeout time.Duration) ProviderLocator {
	return &providerLocator{
		httpClient: httpClient,
		timeout:    timeout,
	}
}

func (f *providerLocator) Get(provider string) (providers.Client, error) {
	switch provider {
	case ProviderOllama:
		return ollama.NewOllamaClient(f.httpClient, f.timeout), nil
	case ProviderOpenAI:
		return openai.NewOpenaiClient(), nil
	case ProviderGemini:
		return gemini.NewGeminiClient(), nil
	case ProviderAnthropic:
		return anthropic.NewAnthropicClient(), nil
	case ProviderBedrock:
		return bedrock.NewBedrockClient(), nil
	case ProviderAzure:
		return azure.NewAzureClient(&http.Client{Timeout: f.timeout}), nil
	default:
		return nil, fmt.Errorf("%w: %s", providers.ErrUnknownProvider, provider)
	}
}
