package factory

import (
	"fmt"

	"github.com/deepx/semspace/pkg/config"
	"github.com/deepx/semspace/pkg/domain/embedding"
	"github.com/deepx/semspace/pkg/infra/embedding/gemini"
	"github.com/deepx/semspace/pkg/infra/embedding/ollama"
	"github.com/deepx/semspace/pkg/infra/embedding/openai"
	"github.com/deepx/semspace/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
)

const (
	OllamaProvider = "ollama"
	OpenAIProvider = "openai"
	GeminiProvider = "gemini"
)

type EmbeddingServiceLocator struct {
	logger     *logrus.Logger
	httpClient httpx.Doer
}

func NewServiceLocator(logger *logrus.Logger, httpClient httpx.Doer) *EmbeddingServiceLocator {
	return &EmbeddingServiceLocator{
		logger:     logger,
		httpClient: httpClient,
	}
}

func (l *EmbeddingServiceLocator) GetService(cfg config.EmbeddingConfig) (embedding.Creator, error) {
	switch cfg.Provider {
	case OllamaProvider:
		return ollama.NewOllamaEmbeddingService(l.httpClient, l.logger, cfg.Model, cfg.BaseURL, cfg.Timeout), nil
	case OpenAIProvider:
		return openai.NewOpenAIEmbeddingService(l.httpClient, l.logger, cfg.Model, cfg.BaseURL, cfg.ApiKey, cfg.Timeout), nil
	case GeminiProvider:
		return gemini.NewGeminiEmbeddingService(l.logger, cfg.Model, cfg.BaseURL, cfg.ApiKey, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Provider)
	}
}
