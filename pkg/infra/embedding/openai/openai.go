package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/deepx/semspace/pkg/domain/embedding"
	"github.com/deepx/semspace/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

const (
	DefaultBaseURL = "https://api.openai.com"
	embeddingsPath = "/v1/embeddings"
)

var ErrAPIKeyRequired = fmt.Errorf("openai embeddings require an API key")

type embeddingService struct {
	client  httpx.Doer
	logger  *logrus.Logger
	model   string
	baseURL string
	apiKey  string
	timeout time.Duration
}

type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingData struct {
	Embedding []float64 `json:"embedding"`
	Index     int       `json:"index"`
}

type openAIEmbeddingResponse struct {
	Data  []embeddingData `json:"data"`
	Model string          `json:"model"`
}

// NewOpenAIEmbeddingService works against the OpenAI embeddings endpoint and
// any server that mirrors it.
func NewOpenAIEmbeddingService(
	client httpx.Doer,
	logger *logrus.Logger,
	model, baseURL, apiKey string,
	timeout time.Duration,
) embedding.Creator {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &embeddingService{
		client:  client,
		logger:  logger,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
	}
}

func (s *embeddingService) Generate(ctx context.Context, text string) (*embedding.Embedding, error) {
	if strings.TrimSpace(text) == "" {
		return nil, embedding.ErrEmptyText
	}
	if s.apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	pBytes, err := json.Marshal(embeddingRequest{
		Model: s.model,
		Input: text,
	})
	if err != nil {
		s.logger.WithError(err).Error("failed to marshal embedding request payload")
		return nil, err
	}

	headers := map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", s.apiKey),
	}
	resp, err := httpx.PostJSON(ctx, s.client, s.baseURL+embeddingsPath, headers, pBytes, s.timeout)
	if err != nil {
		s.logger.WithError(err).Error("error performing HTTP request for embeddings")
		return nil, err
	}

	if resp.StatusCode != fasthttp.StatusOK {
		s.logger.WithField("response", string(resp.Body)).Error("non-OK response from embeddings API")
		return nil, fmt.Errorf("%w: %d", embedding.ErrProviderNonOKResponse, resp.StatusCode)
	}

	var embResp openAIEmbeddingResponse
	if err := json.Unmarshal(resp.Body, &embResp); err != nil {
		s.logger.WithError(err).Error("failed to decode embeddings response")
		return nil, err
	}

	if len(embResp.Data) == 0 || len(embResp.Data[0].Embedding) == 0 {
		s.logger.Error("empty embeddings received from API")
		return nil, embedding.ErrEmptyEmbedding
	}

	return &embedding.Embedding{
		Text:      text,
		Model:     s.model,
		Value:     embResp.Data[0].Embedding,
		CreatedAt: time.Now(),
	}, nil
}
