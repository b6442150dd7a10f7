package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/deepx/semspace/pkg/domain/embedding"
	"github.com/deepx/semspace/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
)

const (
	DefaultBaseURL = "http://localhost:11434"
	embedPath      = "/api/embed"
)

type embeddingService struct {
	client  httpx.Doer
	logger  *logrus.Logger
	model   string
	baseURL string
	timeout time.Duration
	parsers fastjson.ParserPool
}

type embedRequest struct {
	Model    string `json:"model"`
	Input    string `json:"input"`
	Truncate bool   `json:"truncate"`
}

// NewOllamaEmbeddingService embeds text with a local Ollama model. Inputs
// longer than the model context are truncated by the server.
func NewOllamaEmbeddingService(
	client httpx.Doer,
	logger *logrus.Logger,
	model, baseURL string,
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
		timeout: timeout,
	}
}

func (s *embeddingService) Generate(ctx context.Context, text string) (*embedding.Embedding, error) {
	if strings.TrimSpace(text) == "" {
		return nil, embedding.ErrEmptyText
	}

	body, err := json.Marshal(embedRequest{
		Model:    s.model,
		Input:    text,
		Truncate: true,
	})
	if err != nil {
		s.logger.WithError(err).Error("failed to marshal embedding request payload")
		return nil, err
	}

	resp, err := httpx.PostJSON(ctx, s.client, s.baseURL+embedPath, nil, body, s.timeout)
	if err != nil {
		s.logger.WithError(err).Error("error performing HTTP request for embeddings")
		return nil, err
	}
	if resp.StatusCode != 200 {
		s.logger.WithField("response", string(resp.Body)).Error("non-OK response from embeddings API")
		return nil, fmt.Errorf("%w: %d", embedding.ErrProviderNonOKResponse, resp.StatusCode)
	}

	p := s.parsers.Get()
	defer s.parsers.Put(p)
	v, err := p.ParseBytes(resp.Body)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode embeddings response")
		return nil, err
	}

	rows := v.GetArray("embeddings")
	if len(rows) == 0 {
		return nil, embedding.ErrEmptyEmbedding
	}
	values, err := rows[0].Array()
	if err != nil || len(values) == 0 {
		return nil, embedding.ErrEmptyEmbedding
	}
	vector := make([]float64, len(values))
	for i, value := range values {
		f, err := value.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid embedding value at %d: %w", i, err)
		}
		vector[i] = f
	}

	return &embedding.Embedding{
		Text:      text,
		Model:     s.model,
		Value:     vector,
		CreatedAt: time.Now(),
	}, nil
}
