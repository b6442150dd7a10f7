package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/deepx/semspace/pkg/domain/embedding"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const DefaultModel = "text-embedding-004"

var ErrAPIKeyRequired = errors.New("gemini embeddings require an API key")

type embeddingService struct {
	logger  *logrus.Logger
	model   string
	baseURL string
	apiKey  string
	timeout time.Duration

	once      sync.Once
	client    *genai.Client
	clientErr error
}

func NewGeminiEmbeddingService(
	logger *logrus.Logger,
	model, baseURL, apiKey string,
	timeout time.Duration,
) embedding.Creator {
	if model == "" {
		model = DefaultModel
	}
	return &embeddingService{
		logger:  logger,
		model:   model,
		baseURL: baseURL,
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

	cli, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := cli.Models.EmbedContent(ctx, s.model, genai.Text(text), nil)
	if err != nil {
		s.logger.WithError(err).Error("error performing embed content request")
		return nil, fmt.Errorf("%w: %v", embedding.ErrProviderNonOKResponse, err)
	}
	if result == nil || len(result.Embeddings) == 0 || result.Embeddings[0] == nil ||
		len(result.Embeddings[0].Values) == 0 {
		return nil, embedding.ErrEmptyEmbedding
	}

	values := result.Embeddings[0].Values
	vector := make([]float64, len(values))
	for i, v := range values {
		vector[i] = float64(v)
	}

	return &embedding.Embedding{
		Text:      text,
		Model:     s.model,
		Value:     vector,
		CreatedAt: time.Now(),
	}, nil
}

func (s *embeddingService) getClient(ctx context.Context) (*genai.Client, error) {
	s.once.Do(func() {
		cfg := &genai.ClientConfig{
			APIKey:  s.apiKey,
			Backend: genai.BackendGeminiAPI,
		}
		if s.baseURL != "" {
			cfg.HTTPOptions = genai.HTTPOptions{BaseURL: s.baseURL}
		}
		s.client, s.clientErr = genai.NewClient(ctx, cfg)
		if s.clientErr != nil {
			s.clientErr = fmt.Errorf("failed to create gemini client: %w", s.clientErr)
		}
	})
	return s.client, s.clientErr
}
