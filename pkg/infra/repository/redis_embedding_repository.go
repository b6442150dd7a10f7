package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/deepx/semspace/pkg/common"
	"github.com/deepx/semspace/pkg/domain/embedding"
	"github.com/deepx/semspace/pkg/infra/cache"
)

type redisEmbeddingRepository struct {
	cache cache.Client
}

func NewRedisEmbeddingRepository(cache cache.Client) embedding.Repository {
	return &redisEmbeddingRepository{
		cache: cache,
	}
}

// EmbeddingKey addresses a cached vector by model and text digest.
func EmbeddingKey(model, text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf(cache.EmbeddingKeyPattern, model, hex.EncodeToString(sum[:]))
}

func (r *redisEmbeddingRepository) Store(ctx context.Context, embeddingData *embedding.Embedding) error {
	jsonData, err := json.Marshal(embeddingData)
	if err != nil {
		return fmt.Errorf("failed to marshal embedding data: %w", err)
	}
	key := EmbeddingKey(embeddingData.Model, embeddingData.Text)
	return r.cache.Set(ctx, key, string(jsonData), common.EmbeddingCacheTTL)
}

func (r *redisEmbeddingRepository) Get(ctx context.Context, model, text string) (*embedding.Embedding, error) {
	jsonData, err := r.cache.Get(ctx, EmbeddingKey(model, text))
	if errors.Is(err, cache.ErrNotFound) {
		return nil, embedding.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get embedding from cache: %w", err)
	}

	var data embedding.Embedding
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal embedding data: %w", err)
	}
	return &data, nil
}
