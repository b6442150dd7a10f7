package repository

import (
	"context"
	"fmt"

	"github.com/deepx/semspace/pkg/domain/embedding"
	"github.com/deepx/semspace/pkg/infra/cache"
)

type memoryEmbeddingRepository struct {
	entries *cache.TTLMap
}

// NewMemoryEmbeddingRepository keeps embeddings in process when redis is
// disabled.
func NewMemoryEmbeddingRepository(entries *cache.TTLMap) embedding.Repository {
	return &memoryEmbeddingRepository{
		entries: entries,
	}
}

func (r *memoryEmbeddingRepository) Store(_ context.Context, embeddingData *embedding.Embedding) error {
	stored := *embeddingData
	stored.Value = append([]float64(nil), embeddingData.Value...)
	r.entries.Set(EmbeddingKey(embeddingData.Model, embeddingData.Text), &stored)
	return nil
}

func (r *memoryEmbeddingRepository) Get(_ context.Context, model, text string) (*embedding.Embedding, error) {
	value, ok := r.entries.Get(EmbeddingKey(model, text))
	if !ok {
		return nil, embedding.ErrCacheMiss
	}
	stored, ok := value.(*embedding.Embedding)
	if !ok {
		return nil, fmt.Errorf("unexpected cached type %T", value)
	}
	out := *stored
	out.Value = append([]float64(nil), stored.Value...)
	return &out, nil
}
