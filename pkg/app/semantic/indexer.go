package semantic

import (
	"context"
	"fmt"

	"github.com/deepx/semspace/pkg/domain/embedding"
	"github.com/deepx/semspace/pkg/domain/index"
	"github.com/deepx/semspace/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

type Stats struct {
	Size      int `json:"size"`
	Dimension int `json:"dimension"`
}

//go:generate mockery --name=Indexer --dir=. --output=./mocks --filename=indexer_mock.go --case=underscore --with-expecter
type Indexer interface {
	Embed(ctx context.Context, sentence string) (int, error)
	Search(ctx context.Context, sentence string, k int) ([]index.Neighbor, error)
	Stats() Stats
}

type indexer struct {
	logger  *logrus.Logger
	creator embedding.Creator
	index   index.Index
}

func NewIndexer(logger *logrus.Logger, creator embedding.Creator, idx index.Index) Indexer {
	return &indexer{
		logger:  logger,
		creator: creator,
		index:   idx,
	}
}

// Embed appends sentence to the index and returns the new index size.
func (i *indexer) Embed(ctx context.Context, sentence string) (int, error) {
	e, err := i.creator.Generate(ctx, sentence)
	if err != nil {
		return 0, fmt.Errorf("failed to embed sentence: %w", err)
	}
	size, err := i.index.Add(sentence, e.Value)
	if err != nil {
		return size, fmt.Errorf("failed to index sentence: %w", err)
	}
	if prometheus.Config.Enabled {
		prometheus.IndexSize.Set(float64(size))
	}
	i.logger.WithField("size", size).Debug("sentence indexed")
	return size, nil
}

// Search returns the k indexed sentences nearest to sentence. An empty index
// answers without calling the embedding backend.
func (i *indexer) Search(ctx context.Context, sentence string, k int) ([]index.Neighbor, error) {
	if i.index.Len() == 0 || k <= 0 {
		return []index.Neighbor{}, nil
	}
	e, err := i.creator.Generate(ctx, sentence)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	neighbors, err := i.index.Search(e.Value, k)
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}
	return neighbors, nil
}

func (i *indexer) Stats() Stats {
	return Stats{
		Size:      i.index.Len(),
		Dimension: i.index.Dimension(),
	}
}
