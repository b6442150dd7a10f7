package cached

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/deepx/semspace/pkg/domain/embedding"
	"github.com/deepx/semspace/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// creator serves embeddings from a repository and only calls the backend on
// a miss. Concurrent misses for the same text share one backend call.
type creator struct {
	provider string
	model    string
	next     embedding.Creator
	repo     embedding.Repository
	logger   *logrus.Logger
	group    singleflight.Group
}

func NewCachedCreator(
	provider, model string,
	next embedding.Creator,
	repo embedding.Repository,
	logger *logrus.Logger,
) embedding.Creator {
	return &creator{
		provider: provider,
		model:    model,
		next:     next,
		repo:     repo,
		logger:   logger,
	}
}

func (c *creator) Generate(ctx context.Context, text string) (*embedding.Embedding, error) {
	if strings.TrimSpace(text) == "" {
		return nil, embedding.ErrEmptyText
	}

	cached, err := c.repo.Get(ctx, c.model, text)
	switch {
	case err == nil && cached.Dimension() > 0:
		c.countLookup("hit")
		return cached, nil
	case err == nil, errors.Is(err, embedding.ErrCacheMiss):
		c.countLookup("miss")
	default:
		c.countLookup("error")
		c.logger.WithError(err).Warn("embedding cache lookup failed")
	}

	v, err, _ := c.group.Do(c.model+"\x00"+text, func() (interface{}, error) {
		start := time.Now()
		e, err := c.next.Generate(ctx, text)
		if prometheus.Config.Enabled {
			prometheus.EmbeddingLatency.WithLabelValues(c.provider).Observe(float64(time.Since(start).Milliseconds()))
		}
		if err != nil {
			return nil, err
		}
		if c.model != "" {
			e.Model = c.model
		}
		e.Text = text
		if err := c.repo.Store(ctx, e); err != nil {
			c.logger.WithError(err).Warn("failed to cache embedding")
		}
		return e, nil
	})
	if err != nil {
		return nil, err
	}

	shared := v.(*embedding.Embedding) //nolint:errcheck
	out := *shared
	out.Value = append([]float64(nil), shared.Value...)
	return &out, nil
}

func (c *creator) countLookup(result string) {
	if prometheus.Config.Enabled {
		prometheus.EmbeddingCache.WithLabelValues(result).Inc()
	}
}
