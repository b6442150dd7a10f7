package dependency_container

import (
	"errors"
	"testing"

	"github.com/deepx/semspace/pkg/config"
	"github.com/deepx/semspace/pkg/infra/cache"
	"github.com/go-redis/redismock/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer_MemoryCache(t *testing.T) {
	c, err := NewContainer(ContainerDI{Cfg: config.Default(), Logger: logrus.New()})
	require.NoError(t, err)

	assert.Nil(t, c.Cache)
	assert.NotNil(t, c.EmbeddingRepository)
	assert.NotNil(t, c.Indexer)
	assert.NotNil(t, c.Explorer)
	assert.NotNil(t, c.HandlerTransport.ExpandHandler)
	assert.NotNil(t, c.HandlerTransport.HealthHandler)
	assert.Len(t, c.MiddlewareTransport.GetMiddlewares(), 5)
	assert.NotNil(t, c.stopJanitor)
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

func TestNewContainer_RedisCache(t *testing.T) {
	cfg := config.Default()
	cfg.Redis.Enabled = true
	cfg.Redis.Host = "redis"

	db, _ := redismock.NewClientMock()
	var got cache.Config
	c, err := NewContainer(ContainerDI{
		Cfg:    cfg,
		Logger: logrus.New(),
		NewCache: func(cc cache.Config, _ *logrus.Logger) (cache.Client, error) {
			got = cc
			return cache.NewClientWithRedis(db), nil
		},
	})
	require.NoError(t, err)
	assert.NotNil(t, c.Cache)
	assert.Nil(t, c.stopJanitor)
	assert.Equal(t, "redis", got.Host)
	assert.Equal(t, 6379, got.Port)
}

func TestNewContainer_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.Redis.Enabled = true
	_, err := NewContainer(ContainerDI{
		Cfg:    cfg,
		Logger: logrus.New(),
		NewCache: func(cache.Config, *logrus.Logger) (cache.Client, error) {
			return nil, errors.New("connection refused")
		},
	})
	assert.ErrorContains(t, err, "connection refused")

	cfg = config.Default()
	cfg.Embedding.Provider = "faiss"
	_, err = NewContainer(ContainerDI{Cfg: cfg, Logger: logrus.New()})
	assert.ErrorContains(t, err, "unsupported embedding provider")

	cfg = config.Default()
	cfg.Generation.Provider = "llamacpp"
	_, err = NewContainer(ContainerDI{Cfg: cfg, Logger: logrus.New()})
	assert.ErrorContains(t, err, "generation provider")
}
