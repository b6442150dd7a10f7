package dependency_container

import (
	"fmt"

	"github.com/deepx/semspace/pkg/app/expander"
	"github.com/deepx/semspace/pkg/app/semantic"
	"github.com/deepx/semspace/pkg/common"
	"github.com/deepx/semspace/pkg/config"
	domainEmbedding "github.com/deepx/semspace/pkg/domain/embedding"
	handlers "github.com/deepx/semspace/pkg/handlers/http"
	"github.com/deepx/semspace/pkg/infra/cache"
	"github.com/deepx/semspace/pkg/infra/embedding/cached"
	embeddingFactory "github.com/deepx/semspace/pkg/infra/embedding/factory"
	"github.com/deepx/semspace/pkg/infra/httpx"
	"github.com/deepx/semspace/pkg/infra/index"
	"github.com/deepx/semspace/pkg/infra/projector"
	projectorFactory "github.com/deepx/semspace/pkg/infra/projector/factory"
	providersFactory "github.com/deepx/semspace/pkg/infra/providers/factory"
	"github.com/deepx/semspace/pkg/infra/repository"
	"github.com/deepx/semspace/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Container struct {
	Cache               cache.Client
	EmbeddingRepository domainEmbedding.Repository
	EmbeddingCreator    domainEmbedding.Creator
	Expander            expander.Expander
	Indexer             semantic.Indexer
	Explorer            semantic.Explorer
	HandlerTransport    *handlers.HandlerTransport
	MiddlewareTransport *middleware.Transport

	stopJanitor func()
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	// NewCache overrides the redis connection, mainly for tests.
	NewCache func(cfg cache.Config, logger *logrus.Logger) (cache.Client, error)
}

func NewContainer(di ContainerDI) (*Container, error) {
	cfg := di.Cfg
	httpClient := httpx.NewFastHTTPClient(httpx.WithTimeout(cfg.Generation.Timeout))

	var cacheInstance cache.Client
	var embeddingRepository domainEmbedding.Repository
	var stopJanitor func()
	if cfg.Redis.Enabled {
		newCache := di.NewCache
		if newCache == nil {
			newCache = cache.NewClient
		}
		var err error
		cacheInstance, err = newCache(cache.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TLS:      cfg.Redis.TLS,
		}, di.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize cache: %w", err)
		}
		embeddingRepository = repository.NewRedisEmbeddingRepository(cacheInstance)
	} else {
		di.Logger.Info("redis disabled, caching embeddings in memory")
		memory := cache.NewTTLMap(common.EmbeddingCacheTTL)
		stopJanitor = memory.StartJanitor(common.EmbeddingCachePurgeInterval)
		embeddingRepository = repository.NewMemoryEmbeddingRepository(memory)
	}

	container, err := buildContainer(di, httpClient, embeddingRepository)
	if err != nil {
		if stopJanitor != nil {
			stopJanitor()
		}
		if cacheInstance != nil {
			_ = cacheInstance.Close()
		}
		return nil, err
	}
	container.Cache = cacheInstance
	container.stopJanitor = stopJanitor
	return container, nil
}

func buildContainer(
	di ContainerDI,
	httpClient httpx.Doer,
	embeddingRepository domainEmbedding.Repository,
) (*Container, error) {
	cfg := di.Cfg

	// embeddings
	embeddingBackend, err := embeddingFactory.NewServiceLocator(di.Logger, httpClient).GetService(cfg.Embedding)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embedding service: %w", err)
	}
	creator := cached.NewCachedCreator(
		cfg.Embedding.Provider,
		cfg.Embedding.Model,
		embeddingBackend,
		embeddingRepository,
		di.Logger,
	)

	// generation
	providerClient, err := providersFactory.NewProviderLocator(httpClient, cfg.Generation.Timeout).Get(cfg.Generation.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generation provider: %w", err)
	}
	breaker := httpx.NewCircuitBreaker(
		cfg.Generation.Provider,
		cfg.Generation.Breaker.Timeout,
		cfg.Generation.Breaker.MaxFailures,
		di.Logger,
	)
	guarded := providersFactory.NewGuardedClient(cfg.Generation.Provider, providerClient, breaker, di.Logger)
	ideaExpander := expander.NewExpander(di.Logger, guarded, cfg.Generation)

	// index and projection
	indexer := semantic.NewIndexer(di.Logger, creator, index.NewFlatL2(0))
	projectors := projectorFactory.NewProjectorLocator(projector.Options{
		Iterations: cfg.Projector.Iterations,
		Seed:       cfg.Projector.Seed,
	})
	explorer := semantic.NewExplorer(
		di.Logger,
		creator,
		ideaExpander,
		projectors,
		cfg.Projector.Default,
		cfg.Explore.EmbedConcurrency,
	)

	handlerTransport := &handlers.HandlerTransport{
		ExpandHandler:          handlers.NewExpandHandler(di.Logger, ideaExpander),
		ExpandContinuumHandler: handlers.NewExpandContinuumHandler(di.Logger, ideaExpander),
		ExploreHandler:         handlers.NewExploreHandler(di.Logger, explorer),
		EmbedHandler:           handlers.NewEmbedHandler(di.Logger, indexer),
		SearchHandler:          handlers.NewSearchHandler(di.Logger, indexer),
		StatsHandler:           handlers.NewStatsHandler(indexer),
		GetVersionHandler:      handlers.NewGetVersionHandler(cfg),
		HealthHandler:          handlers.NewHealthHandler(),
	}

	middlewareTransport := middleware.NewTransport(
		middleware.NewPanicRecoverMiddleware(di.Logger),
		middleware.NewRequestIDMiddleware(),
		middleware.NewCORSMiddleware(cfg.Server.CORSOrigin),
		middleware.NewAccessLogMiddleware(di.Logger),
		middleware.NewMetricsMiddleware(),
	)

	return &Container{
		EmbeddingRepository: embeddingRepository,
		EmbeddingCreator:    creator,
		Expander:            ideaExpander,
		Indexer:             indexer,
		Explorer:            explorer,
		HandlerTransport:    handlerTransport,
		MiddlewareTransport: middlewareTransport,
	}, nil
}

// Close stops the in-memory cache sweep and releases the cache connection
// when one was opened.
func (c *Container) Close() error {
	if c.stopJanitor != nil {
		c.stopJanitor()
	}
	if c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
