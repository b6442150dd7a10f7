package factory

import (
	"context"
	"time"

	"github.com/deepx/semspace/pkg/infra/httpx"
	"github.com/deepx/semspace/pkg/infra/prometheus"
	"github.com/deepx/semspace/pkg/infra/providers"
	"github.com/sirupsen/logrus"
)

// guardedClient runs every call through a circuit breaker and records its
// latency. Calls are never retried.
type guardedClient struct {
	name    string
	next    providers.Client
	breaker httpx.CircuitBreaker
	logger  *logrus.Logger
}

func NewGuardedClient(name string, next providers.Client, breaker httpx.CircuitBreaker, logger *logrus.Logger) providers.Client {
	return &guardedClient{
		name:    name,
		next:    next,
		breaker: breaker,
		logger:  logger,
	}
}

func (g *guardedClient) Ask(ctx context.Context, config *providers.Config, prompt string) (*providers.CompletionResponse, error) {
	start := time.Now()
	var resp *providers.CompletionResponse
	err := g.breaker.Execute(func() error {
		var err error
		resp, err = g.next.Ask(ctx, config, prompt)
		return err
	})

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	elapsed := time.Since(start)
	if prometheus.Config.Enabled {
		prometheus.GenerationLatency.WithLabelValues(g.name, outcome).Observe(float64(elapsed.Milliseconds()))
	}

	if err != nil {
		g.logger.WithError(err).WithFields(logrus.Fields{
			"provider": g.name,
			"model":    config.Model,
			"breaker":  g.breaker.State(),
		}).Error("generation failed")
		return nil, err
	}
	if resp == nil {
		return nil, providers.ErrNoCompletion
	}
	if resp.Provider == "" {
		resp.Provider = g.name
	}
	g.logger.WithFields(logrus.Fields{
		"provider":          g.name,
		"model":             resp.Model,
		"completion_tokens": resp.Usage.CompletionTokens,
		"duration_ms":       elapsed.Milliseconds(),
	}).Debug("generation completed")
	return resp, nil
}
