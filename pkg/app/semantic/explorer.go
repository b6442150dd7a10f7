package semantic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deepx/semspace/pkg/app/expander"
	"github.com/deepx/semspace/pkg/common"
	"github.com/deepx/semspace/pkg/domain/embedding"
	"github.com/deepx/semspace/pkg/domain/idea"
	"github.com/deepx/semspace/pkg/domain/projection"
	"github.com/deepx/semspace/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrNoIdeas = errors.New("no valid ideas generated")

const InsufficientPointsWarning = "Not enough points to project (need at least 3)"

// ProjectorLocator resolves a projection strategy by name.
type ProjectorLocator interface {
	Get(name string) (projection.Projector, error)
}

type Exploration struct {
	Ideas     []string           `json:"ideas"`
	Points    []projection.Point `json:"points"`
	Projector string             `json:"projector"`
	Warning   string             `json:"warning,omitempty"`
}

//go:generate mockery --name=Explorer --dir=. --output=./mocks --filename=explorer_mock.go --case=underscore --with-expecter
type Explorer interface {
	Explore(ctx context.Context, sentence, projector string) (*Exploration, error)
}

type explorer struct {
	logger           *logrus.Logger
	creator          embedding.Creator
	expander         expander.Expander
	projectors       ProjectorLocator
	defaultProjector string
	concurrency      int
}

func NewExplorer(
	logger *logrus.Logger,
	creator embedding.Creator,
	exp expander.Expander,
	projectors ProjectorLocator,
	defaultProjector string,
	concurrency int,
) Explorer {
	if concurrency < 1 {
		concurrency = 1
	}
	return &explorer{
		logger:           logger,
		creator:          creator,
		expander:         exp,
		projectors:       projectors,
		defaultProjector: defaultProjector,
		concurrency:      concurrency,
	}
}

// Explore expands sentence into ideas and places the sentence and its ideas
// in a shared 3D space. The seed is always the first point, labelled "You".
func (e *explorer) Explore(ctx context.Context, sentence, projectorName string) (*Exploration, error) {
	if projectorName == "" {
		projectorName = e.defaultProjector
	}
	projector, err := e.projectors.Get(projectorName)
	if err != nil {
		return nil, err
	}

	seed, err := e.creator.Generate(ctx, sentence)
	if err != nil {
		return nil, fmt.Errorf("failed to embed seed sentence: %w", err)
	}

	generated, err := e.expander.ExpandForExplore(ctx, sentence)
	if err != nil {
		return nil, err
	}
	ideas := idea.Filter(generated)
	if len(ideas) == 0 {
		return nil, ErrNoIdeas
	}

	vectors := make([][]float64, len(ideas)+1)
	vectors[0] = seed.Value

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, text := range ideas {
		g.Go(func() error {
			emb, err := e.creator.Generate(gctx, text)
			if err != nil {
				return fmt.Errorf("failed to embed idea %d: %w", i, err)
			}
			vectors[i+1] = emb.Value
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Exploration{
		Ideas:     ideas,
		Points:    []projection.Point{},
		Projector: projector.Name(),
	}
	if len(vectors) < projection.MinPoints {
		e.logger.WithField("points", len(vectors)).Warn("not enough points to project")
		result.Warning = InsufficientPointsWarning
		return result, nil
	}

	start := time.Now()
	coords, err := projector.Project(ctx, vectors)
	if prometheus.Config.Enabled {
		prometheus.ProjectionLatency.WithLabelValues(projector.Name()).Observe(float64(time.Since(start).Milliseconds()))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to project embeddings: %w", err)
	}

	labels := append([]string{common.SelfLabel}, ideas...)
	points, err := projection.Label(labels, coords)
	if err != nil {
		return nil, err
	}
	result.Points = points
	return result, nil
}
