package factory

import (
	"fmt"

	"github.com/deepx/semspace/pkg/domain/projection"
	"github.com/deepx/semspace/pkg/infra/projector"
)

type ProjectorLocator struct {
	opts       projector.Options
	projectors map[string]projection.Projector
}

func NewProjectorLocator(opts projector.Options) *ProjectorLocator {
	return &ProjectorLocator{
		opts: opts,
		projectors: map[string]projection.Projector{
			projector.TSNEName: projector.NewTSNE(opts),
			projector.UMAPName: projector.NewUMAP(opts),
		},
	}
}

func (l *ProjectorLocator) Get(name string) (projection.Projector, error) {
	p, ok := l.projectors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", projection.ErrUnknownProjector, name)
	}
	return p, nil
}

// Names lists the registered projectors.
func (l *ProjectorLocator) Names() []string {
	return []string{projector.TSNEName, projector.UMAPName}
}
