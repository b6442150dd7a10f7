// Package projection describes reducing embedding batches to 3D coordinates.
package projection

import (
	"context"
	"errors"
	"fmt"
)

const (
	// Components is the dimensionality every projector reduces to.
	Components = 3
	// MinPoints is the smallest batch both strategies accept.
	MinPoints = 3

	minNeighborhood = 2
	maxNeighborhood = 5
)

var (
	ErrInsufficientPoints = errors.New("not enough points to project")
	ErrRaggedInput        = errors.New("vectors have different dimensions")
	ErrUnknownProjector   = errors.New("unknown projector")
)

type Coordinates [Components]float64

// Point is one projected vector paired with the label it was produced from.
type Point struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

//go:generate mockery --name=Projector --dir=. --output=./mocks --filename=projector_mock.go --case=underscore --with-expecter

type Projector interface {
	Name() string
	Project(ctx context.Context, vectors [][]float64) ([]Coordinates, error)
}

// NeighborhoodSize returns the perplexity / neighbour count used for a batch of
// n points, clamped to [2, min(5, n-1)].
func NeighborhoodSize(n int) int {
	return max(minNeighborhood, min(maxNeighborhood, n-1))
}

// Validate checks that vectors can be projected.
func Validate(vectors [][]float64) error {
	if len(vectors) < MinPoints {
		return fmt.Errorf("%w: got %d, need at least %d", ErrInsufficientPoints, len(vectors), MinPoints)
	}
	dim := len(vectors[0])
	if dim == 0 {
		return fmt.Errorf("%w: empty vector at position 0", ErrRaggedInput)
	}
	for i, v := range vectors {
		if len(v) != dim {
			return fmt.Errorf("%w: vector %d has %d values, expected %d", ErrRaggedInput, i, len(v), dim)
		}
	}
	return nil
}

// Label pairs coordinates with labels by position.
func Label(labels []string, coords []Coordinates) ([]Point, error) {
	if len(labels) != len(coords) {
		return nil, fmt.Errorf("got %d labels for %d coordinates", len(labels), len(coords))
	}
	points := make([]Point, len(coords))
	for i, c := range coords {
		points[i] = Point{Label: labels[i], X: c[0], Y: c[1], Z: c[2]}
	}
	return points, nil
}
