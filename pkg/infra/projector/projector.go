// Package projector implements the t-SNE and UMAP projection strategies.
package projector

import (
	"context"
	"math"
	"math/rand"

	"github.com/deepx/semspace/pkg/domain/projection"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	TSNEName = "tsne"
	UMAPName = "umap"

	// checkEvery is how many optimisation steps run between context checks.
	checkEvery = 50
)

type Options struct {
	Iterations int
	Seed       int64
}

func (o Options) withDefaults() Options {
	if o.Iterations <= 0 {
		o.Iterations = 500
	}
	if o.Seed == 0 {
		o.Seed = 42
	}
	return o
}

func toDense(vectors [][]float64) *mat.Dense {
	n, d := len(vectors), len(vectors[0])
	data := make([]float64, 0, n*d)
	for _, v := range vectors {
		data = append(data, v...)
	}
	return mat.NewDense(n, d, data)
}

// pairwiseDistances returns the n×n euclidean distance matrix of the rows of x,
// squared when squared is set.
func pairwiseDistances(x *mat.Dense, squared bool) [][]float64 {
	n, _ := x.Dims()
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		ri := x.RawRowView(i)
		for j := i + 1; j < n; j++ {
			d := floats.Distance(ri, x.RawRowView(j), 2)
			if squared {
				d *= d
			}
			out[i][j], out[j][i] = d, d
		}
	}
	return out
}

func randomLayout(n int, rng *rand.Rand, scale float64) *mat.Dense {
	y := mat.NewDense(n, projection.Components, nil)
	for i := 0; i < n; i++ {
		for c := 0; c < projection.Components; c++ {
			y.Set(i, c, (rng.Float64()*2-1)*scale)
		}
	}
	return y
}

func coordinates(y *mat.Dense) []projection.Coordinates {
	n, _ := y.Dims()
	out := make([]projection.Coordinates, n)
	for i := range out {
		row := y.RawRowView(i)
		for c := 0; c < projection.Components; c++ {
			v := row[c]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				v = 0
			}
			out[i][c] = v
		}
	}
	return out
}

func sqDist(a, b []float64) float64 {
	var s float64
	for k := range a {
		d := a[k] - b[k]
		s += d * d
	}
	return s
}

func ctxErr(ctx context.Context, step int) error {
	if step%checkEvery != 0 {
		return nil
	}
	return ctx.Err()
}
