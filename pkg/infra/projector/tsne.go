package projector

import (
	"context"
	"math"
	"math/rand"

	"github.com/deepx/semspace/pkg/domain/projection"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	earlyExaggeration   = 12.0
	maxExplorationSteps = 250
	initialMomentum     = 0.5
	finalMomentum       = 0.8
	minGain             = 0.01
	perplexityTolerance = 1e-5
	perplexitySteps     = 100
	machineEpsilon      = 2.220446049250313e-16
	pcaInitScale        = 1e-4
)

var _ projection.Projector = (*TSNE)(nil)

// TSNE is an exact (O(n²)) t-SNE with PCA initialisation.
type TSNE struct {
	opts Options
}

func NewTSNE(opts Options) *TSNE {
	return &TSNE{opts: opts.withDefaults()}
}

func (t *TSNE) Name() string {
	return TSNEName
}

func (t *TSNE) Project(ctx context.Context, vectors [][]float64) ([]projection.Coordinates, error) {
	if err := projection.Validate(vectors); err != nil {
		return nil, err
	}
	n := len(vectors)
	rng := rand.New(rand.NewSource(t.opts.Seed)) // #nosec G404 -- reproducible layouts

	x := toDense(vectors)
	perplexity := float64(projection.NeighborhoodSize(n))
	p := jointProbabilities(pairwiseDistances(x, true), perplexity)
	y := pcaLayout(x, rng)

	if err := t.optimize(ctx, p, y); err != nil {
		return nil, err
	}
	return coordinates(y), nil
}

// jointProbabilities calibrates a gaussian per row to the target perplexity and
// returns the symmetrised, normalised affinity matrix.
func jointProbabilities(dist [][]float64, perplexity float64) [][]float64 {
	n := len(dist)
	target := math.Log(perplexity)
	cond := make([][]float64, n)

	for i := 0; i < n; i++ {
		row := make([]float64, n)
		beta := 1.0
		betaMin, betaMax := math.Inf(-1), math.Inf(1)

		for step := 0; step < perplexitySteps; step++ {
			var sumP float64
			for j := 0; j < n; j++ {
				if j == i {
					row[j] = 0
					continue
				}
				row[j] = math.Exp(-dist[i][j] * beta)
				sumP += row[j]
			}
			if sumP == 0 {
				sumP = 1e-8
			}
			var sumDP float64
			for j := 0; j < n; j++ {
				row[j] /= sumP
				sumDP += dist[i][j] * row[j]
			}
			entropy := math.Log(sumP) + beta*sumDP
			diff := entropy - target
			if math.Abs(diff) <= perplexityTolerance {
				break
			}
			if diff > 0 {
				betaMin = beta
				if math.IsInf(betaMax, 1) {
					beta *= 2
				} else {
					beta = (beta + betaMax) / 2
				}
			} else {
				betaMax = beta
				if math.IsInf(betaMin, -1) {
					beta /= 2
				} else {
					beta = (beta + betaMin) / 2
				}
			}
		}
		cond[i] = row
	}

	joint := make([][]float64, n)
	var total float64
	for i := 0; i < n; i++ {
		joint[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			joint[i][j] = cond[i][j] + cond[j][i]
			total += joint[i][j]
		}
	}
	total = math.Max(total, machineEpsilon)
	for i := range joint {
		for j := range joint[i] {
			joint[i][j] = math.Max(joint[i][j]/total, machineEpsilon)
		}
	}
	return joint
}

// pcaLayout projects x on its first principal components and rescales the
// first axis to a small standard deviation. Degenerate inputs fall back to a
// seeded random layout.
func pcaLayout(x *mat.Dense, rng *rand.Rand) *mat.Dense {
	n, d := x.Dims()
	if d < projection.Components {
		return randomLayout(n, rng, pcaInitScale)
	}

	var pc stat.PC
	if !pc.PrincipalComponents(x, nil) {
		return randomLayout(n, rng, pcaInitScale)
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	if _, k := vecs.Dims(); k < projection.Components {
		return randomLayout(n, rng, pcaInitScale)
	}

	centered := mat.DenseCopyOf(x)
	for c := 0; c < d; c++ {
		col := mat.Col(nil, c, centered)
		mean := stat.Mean(col, nil)
		for r := 0; r < n; r++ {
			centered.Set(r, c, col[r]-mean)
		}
	}

	var y mat.Dense
	y.Mul(centered, vecs.Slice(0, d, 0, projection.Components))

	std := stat.StdDev(mat.Col(nil, 0, &y), nil)
	if std == 0 || math.IsNaN(std) {
		return randomLayout(n, rng, pcaInitScale)
	}
	y.Scale(pcaInitScale/std, &y)
	return &y
}

func (t *TSNE) optimize(ctx context.Context, p [][]float64, y *mat.Dense) error {
	n, dim := y.Dims()
	iterations := t.opts.Iterations
	exploration := min(maxExplorationSteps, iterations/2)
	learningRate := math.Max(float64(n)/earlyExaggeration/4, 50)

	update := mat.NewDense(n, dim, nil)
	gains := mat.NewDense(n, dim, nil)
	for i := 0; i < n; i++ {
		for c := 0; c < dim; c++ {
			gains.Set(i, c, 1)
		}
	}
	num := make([][]float64, n)
	for i := range num {
		num[i] = make([]float64, n)
	}
	grad := make([]float64, dim)

	for step := 0; step < iterations; step++ {
		if err := ctxErr(ctx, step); err != nil {
			return err
		}
		exaggeration, momentum := 1.0, finalMomentum
		if step < exploration {
			exaggeration, momentum = earlyExaggeration, initialMomentum
		}

		var sumQ float64
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				q := 1 / (1 + sqDist(y.RawRowView(i), y.RawRowView(j)))
				num[i][j], num[j][i] = q, q
				sumQ += 2 * q
			}
		}
		sumQ = math.Max(sumQ, machineEpsilon)

		for i := 0; i < n; i++ {
			for c := range grad {
				grad[c] = 0
			}
			yi := y.RawRowView(i)
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				mult := (exaggeration*p[i][j] - num[i][j]/sumQ) * num[i][j]
				yj := y.RawRowView(j)
				for c := 0; c < dim; c++ {
					grad[c] += 4 * mult * (yi[c] - yj[c])
				}
			}
			for c := 0; c < dim; c++ {
				u, g := update.At(i, c), gains.At(i, c)
				if (grad[c] > 0) != (u > 0) {
					g += 0.2
				} else {
					g *= 0.8
				}
				g = math.Max(g, minGain)
				gains.Set(i, c, g)
				u = momentum*u - learningRate*g*grad[c]
				update.Set(i, c, u)
			}
		}
		y.Add(y, update)
	}

	// center the layout around the origin
	for c := 0; c < dim; c++ {
		col := mat.Col(nil, c, y)
		floats.AddConst(-stat.Mean(col, nil), col)
		y.SetCol(c, col)
	}
	return nil
}
