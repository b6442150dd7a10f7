package projector

import (
	"context"
	"math"
	"math/rand"
	"sort"

	"github.com/deepx/semspace/pkg/domain/projection"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// curve parameters fitted for min_dist=0.1, spread=1.0
	umapA = 1.576943460405378
	umapB = 0.8950608781227859

	negativeSampleRate = 5
	gradientClip       = 4.0
	repulsionEpsilon   = 0.001
	bandwidthSteps     = 64
	bandwidthTolerance = 1e-5
	minDistScale       = 1e-3
	layoutExtent       = 10.0
	layoutNoise        = 1e-4
)

var _ projection.Projector = (*UMAP)(nil)

// UMAP builds a fuzzy k-nearest-neighbour graph, initialises the layout from
// the graph's spectrum and refines it with negative-sampling SGD.
type UMAP struct {
	opts Options
}

func NewUMAP(opts Options) *UMAP {
	return &UMAP{opts: opts.withDefaults()}
}

func (u *UMAP) Name() string {
	return UMAPName
}

type edge struct {
	head, tail int
	weight     float64
}

func (u *UMAP) Project(ctx context.Context, vectors [][]float64) ([]projection.Coordinates, error) {
	if err := projection.Validate(vectors); err != nil {
		return nil, err
	}
	n := len(vectors)
	rng := rand.New(rand.NewSource(u.opts.Seed)) // #nosec G404 -- reproducible layouts

	dist := pairwiseDistances(toDense(vectors), false)
	k := projection.NeighborhoodSize(n)
	knnIdx, knnDist := nearestNeighbors(dist, k)
	rho, sigma := smoothDistances(knnDist)
	graph := fuzzyGraph(n, knnIdx, knnDist, rho, sigma)

	y := spectralLayout(graph, rng)
	if err := u.optimize(ctx, y, graph, rng); err != nil {
		return nil, err
	}
	return coordinates(y), nil
}

// nearestNeighbors returns, per point, the k-1 closest other points and their
// distances in ascending order. The neighbourhood size counts the point itself.
func nearestNeighbors(dist [][]float64, k int) ([][]int, [][]float64) {
	n := len(dist)
	k = max(1, min(k-1, n-1))
	idx := make([][]int, n)
	ds := make([][]float64, n)
	for i := 0; i < n; i++ {
		order := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j != i {
				order = append(order, j)
			}
		}
		sort.SliceStable(order, func(a, b int) bool {
			return dist[i][order[a]] < dist[i][order[b]]
		})
		idx[i] = order[:k]
		ds[i] = make([]float64, k)
		for m, j := range idx[i] {
			ds[i][m] = dist[i][j]
		}
	}
	return idx, ds
}

// smoothDistances finds, for each point, the distance to its closest distinct
// neighbour (rho) and the bandwidth (sigma) for which the neighbour memberships
// sum to log2 of the neighbourhood size.
func smoothDistances(knnDist [][]float64) ([]float64, []float64) {
	n := len(knnDist)
	rho := make([]float64, n)
	sigma := make([]float64, n)

	var globalMean float64
	var count int
	for _, row := range knnDist {
		for _, d := range row {
			globalMean += d
			count++
		}
	}
	if count > 0 {
		globalMean /= float64(count)
	}

	for i, row := range knnDist {
		target := math.Log2(float64(len(row) + 1))
		for _, d := range row {
			if d > 0 {
				rho[i] = d
				break
			}
		}

		lo, hi, mid := 0.0, math.Inf(1), 1.0
		for step := 0; step < bandwidthSteps; step++ {
			var psum float64
			for _, d := range row {
				if r := d - rho[i]; r > 0 {
					psum += math.Exp(-r / mid)
				} else {
					psum++
				}
			}
			if math.Abs(psum-target) < bandwidthTolerance {
				break
			}
			if psum > target {
				hi = mid
				mid = (lo + hi) / 2
			} else {
				lo = mid
				if math.IsInf(hi, 1) {
					mid *= 2
				} else {
					mid = (lo + hi) / 2
				}
			}
		}

		if rho[i] > 0 {
			mid = math.Max(mid, minDistScale*floats.Sum(row)/float64(len(row)))
		} else {
			mid = math.Max(mid, minDistScale*globalMean)
		}
		sigma[i] = mid
	}
	return rho, sigma
}

// fuzzyGraph returns the symmetric membership matrix combining each point's
// local fuzzy set by probabilistic union.
func fuzzyGraph(n int, knnIdx [][]int, knnDist [][]float64, rho, sigma []float64) *mat.SymDense {
	local := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for m, j := range knnIdx[i] {
			r := knnDist[i][m] - rho[i]
			w := 1.0
			if r > 0 && sigma[i] > 0 {
				w = math.Exp(-r / sigma[i])
			}
			local.Set(i, j, w)
		}
	}

	graph := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := local.At(i, j), local.At(j, i)
			graph.SetSym(i, j, a+b-a*b)
		}
	}
	return graph
}

// spectralLayout uses the eigenvectors of the normalised graph laplacian with
// the smallest non-trivial eigenvalues. Graphs too small or disconnected for
// that fall back to a uniform random layout.
func spectralLayout(graph *mat.SymDense, rng *rand.Rand) *mat.Dense {
	n := graph.SymmetricDim()
	if n <= projection.Components+1 {
		return randomLayout(n, rng, layoutExtent)
	}

	degree := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			degree[i] += graph.At(i, j)
		}
		if degree[i] == 0 {
			return randomLayout(n, rng, layoutExtent)
		}
	}

	laplacian := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := -graph.At(i, j) / math.Sqrt(degree[i]*degree[j])
			if i == j {
				v += 1
			}
			laplacian.SetSym(i, j, v)
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(laplacian, true) {
		return randomLayout(n, rng, layoutExtent)
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	y := mat.NewDense(n, projection.Components, nil)
	y.Copy(vecs.Slice(0, n, 1, projection.Components+1))

	maxAbs := 0.0
	for i := 0; i < n; i++ {
		for _, v := range y.RawRowView(i) {
			maxAbs = math.Max(maxAbs, math.Abs(v))
		}
	}
	if maxAbs == 0 || math.IsNaN(maxAbs) {
		return randomLayout(n, rng, layoutExtent)
	}
	y.Scale(layoutExtent/maxAbs, y)
	for i := 0; i < n; i++ {
		row := y.RawRowView(i)
		for c := range row {
			row[c] += rng.NormFloat64() * layoutNoise
		}
	}
	return y
}

func graphEdges(graph *mat.SymDense, epochs int) []edge {
	n := graph.SymmetricDim()
	var maxW float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			maxW = math.Max(maxW, graph.At(i, j))
		}
	}
	var edges []edge
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w := graph.At(i, j)
			if i == j || w <= 0 || w < maxW/float64(epochs) {
				continue
			}
			edges = append(edges, edge{head: i, tail: j, weight: w})
		}
	}
	return edges
}

func clip(v float64) float64 {
	return math.Max(-gradientClip, math.Min(gradientClip, v))
}

func (u *UMAP) optimize(ctx context.Context, y *mat.Dense, graph *mat.SymDense, rng *rand.Rand) error {
	n, dim := y.Dims()
	epochs := u.opts.Iterations
	edges := graphEdges(graph, epochs)
	if len(edges) == 0 {
		return nil
	}

	var maxW float64
	for _, e := range edges {
		maxW = math.Max(maxW, e.weight)
	}
	perSample := make([]float64, len(edges))
	nextSample := make([]float64, len(edges))
	perNegative := make([]float64, len(edges))
	nextNegative := make([]float64, len(edges))
	for m, e := range edges {
		perSample[m] = maxW / e.weight
		nextSample[m] = perSample[m]
		perNegative[m] = perSample[m] / negativeSampleRate
		nextNegative[m] = perNegative[m]
	}

	for epoch := 0; epoch < epochs; epoch++ {
		if err := ctxErr(ctx, epoch); err != nil {
			return err
		}
		alpha := 1 - float64(epoch)/float64(epochs)
		current := float64(epoch)

		for m, e := range edges {
			if nextSample[m] > current {
				continue
			}
			head, tail := y.RawRowView(e.head), y.RawRowView(e.tail)
			d2 := sqDist(head, tail)
			coeff := 0.0
			if d2 > 0 {
				coeff = -2 * umapA * umapB * math.Pow(d2, umapB-1) / (umapA*math.Pow(d2, umapB) + 1)
			}
			for c := 0; c < dim; c++ {
				g := clip(coeff*(head[c]-tail[c])) * alpha
				head[c] += g
				tail[c] -= g
			}
			nextSample[m] += perSample[m]

			negatives := int((current - nextNegative[m]) / perNegative[m])
			for s := 0; s < negatives; s++ {
				other := rng.Intn(n)
				if other == e.head {
					continue
				}
				away := y.RawRowView(other)
				d2 := sqDist(head, away)
				if d2 <= 0 {
					continue
				}
				coeff := 2 * umapB / ((repulsionEpsilon + d2) * (umapA*math.Pow(d2, umapB) + 1))
				for c := 0; c < dim; c++ {
					head[c] += clip(coeff*(head[c]-away[c])) * alpha
				}
			}
			nextNegative[m] += float64(negatives) * perNegative[m]
		}
	}
	return nil
}
