package index

import (
	"fmt"
	"sort"
	"sync"

	domain "github.com/deepx/semspace/pkg/domain/index"
	"gonum.org/v1/gonum/floats"
)

// FlatL2 is an exhaustive Euclidean index. Row i of vectors always belongs to
// sentences[i]; both slices only ever grow together under mu.
type FlatL2 struct {
	mu        sync.RWMutex
	dimension int
	sentences []string
	vectors   [][]float64
}

// NewFlatL2 creates an empty index. A zero dimension is fixed by the first Add.
func NewFlatL2(dimension int) *FlatL2 {
	return &FlatL2{dimension: dimension}
}

// Add stores a copy of vector and returns the new number of rows.
func (f *FlatL2) Add(sentence string, vector []float64) (int, error) {
	if len(vector) == 0 {
		return 0, domain.ErrEmptyVector
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.dimension == 0 {
		f.dimension = len(vector)
	}
	if len(vector) != f.dimension {
		return len(f.sentences), fmt.Errorf("%w: got %d, want %d", domain.ErrDimensionMismatch, len(vector), f.dimension)
	}

	row := make([]float64, len(vector))
	copy(row, vector)
	f.sentences = append(f.sentences, sentence)
	f.vectors = append(f.vectors, row)
	return len(f.sentences), nil
}

// Search returns up to k stored sentences closest to vector, nearest first.
// Ties keep insertion order.
func (f *FlatL2) Search(vector []float64, k int) ([]domain.Neighbor, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if len(f.vectors) == 0 || k <= 0 {
		return []domain.Neighbor{}, nil
	}
	if len(vector) != f.dimension {
		return nil, fmt.Errorf("%w: got %d, want %d", domain.ErrDimensionMismatch, len(vector), f.dimension)
	}

	hits := make([]domain.Neighbor, 0, len(f.vectors))
	for i, row := range f.vectors {
		hits = append(hits, domain.Neighbor{Position: i, Distance: floats.Distance(vector, row, 2)})
	}
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Distance < hits[b].Distance
	})
	if k < len(hits) {
		hits = hits[:k]
	}

	results := make([]domain.Neighbor, 0, len(hits))
	for _, h := range hits {
		if h.Position >= len(f.sentences) {
			continue
		}
		h.Sentence = f.sentences[h.Position]
		results = append(results, h)
	}
	return results, nil
}

func (f *FlatL2) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.sentences)
}

func (f *FlatL2) Dimension() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.dimension
}
