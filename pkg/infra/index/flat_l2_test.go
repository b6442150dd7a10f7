package index

import (
	"fmt"
	"sync"
	"testing"

	domain "github.com/deepx/semspace/pkg/domain/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatL2_SearchEmptyIndex(t *testing.T) {
	idx := NewFlatL2(0)

	res, err := idx.Search([]float64{1, 2, 3}, 5)

	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestFlatL2_NearestIsItself(t *testing.T) {
	idx := NewFlatL2(0)
	_, err := idx.Add("A.", []float64{1, 0})
	require.NoError(t, err)
	_, err = idx.Add("B.", []float64{0, 1})
	require.NoError(t, err)

	res, err := idx.Search([]float64{1, 0}, 1)

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "A.", res[0].Sentence)
	assert.Equal(t, 0, res[0].Position)
	assert.InDelta(t, 0.0, res[0].Distance, 1e-12)
}

func TestFlatL2_OrdersByDistance(t *testing.T) {
	idx := NewFlatL2(1)
	for i, v := range []float64{10, 1, 5, 3} {
		n, err := idx.Add(fmt.Sprintf("s%d", i), []float64{v})
		require.NoError(t, err)
		assert.Equal(t, i+1, n)
	}

	res, err := idx.Search([]float64{0}, 3)

	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, []string{"s1", "s3", "s2"}, []string{res[0].Sentence, res[1].Sentence, res[2].Sentence})
	assert.InDelta(t, 1.0, res[0].Distance, 1e-12)
	assert.InDelta(t, 3.0, res[1].Distance, 1e-12)
}

func TestFlatL2_TiesKeepInsertionOrder(t *testing.T) {
	idx := NewFlatL2(0)
	_, _ = idx.Add("first", []float64{1, 1})
	_, _ = idx.Add("second", []float64{1, 1})

	res, err := idx.Search([]float64{1, 1}, 2)

	require.NoError(t, err)
	assert.Equal(t, "first", res[0].Sentence)
	assert.Equal(t, "second", res[1].Sentence)
}

func TestFlatL2_KLargerThanSize(t *testing.T) {
	idx := NewFlatL2(0)
	_, _ = idx.Add("only", []float64{2})

	res, err := idx.Search([]float64{0}, 10)

	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestFlatL2_NonPositiveK(t *testing.T) {
	idx := NewFlatL2(0)
	_, _ = idx.Add("only", []float64{2})

	res, err := idx.Search([]float64{0}, 0)

	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestFlatL2_DimensionMismatch(t *testing.T) {
	idx := NewFlatL2(0)
	_, err := idx.Add("a", []float64{1, 2})
	require.NoError(t, err)

	n, err := idx.Add("b", []float64{1, 2, 3})
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
	assert.Equal(t, 1, n)

	_, err = idx.Search([]float64{1}, 1)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
	assert.Equal(t, 1, idx.Len())
	assert.Equal(t, 2, idx.Dimension())
}

func TestFlatL2_EmptyVector(t *testing.T) {
	idx := NewFlatL2(0)
	_, err := idx.Add("a", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyVector)
	assert.Equal(t, 0, idx.Len())
}

func TestFlatL2_CopiesInput(t *testing.T) {
	idx := NewFlatL2(0)
	v := []float64{1, 1}
	_, _ = idx.Add("a", v)
	v[0] = 100

	res, err := idx.Search([]float64{1, 1}, 1)

	require.NoError(t, err)
	assert.InDelta(t, 0.0, res[0].Distance, 1e-12)
}

func TestFlatL2_PositionsNeverExceedAdds(t *testing.T) {
	idx := NewFlatL2(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = idx.Add(fmt.Sprintf("s%d", i), []float64{float64(i), 0})
			_, _ = idx.Search([]float64{0, 0}, 5)
		}(i)
	}
	wg.Wait()

	res, err := idx.Search([]float64{0, 0}, 100)
	require.NoError(t, err)
	assert.Len(t, res, 50)
	for _, r := range res {
		assert.Less(t, r.Position, 50)
		assert.Equal(t, fmt.Sprintf("s%d", int(idx.vectors[r.Position][0])), r.Sentence)
	}
}
