package index

import "errors"

var (
	ErrEmptyVector       = errors.New("vector is empty")
	ErrDimensionMismatch = errors.New("vector dimension does not match index dimension")
)

// Neighbor is one search hit resolved to the sentence stored at Position.
type Neighbor struct {
	Position int     `json:"position"`
	Sentence string  `json:"sentence"`
	Distance float64 `json:"distance"`
}

// Index is an append-only sentence store paired row by row with its vectors.
type Index interface {
	Add(sentence string, vector []float64) (int, error)
	Search(vector []float64, k int) ([]Neighbor, error)
	Len() int
	Dimension() int
}
