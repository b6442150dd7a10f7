package embedding

import (
	"time"
)

type Embedding struct {
	Text      string    `json:"text"`
	Model     string    `json:"model"`
	Value     []float64 `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *Embedding) Dimension() int {
	if e == nil {
		return 0
	}
	return len(e.Value)
}
