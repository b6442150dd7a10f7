package request

import (
	"fmt"
	"strings"

	"github.com/deepx/semspace/pkg/common"
)

const maxNeighbors = 100

// SentenceRequest is the body of /expand, /expand_continuum and /embed.
type SentenceRequest struct {
	Sentence  string `json:"sentence"`
	Neighbors *int   `json:"neighbors,omitempty"`
}

func (r *SentenceRequest) Validate() error {
	if strings.TrimSpace(r.Sentence) == "" {
		return fmt.Errorf("sentence is required")
	}
	return nil
}

type SearchRequest struct {
	Sentence  string `json:"sentence"`
	Neighbors *int   `json:"neighbors,omitempty"`
}

func (r *SearchRequest) Validate() error {
	if strings.TrimSpace(r.Sentence) == "" {
		return fmt.Errorf("sentence is required")
	}
	if r.Neighbors != nil && (*r.Neighbors < 1 || *r.Neighbors > maxNeighbors) {
		return fmt.Errorf("neighbors must be between 1 and %d", maxNeighbors)
	}
	return nil
}

// K returns the requested neighbour count, defaulting to five.
func (r *SearchRequest) K() int {
	if r.Neighbors == nil {
		return common.DefaultNeighbors
	}
	return *r.Neighbors
}

type ExploreRequest struct {
	Sentence  string `json:"sentence"`
	Projector string `json:"projector,omitempty"`
}

func (r *ExploreRequest) Validate() error {
	if strings.TrimSpace(r.Sentence) == "" {
		return fmt.Errorf("sentence is required")
	}
	r.Projector = strings.ToLower(strings.TrimSpace(r.Projector))
	return nil
}
