package response

import (
	"time"

	"github.com/deepx/semspace/pkg/domain/index"
	"github.com/deepx/semspace/pkg/domain/projection"
)

type IdeasResponse struct {
	Ideas []string `json:"ideas"`
}

type NodesResponse struct {
	Nodes []string `json:"nodes"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SearchResponse struct {
	Neighbors []string `json:"neighbors"`
}

// SearchResponseFrom keeps the sentences of hits, nearest first.
func SearchResponseFrom(hits []index.Neighbor) SearchResponse {
	out := SearchResponse{Neighbors: make([]string, 0, len(hits))}
	for _, h := range hits {
		out.Neighbors = append(out.Neighbors, h.Sentence)
	}
	return out
}

type ExploreResponse struct {
	Ideas     []string           `json:"ideas"`
	Points    []projection.Point `json:"points"`
	Projector string             `json:"projector"`
	Warning   string             `json:"warning,omitempty"`
}

type StatsResponse struct {
	Size      int `json:"size"`
	Dimension int `json:"dimension"`
}

type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
