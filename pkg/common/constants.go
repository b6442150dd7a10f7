package common

import "time"

const (
	EmbeddingCacheTTL = 24 * time.Hour
	// EmbeddingCachePurgeInterval paces the sweep of the in-memory embedding cache.
	EmbeddingCachePurgeInterval = 10 * time.Minute

	RequestIDHeader = "X-Request-Id"

	// SelfLabel marks the seed sentence among projected points.
	SelfLabel = "You"

	DefaultNeighbors  = 5
	DefaultCORSOrigin = "http://localhost:5173"
)
