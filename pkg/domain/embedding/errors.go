package embedding

import "errors"

var (
	ErrEmptyText             = errors.New("text to embed is empty")
	ErrEmptyEmbedding        = errors.New("empty embedding received from provider")
	ErrProviderNonOKResponse = errors.New("non-OK response from embeddings provider")
	ErrCacheMiss             = errors.New("embedding not cached")
)
