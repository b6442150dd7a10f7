package embedding

import (
	"context"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=repository_mock.go --case=underscore --with-expecter

type Repository interface {
	Get(ctx context.Context, model, text string) (*Embedding, error)
	Store(ctx context.Context, embeddingData *Embedding) error
}
