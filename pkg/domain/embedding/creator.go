package embedding

import (
	"context"
)

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=creator_mock.go --case=underscore --with-expecter

// Creator turns one text into one pooled embedding vector.
type Creator interface {
	Generate(ctx context.Context, text string) (*Embedding, error)
}
