package ollama

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"testing"
	"time"

	"github.com/deepx/semspace/pkg/domain/embedding"
	"github.com/deepx/semspace/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

func newService(t *testing.T, handler fasthttp.RequestHandler) embedding.Creator {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	go func() {
		_ = fasthttp.Serve(ln, handler)
	}()
	t.Cleanup(func() { _ = ln.Close() })

	client := httpx.NewFastHTTPClient()
	client.Dial = func(string) (net.Conn, error) {
		return ln.Dial()
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewOllamaEmbeddingService(client, logger, "tinyllama", "http://ollama.local", time.Second)
}

func TestGenerate(t *testing.T) {
	var received embedRequest
	svc := newService(t, func(ctx *fasthttp.RequestCtx) {
		assert.Equal(t, "/api/embed", string(ctx.Path()))
		assert.NoError(t, json.Unmarshal(ctx.PostBody(), &received))
		ctx.SetBodyString(`{"model":"tinyllama","embeddings":[[0.5,-1.25,3]]}`)
	})

	e, err := svc.Generate(context.Background(), "The sky is blue.")
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5, -1.25, 3}, e.Value)
	assert.Equal(t, "tinyllama", e.Model)
	assert.Equal(t, "The sky is blue.", e.Text)
	assert.Equal(t, 3, e.Dimension())
	assert.True(t, received.Truncate)
	assert.Equal(t, "The sky is blue.", received.Input)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected error
	}{
		{name: "non-OK", status: 500, body: `{"error":"boom"}`, expected: embedding.ErrProviderNonOKResponse},
		{name: "no embeddings", status: 200, body: `{"embeddings":[]}`, expected: embedding.ErrEmptyEmbedding},
		{name: "empty vector", status: 200, body: `{"embeddings":[[]]}`, expected: embedding.ErrEmptyEmbedding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, func(ctx *fasthttp.RequestCtx) {
				ctx.SetStatusCode(tt.status)
				ctx.SetBodyString(tt.body)
			})
			_, err := svc.Generate(context.Background(), "text")
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestGenerate_EmptyText(t *testing.T) {
	svc := NewOllamaEmbeddingService(httpx.NewFastHTTPClient(), logrus.New(), "tinyllama", "", time.Second)
	_, err := svc.Generate(context.Background(), "   ")
	assert.ErrorIs(t, err, embedding.ErrEmptyText)
}
