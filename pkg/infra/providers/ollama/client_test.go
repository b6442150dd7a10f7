package ollama

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/deepx/semspace/pkg/common"
	"github.com/deepx/semspace/pkg/infra/httpx"
	"github.com/deepx/semspace/pkg/infra/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

func newTestServer(t *testing.T, handler fasthttp.RequestHandler) *fasthttp.Client {
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
	return client
}

func TestAsk(t *testing.T) {
	var received generateRequest
	httpClient := newTestServer(t, func(ctx *fasthttp.RequestCtx) {
		assert.Equal(t, "/api/generate", string(ctx.Path()))
		assert.NoError(t, json.Unmarshal(ctx.PostBody(), &received))
		ctx.SetBodyString(`{"model":"tinyllama","response":" foo\n- bar\n","done":true,"prompt_eval_count":7,"eval_count":5}`)
	})
	c := NewOllamaClient(httpClient, time.Second)

	ctx := context.WithValue(context.Background(), common.RequestIDKey, "req-1")
	resp, err := c.Ask(ctx, &providers.Config{
		BaseURL:     "http://ollama.local/",
		Model:       "tinyllama",
		MaxTokens:   60,
		Temperature: 0.8,
		TopK:        50,
		TopP:        0.95,
		Options:     map[string]interface{}{"keep_alive": "5m"},
	}, "seed\n-")
	require.NoError(t, err)

	assert.Equal(t, "ollama-req-1", resp.ID)
	assert.Equal(t, "tinyllama", resp.Model)
	assert.Equal(t, " foo\n- bar\n", resp.Response)
	assert.True(t, resp.Continuation)
	assert.Equal(t, providers.Usage{PromptTokens: 7, CompletionTokens: 5, TotalTokens: 12}, resp.Usage)

	assert.Equal(t, "seed\n-", received.Prompt)
	assert.True(t, received.Raw)
	assert.False(t, received.Stream)
	assert.Equal(t, "5m", received.KeepAlive)
	assert.EqualValues(t, 60, received.Options["num_predict"])
	assert.EqualValues(t, 0.8, received.Options["temperature"])
	assert.EqualValues(t, 50, received.Options["top_k"])
	assert.EqualValues(t, 0.95, received.Options["top_p"])
}

func TestAsk_NonOKResponse(t *testing.T) {
	httpClient := newTestServer(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		ctx.SetBodyString(`{"error":"model 'missing' not found"}`)
	})
	c := NewOllamaClient(httpClient, time.Second)

	_, err := c.Ask(context.Background(), &providers.Config{BaseURL: "http://ollama.local", Model: "missing"}, "x")
	assert.ErrorIs(t, err, providers.ErrNonOKResponse)
	assert.ErrorContains(t, err, "model 'missing' not found")
}

func TestAsk_NonJSONErrorBody(t *testing.T) {
	httpClient := newTestServer(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusBadGateway)
		ctx.SetBodyString("<html><body>502 Bad Gateway</body></html>")
	})
	c := NewOllamaClient(httpClient, time.Second)

	_, err := c.Ask(context.Background(), &providers.Config{BaseURL: "http://ollama.local", Model: "tinyllama"}, "x")
	assert.ErrorIs(t, err, providers.ErrNonOKResponse)
	assert.ErrorContains(t, err, "502")
	assert.ErrorContains(t, err, "Bad Gateway")
	assert.NotContains(t, err.Error(), "failed to parse")
}

func TestAsk_SystemPromptIsNotContinuation(t *testing.T) {
	httpClient := newTestServer(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString(`{"model":"tinyllama","response":"- foo","done":true}`)
	})
	c := NewOllamaClient(httpClient, time.Second)

	resp, err := c.Ask(context.Background(), &providers.Config{
		BaseURL:      "http://ollama.local",
		Model:        "tinyllama",
		SystemPrompt: "answer with bullets",
	}, "x")
	require.NoError(t, err)
	assert.False(t, resp.Continuation)
}

func TestAsk_MissingModel(t *testing.T) {
	c := NewOllamaClient(httpx.NewFastHTTPClient(), time.Second)
	_, err := c.Ask(context.Background(), &providers.Config{}, "x")
	assert.ErrorIs(t, err, providers.ErrModelRequired)
}

func TestAsk_InvalidOptions(t *testing.T) {
	c := NewOllamaClient(httpx.NewFastHTTPClient(), time.Second)
	_, err := c.Ask(context.Background(), &providers.Config{
		Model:   "tinyllama",
		Options: map[string]interface{}{"num_ctx": "large"},
	}, "x")
	assert.ErrorContains(t, err, "invalid ollama options")
}

func TestBuildRequest_SystemPromptDisablesRaw(t *testing.T) {
	req := buildRequest(&providers.Config{Model: "m", SystemPrompt: "be brief", Seed: 42}, ollamaOptions{NumCtx: 2048}, "p")
	assert.False(t, req.Raw)
	assert.Equal(t, "be brief", req.System)
	assert.EqualValues(t, 42, req.Options["seed"])
	assert.EqualValues(t, 2048, req.Options["num_ctx"])
	assert.NotContains(t, req.Options, "top_k")
}
