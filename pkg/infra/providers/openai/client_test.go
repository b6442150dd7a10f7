package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deepx/semspace/pkg/infra/providers"
	"github.com/deepx/semspace/pkg/infra/providers/openai"
	"github.com/openai/openai-go/v2/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk_MissingAPIKey(t *testing.T) {
	client := openai.NewOpenaiClient()

	resp, err := client.Ask(context.Background(), &providers.Config{Model: "gpt-4o-mini"}, "test prompt")
	assert.ErrorIs(t, err, providers.ErrAPIKeyRequired)
	assert.Nil(t, resp)
}

func TestAsk_MissingModel(t *testing.T) {
	client := openai.NewOpenaiClient()

	resp, err := client.Ask(context.Background(), &providers.Config{
		Credentials: providers.Credentials{ApiKey: "test-api-key"},
	}, "test prompt")
	assert.ErrorIs(t, err, providers.ErrModelRequired)
	assert.Nil(t, resp)
}

func TestAsk_ChatCompletion(t *testing.T) {
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": " foo\n- bar"}}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 4, "total_tokens": 7}
		}`))
	}))
	defer server.Close()

	client := openai.NewOpenaiClient(option.WithMaxRetries(0))
	resp, err := client.Ask(context.Background(), &providers.Config{
		Credentials: providers.Credentials{ApiKey: "test-api-key"},
		BaseURL:     server.URL,
		Model:       "gpt-4o-mini",
		MaxTokens:   60,
		Temperature: 0.8,
		TopP:        0.95,
	}, "seed\n-")
	require.NoError(t, err)

	assert.Equal(t, "chatcmpl-1", resp.ID)
	assert.Equal(t, " foo\n- bar", resp.Response)
	assert.Equal(t, 7, resp.Usage.TotalTokens)
	assert.EqualValues(t, 60, body["max_tokens"])
	assert.EqualValues(t, 0.8, body["temperature"])
	assert.EqualValues(t, 0.95, body["top_p"])
}

func TestAsk_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer server.Close()

	client := openai.NewOpenaiClient(option.WithMaxRetries(0))
	_, err := client.Ask(context.Background(), &providers.Config{
		Credentials: providers.Credentials{ApiKey: "k"},
		BaseURL:     server.URL,
		Model:       "gpt-4o-mini",
	}, "x")
	assert.ErrorContains(t, err, "OpenAI request failed")
}
