package openai

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/deepx/semspace/pkg/domain/embedding"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

// mockFastHTTPClient stands in for fasthttp.Client.
type mockFastHTTPClient struct {
	mock.Mock
}

func (m *mockFastHTTPClient) DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error {
	args := m.Called(req, resp, timeout)
	if body, ok := args.Get(1).([]byte); ok {
		resp.SetBody(body)
	}
	if statusCode, ok := args.Get(2).(int); ok {
		resp.SetStatusCode(statusCode)
	}
	return args.Error(0)
}

func newTestService(client *mockFastHTTPClient, apiKey string) embedding.Creator {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return NewOpenAIEmbeddingService(client, logger, "text-embedding-3-small", "", apiKey, 5*time.Second)
}

func TestGenerate_Success(t *testing.T) {
	client := new(mockFastHTTPClient)
	body, err := json.Marshal(openAIEmbeddingResponse{
		Data: []embeddingData{{Embedding: []float64{0.1, 0.2, 0.3}}},
	})
	require.NoError(t, err)

	client.On("DoTimeout", mock.MatchedBy(func(req *fasthttp.Request) bool {
		return string(req.URI().FullURI()) == "https://api.openai.com/v1/embeddings" &&
			string(req.Header.Peek("Authorization")) == "Bearer test-key"
	}), mock.Anything, mock.Anything).Return(nil, body, fasthttp.StatusOK)

	svc := newTestService(client, "test-key")
	e, err := svc.Generate(context.Background(), "The sky is blue.")
	require.NoError(t, err)

	assert.Equal(t, []float64{0.1, 0.2, 0.3}, e.Value)
	assert.Equal(t, "text-embedding-3-small", e.Model)
	assert.Equal(t, "The sky is blue.", e.Text)
	client.AssertExpectations(t)
}

func TestGenerate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		body     []byte
		status   int
		expected error
	}{
		{
			name:     "non-OK status",
			body:     []byte(`{"error":{"message":"rate limited"}}`),
			status:   fasthttp.StatusTooManyRequests,
			expected: embedding.ErrProviderNonOKResponse,
		},
		{
			name:     "empty data",
			body:     []byte(`{"data":[]}`),
			status:   fasthttp.StatusOK,
			expected: embedding.ErrEmptyEmbedding,
		},
		{
			name:     "transport error",
			err:      errors.New("connection refused"),
			status:   0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mockFastHTTPClient)
			client.On("DoTimeout", mock.Anything, mock.Anything, mock.Anything).Return(tt.err, tt.body, tt.status)

			_, err := newTestService(client, "test-key").Generate(context.Background(), "text")
			require.Error(t, err)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestGenerate_Validation(t *testing.T) {
	client := new(mockFastHTTPClient)

	_, err := newTestService(client, "").Generate(context.Background(), "text")
	assert.ErrorIs(t, err, ErrAPIKeyRequired)

	_, err = newTestService(client, "key").Generate(context.Background(), "")
	assert.ErrorIs(t, err, embedding.ErrEmptyText)

	client.AssertNotCalled(t, "DoTimeout", mock.Anything, mock.Anything, mock.Anything)
}
