package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/deepx/semspace/pkg/app/expander"
	expanderMocks "github.com/deepx/semspace/pkg/app/expander/mocks"
	"github.com/deepx/semspace/pkg/app/semantic"
	semanticMocks "github.com/deepx/semspace/pkg/app/semantic/mocks"
	"github.com/deepx/semspace/pkg/config"
	"github.com/deepx/semspace/pkg/domain/embedding"
	"github.com/deepx/semspace/pkg/domain/index"
	"github.com/deepx/semspace/pkg/domain/projection"
	"github.com/deepx/semspace/pkg/infra/providers"
	providerMocks "github.com/deepx/semspace/pkg/infra/providers/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestExpandHandler_ParsesGeneration(t *testing.T) {
	client := providerMocks.NewClient(t)
	client.EXPECT().
		Ask(mock.Anything, mock.Anything, "The sky is blue.\n-").
		Return(&providers.CompletionResponse{Response: "- foo\n- bar\n"}, nil)
	exp := expander.NewExpander(quietLogger(), client, config.Default().Generation)

	app := fiber.New()
	app.Post("/expand", NewExpandHandler(quietLogger(), exp).Handle)

	status, body := doJSON(t, app, "POST", "/expand", map[string]string{"sentence": "The sky is blue."})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []interface{}{"foo", "bar"}, body["ideas"])
}

func TestExpandHandler_BadRequests(t *testing.T) {
	exp := expanderMocks.NewExpander(t)
	app := fiber.New()
	app.Post("/expand", NewExpandHandler(quietLogger(), exp).Handle)

	status, body := doJSON(t, app, "POST", "/expand", `{"sentence":`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, ErrInvalidJsonPayload, body["error"])

	status, body = doJSON(t, app, "POST", "/expand", map[string]string{"sentence": ""})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "sentence is required", body["error"])
}

func TestExpandHandler_ModelFailure(t *testing.T) {
	exp := expanderMocks.NewExpander(t)
	exp.EXPECT().Expand(mock.Anything, "x").Return(nil, errors.New("model offline"))
	app := fiber.New()
	app.Post("/expand", NewExpandHandler(quietLogger(), exp).Handle)

	status, body := doJSON(t, app, "POST", "/expand", map[string]string{"sentence": "x"})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "model offline", body["error"])
}

func TestExpandContinuumHandler(t *testing.T) {
	exp := expanderMocks.NewExpander(t)
	exp.EXPECT().ExpandContinuum(mock.Anything, "Mars").Return([]string{"red dust storms"}, nil)
	app := fiber.New()
	app.Post("/expand_continuum", NewExpandContinuumHandler(quietLogger(), exp).Handle)

	status, body := doJSON(t, app, "POST", "/expand_continuum", map[string]string{"sentence": "Mars"})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []interface{}{"red dust storms"}, body["nodes"])
}

func TestEmbedHandler(t *testing.T) {
	idx := semanticMocks.NewIndexer(t)
	idx.EXPECT().Embed(mock.Anything, "A.").Return(1, nil)
	app := fiber.New()
	app.Post("/embed", NewEmbedHandler(quietLogger(), idx).Handle)

	status, body := doJSON(t, app, "POST", "/embed", map[string]interface{}{"sentence": "A.", "neighbors": 3})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Sentence embedded and added.", body["message"])
}

func TestEmbedHandler_EmptyTextFromBackend(t *testing.T) {
	idx := semanticMocks.NewIndexer(t)
	idx.EXPECT().Embed(mock.Anything, "A.").Return(0, embedding.ErrEmptyText)
	app := fiber.New()
	app.Post("/embed", NewEmbedHandler(quietLogger(), idx).Handle)

	status, _ := doJSON(t, app, "POST", "/embed", map[string]string{"sentence": "A."})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestSearchHandler(t *testing.T) {
	idx := semanticMocks.NewIndexer(t)
	idx.EXPECT().Search(mock.Anything, "A.", 1).Return([]index.Neighbor{{Position: 0, Sentence: "A."}}, nil)
	idx.EXPECT().Search(mock.Anything, "empty", 5).Return([]index.Neighbor{}, nil)
	app := fiber.New()
	app.Post("/search", NewSearchHandler(quietLogger(), idx).Handle)

	status, body := doJSON(t, app, "POST", "/search", map[string]interface{}{"sentence": "A.", "neighbors": 1})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []interface{}{"A."}, body["neighbors"])

	status, body = doJSON(t, app, "POST", "/search", map[string]interface{}{"sentence": "empty"})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []interface{}{}, body["neighbors"])

	status, _ = doJSON(t, app, "POST", "/search", map[string]interface{}{"sentence": "A.", "neighbors": 0})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestExploreHandler(t *testing.T) {
	explorer := semanticMocks.NewExplorer(t)
	explorer.EXPECT().Explore(mock.Anything, "Tea", "tsne").Return(&semantic.Exploration{
		Ideas:     []string{"green", "black"},
		Points:    []projection.Point{{Label: "You"}, {Label: "green", X: 1}, {Label: "black", Y: 1}},
		Projector: "tsne",
	}, nil)
	app := fiber.New()
	app.Post("/explore", NewExploreHandler(quietLogger(), explorer).Handle)

	status, body := doJSON(t, app, "POST", "/explore", map[string]string{"sentence": "Tea", "projector": "TSNE"})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "tsne", body["projector"])
	points, ok := body["points"].([]interface{})
	require.True(t, ok)
	require.Len(t, points, 3)
	assert.Equal(t, "You", points[0].(map[string]interface{})["label"])
	assert.NotContains(t, body, "warning")
}

func TestExploreHandler_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "no ideas", err: semantic.ErrNoIdeas, status: fiber.StatusUnprocessableEntity},
		{name: "unknown projector", err: projection.ErrUnknownProjector, status: fiber.StatusBadRequest},
		{name: "model failure", err: errors.New("boom"), status: fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explorer := semanticMocks.NewExplorer(t)
			explorer.EXPECT().Explore(mock.Anything, "Tea", "").Return(nil, tt.err)
			app := fiber.New()
			app.Post("/explore", NewExploreHandler(quietLogger(), explorer).Handle)

			status, body := doJSON(t, app, "POST", "/explore", map[string]string{"sentence": "Tea"})
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.err.Error(), body["error"])
		})
	}
}

func TestStatsHandler(t *testing.T) {
	idx := semanticMocks.NewIndexer(t)
	idx.EXPECT().Stats().Return(semantic.Stats{Size: 2, Dimension: 2048})
	app := fiber.New()
	app.Get("/stats", NewStatsHandler(idx).Handle)

	status, body := doJSON(t, app, "GET", "/stats", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 2, body["size"])
	assert.EqualValues(t, 2048, body["dimension"])
}

func TestSystemHandlers(t *testing.T) {
	app := fiber.New()
	app.Get("/version", NewGetVersionHandler(config.Default()).Handle)
	app.Get("/health", NewHealthHandler().Handle)

	status, body := doJSON(t, app, "GET", "/version", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "SemSpace", body["app_name"])
	assert.Equal(t, map[string]interface{}{"provider": "ollama", "model": "tinyllama"}, body["generation"])

	status, body = doJSON(t, app, "GET", "/health", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
