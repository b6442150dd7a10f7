package middleware

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/deepx/semspace/pkg/common"
	"github.com/deepx/semspace/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(middlewares ...Middleware) *fiber.App {
	app := fiber.New()
	app.Use(NewTransport(middlewares...).GetMiddlewares()...)
	return app
}

func TestRequestIDMiddleware(t *testing.T) {
	app := newApp(NewRequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		id, _ := c.UserContext().Value(common.RequestIDKey).(string)
		return c.SendString(id)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	generated := resp.Header.Get(common.RequestIDHeader)
	_, err = uuid.Parse(generated)
	assert.NoError(t, err)
	assert.Equal(t, generated, string(body))

	given := uuid.NewString()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(common.RequestIDHeader, given)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, given, resp.Header.Get(common.RequestIDHeader))
}

func TestAccessLogMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	app := newApp(NewRequestIDMiddleware(), NewAccessLogMiddleware(logger))
	app.Get("/stats", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("GET", "/stats", nil)
	req.Header.Set(fiber.HeaderUserAgent, "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	_, err := app.Test(req)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"path":"/stats"`)
	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"request_id"`)
	assert.Contains(t, buf.String(), `"device":"Computer"`)
}

func TestPanicRecoverMiddleware(t *testing.T) {
	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.DebugLevel)
	app := newApp(NewPanicRecoverMiddleware(logger), NewRequestIDMiddleware())
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"Internal server error"}`, string(body))

	assert.Contains(t, logs.String(), `"panic":"boom"`)
	assert.Contains(t, logs.String(), `"request_id":"`+resp.Header.Get(common.RequestIDHeader)+`"`)
	assert.Contains(t, logs.String(), `"stack":`)
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	app := newApp(NewCORSMiddleware("http://localhost:5173"))
	app.Post("/expand", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("OPTIONS", "/expand", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:5173")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, "POST")
	req.Header.Set(fiber.HeaderAccessControlRequestHeaders, "content-type")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))

	req = httptest.NewRequest("OPTIONS", "/expand", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://evil.example")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, "POST")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestMetricsMiddleware(t *testing.T) {
	prometheus.Initialize(prometheus.MetricsConfig{Enabled: true, EnablePerRoute: true})

	app := newApp(NewMetricsMiddleware())
	app.Get("/stats", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	before := testutil.ToFloat64(prometheus.RequestTotal.WithLabelValues("GET", "/stats", "200"))
	_, err := app.Test(httptest.NewRequest("GET", "/stats", nil))
	require.NoError(t, err)
	after := testutil.ToFloat64(prometheus.RequestTotal.WithLabelValues("GET", "/stats", "200"))
	assert.Equal(t, before+1, after)
}
