package server

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/deepx/semspace/pkg/config"
	"github.com/deepx/semspace/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsApp(t *testing.T) {
	prometheus.Initialize(prometheus.DefaultMetricsConfig())
	prometheus.IndexSize.Set(3)

	resp, err := NewMetricsApp().Test(httptest.NewRequest("GET", MetricsPath, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `semspace_index_size{app="semspace"} 3`)
}

func TestNewBaseServer(t *testing.T) {
	cfg := config.Default()
	s := NewBaseServer(cfg, logrus.New())
	assert.Equal(t, cfg.Server.BodyLimit, s.Router.Config().BodyLimit)
	assert.Equal(t, "SemSpace", s.Router.Config().AppName)
	assert.NoError(t, s.Shutdown())
}
