package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadConfig(t *testing.T) {
	p := writeConfig(t, `
app_name: catalog
paging:
  encode_cursor: true
  secret: s3cret
  max_first: 50
logger:
  level: 5
  format: json
server:
  port: 9090
tracer:
  endpoint: localhost:4317
  sampling_rate: 0.5
`)
	cfg, err := LoadConfig(p)
	require.NoError(t, err)

	assert.Equal(t, "catalog", cfg.AppName)
	assert.True(t, cfg.Paging.EncodeCursor)
	assert.Equal(t, "s3cret", cfg.Paging.Secret)
	assert.Equal(t, 50, cfg.Paging.MaxFirst)
	assert.Equal(t, 0, cfg.Paging.DefaultFirst)
	assert.Equal(t, 5, cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "stderr", cfg.Logger.Output)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, "localhost:4317", cfg.Tracer.Endpoint)
	assert.Equal(t, "catalog", cfg.Tracer.ServiceName)
	assert.InDelta(t, 0.5, cfg.Tracer.SamplingRate, 1e-9)
	assert.Equal(t, 5*time.Second, cfg.Tracer.BatchTimeout)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	p := writeConfig(t, "paging:\n  secret: from-file\n")
	t.Setenv("RELAYPAGE_PAGING_SECRET", "from-env")
	t.Setenv("RELAYPAGE_SERVER_PORT", "7070")

	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Paging.Secret)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestInitAndReload(t *testing.T) {
	p := writeConfig(t, "paging:\n  max_first: 10\n")
	cfg, err := Init(p)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Paging.MaxFirst)

	require.NoError(t, os.WriteFile(p, []byte("paging:\n  max_first: 20\n"), 0o600))
	require.NoError(t, Reload())

	current, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, 20, current.Paging.MaxFirst)
}

func TestDatasetConfig(t *testing.T) {
	p := writeConfig(t, `
dataset:
  driver: sqlite3
  source: file:items.db
  query: SELECT sku, name FROM items ORDER BY sku
  key_column: sku
  refresh: 30s
`)
	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", cfg.Dataset.Driver)
	assert.Equal(t, "file:items.db", cfg.Dataset.Source)
	assert.Equal(t, "sku", cfg.Dataset.KeyColumn)
	assert.Equal(t, 30*time.Second, cfg.Dataset.Refresh)

	cfg, err = LoadConfig(writeConfig(t, "app_name: x\n"))
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Dataset.Driver)
	assert.Zero(t, cfg.Dataset.Refresh)
}

func TestLoggerElasticsearchConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
logger:
  elasticsearch:
    addresses: ["http://es-1:9200", "http://es-2:9200"]
    username: elastic
    index: catalog-log
    rotate_daily: false
`))
	require.NoError(t, err)
	es := cfg.Logger.Elasticsearch
	assert.Equal(t, []string{"http://es-1:9200", "http://es-2:9200"}, es.Addresses)
	assert.Equal(t, "elastic", es.Username)
	assert.Equal(t, "catalog-log", es.Index)
	assert.False(t, es.RotateDaily)
	assert.Equal(t, "2006.01.02", es.DateSuffix)

	cfg, err = LoadConfig(writeConfig(t, "app_name: x\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Logger.Elasticsearch.Addresses)
	assert.Equal(t, "relaypage-log", cfg.Logger.Elasticsearch.Index)
	assert.True(t, cfg.Logger.Elasticsearch.RotateDaily)
}
