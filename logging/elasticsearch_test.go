package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ncobase/relaypage/config"
	"github.com/ncobase/relaypage/tracing"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type indexed struct {
	path string
	doc  map[string]any
}

// fakeCluster answers the info and index endpoints of an Elasticsearch node.
func fakeCluster(t *testing.T) (*httptest.Server, func() []indexed) {
	t.Helper()
	var mu sync.Mutex
	var docs []indexed
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet && r.URL.Path == "/" {
			_, _ = io.WriteString(w, `{"cluster_name":"test","version":{"number":"8.18.0"},"tagline":"You Know, for Search"}`)
			return
		}
		if strings.HasSuffix(r.URL.Path, "/_doc") {
			var doc map[string]any
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &doc)
			mu.Lock()
			docs = append(docs, indexed{path: r.URL.Path, doc: doc})
			mu.Unlock()
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"result":"created"}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	return srv, func() []indexed {
		mu.Lock()
		defer mu.Unlock()
		return append([]indexed(nil), docs...)
	}
}

func TestElasticsearchHook(t *testing.T) {
	srv, docs := fakeCluster(t)

	l := New(&bytes.Buffer{})
	cleanup, err := l.Init(&config.Logger{
		Level:  int(logrus.InfoLevel),
		Format: "json",
		Elasticsearch: &config.Elasticsearch{
			Addresses:   []string{srv.URL},
			Index:       "relaypage-log",
			RotateDaily: true,
			DateSuffix:  "2006.01.02",
		},
	})
	require.NoError(t, err)
	defer cleanup()

	ctx := tracing.SetTraceID(context.Background(), "req-7")
	l.EntryWithFields(ctx, logrus.Fields{"status": 404, "path": "/items"}).Warn("request rejected")

	got := docs()
	require.Len(t, got, 1)
	assert.Equal(t, "/relaypage-log-"+time.Now().UTC().Format("2006.01.02")+"/_doc", got[0].path)
	assert.Equal(t, "request rejected", got[0].doc["message"])
	assert.Equal(t, "warning", got[0].doc["level"])
	assert.Equal(t, "req-7", got[0].doc[tracing.TraceIDKey])
	assert.Equal(t, 404.0, got[0].doc["status"])
	assert.Contains(t, got[0].doc, "@timestamp")
}

func TestElasticsearchIndexName(t *testing.T) {
	day := time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)
	h := &ElasticsearchHook{index: "logs", dateSuffix: "2006.01.02"}
	assert.Equal(t, "logs", h.indexName(day))

	h.rotateDaily = true
	assert.Equal(t, "logs-2024.05.01", h.indexName(day))
}

func TestElasticsearchDocument(t *testing.T) {
	h := &ElasticsearchHook{hostname: "node-1"}
	entry := &logrus.Entry{
		Time:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Level:   logrus.ErrorLevel,
		Message: "dataset reload failed",
		Data:    logrus.Fields{logrus.ErrorKey: io.ErrUnexpectedEOF, "message": "shadowed"},
	}
	doc := h.document(entry)
	assert.Equal(t, "dataset reload failed", doc["message"])
	assert.Equal(t, "unexpected EOF", doc[logrus.ErrorKey])
	assert.Equal(t, "2024-05-01T12:00:00Z", doc["@timestamp"])
	assert.Equal(t, "node-1", doc["hostname"])
}

func TestElasticsearchUnreachable(t *testing.T) {
	_, err := NewElasticsearchHook(&config.Elasticsearch{})
	assert.Error(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	srv.Close()
	_, err = NewElasticsearchHook(&config.Elasticsearch{Addresses: []string{srv.URL}})
	assert.Error(t, err)
}
