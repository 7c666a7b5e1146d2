package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/ncobase/relaypage/config"
	"github.com/sirupsen/logrus"
)

// ElasticsearchHook indexes every entry as a document, one index per day
// when rotation is enabled.
type ElasticsearchHook struct {
	client      *elasticsearch.Client
	index       string
	dateSuffix  string
	rotateDaily bool
	hostname    string
	timeout     time.Duration
}

// NewElasticsearchHook connects to the configured cluster and checks that it
// answers before returning the hook.
func NewElasticsearchHook(c *config.Elasticsearch) (*ElasticsearchHook, error) {
	if c == nil || len(c.Addresses) == 0 {
		return nil, fmt.Errorf("elasticsearch addresses are empty")
	}

	esCfg := elasticsearch.Config{Addresses: c.Addresses}
	if c.Username != "" {
		esCfg.Username = c.Username
		esCfg.Password = c.Password
	}
	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to elasticsearch: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch connection error: %s", res.Status())
	}

	index := c.Index
	if index == "" {
		index = "relaypage-log"
	}
	suffix := c.DateSuffix
	if suffix == "" {
		suffix = "2006.01.02"
	}
	hostname, _ := os.Hostname()
	return &ElasticsearchHook{
		client:      client,
		index:       index,
		dateSuffix:  suffix,
		rotateDaily: c.RotateDaily,
		hostname:    hostname,
		timeout:     5 * time.Second,
	}, nil
}

// Levels implements logrus.Hook
func (h *ElasticsearchHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook
func (h *ElasticsearchHook) Fire(entry *logrus.Entry) error {
	body, err := json.Marshal(h.document(entry))
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	res, err := h.client.Index(
		h.indexName(entry.Time),
		bytes.NewReader(body),
		h.client.Index.WithContext(ctx),
		h.client.Index.WithRefresh("false"),
	)
	if err != nil {
		return fmt.Errorf("failed to index log entry: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("elasticsearch index error: %s", res.Status())
	}
	return nil
}

func (h *ElasticsearchHook) document(entry *logrus.Entry) map[string]any {
	doc := make(map[string]any, len(entry.Data)+4)
	for k, v := range entry.Data {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		doc[k] = v
	}
	doc["@timestamp"] = entry.Time.UTC().Format(time.RFC3339Nano)
	doc["level"] = entry.Level.String()
	doc["message"] = entry.Message
	if h.hostname != "" {
		doc["hostname"] = h.hostname
	}
	return doc
}

func (h *ElasticsearchHook) indexName(t time.Time) string {
	if !h.rotateDaily {
		return h.index
	}
	return fmt.Sprintf("%s-%s", h.index, t.UTC().Format(h.dateSuffix))
}
