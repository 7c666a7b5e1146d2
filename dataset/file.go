package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncobase/relaypage/config"
	"github.com/ncobase/relaypage/paging"
	"gopkg.in/yaml.v3"
)

// Supported document formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type fileLoader struct{}

func (fileLoader) Name() string { return "file" }

func (fileLoader) Load(_ context.Context, cfg *config.Dataset) (*Dataset, error) {
	return LoadFile(cfg.Source)
}

// LoadFile reads a JSON or YAML document; the format follows the extension
// and defaults to JSON.
func LoadFile(path string) (*Dataset, error) {
	if path == "" {
		return nil, fmt.Errorf("dataset: file path is empty")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()
	return Decode(f, FormatOf(path))
}

// FormatOf returns the document format implied by a file name
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Decode reads a document whose top level is an array (a sequence) or an
// object (a mapping, keys kept in document order).
func Decode(r io.Reader, format string) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	case FormatJSON, "":
		return decodeJSON(data)
	}
	return nil, fmt.Errorf("dataset: unknown format %q", format)
}

func decodeJSON(data []byte) (*Dataset, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrUnsupported)
	}
	switch data[0] {
	case '[':
		var items []any
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("dataset: decode json: %w", err)
		}
		return NewSequence(items), nil
	case '{':
		m := paging.NewOrderedMap[any]()
		if err := json.Unmarshal(data, m); err != nil {
			return nil, fmt.Errorf("dataset: decode json: %w", err)
		}
		return NewMapping(m), nil
	}
	return nil, fmt.Errorf("%w: top level must be an array or an object", ErrUnsupported)
}

func decodeYAML(data []byte) (*Dataset, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("dataset: decode yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrUnsupported)
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var items []any
		if err := root.Decode(&items); err != nil {
			return nil, fmt.Errorf("dataset: decode yaml: %w", err)
		}
		return NewSequence(items), nil
	case yaml.MappingNode:
		m := paging.NewOrderedMap[any]()
		for i := 0; i+1 < len(root.Content); i += 2 {
			kn := root.Content[i]
			if kn.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: yaml key at line %d is not a scalar", ErrUnsupported, kn.Line)
			}
			key := kn.Value
			var value any
			if err := root.Content[i+1].Decode(&value); err != nil {
				return nil, fmt.Errorf("dataset: yaml value of %q: %w", key, err)
			}
			m.Set(key, value)
		}
		return NewMapping(m), nil
	}
	return nil, fmt.Errorf("%w: top level must be a sequence or a mapping", ErrUnsupported)
}

func init() {
	Register(fileLoader{})
}
