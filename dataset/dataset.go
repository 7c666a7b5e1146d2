package dataset

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ncobase/relaypage/config"
	"github.com/ncobase/relaypage/paging"
)

// Kind tells how a dataset is paginated
type Kind int

const (
	// Sequence datasets are paginated by index.
	Sequence Kind = iota + 1
	// Mapping datasets are paginated by key, in insertion order.
	Mapping
)

func (k Kind) String() string {
	switch k {
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	}
	return "unknown"
}

// Dataset is a fully materialized collection.
// Exactly one of Items and Entries is used, according to Kind.
type Dataset struct {
	Kind    Kind
	Items   []any
	Entries *paging.OrderedMap[any]
}

// NewSequence creates a sequence dataset.
func NewSequence(items []any) *Dataset {
	if items == nil {
		items = []any{}
	}
	return &Dataset{Kind: Sequence, Items: items}
}

// NewMapping creates a mapping dataset.
func NewMapping(entries *paging.OrderedMap[any]) *Dataset {
	if entries == nil {
		entries = paging.NewOrderedMap[any]()
	}
	return &Dataset{Kind: Mapping, Entries: entries}
}

// Len returns the number of items or entries
func (d *Dataset) Len() int {
	if d.Kind == Mapping {
		return d.Entries.Len()
	}
	return len(d.Items)
}

// Page paginates the dataset with p. The result is a *paging.Connection[any]
// for sequences and a *paging.Connection[paging.Entry[any]] for mappings.
func (d *Dataset) Page(ctx context.Context, p *paging.Paginator, args paging.Args) (any, error) {
	if d.Kind == Mapping {
		conn, err := paging.PageMap(ctx, p, d.Entries, args)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}
	conn, err := paging.PageSlice(ctx, p, d.Items, args)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Loader materializes a dataset from a configured source.
type Loader interface {
	// Name returns the driver name used in configuration (e.g., "file", "redis")
	Name() string
	Load(ctx context.Context, cfg *config.Dataset) (*Dataset, error)
}

var (
	// ErrUnknownDriver is returned by Open for an unregistered driver name.
	ErrUnknownDriver = errors.New("dataset: unknown driver")
	// ErrUnsupported is returned for documents or keys that are neither a
	// sequence nor a mapping.
	ErrUnsupported = errors.New("dataset: unsupported shape")

	loaders   = make(map[string]Loader)
	loadersMu sync.RWMutex
)

// Register makes a loader available by name.
// Registering the same name twice replaces the earlier loader.
func Register(l Loader) {
	loadersMu.Lock()
	defer loadersMu.Unlock()
	loaders[l.Name()] = l
}

// Drivers returns the registered driver names, sorted
func Drivers() []string {
	loadersMu.RLock()
	defer loadersMu.RUnlock()
	names := make([]string, 0, len(loaders))
	for name := range loaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open loads the dataset described by cfg with the registered loader.
func Open(ctx context.Context, cfg *config.Dataset) (*Dataset, error) {
	if cfg == nil {
		return nil, errors.New("dataset: config is nil")
	}
	loadersMu.RLock()
	l, ok := loaders[cfg.Driver]
	loadersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %v)", ErrUnknownDriver, cfg.Driver, Drivers())
	}
	return l.Load(ctx, cfg)
}
