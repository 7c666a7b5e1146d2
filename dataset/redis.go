package dataset

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ncobase/relaypage/config"
	"github.com/ncobase/relaypage/paging"
	"github.com/ncobase/relaypage/types"
	"github.com/redis/go-redis/v9"
)

// ErrKeyNotFound is returned when the redis key does not exist.
var ErrKeyNotFound = errors.New("dataset: redis key not found")

type redisLoader struct{}

func (redisLoader) Name() string { return "redis" }

func (redisLoader) Load(ctx context.Context, cfg *config.Dataset) (*Dataset, error) {
	rc, err := NewRedisClient(cfg.Source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return LoadRedis(ctx, rc, cfg.Query)
}

// NewRedisClient creates a client from a redis:// URL or a plain host:port.
func NewRedisClient(source string) (*redis.Client, error) {
	if source == "" {
		return nil, errors.New("dataset: redis address is empty")
	}
	if strings.Contains(source, "://") {
		opts, err := redis.ParseURL(source)
		if err != nil {
			return nil, fmt.Errorf("dataset: redis url: %w", err)
		}
		return redis.NewClient(opts), nil
	}
	return redis.NewClient(&redis.Options{Addr: source}), nil
}

// LoadRedis materializes key according to its type:
//
//	list   sequence, in list order
//	set    sequence, members sorted
//	zset   mapping member -> score, in score order
//	hash   mapping field -> value, fields sorted
//	string a JSON document, see Decode
func LoadRedis(ctx context.Context, rc redis.Cmdable, key string) (*Dataset, error) {
	if key == "" {
		return nil, errors.New("dataset: redis key is empty")
	}
	typ, err := rc.Type(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("dataset: redis type %q: %w", key, err)
	}

	switch typ {
	case "none":
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	case "list":
		values, err := rc.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return nil, fmt.Errorf("dataset: redis lrange %q: %w", key, err)
		}
		return NewSequence(toAny(values)), nil
	case "set":
		values, err := rc.SMembers(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("dataset: redis smembers %q: %w", key, err)
		}
		sort.Strings(values)
		return NewSequence(toAny(values)), nil
	case "zset":
		members, err := rc.ZRangeWithScores(ctx, key, 0, -1).Result()
		if err != nil {
			return nil, fmt.Errorf("dataset: redis zrange %q: %w", key, err)
		}
		m := paging.NewOrderedMap[any]()
		for _, z := range members {
			m.Set(types.ToString(z.Member), z.Score)
		}
		return NewMapping(m), nil
	case "hash":
		fields, err := rc.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("dataset: redis hgetall %q: %w", key, err)
		}
		names := make([]string, 0, len(fields))
		for f := range fields {
			names = append(names, f)
		}
		sort.Strings(names)
		m := paging.NewOrderedMap[any]()
		for _, f := range names {
			m.Set(f, fields[f])
		}
		return NewMapping(m), nil
	case "string":
		doc, err := rc.Get(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("dataset: redis get %q: %w", key, err)
		}
		return Decode(strings.NewReader(doc), FormatJSON)
	}
	return nil, fmt.Errorf("%w: redis type %s", ErrUnsupported, typ)
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func init() {
	Register(redisLoader{})
}
