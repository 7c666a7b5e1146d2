package dataset

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ncobase/relaypage/config"
	"github.com/ncobase/relaypage/paging"
	"github.com/ncobase/relaypage/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const mongoID = "_id"

type mongoLoader struct{}

func (mongoLoader) Name() string { return "mongo" }

func (mongoLoader) Load(ctx context.Context, cfg *config.Dataset) (*Dataset, error) {
	if cfg.Source == "" {
		return nil, errors.New("dataset: mongo uri is empty")
	}
	cs, err := connstring.ParseAndValidate(cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("dataset: mongo uri: %w", err)
	}
	db, coll := splitCollection(cs.Database, cfg.Query)
	if db == "" || coll == "" {
		return nil, fmt.Errorf("dataset: mongo collection %q needs a database, in the uri or as database.collection", cfg.Query)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Source))
	if err != nil {
		return nil, fmt.Errorf("dataset: mongo connect: %w", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("dataset: mongo ping: %w", err)
	}
	return LoadMongo(ctx, client.Database(db).Collection(coll), cfg.KeyColumn)
}

// splitCollection reads "database.collection" or a bare collection name in
// the database of the uri.
func splitCollection(uriDB, query string) (string, string) {
	if db, coll, ok := strings.Cut(query, "."); ok && uriDB == "" {
		return db, coll
	}
	return uriDB, query
}

// LoadMongo reads every document of coll. Without keyField the documents
// form a sequence ordered by _id; with it they form a mapping keyed by that
// field, ordered by it. The _id field is left out of the values unless it is
// the key.
func LoadMongo(ctx context.Context, coll *mongo.Collection, keyField string) (*Dataset, error) {
	sortField := mongoID
	if keyField != "" {
		sortField = keyField
	}
	cur, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: sortField, Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("dataset: mongo find %s: %w", coll.Name(), err)
	}
	var docs []bson.D
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("dataset: mongo read %s: %w", coll.Name(), err)
	}
	return Documents(docs, keyField)
}

// Documents builds a dataset from decoded documents the way LoadMongo does.
// A document holding a single field (besides the key) is stored as that value.
func Documents(docs []bson.D, keyField string) (*Dataset, error) {
	if keyField == "" {
		items := make([]any, 0, len(docs))
		for _, doc := range docs {
			items = append(items, documentValue(doc, ""))
		}
		return NewSequence(items), nil
	}

	entries := paging.NewOrderedMap[any]()
	for i, doc := range docs {
		raw, ok := lookup(doc, keyField)
		if !ok {
			return nil, fmt.Errorf("dataset: document %d has no key field %q", i, keyField)
		}
		key := types.ToString(mongoValue(raw))
		if _, exists := entries.Get(key); exists {
			return nil, fmt.Errorf("dataset: duplicate key %q in field %q", key, keyField)
		}
		entries.Set(key, documentValue(doc, keyField))
	}
	return NewMapping(entries), nil
}

func lookup(doc bson.D, field string) (any, bool) {
	for _, e := range doc {
		if e.Key == field {
			return e.Value, true
		}
	}
	return nil, false
}

func documentValue(doc bson.D, keyField string) any {
	fields := make(bson.D, 0, len(doc))
	for _, e := range doc {
		if e.Key == keyField || (e.Key == mongoID && keyField != mongoID) {
			continue
		}
		fields = append(fields, e)
	}
	if keyField != "" && len(fields) == 1 {
		return mongoValue(fields[0].Value)
	}
	return mongoValue(fields)
}

// mongoValue converts BSON values into the JSON-friendly values datasets hold.
func mongoValue(v any) any {
	switch x := v.(type) {
	case bson.D:
		m := paging.NewOrderedMap[any]()
		for _, e := range x {
			m.Set(e.Key, mongoValue(e.Value))
		}
		return m
	case bson.A:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = mongoValue(e)
		}
		return out
	case primitive.ObjectID:
		return x.Hex()
	case primitive.DateTime:
		return x.Time().UTC().Format(time.RFC3339Nano)
	case primitive.Decimal128:
		return x.String()
	case primitive.Binary:
		return x.Data
	case primitive.Null, primitive.Undefined:
		return nil
	}
	return types.Normalize(v)
}

func init() {
	Register(mongoLoader{})
}
