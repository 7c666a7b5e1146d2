package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ncobase/relaypage/config"
	"github.com/ncobase/relaypage/paging"
	"github.com/ncobase/relaypage/types"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver
)

// sqlLoader loads a query result through database/sql.
type sqlLoader struct {
	name   string // configuration name
	driver string // database/sql driver name
}

func (l sqlLoader) Name() string { return l.name }

func (l sqlLoader) Load(ctx context.Context, cfg *config.Dataset) (*Dataset, error) {
	return LoadSQL(ctx, l.driver, cfg.Source, cfg.Query, cfg.KeyColumn)
}

// LoadSQL opens dsn with driver, runs query and materializes the rows.
// See Query for the row mapping.
func LoadSQL(ctx context.Context, driver, dsn, query, keyColumn string) (*Dataset, error) {
	if dsn == "" {
		return nil, fmt.Errorf("dataset: %s: connection source is empty", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: failed to open connection: %w", driver, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("dataset: %s: failed to ping database: %w", driver, err)
	}
	return Query(ctx, db, query, keyColumn)
}

// Query runs query on db. Without keyColumn the rows form a sequence;
// with it they form a mapping keyed by that column, in row order.
// A row holding a single value (besides the key) is stored as that value,
// wider rows as an ordered column -> value object.
func Query(ctx context.Context, db *sql.DB, query, keyColumn string) (*Dataset, error) {
	if query == "" {
		return nil, fmt.Errorf("dataset: query is empty")
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dataset: query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("dataset: columns: %w", err)
	}

	keyIdx := -1
	if keyColumn != "" {
		for i, c := range columns {
			if c == keyColumn {
				keyIdx = i
				break
			}
		}
		if keyIdx < 0 {
			return nil, fmt.Errorf("dataset: key column %q not in result columns %v", keyColumn, columns)
		}
	}

	var (
		items   = []any{}
		entries = paging.NewOrderedMap[any]()
		values  = make([]any, len(columns))
		dest    = make([]any, len(columns))
	)
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("dataset: scan: %w", err)
		}
		value := rowValue(columns, values, keyIdx)
		if keyIdx < 0 {
			items = append(items, value)
			continue
		}
		key := types.ToString(values[keyIdx])
		if _, exists := entries.Get(key); exists {
			return nil, fmt.Errorf("dataset: duplicate key %q in column %q", key, keyColumn)
		}
		entries.Set(key, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dataset: rows: %w", err)
	}

	if keyIdx < 0 {
		return NewSequence(items), nil
	}
	return NewMapping(entries), nil
}

func rowValue(columns []string, values []any, skip int) any {
	width := len(columns)
	if skip >= 0 {
		width--
	}
	if width == 1 {
		for i, v := range values {
			if i != skip {
				return types.Normalize(v)
			}
		}
	}
	row := paging.NewOrderedMap[any]()
	for i, c := range columns {
		if i != skip {
			row.Set(c, types.Normalize(values[i]))
		}
	}
	return row
}

func init() {
	Register(sqlLoader{name: "sqlite3", driver: "sqlite3"})
	Register(sqlLoader{name: "postgres", driver: "pgx"})
	Register(sqlLoader{name: "mysql", driver: "mysql"})
}
