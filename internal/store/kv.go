package store

import (
	"context"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/pkg/errors"
)

const kvTable = "kv"

// KVRepo stores opaque blobs under string keys. Every write replaces the
// previous value wholesale.
type KVRepo struct {
	drv *entsql.Driver
}

// Get returns the value stored under key. ok is false when the key is absent.
func (r *KVRepo) Get(ctx context.Context, key string) (value []byte, ok bool, err error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select("value").
		From(b.Table(kvTable)).
		Where(entsql.EQ("key", key)).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, false, errors.Wrapf(err, "get %q", key)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, false, errors.Wrapf(rows.Err(), "get %q", key)
	}
	if err := rows.Scan(&value); err != nil {
		return nil, false, errors.Wrapf(err, "scan %q", key)
	}
	return value, true, nil
}

// Put stores value under key, replacing any existing value.
func (r *KVRepo) Put(ctx context.Context, key string, value []byte) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	var res entsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return errors.Wrapf(err, "put %q", key)
	}
	return nil
}

// Delete removes the given keys. Missing keys are ignored.
func (r *KVRepo) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	vals := make([]any, len(keys))
	for i, k := range keys {
		vals[i] = k
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Delete(kvTable).
		Where(entsql.In("key", vals...)).
		Query()

	var res entsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return errors.Wrap(err, "delete keys")
	}
	return nil
}

// Keys returns every stored key in ascending order.
func (r *KVRepo) Keys(ctx context.Context) ([]string, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select("key").
		From(b.Table(kvTable)).
		OrderBy("key").
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, errors.Wrap(err, "list keys")
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, errors.Wrap(err, "scan key")
		}
		keys = append(keys, k)
	}
	return keys, errors.Wrap(rows.Err(), "list keys")
}
