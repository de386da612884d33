// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/Masterminds/squirrel"
)

const (
	kvTable        = "kv"
	kvKeyColumn    = "key"
	kvValueColumn  = "value"
	kvUpdatedAtCol = "updated_at"

	upsertKVSuffix = "ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

func buildGetValueQuery(d Dialect, key string) (string, []any, error) {
	return squirrel.StatementBuilder.PlaceholderFormat(d.placeholder()).
		Select(kvValueColumn).
		From(kvTable).
		Where(squirrel.Eq{kvKeyColumn: key}).
		ToSql()
}

func buildSetValueQuery(d Dialect, key string, value []byte, now time.Time) (string, []any, error) {
	return squirrel.StatementBuilder.PlaceholderFormat(d.placeholder()).
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAtCol).
		Values(key, string(value), now.UTC()).
		Suffix(upsertKVSuffix).
		ToSql()
}
