package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/MKhiriev/julekalender/internal/logger"
)

// GetOrDefault decodes the value stored under key into a T. When the key is
// absent, the backend fails or the stored bytes don't decode, the cause is
// logged and def is returned instead.
func GetOrDefault[T any](ctx context.Context, kv KeyValueStore, key string, def T, log *logger.Logger) T {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Err(err).Str("key", key).Msg("store read failed, using default")
		}
		return def
	}

	var value T
	if err = json.Unmarshal(raw, &value); err != nil {
		log.Err(err).Str("key", key).Msg("stored value is corrupt, using default")
		return def
	}

	return value
}

// SetValue encodes value as JSON and stores it under key.
func SetValue[T any](ctx context.Context, kv KeyValueStore, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Join(ErrInvalidValue, err)
	}
	return kv.Set(ctx, key, raw)
}
