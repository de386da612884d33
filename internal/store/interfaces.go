package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/julekalender/models"
)

// KeyValueStore holds JSON-encoded values under string keys.
type KeyValueStore interface {
	// Get returns the raw JSON stored under key or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key. value must be valid JSON.
	Set(ctx context.Context, key string, value []byte) error

	Close() error
}

// ParticipantRepository reads and writes the whole participant collection.
type ParticipantRepository interface {
	// List never fails: an absent, unreadable or corrupt collection is
	// reported as empty.
	List(ctx context.Context) []models.Participant

	Save(ctx context.Context, participants []models.Participant) error
}
