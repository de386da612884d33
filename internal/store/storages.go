package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/julekalender/internal/config"
	"github.com/MKhiriev/julekalender/internal/logger"
)

// Storages groups the host repositories over one backend.
type Storages struct {
	KeyValueStore         KeyValueStore
	ParticipantRepository ParticipantRepository
}

// NewStorages selects the backend from cfg: the SQL store when a DSN is
// set, the JSON file store otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	var kv KeyValueStore
	if cfg.DB.DSN != "" {
		db, err := NewConnect(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("database connection error: %w", err)
		}
		kv = NewSQLStore(db)
	} else {
		fileKV, err := NewFileStore(cfg.Files.StateFile, log)
		if err != nil {
			return nil, fmt.Errorf("file store error: %w", err)
		}
		kv = fileKV
	}

	return &Storages{
		KeyValueStore:         kv,
		ParticipantRepository: NewParticipantRepository(kv, log),
	}, nil
}

// Close releases the backend.
func (s *Storages) Close() error {
	return s.KeyValueStore.Close()
}
