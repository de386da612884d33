// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/julekalender/internal/logger"
)

// stateFileName is the default document name inside the user config dir.
const stateFileName = "state.json"

// document is the on-disk layout of the file store.
type document map[string]json.RawMessage

type fileStore struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// DefaultStatePath returns <user config dir>/julekalender/state.json.
func DefaultStatePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "julekalender", stateFileName), nil
}

// NewFileStore returns a KeyValueStore backed by the JSON document at path.
// An empty path selects [DefaultStatePath]. The file is created on the first
// write.
func NewFileStore(path string, log *logger.Logger) (KeyValueStore, error) {
	if path == "" {
		p, err := DefaultStatePath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	log.Info().Str("path", path).Msg("using file store")
	return &fileStore{path: path, logger: log}, nil
}

func (s *fileStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	raw, ok := doc[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return raw, nil
}

func (s *fileStore) Set(ctx context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return ErrInvalidValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc[key] = json.RawMessage(value)

	return s.persist(doc)
}

func (s *fileStore) Close() error {
	return nil
}

// load reads the document. A missing file is an empty document and so is a
// corrupt one, after a warning.
func (s *fileStore) load() (document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return document{}, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	doc := document{}
	if err = json.Unmarshal(data, &doc); err != nil || doc == nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("state file is corrupt, treating it as empty")
		return document{}, nil
	}

	return doc, nil
}

// persist replaces the state file with doc via a temp file and rename, so a
// crash leaves either the old or the new document.
func (s *fileStore) persist(doc document) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpName, s.path)
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}
