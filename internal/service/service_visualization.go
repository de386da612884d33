// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/julekalender/internal/config"
	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/utils"
	"github.com/MKhiriev/julekalender/internal/validators"
	"github.com/MKhiriev/julekalender/models"
)

const (
	// EntryPageFile must sit directly inside a folder for it to qualify.
	EntryPageFile = "index.html"

	// ManifestFile is the optional descriptor override.
	ManifestFile = "manifest.json"
)

type visualizationService struct {
	root      string
	validator validators.Validator
	logger    *logger.Logger
}

func NewVisualizationService(cfg config.Visualizations, logger *logger.Logger) VisualizationService {
	return &visualizationService{
		root:      cfg.Dir,
		validator: validators.NewVisualizationValidator(),
		logger:    logger,
	}
}

// Discover scans the root on every call. It never fails: a missing root
// yields an empty list and an unreadable one is logged.
func (s *visualizationService) Discover(ctx context.Context) []models.Visualization {
	visualizations := make([]models.Visualization, 0)

	entries, err := os.ReadDir(s.root)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Err(err).Str("root", s.root).Msg("scanning visualizations failed")
		}
		return visualizations
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(s.root, entry.Name())
		if !isRegularFile(filepath.Join(dir, EntryPageFile)) {
			continue
		}

		visualizations = append(visualizations, s.describe(entry.Name(), dir))
	}

	return visualizations
}

// describe builds the default descriptor of folder and overlays the manifest
// on it key by key. A string value for a known key replaces the default, even
// when empty. A known key of another type is skipped and unknown keys land in
// Extra.
func (s *visualizationService) describe(folder, dir string) models.Visualization {
	desc := defaultDescriptor(folder)

	manifest, err := readManifest(filepath.Join(dir, ManifestFile))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn().Err(err).Str("visualization", folder).Msg("ignoring malformed manifest")
		}
		return desc
	}

	for key, value := range manifest {
		if !models.IsVisualizationKnownKey(key) {
			if desc.Extra == nil {
				desc.Extra = make(map[string]any)
			}
			desc.Extra[key] = value
			continue
		}

		str, ok := value.(string)
		if !ok {
			s.logger.Warn().Str("visualization", folder).Str("key", key).Msg("manifest value is not a string, keeping default")
			continue
		}

		switch key {
		case "name":
			desc.Name = str
		case "description":
			desc.Description = str
		case "icon":
			desc.Icon = str
		}
		// the id always resolves the folder
	}

	return desc
}

func defaultDescriptor(folder string) models.Visualization {
	return models.Visualization{
		ID:          folder,
		Name:        utils.HumanizeFolderName(folder),
		Description: models.DefaultVisualizationDescription,
		Icon:        models.DefaultVisualizationIcon,
	}
}

func (s *visualizationService) EntryPage(ctx context.Context, id string) (string, error) {
	if err := s.validator.Validate(ctx, validators.VisualizationID(id)); err != nil {
		return "", fmt.Errorf("%w: %q", ErrVisualizationNotFound, id)
	}

	page := filepath.Join(s.root, id, EntryPageFile)
	if !isRegularFile(page) {
		return "", fmt.Errorf("%w: %q", ErrVisualizationNotFound, id)
	}

	abs, err := filepath.Abs(page)
	if err != nil {
		return "", fmt.Errorf("resolve entry page: %w", err)
	}
	return abs, nil
}

func readManifest(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var manifest map[string]any
	if err = json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ManifestFile, err)
	}
	return manifest, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
