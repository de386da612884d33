// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/store"
	"github.com/MKhiriev/julekalender/internal/utils"
	"github.com/MKhiriev/julekalender/models"
)

type participantService struct {
	repo store.ParticipantRepository
	ids  utils.IDGenerator

	// mu serializes read-modify-write cycles on the collection.
	mu sync.Mutex

	logger *logger.Logger
}

func NewParticipantService(repo store.ParticipantRepository, ids utils.IDGenerator, logger *logger.Logger) ParticipantService {
	return &participantService{
		repo:   repo,
		ids:    ids,
		logger: logger,
	}
}

func (s *participantService) List(ctx context.Context) []models.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.List(ctx)
}

func (s *participantService) ListEnabledNames(ctx context.Context) []string {
	return models.EnabledNames(s.List(ctx))
}

func (s *participantService) Add(ctx context.Context, rawName string) (models.Participant, error) {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return models.Participant{}, ErrEmptyParticipantName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	participant := models.Participant{
		ID:      s.ids.Generate(),
		Name:    name,
		Enabled: true,
	}

	participants := append(s.repo.List(ctx), participant)
	if err := s.repo.Save(ctx, participants); err != nil {
		return models.Participant{}, fmt.Errorf("add participant: %w", err)
	}

	s.logger.Debug().Str("id", participant.ID).Msg("participant added")
	return participant, nil
}

func (s *participantService) Update(ctx context.Context, id string, update models.ParticipantUpdate) (*models.Participant, error) {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, ErrEmptyParticipantName
		}
		update.Name = &name
	}

	return s.modify(ctx, id, update.Apply)
}

func (s *participantService) Toggle(ctx context.Context, id string) (*models.Participant, error) {
	return s.modify(ctx, id, func(p models.Participant) models.Participant {
		p.Enabled = !p.Enabled
		return p
	})
}

// modify applies fn to the participant with id and persists the collection.
// An unknown id yields (nil, nil).
func (s *participantService) modify(ctx context.Context, id string, fn func(models.Participant) models.Participant) (*models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	participants := s.repo.List(ctx)
	for i := range participants {
		if participants[i].ID != id {
			continue
		}

		updated := fn(participants[i])
		updated.ID = id
		participants[i] = updated

		if err := s.repo.Save(ctx, participants); err != nil {
			return nil, fmt.Errorf("update participant: %w", err)
		}
		return &updated, nil
	}

	s.logger.Debug().Str("id", id).Msg("participant not found")
	return nil, nil
}

func (s *participantService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	participants := s.repo.List(ctx)
	kept := make([]models.Participant, 0, len(participants))
	for _, p := range participants {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if len(kept) == len(participants) {
		return nil
	}

	if err := s.repo.Save(ctx, kept); err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	return nil
}
