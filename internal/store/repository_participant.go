package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/models"
)

// ParticipantsKey is the store key holding the participant collection.
const ParticipantsKey = "participants"

type participantRepository struct {
	kv     KeyValueStore
	logger *logger.Logger
}

func NewParticipantRepository(kv KeyValueStore, log *logger.Logger) ParticipantRepository {
	return &participantRepository{kv: kv, logger: log}
}

func (r *participantRepository) List(ctx context.Context) []models.Participant {
	participants := GetOrDefault(ctx, r.kv, ParticipantsKey, []models.Participant{}, r.logger)
	if participants == nil {
		return []models.Participant{}
	}
	return participants
}

func (r *participantRepository) Save(ctx context.Context, participants []models.Participant) error {
	if participants == nil {
		participants = []models.Participant{}
	}

	if err := SetValue(ctx, r.kv, ParticipantsKey, participants); err != nil {
		r.logger.Err(err).Int("count", len(participants)).Msg("saving participants failed")
		return fmt.Errorf("save participants: %w", err)
	}
	return nil
}
