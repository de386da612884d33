package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"

	"github.com/MKhiriev/julekalender/models"
)

// disabledMarker prefixes a disabled participant in a legacy names file.
const disabledMarker = "#"

// ImportLegacy runs whenever the collection is empty, so emptying the roster
// and restarting imports the file again.
func (s *participantService) ImportLegacy(ctx context.Context, path string) {
	if path == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.repo.List(ctx)) > 0 {
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug().Str("path", path).Msg("no legacy names file")
			return
		}
		s.logger.Err(err).Str("path", path).Msg("reading legacy names file failed")
		return
	}

	participants := parseLegacyNames(content, s.ids.Generate)
	if len(participants) == 0 {
		return
	}

	if err = s.repo.Save(ctx, participants); err != nil {
		s.logger.Err(err).Str("path", path).Msg("saving imported participants failed")
		return
	}

	s.logger.Info().Str("path", path).Int("count", len(participants)).Msg("imported legacy names")
}

// parseLegacyNames turns one name per line into participants. Blank lines
// are skipped; a line starting with the marker is a disabled participant.
// Lines have no length limit.
func parseLegacyNames(content []byte, newID func() string) []models.Participant {
	participants := make([]models.Participant, 0)

	for _, raw := range bytes.Split(content, []byte("\n")) {
		line := strings.TrimSpace(string(raw))
		if line == "" {
			continue
		}

		enabled := true
		if strings.HasPrefix(line, disabledMarker) {
			enabled = false
			line = strings.TrimSpace(strings.TrimPrefix(line, disabledMarker))
			if line == "" {
				continue
			}
		}

		participants = append(participants, models.Participant{
			ID:      newID(),
			Name:    line,
			Enabled: enabled,
		})
	}

	return participants
}
