// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Participant is a named entry of the roster. Only enabled participants are
// handed over to visualizations.
type Participant struct {
	// ID is assigned by the host when the participant is created and stays
	// stable for the lifetime of the record.
	ID string `json:"id"`

	// Name is the trimmed, non-empty display name.
	Name string `json:"name"`

	// Enabled reports whether the participant is passed to visualizations.
	Enabled bool `json:"enabled"`
}

// ParticipantUpdate carries a partial update of a [Participant].
// Only non-nil fields are applied (partial update support).
type ParticipantUpdate struct {
	// Name replaces the participant name when set.
	Name *string `json:"name,omitempty"`

	// Enabled replaces the enabled flag when set.
	Enabled *bool `json:"enabled,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u ParticipantUpdate) IsEmpty() bool {
	return u.Name == nil && u.Enabled == nil
}

// Apply returns a copy of p with every set field of u merged onto it.
func (u ParticipantUpdate) Apply(p Participant) Participant {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Enabled != nil {
		p.Enabled = *u.Enabled
	}
	return p
}

// AddParticipantRequest is the body of the add-participant operation.
type AddParticipantRequest struct {
	Name string `json:"name"`
}

// EnabledNames returns the names of enabled participants preserving order.
func EnabledNames(participants []Participant) []string {
	names := make([]string, 0, len(participants))
	for _, p := range participants {
		if p.Enabled {
			names = append(names, p.Name)
		}
	}
	return names
}
