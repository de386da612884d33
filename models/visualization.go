// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Default descriptor values used when a visualization folder has no manifest
// or the manifest does not set a field.
const (
	DefaultVisualizationDescription = "No description available"
	DefaultVisualizationIcon        = "🎮"
)

// Visualization describes a pluggable display module discovered in the
// visualizations folder. Descriptors are recomputed on every discovery call.
//
// The JSON form is flat: keys from Extra are emitted next to the known fields,
// so a manifest can extend the descriptor with its own keys.
type Visualization struct {
	// ID is the folder name. It resolves the entry page and is never taken
	// from the manifest.
	ID string `json:"id"`

	// Name is a human-readable label.
	Name string `json:"name"`

	// Description is free text shown on the card.
	Description string `json:"description"`

	// Icon is a display glyph shown on the card.
	Icon string `json:"icon"`

	// Extra holds manifest keys that are not recognised fields.
	Extra map[string]any `json:"-"`
}

// visualizationFields mirrors the recognised keys of [Visualization] without
// its custom (un)marshalling methods.
type visualizationFields struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// visualizationKnownKeys lists JSON keys that never end up in Extra.
var visualizationKnownKeys = map[string]struct{}{
	"id":          {},
	"name":        {},
	"description": {},
	"icon":        {},
}

// IsVisualizationKnownKey reports whether key is one of the recognised
// descriptor keys.
func IsVisualizationKnownKey(key string) bool {
	_, ok := visualizationKnownKeys[key]
	return ok
}

// MarshalJSON implements [json.Marshaler].
func (v Visualization) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(v.Extra)+len(visualizationKnownKeys))
	for k, val := range v.Extra {
		out[k] = val
	}
	out["id"] = v.ID
	out["name"] = v.Name
	out["description"] = v.Description
	out["icon"] = v.Icon

	return json.Marshal(out)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (v *Visualization) UnmarshalJSON(b []byte) error {
	var fields visualizationFields
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*v = Visualization{
		ID:          fields.ID,
		Name:        fields.Name,
		Description: fields.Description,
		Icon:        fields.Icon,
	}
	for k, val := range raw {
		if IsVisualizationKnownKey(k) {
			continue
		}
		if v.Extra == nil {
			v.Extra = make(map[string]any)
		}
		v.Extra[k] = val
	}

	return nil
}
