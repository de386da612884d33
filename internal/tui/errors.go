// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/julekalender/internal/adapter"
	"github.com/MKhiriev/julekalender/internal/app"
	"github.com/MKhiriev/julekalender/internal/service"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit")

// userMessage picks the text shown for err, falling back to fallback.
func userMessage(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrEmptyParticipantName):
		return app.UIEmptyName
	case errors.Is(err, service.ErrVisualizationNotFound):
		return app.UIVisualizationMissing
	case errors.Is(err, adapter.ErrHostUnavailable):
		return app.UIHostUnavailable
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.UIAccessDenied
	default:
		return fallback
	}
}
