// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the launcher's proxy to the host.
//
// [HostAdapter] implements [service.Launcher] over the HTTP boundary, so the
// launcher UI calls the same eight operations the host implements directly.
// Error responses are mapped back to the sentinel values of the service
// package and of this package, so callers can use [errors.Is] regardless of
// transport (e.g. [service.ErrEmptyParticipantName] for a rejected name,
// [ErrHostUnavailable] when the host cannot be reached).
package adapter

import (
	"context"

	"github.com/MKhiriev/julekalender/internal/service"
	"github.com/MKhiriev/julekalender/models"
)

// HostAdapter is the launcher side of the boundary.
type HostAdapter interface {
	service.Launcher

	// HostVersion reads the host version. It needs no boundary token and
	// doubles as a reachability check.
	HostVersion(ctx context.Context) (models.VersionResponse, error)
}
