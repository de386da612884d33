// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the host handlers and the
// launcher UI.
//
// Msg* constants are written into boundary error responses and logs. UI*
// constants are the Norwegian texts shown to the person operating the
// launcher. Keeping them in one place ensures consistent wording on both
// sides of the boundary.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or carries nothing to apply.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgEmptyParticipantName is returned when a participant name is empty
	// after trimming.
	MsgEmptyParticipantName = "participant name is required"

	// MsgVisualizationNotFound is returned when a visualization id does not
	// resolve to a folder with an entry page.
	MsgVisualizationNotFound = "visualization not found"

	// MsgInternalServerError is returned when an unexpected host-side
	// failure occurs that the launcher cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when the boundary token is
	// missing, expired or not signed with the shared key.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
)

// Launcher UI texts.
const (
	UIEmptyName            = "Vennligst skriv inn et navn"
	UINoParticipants       = "Ingen deltakere"
	UINoVisualizations     = "Ingen visualiseringer funnet"
	UILoadParticipantsErr  = "Kunne ikke laste deltakere"
	UILoadVisualizationErr = "Kunne ikke laste visualiseringer"
	UIAddErr               = "Kunne ikke legge til deltaker"
	UIUpdateErr            = "Kunne ikke oppdatere deltaker"
	UIDeleteErr            = "Kunne ikke slette deltaker"
	UIToggleErr            = "Kunne ikke endre status"
	UILaunchErr            = "Kunne ikke starte visualiseringen"
	UIVisualizationMissing = "Visualiseringen finnes ikke lenger"
	UIHostUnavailable      = "Verten er utilgjengelig"
	UIAccessDenied         = "Tilgang nektet"
	UIClipboardErr         = "Kunne ikke kopiere til utklippstavlen"
	UIClipboardCopied      = "Aktive navn kopiert"
	UIConfirmDelete        = "Er du sikker på at du vil slette %s?"
	UIEmptyStateAdd        = "Trykk a for å legge til deltakere"
	UIEmptyStateVisualize  = "Legg til visualiseringer i visualiseringsmappen"
)
