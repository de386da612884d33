package tui

import (
	"github.com/MKhiriev/julekalender/models"
)

type participantsLoadedMsg struct {
	items []models.Participant
	err   error
}

type visualizationsLoadedMsg struct {
	items []models.Visualization
	err   error
}

// participantChangedMsg reports a finished participant mutation.
// failMessage is shown when err is not nil and has no more specific text.
type participantChangedMsg struct {
	failMessage string
	err         error
}

type launchDoneMsg struct {
	id  string
	err error
}

type copiedMsg struct {
	count int
	err   error
}

type hostVersionMsg struct {
	version models.VersionResponse
	err     error
}
