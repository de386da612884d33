package window

import "errors"

var (
	// ErrOpenSurface is returned by Launch when no surface could be opened,
	// e.g. the browser is missing.
	ErrOpenSurface = errors.New("cannot open visualization window")

	// ErrManagerClosed is returned by Launch after Close.
	ErrManagerClosed = errors.New("window manager is closed")
)
