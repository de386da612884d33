package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address is
// configured. The host cannot serve the launcher without one.
var errNoHandlersAreCreated = errors.New("no handlers are created")
