// Package http serves the launcher boundary over HTTP.
//
// Every [models.Operation] is mounted on exactly one route and forwarded to
// a [service.Launcher]. Request tracing, access logging and the boundary
// token check are handled here before a call reaches the host services.
package http
