// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/http"
	"net/url"
	"strings"
)

// Operation enumerates the closed set of calls the launcher UI may make on
// the host. Nothing else crosses the boundary.
type Operation int

const (
	OpGetEnabledNames Operation = iota + 1
	OpGetAllParticipants
	OpAddParticipant
	OpUpdateParticipant
	OpDeleteParticipant
	OpToggleParticipant
	OpGetVisualizations
	OpLaunchVisualization
)

// IDParam is the route parameter carrying a participant or visualization id.
const IDParam = "id"

type operationRoute struct {
	name    string
	method  string
	pattern string
}

var operationRoutes = map[Operation]operationRoute{
	OpGetEnabledNames:     {"get-enabled-names", http.MethodGet, "/api/participants/names"},
	OpGetAllParticipants:  {"get-all-participants", http.MethodGet, "/api/participants"},
	OpAddParticipant:      {"add-participant", http.MethodPost, "/api/participants"},
	OpUpdateParticipant:   {"update-participant", http.MethodPatch, "/api/participants/{id}"},
	OpDeleteParticipant:   {"delete-participant", http.MethodDelete, "/api/participants/{id}"},
	OpToggleParticipant:   {"toggle-participant", http.MethodPost, "/api/participants/{id}/toggle"},
	OpGetVisualizations:   {"get-visualizations", http.MethodGet, "/api/visualizations"},
	OpLaunchVisualization: {"launch-visualization", http.MethodPost, "/api/visualizations/{id}/launch"},
}

// Operations returns every operation in declaration order.
func Operations() []Operation {
	return []Operation{
		OpGetEnabledNames,
		OpGetAllParticipants,
		OpAddParticipant,
		OpUpdateParticipant,
		OpDeleteParticipant,
		OpToggleParticipant,
		OpGetVisualizations,
		OpLaunchVisualization,
	}
}

// String returns the operation name, e.g. "add-participant".
func (o Operation) String() string {
	if r, ok := operationRoutes[o]; ok {
		return r.name
	}
	return "unknown-operation"
}

// Method returns the HTTP method the operation is served with.
func (o Operation) Method() string {
	return operationRoutes[o].method
}

// Pattern returns the chi route pattern of the operation.
func (o Operation) Pattern() string {
	return operationRoutes[o].pattern
}

// Path returns the request path of the operation with the id parameter
// substituted. id is ignored by operations without a parameter.
func (o Operation) Path(id string) string {
	return strings.Replace(o.Pattern(), "{"+IDParam+"}", url.PathEscape(id), 1)
}

// Valid reports whether o is one of the declared operations.
func (o Operation) Valid() bool {
	_, ok := operationRoutes[o]
	return ok
}
