package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/julekalender/internal/config"
	"github.com/MKhiriev/julekalender/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_RegistersEveryOperation(t *testing.T) {
	th := newTestHandler(t, config.App{})
	router, ok := th.router.(*chi.Mux)
	require.True(t, ok)

	registered := make(map[string]map[string]struct{})
	for _, route := range router.Routes() {
		methods := make(map[string]struct{})
		for m := range route.Handlers {
			methods[m] = struct{}{}
		}
		registered[route.Pattern] = methods
	}

	for _, op := range models.Operations() {
		methods, ok := registered[op.Pattern()]
		require.True(t, ok, "route for %s", op)
		assert.Contains(t, methods, op.Method(), "method for %s", op)
	}
	assert.Contains(t, registered, VersionPath)
}

func TestInit_UnknownMethodIsNotFound(t *testing.T) {
	th := newTestHandler(t, config.App{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/participants"},
		{http.MethodDelete, "/api/participants/names"},
		{http.MethodGet, "/api/participants/p-1/toggle"},
		{http.MethodPost, "/api/version"},
		{http.MethodGet, "/api/unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := th.do(t, tt.method, tt.path, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	th := newTestHandler(t, config.App{})
	th.launcher.EXPECT().GetEnabledNames(gomock.Any()).Return([]string{}, nil)

	rec := th.do(t, http.MethodGet, "/api/participants/names", "", traceIDHeader, "trace-42")

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}
