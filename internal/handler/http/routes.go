package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/julekalender/models"
)

// VersionPath serves host version and build metadata without a token.
const VersionPath = "/api/version"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get(VersionPath, h.getServerVersion)

	// boundary operations
	router.Group(func(r chi.Router) {
		if h.tokenSignKey != "" {
			r.Use(h.auth)
		}

		for _, op := range models.Operations() {
			r.Method(op.Method(), op.Pattern(), h.operation(op))
		}
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// operation returns the handler serving op.
func (h *Handler) operation(op models.Operation) http.HandlerFunc {
	switch op {
	case models.OpGetEnabledNames:
		return h.getEnabledNames
	case models.OpGetAllParticipants:
		return h.getAllParticipants
	case models.OpAddParticipant:
		return h.addParticipant
	case models.OpUpdateParticipant:
		return h.updateParticipant
	case models.OpDeleteParticipant:
		return h.deleteParticipant
	case models.OpToggleParticipant:
		return h.toggleParticipant
	case models.OpGetVisualizations:
		return h.getVisualizations
	case models.OpLaunchVisualization:
		return h.launchVisualization
	default:
		return http.NotFound
	}
}
