package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/julekalender/models"
)

func (h *Handler) getVisualizations(w http.ResponseWriter, r *http.Request) {
	visualizations, err := h.launcher.GetVisualizations(r.Context())
	if err != nil {
		h.writeError(w, r, models.OpGetVisualizations, err)
		return
	}

	h.writeJSON(w, r, visualizations, http.StatusOK)
}

// launchVisualization returns once the window is opening; loading continues
// on the host.
func (h *Handler) launchVisualization(w http.ResponseWriter, r *http.Request) {
	if err := h.launcher.LaunchVisualization(r.Context(), chi.URLParam(r, models.IDParam)); err != nil {
		h.writeError(w, r, models.OpLaunchVisualization, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
