package http

import (
	"net/http"

	"github.com/MKhiriev/julekalender/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := models.NewVersionResponse(h.appInfo.GetAppVersion(ctx), h.appInfo.GetBuildInfo(ctx))

	h.writeJSON(w, r, resp, http.StatusOK)
}
