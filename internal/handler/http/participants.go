package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/service"
	"github.com/MKhiriev/julekalender/internal/utils"
	"github.com/MKhiriev/julekalender/models"
)

func (h *Handler) getEnabledNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.launcher.GetEnabledNames(r.Context())
	if err != nil {
		h.writeError(w, r, models.OpGetEnabledNames, err)
		return
	}

	h.writeJSON(w, r, names, http.StatusOK)
}

func (h *Handler) getAllParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := h.launcher.GetAllParticipants(r.Context())
	if err != nil {
		h.writeError(w, r, models.OpGetAllParticipants, err)
		return
	}

	h.writeJSON(w, r, participants, http.StatusOK)
}

func (h *Handler) addParticipant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AddParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.addParticipant").Msg("invalid JSON was passed")
		h.writeError(w, r, models.OpAddParticipant, service.ErrInvalidDataProvided)
		return
	}

	participant, err := h.launcher.AddParticipant(r.Context(), req.Name)
	if err != nil {
		h.writeError(w, r, models.OpAddParticipant, err)
		return
	}

	h.writeJSON(w, r, participant, http.StatusCreated)
}

// updateParticipant answers an unknown id with 200 and a JSON null.
func (h *Handler) updateParticipant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var update models.ParticipantUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateParticipant").Msg("invalid JSON was passed")
		h.writeError(w, r, models.OpUpdateParticipant, service.ErrInvalidDataProvided)
		return
	}

	participant, err := h.launcher.UpdateParticipant(r.Context(), chi.URLParam(r, models.IDParam), update)
	if err != nil {
		h.writeError(w, r, models.OpUpdateParticipant, err)
		return
	}

	h.writeJSON(w, r, participant, http.StatusOK)
}

func (h *Handler) deleteParticipant(w http.ResponseWriter, r *http.Request) {
	if err := h.launcher.DeleteParticipant(r.Context(), chi.URLParam(r, models.IDParam)); err != nil {
		h.writeError(w, r, models.OpDeleteParticipant, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleParticipant(w http.ResponseWriter, r *http.Request) {
	participant, err := h.launcher.ToggleParticipant(r.Context(), chi.URLParam(r, models.IDParam))
	if err != nil {
		h.writeError(w, r, models.OpToggleParticipant, err)
		return
	}

	h.writeJSON(w, r, participant, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}
