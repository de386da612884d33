package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/julekalender/internal/app"
	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/service"
	"github.com/MKhiriev/julekalender/internal/store"
	"github.com/MKhiriev/julekalender/internal/utils"
	"github.com/MKhiriev/julekalender/models"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrEmptyParticipantName:  {http.StatusBadRequest, app.MsgEmptyParticipantName},
	service.ErrInvalidDataProvided:   {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrVisualizationNotFound: {http.StatusNotFound, app.MsgVisualizationNotFound},

	store.ErrInvalidValue:     {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrStoreNotMigrated: {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrExecutingQuery:   {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrBuildingSQLQuery: {http.StatusInternalServerError, app.MsgInternalServerError},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and answers with its mapped status and message. The
// verified caller, when there is one, is logged along with it.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op models.Operation, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	ev := log.Warn()
	msg := "operation rejected"
	if resp.status >= http.StatusInternalServerError {
		ev = log.Error()
		msg = "operation failed"
	}
	if caller, ok := utils.GetCallerFromContext(r.Context()); ok {
		ev = ev.Str("caller", caller)
	}
	ev.Err(err).Str("operation", op.String()).Msg(msg)

	h.writeJSON(w, r, models.ErrorResponse{Error: resp.message}, resp.status)
}
