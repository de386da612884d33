package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/julekalender/internal/app"
	"github.com/MKhiriev/julekalender/internal/service"
	"github.com/MKhiriev/julekalender/models"
)

// messageErrors maps boundary error messages to the service errors the host
// raised.
var messageErrors = map[string]error{
	app.MsgEmptyParticipantName:  service.ErrEmptyParticipantName,
	app.MsgInvalidDataProvided:   service.ErrInvalidDataProvided,
	app.MsgVisualizationNotFound: service.ErrVisualizationNotFound,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp.Body())

	var kind error
	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		kind = ErrBadRequest
	case resp.StatusCode() == http.StatusUnauthorized:
		kind = ErrUnauthorized
	case resp.StatusCode() == http.StatusNotFound:
		kind = ErrNotFound
	case resp.StatusCode() >= http.StatusInternalServerError:
		kind = ErrInternalServerError
	default:
		if message == "" {
			message = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), message)
	}

	if cause, ok := messageErrors[message]; ok {
		return fmt.Errorf("%w: %w", kind, cause)
	}
	return fmt.Errorf("%w: %s", kind, message)
}

// errorMessage reads a [models.ErrorResponse] body, falling back to the raw
// text for plain-text errors.
func errorMessage(body []byte) string {
	var resp models.ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != "" {
		return resp.Error
	}
	return strings.TrimSpace(string(body))
}
