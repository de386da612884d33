package http

import (
	"net/http"

	"github.com/MKhiriev/julekalender/internal/app"
	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/utils"
)

// auth enforces the boundary token.
//
// The launcher signs a short-lived HS256 token with the key it shares with
// the host. Requests without a valid, unexpired token from the configured
// issuer are rejected with 401 Unauthorized. On success the token subject is
// stored in the request context as the caller (see [utils.WithCaller]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			log.Err(err).Msg(ErrInvalidToken.Error())
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := utils.WithCaller(r.Context(), token.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
