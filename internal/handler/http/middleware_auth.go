package http

import (
	"net/http"

	"github.com/MKhiriev/aura/internal/app"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/utils"
)

// auth is an HTTP middleware that enforces cookie-based authentication.
//
// It reads the session cookie, validates the token via
// [service.AuthService.ParseToken] and, on success, stores the user ID in
// the request context with [utils.WithUserID] before delegating to next.
//
// A missing cookie is answered with 401, a token that does not verify with
// 403.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			log.Info().AnErr("reason", ErrNoSessionCookie).Msg("unauthenticated request")
			utils.WriteError(w, app.MsgAccessDeniedLogin, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err != nil {
			log.Info().AnErr("reason", err).Msg("session token rejected")
			utils.WriteError(w, app.MsgInvalidToken, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// userIDFromRequest returns the authenticated user. It writes 401 and
// reports false when the auth middleware did not run.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoUserInContext).Send()
		utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return "", false
	}

	return userID, true
}
