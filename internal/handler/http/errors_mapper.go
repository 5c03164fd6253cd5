package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/aura/internal/app"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/service"
	"github.com/MKhiriev/aura/internal/utils"
	"github.com/MKhiriev/aura/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

type errorMapping struct {
	target error
	errorResponse
}

// errorStatusMap is checked in order. Validator errors come first so the
// client sees the concrete reason instead of the generic wrapper message.
var errorStatusMap = []errorMapping{
	{validators.ErrInvalidName, errorResponse{http.StatusBadRequest, validators.ErrInvalidName.Error()}},
	{validators.ErrInvalidEmail, errorResponse{http.StatusBadRequest, validators.ErrInvalidEmail.Error()}},
	{validators.ErrPasswordTooShort, errorResponse{http.StatusBadRequest, validators.ErrPasswordTooShort.Error()}},
	{validators.ErrPasswordTooLong, errorResponse{http.StatusBadRequest, validators.ErrPasswordTooLong.Error()}},
	{validators.ErrEmptyPassword, errorResponse{http.StatusBadRequest, validators.ErrEmptyPassword.Error()}},
	{validators.ErrInvalidOTP, errorResponse{http.StatusBadRequest, validators.ErrInvalidOTP.Error()}},
	{validators.ErrInvalidToken, errorResponse{http.StatusBadRequest, validators.ErrInvalidToken.Error()}},
	{validators.ErrInvalidDOB, errorResponse{http.StatusBadRequest, validators.ErrInvalidDOB.Error()}},
	{validators.ErrNoFieldsToUpdate, errorResponse{http.StatusBadRequest, validators.ErrNoFieldsToUpdate.Error()}},
	{validators.ErrEmptyContent, errorResponse{http.StatusBadRequest, validators.ErrEmptyContent.Error()}},
	{validators.ErrEmptyMood, errorResponse{http.StatusBadRequest, validators.ErrEmptyMood.Error()}},
	{validators.ErrMoodTooLong, errorResponse{http.StatusBadRequest, validators.ErrMoodTooLong.Error()}},
	{validators.ErrContentTooLarge, errorResponse{http.StatusBadRequest, validators.ErrContentTooLarge.Error()}},
	{validators.ErrInvalidEntryID, errorResponse{http.StatusBadRequest, validators.ErrInvalidEntryID.Error()}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidInput}},

	{service.ErrUserAlreadyExists, errorResponse{http.StatusBadRequest, app.MsgUserAlreadyExists}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusBadRequest, app.MsgInvalidCredentials}},
	{service.ErrEmailNotVerified, errorResponse{http.StatusForbidden, app.MsgEmailNotVerified}},
	{service.ErrAlreadyVerified, errorResponse{http.StatusBadRequest, app.MsgAlreadyVerified}},
	{service.ErrInvalidOrExpiredOTP, errorResponse{http.StatusBadRequest, app.MsgInvalidOrExpiredOTP}},
	{service.ErrInvalidOrExpiredToken, errorResponse{http.StatusBadRequest, app.MsgInvalidOrExpiredToken}},
	{service.ErrIncorrectCurrentPassword, errorResponse{http.StatusBadRequest, app.MsgIncorrectCurrentPassword}},
	{service.ErrIncorrectPassword, errorResponse{http.StatusBadRequest, app.MsgIncorrectPassword}},
	{service.ErrEmailNotRegistered, errorResponse{http.StatusBadRequest, app.MsgUserNotFound}},
	{service.ErrUserNotFound, errorResponse{http.StatusNotFound, app.MsgUserNotFound}},

	{service.ErrEntryNotFound, errorResponse{http.StatusNotFound, app.MsgEntryNotFound}},
	{service.ErrAccessDenied, errorResponse{http.StatusForbidden, app.MsgForbidden}},

	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusForbidden, app.MsgInvalidToken}},
}

// responseFromError maps err to a status and a client-safe message. Errors
// without a mapping become 500 with fallback as the message.
func responseFromError(err error, fallback string) (int, string) {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, fallback
}

// writeServiceError logs err and writes the mapped JSON error. Internal
// error text never reaches the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, message := responseFromError(err, fallback)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().AnErr("reason", err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
