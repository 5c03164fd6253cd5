package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/aura/internal/service"
	"github.com/MKhiriev/aura/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	dob := "1990-05-17"
	services := newFakeServices()
	services.AccountService = &fakeAccountService{
		getProfileFn: func(_ context.Context, userID string) (models.Profile, error) {
			assert.Equal(t, "u1", userID)
			return models.Profile{Name: "Ann", Email: "ann@example.com", DOB: &dob}, nil
		},
	}

	rr := serve(t, services, http.MethodGet, "/api/auth/me", "", sessionCookie("u1"))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"name":"Ann","email":"ann@example.com","dob":"1990-05-17","gender":null}`, rr.Body.String())
}

func TestUpdateProfile_PassesPartialBody(t *testing.T) {
	services := newFakeServices()
	services.AccountService = &fakeAccountService{
		updateProfileFn: func(_ context.Context, userID string, req models.UpdateProfileRequest) (models.Profile, error) {
			assert.Equal(t, "u1", userID)
			require.NotNil(t, req.Gender)
			assert.Equal(t, "", *req.Gender)
			assert.Nil(t, req.Name)
			assert.Nil(t, req.DOB)
			return models.Profile{Name: "Ann"}, nil
		},
	}

	rr := serve(t, services, http.MethodPut, "/api/auth/me", `{"gender":""}`, sessionCookie("u1"))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	services := newFakeServices()
	services.AccountService = &fakeAccountService{
		changePasswordFn: func(context.Context, string, models.ChangePasswordRequest) error {
			return service.ErrIncorrectCurrentPassword
		},
	}

	rr := serve(t, services, http.MethodPost, "/api/auth/change-password", `{"currentPassword":"x","newPassword":"secret2"}`, sessionCookie("u1"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Current password is incorrect", decodeBody[models.ErrorResponse](t, rr.Body.Bytes()).Error)
}

func TestChangePassword_Success(t *testing.T) {
	rr := serve(t, newFakeServices(), http.MethodPost, "/api/auth/change-password", `{"currentPassword":"secret1","newPassword":"secret2"}`, sessionCookie("u1"))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteAccount_ClearsCookie(t *testing.T) {
	services := newFakeServices()
	services.AccountService = &fakeAccountService{
		deleteAccountFn: func(_ context.Context, userID string, req models.DeleteAccountRequest) error {
			assert.Equal(t, "u1", userID)
			assert.Equal(t, "secret1", req.Password)
			return nil
		},
	}

	rr := serve(t, services, http.MethodPost, "/api/auth/delete-account", `{"password":"secret1"}`, sessionCookie("u1"))

	require.Equal(t, http.StatusOK, rr.Code)
	cookie := findCookie(rr, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
}

func TestDeleteAccount_WrongPassword_KeepsCookie(t *testing.T) {
	services := newFakeServices()
	services.AccountService = &fakeAccountService{
		deleteAccountFn: func(context.Context, string, models.DeleteAccountRequest) error {
			return service.ErrIncorrectPassword
		},
	}

	rr := serve(t, services, http.MethodPost, "/api/auth/delete-account", `{"password":"nope"}`, sessionCookie("u1"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Nil(t, findCookie(rr, sessionCookieName))
}
