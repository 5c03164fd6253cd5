package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/service"
	"github.com/MKhiriev/aura/models"
)

// ─────────────────────────────────────────────
// Function-field fakes of the service interfaces
// ─────────────────────────────────────────────

type fakeAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	verifyEmailFn func(ctx context.Context, req models.VerifyEmailRequest) (models.User, models.Token, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if f.registerFn != nil {
		return f.registerFn(ctx, req)
	}
	return models.User{}, nil
}

func (f *fakeAuthService) VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) (models.User, models.Token, error) {
	if f.verifyEmailFn != nil {
		return f.verifyEmailFn(ctx, req)
	}
	return models.User{}, models.Token{}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, req)
	}
	return models.User{}, models.Token{}, nil
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return models.Token{SignedString: "signed-" + user.UserID, UserID: user.UserID}, nil
}

// ParseToken accepts "valid-<userID>" unless parseTokenFn is set.
func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, tokenString)
	}
	if userID, ok := strings.CutPrefix(tokenString, "valid-"); ok {
		return models.Token{UserID: userID}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

type fakePasswordResetService struct {
	forgotFn func(ctx context.Context, req models.ForgotPasswordRequest) error
	resetFn  func(ctx context.Context, req models.ResetPasswordRequest) error
}

func (f *fakePasswordResetService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	if f.forgotFn != nil {
		return f.forgotFn(ctx, req)
	}
	return nil
}

func (f *fakePasswordResetService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if f.resetFn != nil {
		return f.resetFn(ctx, req)
	}
	return nil
}

type fakeAccountService struct {
	getProfileFn     func(ctx context.Context, userID string) (models.Profile, error)
	updateProfileFn  func(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.Profile, error)
	changePasswordFn func(ctx context.Context, userID string, req models.ChangePasswordRequest) error
	deleteAccountFn  func(ctx context.Context, userID string, req models.DeleteAccountRequest) error
}

func (f *fakeAccountService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	if f.getProfileFn != nil {
		return f.getProfileFn(ctx, userID)
	}
	return models.Profile{}, nil
}

func (f *fakeAccountService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.Profile, error) {
	if f.updateProfileFn != nil {
		return f.updateProfileFn(ctx, userID, req)
	}
	return models.Profile{}, nil
}

func (f *fakeAccountService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	if f.changePasswordFn != nil {
		return f.changePasswordFn(ctx, userID, req)
	}
	return nil
}

func (f *fakeAccountService) DeleteAccount(ctx context.Context, userID string, req models.DeleteAccountRequest) error {
	if f.deleteAccountFn != nil {
		return f.deleteAccountFn(ctx, userID, req)
	}
	return nil
}

type fakeEntryService struct {
	createFn func(ctx context.Context, userID string, req models.CreateEntryRequest) (models.Entry, error)
	listFn   func(ctx context.Context, userID string) ([]models.Entry, error)
	getFn    func(ctx context.Context, userID, entryID string) (models.Entry, error)
	deleteFn func(ctx context.Context, userID, entryID string) error
}

func (f *fakeEntryService) Create(ctx context.Context, userID string, req models.CreateEntryRequest) (models.Entry, error) {
	if f.createFn != nil {
		return f.createFn(ctx, userID, req)
	}
	return models.Entry{}, nil
}

func (f *fakeEntryService) List(ctx context.Context, userID string) ([]models.Entry, error) {
	if f.listFn != nil {
		return f.listFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeEntryService) Get(ctx context.Context, userID, entryID string) (models.Entry, error) {
	if f.getFn != nil {
		return f.getFn(ctx, userID, entryID)
	}
	return models.Entry{}, nil
}

func (f *fakeEntryService) Delete(ctx context.Context, userID, entryID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, userID, entryID)
	}
	return nil
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(ctx context.Context) string {
	return f.version
}

func (f *fakeAppInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(f.version, "", "")
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testTokenDuration = 24 * time.Hour

// newFakeServices fills every service with an empty fake; tests replace
// the ones they exercise.
func newFakeServices() *service.Services {
	return &service.Services{
		AuthService:          &fakeAuthService{},
		PasswordResetService: &fakePasswordResetService{},
		AccountService:       &fakeAccountService{},
		EntryService:         &fakeEntryService{},
		AppInfoService:       &fakeAppInfoService{version: "test-version"},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services,
		config.Server{AllowedOrigins: []string{"http://localhost:5173"}, RequestTimeout: 5 * time.Second},
		config.App{TokenDuration: testTokenDuration},
		logger.Nop())
}

// serve runs a request through the full router.
func serve(t *testing.T, services *service.Services, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	newTestHandler(services).Init().ServeHTTP(rr, req)
	return rr
}

func sessionCookie(userID string) *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: "valid-" + userID}
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// httptestServe runs a request through a prepared handler.
func httptestServe(h *Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}
