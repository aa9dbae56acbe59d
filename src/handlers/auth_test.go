package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
	"github.com/khabaroff/portfolio-backend/src/repositories/mock"
	"github.com/khabaroff/portfolio-backend/src/services"
)

func newLoginRouter(t *testing.T) (*gin.Engine, *services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := services.HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	account := &models.AdminAccount{ID: 1, Username: "admin", PasswordHash: hash}

	admins := mock.NewAdminRepository()
	admins.GetByUsernameFunc = func(ctx context.Context, username string) (*models.AdminAccount, error) {
		if username == account.Username {
			return account, nil
		}
		return nil, repositories.ErrNotFound
	}

	auth, err := services.NewAuthService(admins, "test-secret-at-least-32-characters-long", time.Hour)
	if err != nil {
		t.Fatalf("NewAuthService failed: %v", err)
	}

	router := gin.New()
	router.POST("/auth/token", NewAuthHandler(auth).HandleLogin)
	return router, auth
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleLoginSuccess(t *testing.T) {
	router, auth := newLoginRouter(t)

	w := postJSON(router, "/auth/token", `{"username":"admin","password":"hunter2hunter2"}`)
	assertStatusCode(t, w, http.StatusOK)

	var resp LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("expected token_type bearer, got %q", resp.TokenType)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("expected expires_in 3600, got %d", resp.ExpiresIn)
	}

	subject, err := auth.VerifyToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if subject != "admin" {
		t.Errorf("expected subject admin, got %s", subject)
	}
}

func TestHandleLoginAcceptsFormEncoding(t *testing.T) {
	router, _ := newLoginRouter(t)

	w := postForm(router, "/auth/token", url.Values{
		"username": {"admin"},
		"password": {"hunter2hunter2"},
	})
	assertStatusCode(t, w, http.StatusOK)
}

func TestHandleLoginBadCredentials(t *testing.T) {
	router, _ := newLoginRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"unknown username", `{"username":"nobody","password":"hunter2hunter2"}`},
		{"wrong password", `{"username":"admin","password":"wrong"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/auth/token", tt.body)
			assertStatusCode(t, w, http.StatusUnauthorized)
			assertJSONError(t, w, "invalid username or password")
			if got := w.Header().Get("WWW-Authenticate"); got != "Bearer" {
				t.Errorf("expected WWW-Authenticate: Bearer, got %q", got)
			}
		})
	}
}

func TestHandleLoginMissingFields(t *testing.T) {
	router, _ := newLoginRouter(t)

	w := postJSON(router, "/auth/token", `{"username":"admin"}`)
	assertStatusCode(t, w, http.StatusBadRequest)

	w = postJSON(router, "/auth/token", `{}`)
	assertStatusCode(t, w, http.StatusBadRequest)
}
