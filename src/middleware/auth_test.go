package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
	"github.com/khabaroff/portfolio-backend/src/repositories/mock"
	"github.com/khabaroff/portfolio-backend/src/services"
)

func newGateRouter(t *testing.T, admins repositories.AdminRepository, lifetime time.Duration) (*gin.Engine, *services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth, err := services.NewAuthService(admins, "test-secret-at-least-32-characters-long", lifetime)
	if err != nil {
		t.Fatalf("NewAuthService failed: %v", err)
	}

	router := gin.New()
	router.POST("/guarded", AdminAuth(auth), func(c *gin.Context) {
		admin := AdminFromContext(c)
		if admin == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no admin in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": admin.Username})
	})
	return router, auth
}

func adminsWith(account *models.AdminAccount) *mock.AdminRepository {
	admins := mock.NewAdminRepository()
	admins.GetByUsernameFunc = func(ctx context.Context, username string) (*models.AdminAccount, error) {
		if username == account.Username {
			return account, nil
		}
		return nil, repositories.ErrNotFound
	}
	return admins
}

func performGuarded(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdminAuthAllowsValidToken(t *testing.T) {
	account := &models.AdminAccount{ID: 1, Username: "admin"}
	router, auth := newGateRouter(t, adminsWith(account), time.Hour)

	token, err := auth.IssueToken("admin")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	w := performGuarded(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminAuthRejectsUniformly(t *testing.T) {
	account := &models.AdminAccount{ID: 1, Username: "admin"}
	router, auth := newGateRouter(t, adminsWith(account), time.Hour)

	ghost, err := auth.IssueToken("ghost")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	tests := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"bearer without token", "Bearer"},
		{"garbage token", "Bearer not-a-token"},
		{"deleted account", "Bearer " + ghost},
		{"wrong scheme casing with garbage", "bearer xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performGuarded(router, tt.authorization)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d: %s", w.Code, w.Body.String())
			}
			if got := w.Header().Get("WWW-Authenticate"); got != "Bearer" {
				t.Errorf("expected WWW-Authenticate: Bearer, got %q", got)
			}
			if w.Body.String() != `{"error":"unauthorized"}` {
				t.Errorf("all failure modes must share one body, got %s", w.Body.String())
			}
		})
	}
}

func TestAdminAuthRejectsExpiredToken(t *testing.T) {
	account := &models.AdminAccount{ID: 1, Username: "admin"}
	router, auth := newGateRouter(t, adminsWith(account), -time.Minute)

	token, err := auth.IssueToken("admin")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	w := performGuarded(router, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %d", w.Code)
	}
}

func TestAdminAuthAcceptsLowercaseBearer(t *testing.T) {
	account := &models.AdminAccount{ID: 1, Username: "admin"}
	router, auth := newGateRouter(t, adminsWith(account), time.Hour)

	token, err := auth.IssueToken("admin")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	w := performGuarded(router, "bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("scheme comparison should be case-insensitive, got %d", w.Code)
	}
}

func TestAdminFromContextWithoutGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if AdminFromContext(c) != nil {
		t.Error("expected nil admin when the gate did not run")
	}
}
