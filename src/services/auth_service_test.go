package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
	"github.com/khabaroff/portfolio-backend/src/repositories/mock"
)

const testSecret = "test-secret-at-least-32-characters-long"

func newTestAuthService(t *testing.T, admins repositories.AdminRepository, lifetime time.Duration) *AuthService {
	t.Helper()
	svc, err := NewAuthService(admins, testSecret, lifetime)
	if err != nil {
		t.Fatalf("NewAuthService failed: %v", err)
	}
	return svc
}

func adminWithPassword(t *testing.T, username, password string) *models.AdminAccount {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	return &models.AdminAccount{ID: 1, Username: username, PasswordHash: hash}
}

func TestNewAuthServiceRejectsWeakSecret(t *testing.T) {
	admins := mock.NewAdminRepository()

	if _, err := NewAuthService(admins, "", time.Hour); err == nil {
		t.Error("expected error for empty secret")
	}
	if _, err := NewAuthService(admins, "short", time.Hour); err == nil {
		t.Error("expected error for short secret")
	}
	if _, err := NewAuthService(admins, testSecret, time.Hour); err != nil {
		t.Errorf("expected 32-char secret to be accepted, got %v", err)
	}
}

func TestHashPasswordIsNonDeterministic(t *testing.T) {
	h1, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password should differ (fresh salt per call)")
	}
	if !VerifyPassword("correct horse battery staple", h1) {
		t.Error("first hash should verify against original password")
	}
	if !VerifyPassword("correct horse battery staple", h2) {
		t.Error("second hash should verify against original password")
	}
	if VerifyPassword("wrong password", h1) {
		t.Error("wrong password should not verify")
	}
}

func TestAuthenticate(t *testing.T) {
	admin := adminWithPassword(t, "admin", "hunter2hunter2")
	admins := mock.NewAdminRepository()
	admins.GetByUsernameFunc = func(ctx context.Context, username string) (*models.AdminAccount, error) {
		if username == admin.Username {
			return admin, nil
		}
		return nil, repositories.ErrNotFound
	}
	svc := newTestAuthService(t, admins, time.Hour)

	got, err := svc.Authenticate(context.Background(), "admin", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.Username != "admin" {
		t.Errorf("expected username admin, got %s", got.Username)
	}
	if got.LastLogin == nil {
		t.Error("expected LastLogin to be set after successful login")
	}
	if len(admins.Calls["UpdateLastLogin"]) != 1 {
		t.Error("expected last_login timestamp write on successful login")
	}
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	admin := adminWithPassword(t, "admin", "hunter2hunter2")
	admins := mock.NewAdminRepository()
	admins.GetByUsernameFunc = func(ctx context.Context, username string) (*models.AdminAccount, error) {
		if username == admin.Username {
			return admin, nil
		}
		return nil, repositories.ErrNotFound
	}
	svc := newTestAuthService(t, admins, time.Hour)

	_, unknownErr := svc.Authenticate(context.Background(), "nobody", "hunter2hunter2")
	_, wrongPassErr := svc.Authenticate(context.Background(), "admin", "wrong-password")

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Errorf("unknown username: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongPassErr, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassErr)
	}
}

func TestIssueAndVerifyToken(t *testing.T) {
	svc := newTestAuthService(t, mock.NewAdminRepository(), time.Hour)

	token, err := svc.IssueToken("admin")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Errorf("expected a three-segment JWT, got %q", token)
	}

	subject, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if subject != "admin" {
		t.Errorf("expected subject admin, got %s", subject)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(t, mock.NewAdminRepository(), time.Hour)

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := svc.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestVerifyTokenRejectsTamperedSignature(t *testing.T) {
	svc := newTestAuthService(t, mock.NewAdminRepository(), time.Hour)
	other := newTestAuthService(t, mock.NewAdminRepository(), time.Hour)
	other.secret = []byte("a-completely-different-32-char-secret!!")

	token, err := other.IssueToken("admin")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if _, err := svc.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	svc := newTestAuthService(t, mock.NewAdminRepository(), -time.Minute)

	token, err := svc.IssueToken("admin")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if _, err := svc.VerifyToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestAuthorizeReResolvesSubject(t *testing.T) {
	admin := adminWithPassword(t, "admin", "hunter2hunter2")
	admins := mock.NewAdminRepository()
	admins.GetByUsernameFunc = func(ctx context.Context, username string) (*models.AdminAccount, error) {
		if username == admin.Username {
			return admin, nil
		}
		return nil, repositories.ErrNotFound
	}
	svc := newTestAuthService(t, admins, time.Hour)

	token, err := svc.IssueToken("admin")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	got, err := svc.Authorize(context.Background(), token)
	if err != nil {
		t.Fatalf("Authorize failed: %v", err)
	}
	if got.Username != "admin" {
		t.Errorf("expected username admin, got %s", got.Username)
	}
}

func TestAuthorizeRejectsDeletedAccount(t *testing.T) {
	// GetByUsername defaults to ErrNotFound: a valid, unexpired token whose
	// account no longer exists must not authorize.
	svc := newTestAuthService(t, mock.NewAdminRepository(), time.Hour)

	token, err := svc.IssueToken("ghost")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if _, err := svc.Authorize(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for deleted account, got %v", err)
	}
}

func TestEnsureAdmin(t *testing.T) {
	admins := mock.NewAdminRepository()
	svc := newTestAuthService(t, admins, time.Hour)

	admin, err := svc.EnsureAdmin(context.Background(), "admin", "hunter2hunter2")
	if err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}
	if admin == nil {
		t.Fatal("expected account to be created")
	}
	if admin.PasswordHash == "hunter2hunter2" {
		t.Error("password must be stored hashed, not plaintext")
	}
	if !VerifyPassword("hunter2hunter2", admin.PasswordHash) {
		t.Error("stored hash should verify against the seed password")
	}
}

func TestEnsureAdminIsNoOpWhenAccountExists(t *testing.T) {
	admins := mock.NewAdminRepository()
	admins.CountFunc = func(ctx context.Context) (int, error) { return 1, nil }
	svc := newTestAuthService(t, admins, time.Hour)

	admin, err := svc.EnsureAdmin(context.Background(), "admin", "hunter2hunter2")
	if err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}
	if admin != nil {
		t.Error("expected no-op when an account already exists")
	}
	if len(admins.Calls["Create"]) != 0 {
		t.Error("Create must not be called when an account already exists")
	}
}

func TestEnsureAdminValidatesInput(t *testing.T) {
	svc := newTestAuthService(t, mock.NewAdminRepository(), time.Hour)

	if _, err := svc.EnsureAdmin(context.Background(), "", "hunter2hunter2"); err == nil {
		t.Error("expected error for empty username")
	}
	if _, err := svc.EnsureAdmin(context.Background(), "admin", "short"); err == nil {
		t.Error("expected error for short password")
	}
}
