package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/khabaroff/portfolio-backend/src/logging"
	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "portfolio-backend"

// AuthService owns password verification and token issuance/verification.
// Tokens are stateless HS256 JWTs: the signature plus the embedded expiry is
// the entire trust boundary, so any replica holding the secret can verify
// them. There is no revocation; keep lifetimes short.
type AuthService struct {
	admins   repositories.AdminRepository
	secret   []byte
	lifetime time.Duration
}

// NewAuthService creates a new auth service. It refuses to construct without
// a usable signing secret so the process fails at startup, not at first login.
func NewAuthService(admins repositories.AdminRepository, secret string, lifetime time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, errors.New("signing secret is empty")
	}
	if len(secret) < 32 {
		return nil, errors.New("signing secret must be at least 32 characters")
	}
	return &AuthService{
		admins:   admins,
		secret:   []byte(secret),
		lifetime: lifetime,
	}, nil
}

// HashPassword hashes a plaintext password with bcrypt. Each call generates a
// fresh salt, so two hashes of the same input differ.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash
func VerifyPassword(plain, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain)) == nil
}

// Authenticate verifies a username/password pair against the stored account.
// Both unknown usernames and wrong passwords yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.AdminAccount, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !VerifyPassword(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	// Best effort; login must not fail because the timestamp write did
	if err := s.admins.UpdateLastLogin(ctx, admin.ID); err != nil {
		logger := logging.NewLogger("auth")
		logger.Warn().Err(err).Str("username", admin.Username).
			Msg("failed to update last_login")
	}
	now := time.Now()
	admin.LastLogin = &now
	return admin, nil
}

// IssueToken produces a signed token binding the subject and an absolute
// expiry (now + configured lifetime).
func (s *AuthService) IssueToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Lifetime returns the configured token lifetime
func (s *AuthService) Lifetime() time.Duration {
	return s.lifetime
}

// VerifyToken checks signature and expiry and returns the embedded subject.
// No other claims are trusted. ErrExpiredToken and ErrInvalidToken are
// distinct for callers inside the process; externally both must collapse to
// the same unauthorized outcome.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Authorize verifies a bearer token and resolves its subject to a stored
// admin account. The re-resolution is deliberate: a cryptographically valid
// token whose account has since been deleted is rejected.
func (s *AuthService) Authorize(ctx context.Context, tokenString string) (*models.AdminAccount, error) {
	subject, err := s.VerifyToken(tokenString)
	if err != nil {
		return nil, err
	}

	admin, err := s.admins.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to resolve token subject: %w", err)
	}
	return admin, nil
}

// EnsureAdmin creates the admin account on first run. It is a no-op when any
// account already exists.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) (*models.AdminAccount, error) {
	if len(username) < 1 || len(username) > 255 {
		return nil, errors.New("username must be between 1 and 255 characters")
	}
	if len(password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	count, err := s.admins.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing admin accounts: %w", err)
	}
	if count > 0 {
		return nil, nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.AdminAccount{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin account: %w", err)
	}
	return admin, nil
}
