package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"cakeshop-api/internal/models"
	"cakeshop-api/internal/store"
)

// ErrInvalidCredentials covers every login mismatch. The message deliberately
// does not say whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// TokenTTL is how long an issued bearer token stays valid.
const TokenTTL = 24 * time.Hour

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService authenticates the single shop administrator and issues/verifies
// the bearer tokens protecting the admin surface. Credentials are checked
// against the provisioned identity in the store when one exists, otherwise
// against the configured username/password pair.
type AuthService struct {
	secretKey     []byte
	tokenTTL      time.Duration
	admins        store.AdminStore
	adminUsername string
	adminPassword string
	logger        zerolog.Logger
}

func NewAuthService(secret string, tokenTTL time.Duration, admins store.AdminStore, adminUsername, adminPassword string, logger zerolog.Logger) *AuthService {
	if secret == "" {
		secret = "default-secret-key-change-in-production"
		logger.Warn().Msg("JWT_SECRET not set, using default key")
	}

	return &AuthService{
		secretKey:     []byte(secret),
		tokenTTL:      tokenTTL,
		admins:        admins,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		logger:        logger,
	}
}

// Login checks the supplied credentials and returns a signed token on match.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte(password)) != nil {
			s.logger.Warn().Str("username", username).Msg("Failed login attempt")
			return "", ErrInvalidCredentials
		}
		return s.GenerateToken(username)
	}
	if !errors.Is(err, store.ErrNotFound) {
		s.logger.Error().Err(err).Msg("Error looking up admin identity")
		return "", err
	}

	// No provisioned identity, fall back to the configured pair.
	if username != s.adminUsername || password != s.adminPassword {
		s.logger.Warn().Str("username", username).Msg("Failed login attempt")
		return "", ErrInvalidCredentials
	}
	return s.GenerateToken(username)
}

func (s *AuthService) GenerateToken(username string) (string, error) {
	now := time.Now()

	claims := &Claims{
		Role: string(models.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error generating token")
		return "", err
	}

	return tokenString, nil
}

// ValidateToken checks signature and expiry. Every failure mode collapses
// into a single error so callers cannot distinguish which check failed.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
