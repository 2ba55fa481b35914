package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apierrors "github.com/narender/product-console/common/apierrors"
	"github.com/narender/product-console/common/config"
	"github.com/narender/product-console/common/telemetry/attributes"
	"github.com/narender/product-console/common/telemetry/metric"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
)

// Login outcomes as reported to the client.
const (
	MsgLoginSuccess       = "Log in successfully"
	MsgInvalidCredentials = "Invalid username or password"
	MsgInvalidToken       = "Invalid or expired token"
)

// Claims is the JWT payload issued on login.
type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

type AuthService interface {
	// Login checks the credentials and returns a signed token.
	Login(ctx context.Context, username, password string) (string, error)
	// ParseToken validates a token issued by Login.
	ParseToken(ctx context.Context, token string) (*Claims, error)
}

type authService struct {
	username     string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// NewAuthService hashes the configured mock password once so that login
// compares against a bcrypt hash like a real user store would.
func NewAuthService(cfg *config.Config, logger *slog.Logger) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.MockPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash mock password: %w", err)
	}
	return &authService{
		username:     cfg.MockUsername,
		passwordHash: hash,
		secret:       []byte(cfg.JWTSecret),
		ttl:          cfg.TokenTTL,
		now:          time.Now,
		logger:       logger,
	}, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (token string, err error) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppUsernameKey.String(username))
	defer commontrace.EndSpan(span, &err, nil)
	defer func() { metric.RecordLoginAttempt(ctx, err == nil) }()

	invalid := apierrors.NewBusinessError(apierrors.ErrCodeInvalidCredentials, MsgInvalidCredentials, nil)
	if username != s.username {
		s.logger.WarnContext(ctx, "Login for unknown user", slog.String(attributes.LogFieldUsername, username))
		return "", invalid
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.logger.WarnContext(ctx, "Login with wrong password", slog.String(attributes.LogFieldUsername, username))
		return "", invalid
	}

	now := s.now()
	claims := Claims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			Subject:   username,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
		},
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", apierrors.NewApplicationError(apierrors.ErrCodeInternalProcessing, "Failed to issue token", err)
	}

	s.logger.InfoContext(ctx, "User logged in", slog.String(attributes.LogFieldUsername, username))
	return token, nil
}

func (s *authService) ParseToken(ctx context.Context, token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		s.logger.DebugContext(ctx, "Rejected bearer token", slog.Any(attributes.LogFieldError, err))
		return nil, apierrors.NewBusinessError(apierrors.ErrCodeUnauthorized, MsgInvalidToken, err)
	}
	return claims, nil
}
