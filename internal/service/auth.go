// Package service holds the application logic: authentication and the
// marketing workspace operations. Passwords are stored bcrypt-hashed only.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/campaignforge/campaignforge-go/internal/domain"
	"github.com/campaignforge/campaignforge-go/internal/infra/observability"
	"github.com/campaignforge/campaignforge-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var authTracer = otel.Tracer("service/auth")

const (
	minPasswordLength = 6
	bcryptCost        = 12
)

// AuthService orchestrates authentication flows.
type AuthService struct {
	store    port.Storage
	sessions port.Sessions
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(store port.Storage, sessions port.Sessions, metrics *observability.Metrics, logger *zap.Logger) *AuthService {
	return &AuthService{
		store:    store,
		sessions: sessions,
		metrics:  metrics,
		logger:   logger,
	}
}

// Register creates an account and starts a session for it.
// Returns the sanitized user and the session cookie value.
func (s *AuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, string, error) {
	ctx, span := authTracer.Start(ctx, "AuthService.Register")
	defer span.End()

	if req.Username == "" {
		return nil, "", &domain.ErrValidation{Field: "username", Message: "required"}
	}
	if len(req.Password) < minPasswordLength {
		return nil, "", &domain.ErrValidation{Field: "password", Message: fmt.Sprintf("must be at least %d characters", minPasswordLength)}
	}
	if req.Name == "" {
		return nil, "", &domain.ErrValidation{Field: "name", Message: "required"}
	}
	if req.Email == "" {
		return nil, "", &domain.ErrValidation{Field: "email", Message: "required"}
	}

	existing, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		s.metrics.IncrAuthAttempt("failure")
		return nil, "", &domain.ErrConflict{Message: fmt.Sprintf("username %q already taken", req.Username)}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	// The username unique index still backs this up against a racing
	// registration; the store surfaces that as ErrConflict too.
	user, err := s.store.CreateUser(ctx, domain.InsertUser{
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}

	s.metrics.IncrAuthAttempt("success")
	s.logger.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
	)
	return user, token, nil
}

// Login verifies the credentials and starts a session. Unknown usernames
// and wrong passwords produce the same error, so callers can't probe for
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.User, string, error) {
	ctx, span := authTracer.Start(ctx, "AuthService.Login")
	defer span.End()

	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		s.metrics.IncrAuthAttempt("failure")
		return nil, "", &domain.ErrUnauthorized{Message: "invalid credentials"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.metrics.IncrAuthAttempt("failure")
		s.logger.Warn("login: failed password attempt", zap.String("username", req.Username))
		return nil, "", &domain.ErrUnauthorized{Message: "invalid credentials"}
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}

	s.metrics.IncrAuthAttempt("success")
	s.logger.Info("user logged in", zap.String("user_id", user.ID))
	return user, token, nil
}

// Logout revokes the session behind the given cookie value.
func (s *AuthService) Logout(ctx context.Context, token string) {
	_, span := authTracer.Start(ctx, "AuthService.Logout")
	defer span.End()

	s.sessions.Revoke(token)
}

// ValidateSession resolves a cookie value to a user ID; used by the
// router middleware.
func (s *AuthService) ValidateSession(token string) (string, error) {
	return s.sessions.Validate(token)
}

// SessionTTL is the session lifetime, exposed for the cookie Max-Age.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessions.TTL()
}

// CurrentUser returns the identity behind an authenticated session.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	ctx, span := authTracer.Start(ctx, "AuthService.CurrentUser")
	defer span.End()

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		// Session outlived the account; treat as unauthenticated.
		return nil, &domain.ErrUnauthorized{}
	}
	return user, nil
}
