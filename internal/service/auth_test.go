package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campaignforge/campaignforge-go/internal/domain"
	"github.com/campaignforge/campaignforge-go/internal/infra/memstore"
	"github.com/campaignforge/campaignforge-go/internal/infra/observability"
	"github.com/campaignforge/campaignforge-go/internal/infra/session"
	"github.com/campaignforge/campaignforge-go/internal/service"

	"go.uber.org/zap"
)

func newAuthService() *service.AuthService {
	store := memstore.New(domain.DefaultLeadThresholds())
	sessions := session.NewManager("test-secret", time.Hour)
	return service.NewAuthService(store, sessions, observability.NewMetrics(), zap.NewNop())
}

func registerReq(username string) *domain.RegisterRequest {
	return &domain.RegisterRequest{
		Username: username,
		Password: "secret-pass",
		Name:     "Test User",
		Email:    username + "@example.com",
	}
}

func TestRegister_Success(t *testing.T) {
	svc := newAuthService()

	user, token, err := svc.Register(context.Background(), registerReq("alice"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Error("expected assigned user id")
	}
	if user.Role != "founder" {
		t.Errorf("expected default role 'founder', got %q", user.Role)
	}
	if token == "" {
		t.Error("expected a session token")
	}

	userID, err := svc.ValidateSession(token)
	if err != nil {
		t.Fatalf("validate session: %v", err)
	}
	if userID != user.ID {
		t.Errorf("expected session for %s, got %s", user.ID, userID)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  *domain.RegisterRequest
	}{
		{"missing username", &domain.RegisterRequest{Password: "secret-pass", Name: "N", Email: "e@x.com"}},
		{"short password", &domain.RegisterRequest{Username: "u", Password: "abc", Name: "N", Email: "e@x.com"}},
		{"missing name", &domain.RegisterRequest{Username: "u", Password: "secret-pass", Email: "e@x.com"}},
		{"missing email", &domain.RegisterRequest{Username: "u", Password: "secret-pass", Name: "N"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, tc.req)
			var validation *domain.ErrValidation
			if !errors.As(err, &validation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, registerReq("alice")); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, _, err := svc.Register(ctx, registerReq("alice"))
	var conflict *domain.ErrConflict
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, registerReq("alice"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, token, err := svc.Login(ctx, &domain.LoginRequest{Username: "alice", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("expected user %s, got %s", registered.ID, user.ID)
	}
	if token == "" {
		t.Error("expected a session token")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, registerReq("alice")); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Wrong password and unknown username must be indistinguishable.
	_, _, errWrongPass := svc.Login(ctx, &domain.LoginRequest{Username: "alice", Password: "wrong"})
	_, _, errUnknown := svc.Login(ctx, &domain.LoginRequest{Username: "nobody", Password: "whatever"})

	var u1, u2 *domain.ErrUnauthorized
	if !errors.As(errWrongPass, &u1) {
		t.Fatalf("expected ErrUnauthorized for wrong password, got %v", errWrongPass)
	}
	if !errors.As(errUnknown, &u2) {
		t.Fatalf("expected ErrUnauthorized for unknown user, got %v", errUnknown)
	}
	if errWrongPass.Error() != errUnknown.Error() {
		t.Error("expected identical error messages for both failure modes")
	}
}

func TestLogout_RevokesSession(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, token, err := svc.Register(ctx, registerReq("alice"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	svc.Logout(ctx, token)

	if _, err := svc.ValidateSession(token); err == nil {
		t.Fatal("expected revoked session to be rejected")
	}
}

func TestCurrentUser_GoneAccount(t *testing.T) {
	svc := newAuthService()

	_, err := svc.CurrentUser(context.Background(), "no-such-user")
	var unauthorized *domain.ErrUnauthorized
	if !errors.As(err, &unauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestLoginFixtureUser(t *testing.T) {
	store := memstore.New(domain.DefaultLeadThresholds())
	sessions := session.NewManager("test-secret", time.Hour)
	svc := service.NewAuthService(store, sessions, observability.NewMetrics(), zap.NewNop())

	user, _, err := svc.Login(context.Background(), &domain.LoginRequest{
		Username: memstore.FixtureUsername,
		Password: memstore.FixturePassword,
	})
	if err != nil {
		t.Fatalf("login with demo credentials: %v", err)
	}
	if user.Name != "Sarah Chen" {
		t.Errorf("expected demo user, got %q", user.Name)
	}
}
