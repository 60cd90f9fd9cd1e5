package session_test

import (
	"testing"
	"time"

	"github.com/campaignforge/campaignforge-go/internal/infra/session"
)

func TestIssueAndValidate(t *testing.T) {
	m := session.NewManager("test-secret", time.Hour)

	token, err := m.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	userID, err := m.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("expected user-1, got %s", userID)
	}
}

func TestValidate_Garbage(t *testing.T) {
	m := session.NewManager("test-secret", time.Hour)

	if _, err := m.Validate("not-a-token"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	issuer := session.NewManager("secret-a", time.Hour)
	verifier := session.NewManager("secret-b", time.Hour)

	token, err := issuer.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Validate(token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}

func TestRevoke(t *testing.T) {
	m := session.NewManager("test-secret", time.Hour)

	token, err := m.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	m.Revoke(token)

	if _, err := m.Validate(token); err == nil {
		t.Fatal("expected revoked session to be rejected")
	}
}

func TestValidate_Expired(t *testing.T) {
	m := session.NewManager("test-secret", 50*time.Millisecond)

	token, err := m.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	if _, err := m.Validate(token); err == nil {
		t.Fatal("expected expired session to be rejected")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	m := session.NewManager("test-secret", time.Hour)

	t1, _ := m.Issue("user-1")
	t2, _ := m.Issue("user-1")

	m.Revoke(t1)

	if _, err := m.Validate(t1); err == nil {
		t.Fatal("expected revoked session to be rejected")
	}
	if _, err := m.Validate(t2); err != nil {
		t.Errorf("expected the other session to survive, got %v", err)
	}
}
