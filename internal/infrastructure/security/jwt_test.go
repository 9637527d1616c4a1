package security

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", 30*time.Minute)
	userID := uuid.New()

	token, err := manager.Generate(userID, true)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	identity, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if identity.UserID != userID {
		t.Fatalf("user id = %s, want %s", identity.UserID, userID)
	}
	if !identity.IsAdmin {
		t.Fatal("admin flag lost in round trip")
	}
}

func TestTokenCarriesNonAdminRole(t *testing.T) {
	manager := NewTokenManager("test-secret", 30*time.Minute)

	token, err := manager.Generate(uuid.New(), false)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	identity, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if identity.IsAdmin {
		t.Fatal("non-admin token validated as admin")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Generate(uuid.New(), false)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := manager.Validate(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	manager := NewTokenManager("test-secret", 30*time.Minute)
	other := NewTokenManager("other-secret", 30*time.Minute)

	token, err := manager.Generate(uuid.New(), false)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := other.Validate(token); err == nil {
		t.Fatal("expected token signed with a different secret to be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	manager := NewTokenManager("test-secret", 30*time.Minute)

	if _, err := manager.Validate("not-a-jwt"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}
