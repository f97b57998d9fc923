package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	token, err := CreateToken(userID, "client", secret, time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := ParseToken(token, secret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "client" {
		t.Fatalf("role = %q, want client", claims.Role)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := CreateToken(uuid.New(), "admin", "secret-a", time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := ParseToken(token, "secret-b"); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := CreateToken(uuid.New(), "client", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := ParseToken(token, "secret"); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
