package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	sessionID, userID := uuid.New(), uuid.New()
	tok, err := GenerateToken("super-secret", sessionID, userID, "ada@example.com", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseToken("super-secret", tok)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.ID != sessionID.String() {
		t.Fatalf("session id mismatch: got %q want %q", claims.ID, sessionID)
	}
	if claims.UserID != userID.String() {
		t.Fatalf("user id mismatch: got %q want %q", claims.UserID, userID)
	}
	if claims.Email != "ada@example.com" {
		t.Fatalf("email mismatch: got %q", claims.Email)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("secret", uuid.New(), uuid.New(), "a@b.c", time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken("secret", tok)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("right-secret", uuid.New(), uuid.New(), "a@b.c", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ParseToken("wrong-secret", tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseToken("k", "not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := &SessionClaims{
		Email: "a@b.c",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := ParseToken("k", tok); err == nil {
		t.Fatalf("expected HS512 token to be rejected")
	}
}

func TestParseToken_RequiresExpiry(t *testing.T) {
	t.Parallel()

	claims := &SessionClaims{
		Email:            "a@b.c",
		RegisteredClaims: jwt.RegisteredClaims{ID: uuid.NewString()},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := ParseToken("k", tok); err == nil {
		t.Fatalf("expected token without exp to be rejected")
	}
}
