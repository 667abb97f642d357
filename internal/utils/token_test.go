package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "blogapi_test_jwt_secret_key_1234567890"

func TestGenerateAndValidate(t *testing.T) {
	manager := NewTokenManager(testSecret)

	token, err := manager.Generate("alice")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Subject)
	}
}

func TestTokenExpiryIsThreeHours(t *testing.T) {
	manager := NewTokenManager(testSecret)
	before := time.Now()

	token, err := manager.Generate("alice")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	lifetime := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	if lifetime != TokenTTL {
		t.Fatalf("expected lifetime %v, got %v", TokenTTL, lifetime)
	}
	if claims.IssuedAt.Time.Before(before.Add(-time.Minute)) {
		t.Fatalf("issued-at too far in the past: %v", claims.IssuedAt.Time)
	}
}

func TestGenerateRejectsEmptyUsername(t *testing.T) {
	manager := NewTokenManager(testSecret)
	if _, err := manager.Generate("  "); err == nil {
		t.Fatal("expected error for empty username")
	}
}

func TestValidateRejectsEmptyToken(t *testing.T) {
	manager := NewTokenManager(testSecret)
	if _, err := manager.Validate(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager(testSecret).Generate("alice")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	other := NewTokenManager("another_secret_that_is_long_enough_123")
	if _, err := other.Validate(token); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	manager := NewTokenManager(testSecret)
	token, err := manager.Generate("alice")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	if _, err := manager.Validate(tampered); err == nil {
		t.Fatal("expected error for tampered payload")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	manager := NewTokenManager(testSecret)

	past := time.Now().Add(-4 * time.Hour)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			Issuer:    "blogapi",
			IssuedAt:  jwt.NewNumericDate(past),
			NotBefore: jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(TokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := manager.Validate(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestValidateRejectsWrongIssuer(t *testing.T) {
	manager := NewTokenManager(testSecret)

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			Issuer:    "someone-else",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := manager.Validate(token); err == nil {
		t.Fatal("expected error for wrong issuer")
	}
}

func TestValidateRejectsUnsignedToken(t *testing.T) {
	manager := NewTokenManager(testSecret)

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			Issuer:    "blogapi",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := manager.Validate(token); err == nil {
		t.Fatal("expected error for alg=none token")
	}
}
