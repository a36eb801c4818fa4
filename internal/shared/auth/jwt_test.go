package auth

import (
	"testing"
)

func TestSignAndVerifyJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignJWT("user-1", "sam@example.com", "Sam Example", "")
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("expected subject user-1, got %q", claims.Subject)
	}
	if claims.Email != "sam@example.com" {
		t.Fatalf("expected email, got %q", claims.Email)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatalf("expected exp and iat to be set")
	}
}

func TestVerifyJWTRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignJWT("user-1", "", "", "")
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	if _, err := VerifyJWT(token + "x"); err == nil {
		t.Fatalf("expected error for tampered token")
	}
	if _, err := VerifyJWT("not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := SignJWT("user-1", "", "", "")
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-b")
	if _, err := VerifyJWT(token); err == nil {
		t.Fatalf("expected verification failure with different secret")
	}
}

func TestSignJWTRequiresUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := SignJWT("", "", "", ""); err == nil {
		t.Fatalf("expected error for empty user id")
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatalf("hash must differ from plaintext")
	}
	if !VerifyPassword("hunter22", hash) {
		t.Fatalf("expected password to verify")
	}
	if VerifyPassword("hunter23", hash) {
		t.Fatalf("expected wrong password to fail")
	}
}
