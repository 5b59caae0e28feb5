package auth

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	signed, err := tokens.GenerateToken("flight-ops", "operator")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := tokens.ValidateToken(signed)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Operator != "flight-ops" || claims.Role != "operator" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	signed, err := NewTokenService("secret-a", time.Hour).GenerateToken("flight-ops", "operator")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewTokenService("secret-b", time.Hour).ValidateToken(signed); err == nil {
		t.Fatal("expected validation failure for a foreign signature")
	}
}

func TestGenerateTokenRequiresOperator(t *testing.T) {
	if _, err := NewTokenService("s", time.Hour).GenerateToken("", "operator"); err == nil {
		t.Fatal("expected error for empty operator")
	}
}

func TestRegistryAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("launch-codes"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	registry := NewRegistry([]Operator{{Name: "flight-ops", PasswordHash: string(hash), Role: "operator"}})

	op, err := registry.Authenticate("flight-ops", "launch-codes")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if op.Role != "operator" {
		t.Fatalf("unexpected operator: %+v", op)
	}

	if _, err := registry.Authenticate("flight-ops", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := registry.Authenticate("ghost", "launch-codes"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown operator, got %v", err)
	}
}
