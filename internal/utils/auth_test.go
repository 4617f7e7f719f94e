package utils

import (
	"regexp"
	"testing"
)

func TestGenerateConfirmToken(t *testing.T) {
	hex32 := regexp.MustCompile(`^[0-9a-f]{32}$`)

	tok, err := GenerateConfirmToken()
	if err != nil {
		t.Fatalf("GenerateConfirmToken: %v", err)
	}
	if !hex32.MatchString(tok) {
		t.Fatalf("token %q is not 32 hex characters", tok)
	}

	other, err := GenerateConfirmToken()
	if err != nil {
		t.Fatalf("GenerateConfirmToken: %v", err)
	}
	if tok == other {
		t.Fatalf("two generated tokens collided: %q", tok)
	}
}

func TestGeneratePassword(t *testing.T) {
	alnum := regexp.MustCompile(`^[0-9a-zA-Z]+$`)

	pw, err := GeneratePassword(10)
	if err != nil {
		t.Fatalf("GeneratePassword: %v", err)
	}
	if len(pw) != 10 {
		t.Fatalf("expected length 10, got %d (%q)", len(pw), pw)
	}
	if !alnum.MatchString(pw) {
		t.Fatalf("password %q contains characters outside the alphabet", pw)
	}

	pw, err = GeneratePassword(0)
	if err != nil {
		t.Fatalf("GeneratePassword: %v", err)
	}
	if len(pw) != 10 {
		t.Fatalf("non-positive length should fall back to 10, got %d", len(pw))
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("x")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "x" {
		t.Fatalf("hash equals plaintext")
	}
	if !CheckPassword(hashed, "x") {
		t.Fatalf("CheckPassword rejected the original password")
	}
	if CheckPassword(hashed, "y") {
		t.Fatalf("CheckPassword accepted a wrong password")
	}
}
