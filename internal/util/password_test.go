package util

import (
	"errors"
	"strings"
	"testing"
)

func TestDerivePasswordRoundTrip(t *testing.T) {
	hash, salt, err := DerivePassword("Str0ng!Password")
	if err != nil {
		t.Fatalf("DerivePassword returned error: %v", err)
	}
	if len(hash) != 32 || len(salt) != 16 {
		t.Fatalf("unexpected hash/salt sizes %d/%d", len(hash), len(salt))
	}
	if !VerifyPassword("Str0ng!Password", salt, hash) {
		t.Fatalf("expected password verification to succeed")
	}
	if VerifyPassword("str0ng!password", salt, hash) {
		t.Fatalf("verification must be case sensitive")
	}

	_, otherSalt, _ := DerivePassword("Str0ng!Password")
	if string(otherSalt) == string(salt) {
		t.Fatalf("expected a fresh salt per call")
	}
}

func TestVerifyPasswordRejectsEmptyInputs(t *testing.T) {
	hash, salt, _ := DerivePassword("Str0ng!Password")
	if VerifyPassword("", salt, hash) || VerifyPassword("Str0ng!Password", nil, hash) || VerifyPassword("Str0ng!Password", salt, nil) {
		t.Fatalf("empty inputs must never verify")
	}
	if _, _, err := DerivePassword(""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("Str0ng!Password"); err != nil {
		t.Fatalf("expected strong password to pass: %v", err)
	}
	if err := ValidatePassword("Sh0rt!"); err == nil || !strings.Contains(err.Error(), "at least 12") {
		t.Fatalf("expected length error, got %v", err)
	}
	err := ValidatePassword("alllowercaseletters")
	if err == nil {
		t.Fatalf("expected class error")
	}
	for _, want := range []string{"an uppercase letter", "a number", "a special character"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
	if strings.Contains(err.Error(), "a lowercase letter") {
		t.Fatalf("lowercase is present, got %q", err.Error())
	}
}
