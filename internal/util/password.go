package util

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/argon2"
)

// MinPasswordLength applies to operator accounts created with importctl.
const MinPasswordLength = 12

var ErrEmptyPassword = errors.New("password cannot be empty")

// argon2id parameters. Changing them invalidates every stored hash.
var passwordParams = struct {
	time, memory uint32
	threads      uint8
	keyLen       uint32
	saltLen      int
}{time: 1, memory: 64 * 1024, threads: 4, keyLen: 32, saltLen: 16}

// ValidatePassword reports every character class the password is missing.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			special = true
		}
	}

	var missing []string
	if !upper {
		missing = append(missing, "an uppercase letter")
	}
	if !lower {
		missing = append(missing, "a lowercase letter")
	}
	if !digit {
		missing = append(missing, "a number")
	}
	if !special {
		missing = append(missing, "a special character")
	}
	if len(missing) > 0 {
		return fmt.Errorf("password must include %s", strings.Join(missing, ", "))
	}
	return nil
}

func hashPassword(password string, salt []byte) ([]byte, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	if len(salt) == 0 {
		return nil, errors.New("salt cannot be empty")
	}
	p := passwordParams
	return argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, p.keyLen), nil
}

// DerivePassword hashes password with a fresh random salt.
func DerivePassword(password string) (hash, salt []byte, err error) {
	salt = make([]byte, passwordParams.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, err
	}
	if hash, err = hashPassword(password, salt); err != nil {
		return nil, nil, err
	}
	return hash, salt, nil
}

func VerifyPassword(password string, salt, expectedHash []byte) bool {
	if len(expectedHash) == 0 {
		return false
	}
	candidate, err := hashPassword(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(candidate, expectedHash) == 1
}
