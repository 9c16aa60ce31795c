package utils

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCheck is the outcome of comparing a login attempt with a stored password.
type PasswordCheck struct {
	Match bool
	// Legacy is set when the stored value is plain text. The login still works
	// but the row should be re-hashed.
	Legacy bool
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func IsBcryptHash(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$")
}

// CheckPassword compares the attempt with a bcrypt hash or, for rows
// written before hashing was introduced, with the plain text value.
func CheckPassword(stored, attempt string) (PasswordCheck, error) {
	if IsBcryptHash(stored) {
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(attempt))
		if err == nil {
			return PasswordCheck{Match: true}, nil
		}
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return PasswordCheck{}, nil
		}
		return PasswordCheck{}, err
	}

	match := subtle.ConstantTimeCompare([]byte(stored), []byte(attempt)) == 1
	return PasswordCheck{Match: match, Legacy: true}, nil
}
