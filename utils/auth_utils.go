package utils

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// GenerateConfirmationCode generates an opaque one-time code
// Format: UUIDv4, e.g. "9b2f3c1e-8d4a-4f5b-9c7e-2a1b3c4d5e6f"
func GenerateConfirmationCode() string {
	return uuid.NewString()
}

// HashConfirmationCode returns the bcrypt hash stored instead of the code
func HashConfirmationCode(code string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckConfirmationCode compares a supplied code with the stored hash
func CheckConfirmationCode(hash, code string) bool {
	if hash == "" || code == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
