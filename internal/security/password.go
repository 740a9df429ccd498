package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost matches the work factor of the hashes already stored for
// existing accounts. Changing it only affects newly hashed passwords.
const BcryptCost = 12

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword fails closed: a malformed or unsupported stored hash is
// treated as a mismatch, never surfaced as an error the caller could
// confuse with a valid credential.
func VerifyPassword(password, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}
