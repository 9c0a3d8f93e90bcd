package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash produces a salted bcrypt digest of the given password. The salt is
// random, so equal inputs yield different digests across calls.
func Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("generate password hash: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether password matches the stored digest. A malformed
// digest is treated as a mismatch rather than an error.
func Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
