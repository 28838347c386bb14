// Package secret holds the credential hashing and one-time code primitives
// used by the authentication workflow.
package secret

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-512 digest of secret: always
// 128 characters, deterministic, unsalted. Stored digests from the existing
// user base must keep verifying, so the scheme cannot change without a
// credential migration.
func HashPassword(secret string) string {
	sum := sha512.Sum512([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether candidate hashes to storedDigest. The
// comparison is constant-time.
func VerifyPassword(candidate, storedDigest string) bool {
	digest := HashPassword(candidate)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedDigest)) == 1
}
