package authtoken

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Разделитель между паролем и серверным секретом
const tokenDelimiter = "::"

// New derives the admin bearer token as a hex SHA-256 digest of
// password + delimiter + secret. The function is pure: the same pair of
// inputs always yields the same token, so no session state is stored
// anywhere on the server.
func New(password, secret string) string {
	seed := password + tokenDelimiter + secret

	sum := sha256.Sum256([]byte(seed))

	return hex.EncodeToString(sum[:])
}

// Equal compares two tokens in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
