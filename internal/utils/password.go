package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashSecret hashes a client secret with bcrypt, producing the value expected
// in CLIENT_SECRET_HASH.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckSecretHash compares a plaintext secret with a bcrypt hash.
func CheckSecretHash(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
