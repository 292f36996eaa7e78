package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt digest. The salt is generated per
// call and embedded in the digest, so nothing besides the digest has to be
// stored. Cost is the bcrypt work factor; values outside the valid range
// fall back to the library default.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// CheckPasswordHash reports whether password matches the stored digest.
// A malformed digest is treated as a mismatch, never an error.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
