package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// Hasher turns a plaintext password into a stored digest.
type Hasher interface {
	HashPassword(ctx context.Context, plaintext string) (string, error)
}

// SHA256Hasher digests passwords with unsalted SHA-256, hex encoded.
// Seeded demo credentials depend on this exact output, so no salt is mixed in.
type SHA256Hasher struct{}

var _ Hasher = SHA256Hasher{}

// HashPassword returns the lowercase hex SHA-256 of plaintext.
func (SHA256Hasher) HashPassword(ctx context.Context, plaintext string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:]), nil
}
