package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
)

// PasswordHasher turns plaintext passwords into one-way hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// AccessToken is an issued bearer token.
type AccessToken struct {
	Value     string
	ExpiresAt time.Time
}

// TokenClaims are the verified contents of a bearer token.
type TokenClaims struct {
	UserID kernel.UUID
	Email  string
	Role   user.Role
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	Issue(ctx context.Context, u *user.User) (AccessToken, error)

	// Parse verifies signature and expiry. Failures are UnauthenticatedErrors.
	Parse(ctx context.Context, token string) (TokenClaims, error)
}
