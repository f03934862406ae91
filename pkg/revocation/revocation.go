// Package revocation tracks blacklisted refresh tokens by their jti.
package revocation

import (
	"context"
	"time"
)

// Store remembers revoked token IDs at least until expiresAt.
type Store interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
