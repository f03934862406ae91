package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newRedisStore(t *testing.T) (Store, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := NewClient(srv.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), srv
}

func TestRedisStoreRevoke(t *testing.T) {
	t.Parallel()

	store, srv := newRedisStore(t)
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("is revoked: %v", err)
	}
	if revoked {
		t.Fatal("unknown jti reported as revoked")
	}

	if err := store.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if revoked, err := store.IsRevoked(ctx, "jti-1"); err != nil || !revoked {
		t.Fatalf("IsRevoked = %v, %v; want true, nil", revoked, err)
	}
	if ttl := srv.TTL(keyPrefix + "jti-1"); ttl <= 0 || ttl > time.Hour {
		t.Fatalf("ttl = %v, want within (0, 1h]", ttl)
	}

	// The entry lives only as long as the token could have been used.
	srv.FastForward(2 * time.Hour)
	if revoked, err := store.IsRevoked(ctx, "jti-1"); err != nil || revoked {
		t.Fatalf("IsRevoked after expiry = %v, %v; want false, nil", revoked, err)
	}
}

func TestRedisStoreSkipsExpiredTokens(t *testing.T) {
	t.Parallel()

	store, srv := newRedisStore(t)
	ctx := context.Background()

	if err := store.Revoke(ctx, "old", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("revoke expired: %v", err)
	}
	if srv.Exists(keyPrefix + "old") {
		t.Fatal("expired token was stored")
	}
}

func TestRedisStoreReportsConnectionErrors(t *testing.T) {
	t.Parallel()

	store, srv := newRedisStore(t)
	srv.Close()

	if _, err := store.IsRevoked(context.Background(), "jti-1"); err == nil {
		t.Fatal("IsRevoked on a closed server returned no error")
	}
	if err := store.Revoke(context.Background(), "jti-1", time.Now().Add(time.Hour)); err == nil {
		t.Fatal("Revoke on a closed server returned no error")
	}
}
