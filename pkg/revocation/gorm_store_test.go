package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/questboard/internal/models"
	"github.com/DhavalSuthar-24/questboard/internal/testutil"
)

func TestGormStoreRevoke(t *testing.T) {
	t.Parallel()

	db := testutil.NewDB(t)
	store := NewGormStore(db)
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
	// Revoking twice is harmless.
	if err := store.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("revoke again: %v", err)
	}
	if revoked, err := store.IsRevoked(ctx, "jti-1"); err != nil || !revoked {
		t.Fatalf("IsRevoked = %v, %v; want true, nil", revoked, err)
	}
}

func TestGormStorePrunesExpired(t *testing.T) {
	t.Parallel()

	db := testutil.NewDB(t)
	store := NewGormStore(db)
	ctx := context.Background()

	if err := db.Create(&models.RevokedToken{JTI: "old", ExpiresAt: time.Now().Add(-time.Hour)}).Error; err != nil {
		t.Fatalf("seed expired token: %v", err)
	}
	if err := store.Revoke(ctx, "new", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	var n int64
	if err := db.Model(&models.RevokedToken{}).Where("jti = ?", "old").Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatal("expired entry was not pruned")
	}
}
