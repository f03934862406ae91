package revocation

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/questboard/internal/models"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore keeps revoked tokens in the revoked_tokens table.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.RevokedToken{JTI: jti, ExpiresAt: expiresAt}).Error
	if err != nil {
		return fmt.Errorf("revoke token %s: %w", jti, err)
	}

	// Expired entries can never match a valid token again.
	if err := s.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.RevokedToken{}).Error; err != nil {
		return fmt.Errorf("prune revoked tokens: %w", err)
	}
	return nil
}

func (s *gormStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.RevokedToken{}).
		Where("jti = ?", jti).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("lookup revoked token %s: %w", jti, err)
	}
	return count > 0, nil
}
