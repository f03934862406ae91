package joinrequest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/questboard/internal/event"
	"github.com/DhavalSuthar-24/questboard/internal/models"
	"github.com/DhavalSuthar-24/questboard/pkg/utils"
)

type Repository interface {
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	GetEvent(ctx context.Context, eventID uint) (*models.Event, error)
	// LockEvent reads the event and holds a row lock on it until the
	// transaction ends. SQLite has no row locks; its single writer
	// connection serializes transactions instead.
	LockEvent(ctx context.Context, eventID uint) (*models.Event, error)
	CountApproved(ctx context.Context, eventID uint) (int64, error)

	Create(ctx context.Context, jr *models.JoinRequest) error
	GetByID(ctx context.Context, id uint) (*models.JoinRequest, error)
	FindByEventAndUser(ctx context.Context, eventID, userID uint) (*models.JoinRequest, error)
	ListByEvent(ctx context.Context, eventID uint) ([]models.JoinRequest, error)
	ListByUser(ctx context.Context, userID uint) ([]models.JoinRequest, error)
	UpdateStatus(ctx context.Context, jr *models.JoinRequest, status models.RequestStatus, at time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTransaction(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) GetEvent(ctx context.Context, eventID uint) (*models.Event, error) {
	return r.findEvent(r.db.WithContext(ctx), eventID)
}

func (r *repository) LockEvent(ctx context.Context, eventID uint) (*models.Event, error) {
	return r.findEvent(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), eventID)
}

func (r *repository) findEvent(db *gorm.DB, eventID uint) (*models.Event, error) {
	var ev models.Event
	if err := db.First(&ev, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, event.ErrNotFound
		}
		return nil, fmt.Errorf("get event %d: %w", eventID, err)
	}
	return &ev, nil
}

func (r *repository) CountApproved(ctx context.Context, eventID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.JoinRequest{}).
		Where("event_id = ? AND status = ?", eventID, models.StatusApproved).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count approved requests of event %d: %w", eventID, err)
	}
	return n, nil
}

// Create inserts jr. A second request for the same event and user fails on
// the unique index and is reported as errDuplicateInsert.
func (r *repository) Create(ctx context.Context, jr *models.JoinRequest) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(jr).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return errDuplicateInsert
		}
		return fmt.Errorf("create join request: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*models.JoinRequest, error) {
	var jr models.JoinRequest
	if err := r.db.WithContext(ctx).Preload("User").First(&jr, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get join request %d: %w", id, err)
	}
	return &jr, nil
}

// FindByEventAndUser returns (nil, nil) when the user has not asked to join.
func (r *repository) FindByEventAndUser(ctx context.Context, eventID, userID uint) (*models.JoinRequest, error) {
	var jr models.JoinRequest
	err := r.db.WithContext(ctx).Where("event_id = ? AND user_id = ?", eventID, userID).First(&jr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find join request for event %d user %d: %w", eventID, userID, err)
	}
	return &jr, nil
}

func (r *repository) ListByEvent(ctx context.Context, eventID uint) ([]models.JoinRequest, error) {
	var requests []models.JoinRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventID).
		Order("created_at ASC, id ASC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("list join requests of event %d: %w", eventID, err)
	}
	return requests, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]models.JoinRequest, error) {
	var requests []models.JoinRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("list join requests of user %d: %w", userID, err)
	}
	return requests, nil
}

func (r *repository) UpdateStatus(ctx context.Context, jr *models.JoinRequest, status models.RequestStatus, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(jr).
		Updates(map[string]interface{}{"status": status, "decided_at": at}).Error
	if err != nil {
		return fmt.Errorf("update join request %d: %w", jr.ID, err)
	}
	return nil
}
