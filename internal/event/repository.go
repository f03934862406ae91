package event

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/questboard/internal/models"
)

// ListFilter narrows List. An empty System matches every event.
type ListFilter struct {
	System string
}

type Repository interface {
	WithTransaction(ctx context.Context, fn func(Repository) error) error
	// Lock holds a row lock on the event until the transaction ends. SQLite
	// has no row locks; its single writer connection serializes instead.
	Lock(ctx context.Context, id uint) error

	Create(ctx context.Context, ev *models.Event) error
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	List(ctx context.Context, f ListFilter) ([]models.Event, error)
	Update(ctx context.Context, ev *models.Event) error
	Delete(ctx context.Context, id uint) error
	CountApproved(ctx context.Context, eventID uint) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// withDetails loads what the event representation shows: ruleset, organizer
// and the approved players.
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Ruleset").
		Preload("Organizer").
		Preload("JoinRequests", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", models.StatusApproved).Order("created_at, id")
		}).
		Preload("JoinRequests.User")
}

func (r *repository) WithTransaction(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) Lock(ctx context.Context, id uint) error {
	var ev models.Event
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&ev, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("lock event %d: %w", id, err)
	}
	return nil
}

func (r *repository) Create(ctx context.Context, ev *models.Event) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(ev).Error; err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var ev models.Event
	err := withDetails(r.db.WithContext(ctx)).First(&ev, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get event %d: %w", id, err)
	}
	return &ev, nil
}

// List orders events by start date, newest first, with undated events last.
func (r *repository) List(ctx context.Context, f ListFilter) ([]models.Event, error) {
	query := withDetails(r.db.WithContext(ctx).Model(&models.Event{}))

	if f.System != "" {
		query = query.
			Joins("JOIN rulesets ON rulesets.id = events.ruleset_id").
			Where("LOWER(rulesets.name) = LOWER(?)", f.System)
	}

	var events []models.Event
	err := query.
		Order("CASE WHEN events.date_start IS NULL THEN 1 ELSE 0 END").
		Order("events.date_start DESC").
		Order("events.id").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (r *repository) Update(ctx context.Context, ev *models.Event) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(ev).Error; err != nil {
		return fmt.Errorf("update event %d: %w", ev.ID, err)
	}
	return nil
}

// Delete removes the event and its join requests in one transaction.
func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.JoinRequest{}).Error; err != nil {
			return fmt.Errorf("delete join requests of event %d: %w", id, err)
		}
		res := tx.Delete(&models.Event{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete event %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *repository) CountApproved(ctx context.Context, eventID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.JoinRequest{}).
		Where("event_id = ? AND status = ?", eventID, models.StatusApproved).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count approved players of event %d: %w", eventID, err)
	}
	return n, nil
}
