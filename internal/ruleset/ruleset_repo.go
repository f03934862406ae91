package ruleset

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/questboard/internal/models"
	"github.com/DhavalSuthar-24/questboard/pkg/utils"
)

var (
	ErrNotFound      = errors.New("ruleset not found")
	ErrDuplicateName = errors.New("ruleset name already exists")
)

type RulesetRepository interface {
	List(ctx context.Context) ([]models.Ruleset, error)
	GetByID(ctx context.Context, id uint) (*models.Ruleset, error)
	FindByName(ctx context.Context, name string) (*models.Ruleset, error)
	Create(ctx context.Context, rs *models.Ruleset) error
	Update(ctx context.Context, rs *models.Ruleset) error
	Delete(ctx context.Context, id uint) error
}

type rulesetRepository struct {
	db *gorm.DB
}

// NewRulesetRepository creates a new instance of RulesetRepository.
func NewRulesetRepository(db *gorm.DB) RulesetRepository {
	return &rulesetRepository{db: db}
}

func (r *rulesetRepository) List(ctx context.Context) ([]models.Ruleset, error) {
	var rulesets []models.Ruleset
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rulesets).Error; err != nil {
		return nil, fmt.Errorf("list rulesets: %w", err)
	}
	return rulesets, nil
}

func (r *rulesetRepository) GetByID(ctx context.Context, id uint) (*models.Ruleset, error) {
	var rs models.Ruleset
	if err := r.db.WithContext(ctx).First(&rs, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get ruleset %d: %w", id, err)
	}
	return &rs, nil
}

// FindByName matches name exactly. It returns (nil, nil) when nothing matches.
func (r *rulesetRepository) FindByName(ctx context.Context, name string) (*models.Ruleset, error) {
	var rs models.Ruleset
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&rs).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find ruleset %q: %w", name, err)
	}
	return &rs, nil
}

func (r *rulesetRepository) Create(ctx context.Context, rs *models.Ruleset) error {
	if err := r.db.WithContext(ctx).Create(rs).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("create ruleset: %w", err)
	}
	return nil
}

func (r *rulesetRepository) Update(ctx context.Context, rs *models.Ruleset) error {
	if err := r.db.WithContext(ctx).Save(rs).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("update ruleset %d: %w", rs.ID, err)
	}
	return nil
}

// Delete detaches the ruleset from its events before removing it.
func (r *rulesetRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Event{}).Where("ruleset_id = ?", id).Update("ruleset_id", nil).Error; err != nil {
			return fmt.Errorf("detach ruleset %d: %w", id, err)
		}
		res := tx.Delete(&models.Ruleset{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete ruleset %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
