package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/soloflowhq/soloflow-api/internal/domain/autoresponse"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

type AutoResponseGormRepository struct {
	db *gorm.DB
}

func NewAutoResponseGormRepository(db *gorm.DB) *AutoResponseGormRepository {
	return &AutoResponseGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *AutoResponseGormRepository) List(
	ctx context.Context,
	userID uint,
) ([]models.AutoResponse, error) {

	var templates []models.AutoResponse
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("type ASC, id ASC").
		Find(&templates).Error; err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *AutoResponseGormRepository) ListByType(
	ctx context.Context,
	userID uint,
	t domain.Type,
) ([]models.AutoResponse, error) {

	var templates []models.AutoResponse
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, string(t)).
		Order("id ASC").
		Find(&templates).Error; err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *AutoResponseGormRepository) Get(
	ctx context.Context,
	userID uint,
	id uint,
) (*models.AutoResponse, error) {

	var ar models.AutoResponse
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ar).Error; err != nil {
		return nil, err
	}

	return &ar, nil
}

func (r *AutoResponseGormRepository) GetDefault(
	ctx context.Context,
	userID uint,
	t domain.Type,
) (*models.AutoResponse, error) {

	var ar models.AutoResponse
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND is_default = ?", userID, string(t), true).
		First(&ar).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ar, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

// Create persists a new template. A record arriving with IsDefault set
// demotes its siblings inside the same transaction, so the single-default
// invariant holds on every write path, not only SetDefault.
func (r *AutoResponseGormRepository) Create(
	ctx context.Context,
	ar *models.AutoResponse,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ar.IsDefault {
			if err := demoteSiblings(tx, ar.UserID, ar.Type, 0); err != nil {
				return err
			}
		}
		return tx.Create(ar).Error
	})
}

func (r *AutoResponseGormRepository) Update(
	ctx context.Context,
	ar *models.AutoResponse,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ar.IsDefault {
			if err := demoteSiblings(tx, ar.UserID, ar.Type, ar.ID); err != nil {
				return err
			}
		}

		res := tx.Model(&models.AutoResponse{}).
			Where("id = ? AND user_id = ?", ar.ID, ar.UserID).
			Select("type", "name", "content", "is_default").
			Updates(map[string]any{
				"type":       ar.Type,
				"name":       ar.Name,
				"content":    ar.Content,
				"is_default": ar.IsDefault,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("template_not_found")
		}
		return nil
	})
}

// SetDefault demotes every template of the category and promotes the target
// in one transaction. A missing target aborts before any mutation.
func (r *AutoResponseGormRepository) SetDefault(
	ctx context.Context,
	userID uint,
	t domain.Type,
	id uint,
) (*models.AutoResponse, error) {

	var promoted models.AutoResponse

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target models.AutoResponse
		if err := tx.
			Where("id = ? AND user_id = ? AND type = ?", id, userID, string(t)).
			First(&target).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("template_not_found")
			}
			return err
		}

		if err := demoteSiblings(tx, userID, string(t), id); err != nil {
			return err
		}

		if err := tx.Model(&target).
			Update("is_default", true).Error; err != nil {
			return err
		}

		promoted = target
		promoted.IsDefault = true
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &promoted, nil
}

func (r *AutoResponseGormRepository) Delete(
	ctx context.Context,
	userID uint,
	id uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.AutoResponse{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("template_not_found")
	}
	return nil
}

func demoteSiblings(tx *gorm.DB, userID uint, t string, excludeID uint) error {
	q := tx.Model(&models.AutoResponse{}).
		Where("user_id = ? AND type = ? AND is_default = ?", userID, t, true)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q.Update("is_default", false).Error
}

// Compile-time check
var _ domain.Repository = (*AutoResponseGormRepository)(nil)
