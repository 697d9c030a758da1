package repository

import (
	"github.com/harukimori/study-log-api/internal/models"
	"gorm.io/gorm"
)

// GormStudyItemRepository is a GORM implementation of StudyItemRepository
type GormStudyItemRepository struct {
	db *gorm.DB
}

// NewStudyItemRepository creates a new StudyItemRepository
func NewStudyItemRepository(db *gorm.DB) StudyItemRepository {
	return &GormStudyItemRepository{db: db}
}

// ListByUser returns the user's study items, most recently created first
func (r *GormStudyItemRepository) ListByUser(userID uint64) ([]models.StudyItem, error) {
	var items []models.StudyItem
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindByIDAndUser finds a study item owned by the user
func (r *GormStudyItemRepository) FindByIDAndUser(id, userID uint64) (*models.StudyItem, error) {
	var item models.StudyItem
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &item, nil
}

// FindDuplicate reports whether another item of the same user carries the
// same name and category, compared case-insensitively
func (r *GormStudyItemRepository) FindDuplicate(userID uint64, name, category string, excludeID uint64) (bool, error) {
	query := r.db.Model(&models.StudyItem{}).
		Where("user_id = ? AND LOWER(name) = LOWER(?) AND LOWER(category) = LOWER(?)", userID, name, category)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create creates a new study item
func (r *GormStudyItemRepository) Create(item *models.StudyItem) error {
	return r.db.Create(item).Error
}

// Update saves the full new state of a study item
func (r *GormStudyItemRepository) Update(item *models.StudyItem) error {
	return r.db.Save(item).Error
}

// Delete removes the item and the owner's logs referencing it within a
// single transaction
func (r *GormStudyItemRepository) Delete(id, userID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("study_item_id = ? AND user_id = ?", id, userID).Delete(&models.Log{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.StudyItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
