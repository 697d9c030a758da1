package repository

import (
	"github.com/harukimori/study-log-api/internal/models"
	"gorm.io/gorm"
)

// GormLogRepository is a GORM implementation of LogRepository
type GormLogRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(db *gorm.DB) LogRepository {
	return &GormLogRepository{db: db}
}

// List returns logs matching the filter, newest date first
func (r *GormLogRepository) List(filter LogFilter) ([]models.Log, error) {
	query := r.db.Where("user_id = ?", filter.UserID)

	if filter.StudyItemID != nil {
		query = query.Where("study_item_id = ?", *filter.StudyItemID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	query = query.Order("date DESC, created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var logs []models.Log
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListByUser returns all of the user's logs in ascending date order
func (r *GormLogRepository) ListByUser(userID uint64) ([]models.Log, error) {
	var logs []models.Log
	err := r.db.
		Where("user_id = ?", userID).
		Order("date ASC, created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// FindByIDAndUser finds a log owned by the user
func (r *GormLogRepository) FindByIDAndUser(id, userID uint64) (*models.Log, error) {
	var log models.Log
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&log).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &log, nil
}

// Create creates a new log
func (r *GormLogRepository) Create(log *models.Log) error {
	return r.db.Create(log).Error
}

// Update saves the full new state of a log
func (r *GormLogRepository) Update(log *models.Log) error {
	return r.db.Save(log).Error
}

// Delete removes a log owned by the user
func (r *GormLogRepository) Delete(id, userID uint64) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Log{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
