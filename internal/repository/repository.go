package repository

import (
	"errors"

	"github.com/harukimori/study-log-api/internal/models"
)

// ErrNotFound is returned when a record does not exist or is not owned by
// the requesting user. Both backends translate their own miss conditions
// into this sentinel so services never depend on a storage driver.
var ErrNotFound = errors.New("repository: record not found")

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email address
	FindByEmail(email string) (*models.User, error)
}

// StudyItemRepository defines the interface for study item data access.
// Every operation is scoped to the owning user.
type StudyItemRepository interface {
	// ListByUser returns the user's study items, most recently created first
	ListByUser(userID uint64) ([]models.StudyItem, error)

	// FindByIDAndUser finds a study item owned by the user
	FindByIDAndUser(id, userID uint64) (*models.StudyItem, error)

	// FindDuplicate reports whether the user already has an item with the
	// same name and category, compared case-insensitively. excludeID skips
	// the item itself when checking on update (0 to check all).
	FindDuplicate(userID uint64, name, category string, excludeID uint64) (bool, error)

	// Create creates a new study item
	Create(item *models.StudyItem) error

	// Update saves the full new state of a study item
	Update(item *models.StudyItem) error

	// Delete removes the item and the owner's logs that reference it
	Delete(id, userID uint64) error
}

// LogFilter holds filtering options for listing logs. Dates are inclusive
// YYYY-MM-DD bounds; Limit truncates after filtering and ordering, and
// values <= 0 mean no limit.
type LogFilter struct {
	UserID      uint64
	StudyItemID *uint64
	StartDate   *string
	EndDate     *string
	Limit       int
}

// LogRepository defines the interface for study log data access.
// Every operation is scoped to the owning user.
type LogRepository interface {
	// List returns logs matching the filter, ordered by date descending
	// then creation time descending
	List(filter LogFilter) ([]models.Log, error)

	// ListByUser returns all of the user's logs in ascending date order,
	// as consumed by the statistics service
	ListByUser(userID uint64) ([]models.Log, error)

	// FindByIDAndUser finds a log owned by the user
	FindByIDAndUser(id, userID uint64) (*models.Log, error)

	// Create creates a new log
	Create(log *models.Log) error

	// Update saves the full new state of a log
	Update(log *models.Log) error

	// Delete removes a log owned by the user
	Delete(id, userID uint64) error
}
