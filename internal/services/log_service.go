package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harukimori/study-log-api/internal/models"
	"github.com/harukimori/study-log-api/internal/repository"
	"github.com/harukimori/study-log-api/internal/utils"
)

var (
	ErrLogFieldsRequired = errors.New("studyItemId, date, content and duration are required")
	ErrDurationInvalid   = errors.New("duration must be a positive number of minutes")
	ErrDateInvalid       = errors.New("date must be a valid calendar date")
	ErrLogNotFound       = errors.New("log not found")
)

// LogService handles study log business logic. Every operation is scoped
// to the authenticated owner, including the referenced study item.
type LogService struct {
	logRepo  repository.LogRepository
	itemRepo repository.StudyItemRepository
}

// NewLogService creates a new LogService
func NewLogService(logRepo repository.LogRepository, itemRepo repository.StudyItemRepository) *LogService {
	return &LogService{
		logRepo:  logRepo,
		itemRepo: itemRepo,
	}
}

// ListLogsInput represents the optional filters for listing logs
type ListLogsInput struct {
	UserID      uint64
	StudyItemID *uint64
	StartDate   *string
	EndDate     *string
	Limit       int
}

// LogInput represents input for creating or updating a log. Create and
// update share the same rule set; updates are full replacements.
type LogInput struct {
	StudyItemID uint64
	Date        string
	Content     string
	Duration    int
	Memo        string
	Tags        []string
}

// normalize validates the input in place: required fields, positive
// duration, parseable date (stored as YYYY-MM-DD), trimmed content, memo
// and tags with empty tags dropped.
func (in *LogInput) normalize() error {
	in.Content = strings.TrimSpace(in.Content)
	if in.StudyItemID == 0 || strings.TrimSpace(in.Date) == "" || in.Content == "" || in.Duration == 0 {
		return ErrLogFieldsRequired
	}
	if in.Duration < 0 {
		return ErrDurationInvalid
	}

	date, err := utils.NormalizeDate(strings.TrimSpace(in.Date))
	if err != nil {
		return ErrDateInvalid
	}
	in.Date = date

	in.Memo = strings.TrimSpace(in.Memo)

	tags := make([]string, 0, len(in.Tags))
	for _, tag := range in.Tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	in.Tags = tags

	return nil
}

// List returns the user's logs matching the filters, ordered by date
// descending then creation time descending
func (s *LogService) List(input ListLogsInput) ([]models.Log, error) {
	logs, err := s.logRepo.List(repository.LogFilter{
		UserID:      input.UserID,
		StudyItemID: input.StudyItemID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Limit:       input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	return logs, nil
}

// Create validates and persists a new log entry
func (s *LogService) Create(userID uint64, input LogInput) (*models.Log, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}
	if err := s.ensureItemOwned(input.StudyItemID, userID); err != nil {
		return nil, err
	}

	log := &models.Log{
		UserID:      userID,
		StudyItemID: input.StudyItemID,
		Date:        input.Date,
		Content:     input.Content,
		Duration:    input.Duration,
		Memo:        input.Memo,
		Tags:        input.Tags,
	}
	if err := s.logRepo.Create(log); err != nil {
		return nil, fmt.Errorf("failed to create log: %w", err)
	}
	return log, nil
}

// Update replaces every field of an existing log
func (s *LogService) Update(id, userID uint64, input LogInput) (*models.Log, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}

	log, err := s.logRepo.FindByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, fmt.Errorf("failed to find log: %w", err)
	}

	if err := s.ensureItemOwned(input.StudyItemID, userID); err != nil {
		return nil, err
	}

	log.StudyItemID = input.StudyItemID
	log.Date = input.Date
	log.Content = input.Content
	log.Duration = input.Duration
	log.Memo = input.Memo
	log.Tags = input.Tags

	if err := s.logRepo.Update(log); err != nil {
		return nil, fmt.Errorf("failed to update log: %w", err)
	}
	return log, nil
}

// Delete removes a log owned by the user
func (s *LogService) Delete(id, userID uint64) error {
	if err := s.logRepo.Delete(id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLogNotFound
		}
		return fmt.Errorf("failed to delete log: %w", err)
	}
	return nil
}

// ensureItemOwned verifies the referenced study item exists and belongs
// to the same user
func (s *LogService) ensureItemOwned(itemID, userID uint64) error {
	if _, err := s.itemRepo.FindByIDAndUser(itemID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to verify study item: %w", err)
	}
	return nil
}
