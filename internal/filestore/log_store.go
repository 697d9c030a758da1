package filestore

import (
	"sort"
	"time"

	"github.com/harukimori/study-log-api/internal/models"
	"github.com/harukimori/study-log-api/internal/repository"
)

// FileLogRepository is a JSON-file implementation of repository.LogRepository
type FileLogRepository struct {
	store *Store
}

// NewLogRepository creates a file-backed LogRepository
func NewLogRepository(store *Store) repository.LogRepository {
	return &FileLogRepository{store: store}
}

// List returns logs matching the filter, newest date first
func (r *FileLogRepository) List(filter repository.LogFilter) ([]models.Log, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var logs []models.Log
	if err := r.store.readCollection(logsFile, &logs); err != nil {
		return nil, err
	}

	matched := make([]models.Log, 0, len(logs))
	for _, log := range logs {
		if log.UserID != filter.UserID {
			continue
		}
		if filter.StudyItemID != nil && log.StudyItemID != *filter.StudyItemID {
			continue
		}
		if filter.StartDate != nil && log.Date < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && log.Date > *filter.EndDate {
			continue
		}
		matched = append(matched, log)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date > matched[j].Date
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

// ListByUser returns all of the user's logs in ascending date order
func (r *FileLogRepository) ListByUser(userID uint64) ([]models.Log, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var logs []models.Log
	if err := r.store.readCollection(logsFile, &logs); err != nil {
		return nil, err
	}

	owned := make([]models.Log, 0, len(logs))
	for _, log := range logs {
		if log.UserID == userID {
			owned = append(owned, log)
		}
	}

	sort.Slice(owned, func(i, j int) bool {
		if owned[i].Date != owned[j].Date {
			return owned[i].Date < owned[j].Date
		}
		return owned[i].CreatedAt.Before(owned[j].CreatedAt)
	})
	return owned, nil
}

// FindByIDAndUser finds a log owned by the user
func (r *FileLogRepository) FindByIDAndUser(id, userID uint64) (*models.Log, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var logs []models.Log
	if err := r.store.readCollection(logsFile, &logs); err != nil {
		return nil, err
	}

	for i := range logs {
		if logs[i].ID == id && logs[i].UserID == userID {
			log := logs[i]
			return &log, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Create creates a new log
func (r *FileLogRepository) Create(log *models.Log) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var logs []models.Log
	if err := r.store.readCollection(logsFile, &logs); err != nil {
		return err
	}

	var max uint64
	for _, l := range logs {
		if l.ID > max {
			max = l.ID
		}
	}
	log.ID = max + 1
	now := time.Now()
	log.CreatedAt = now
	log.UpdatedAt = now

	logs = append(logs, *log)
	return r.store.writeCollection(logsFile, logs)
}

// Update saves the full new state of a log
func (r *FileLogRepository) Update(log *models.Log) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var logs []models.Log
	if err := r.store.readCollection(logsFile, &logs); err != nil {
		return err
	}

	for i := range logs {
		if logs[i].ID == log.ID && logs[i].UserID == log.UserID {
			log.UpdatedAt = time.Now()
			logs[i] = *log
			return r.store.writeCollection(logsFile, logs)
		}
	}
	return repository.ErrNotFound
}

// Delete removes a log owned by the user
func (r *FileLogRepository) Delete(id, userID uint64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var logs []models.Log
	if err := r.store.readCollection(logsFile, &logs); err != nil {
		return err
	}

	kept := logs[:0]
	found := false
	for _, log := range logs {
		if log.ID == id && log.UserID == userID {
			found = true
			continue
		}
		kept = append(kept, log)
	}
	if !found {
		return repository.ErrNotFound
	}
	return r.store.writeCollection(logsFile, kept)
}
