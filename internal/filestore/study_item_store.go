package filestore

import (
	"sort"
	"strings"
	"time"

	"github.com/harukimori/study-log-api/internal/models"
	"github.com/harukimori/study-log-api/internal/repository"
)

// FileStudyItemRepository is a JSON-file implementation of repository.StudyItemRepository
type FileStudyItemRepository struct {
	store *Store
}

// NewStudyItemRepository creates a file-backed StudyItemRepository
func NewStudyItemRepository(store *Store) repository.StudyItemRepository {
	return &FileStudyItemRepository{store: store}
}

// ListByUser returns the user's study items, most recently created first
func (r *FileStudyItemRepository) ListByUser(userID uint64) ([]models.StudyItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	items, err := r.readOwned(userID)
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// FindByIDAndUser finds a study item owned by the user
func (r *FileStudyItemRepository) FindByIDAndUser(id, userID uint64) (*models.StudyItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var items []models.StudyItem
	if err := r.store.readCollection(studyItemsFile, &items); err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id && items[i].UserID == userID {
			item := items[i]
			return &item, nil
		}
	}
	return nil, repository.ErrNotFound
}

// FindDuplicate reports a case-insensitive name+category collision within
// the user's items, skipping excludeID
func (r *FileStudyItemRepository) FindDuplicate(userID uint64, name, category string, excludeID uint64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var items []models.StudyItem
	if err := r.store.readCollection(studyItemsFile, &items); err != nil {
		return false, err
	}

	for _, item := range items {
		if item.UserID != userID || item.ID == excludeID {
			continue
		}
		if strings.EqualFold(item.Name, name) && strings.EqualFold(item.Category, category) {
			return true, nil
		}
	}
	return false, nil
}

// Create creates a new study item
func (r *FileStudyItemRepository) Create(item *models.StudyItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var items []models.StudyItem
	if err := r.store.readCollection(studyItemsFile, &items); err != nil {
		return err
	}

	var max uint64
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	item.ID = max + 1
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	items = append(items, *item)
	return r.store.writeCollection(studyItemsFile, items)
}

// Update saves the full new state of a study item
func (r *FileStudyItemRepository) Update(item *models.StudyItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var items []models.StudyItem
	if err := r.store.readCollection(studyItemsFile, &items); err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == item.ID && items[i].UserID == item.UserID {
			item.UpdatedAt = time.Now()
			items[i] = *item
			return r.store.writeCollection(studyItemsFile, items)
		}
	}
	return repository.ErrNotFound
}

// Delete removes the item and the owner's logs referencing it. Both files
// change under one lock so readers never observe the half-applied state.
func (r *FileStudyItemRepository) Delete(id, userID uint64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var items []models.StudyItem
	if err := r.store.readCollection(studyItemsFile, &items); err != nil {
		return err
	}

	kept := items[:0]
	found := false
	for _, item := range items {
		if item.ID == id && item.UserID == userID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return repository.ErrNotFound
	}

	var logs []models.Log
	if err := r.store.readCollection(logsFile, &logs); err != nil {
		return err
	}
	keptLogs := logs[:0]
	for _, log := range logs {
		if log.StudyItemID == id && log.UserID == userID {
			continue
		}
		keptLogs = append(keptLogs, log)
	}

	if err := r.store.writeCollection(studyItemsFile, kept); err != nil {
		return err
	}
	return r.store.writeCollection(logsFile, keptLogs)
}

func (r *FileStudyItemRepository) readOwned(userID uint64) ([]models.StudyItem, error) {
	var items []models.StudyItem
	if err := r.store.readCollection(studyItemsFile, &items); err != nil {
		return nil, err
	}

	owned := make([]models.StudyItem, 0, len(items))
	for _, item := range items {
		if item.UserID == userID {
			owned = append(owned, item)
		}
	}
	return owned, nil
}
