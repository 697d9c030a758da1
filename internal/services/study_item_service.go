package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harukimori/study-log-api/internal/models"
	"github.com/harukimori/study-log-api/internal/repository"
)

var (
	ErrItemFieldsRequired = errors.New("name and category are required")
	ErrDuplicateItem      = errors.New("a study item with the same name and category already exists")
	ErrItemNotFound       = errors.New("study item not found")
)

// StudyItemService handles study item business logic. Every operation is
// scoped to the authenticated owner.
type StudyItemService struct {
	itemRepo repository.StudyItemRepository
}

// NewStudyItemService creates a new StudyItemService
func NewStudyItemService(itemRepo repository.StudyItemRepository) *StudyItemService {
	return &StudyItemService{itemRepo: itemRepo}
}

// StudyItemInput represents input for creating or updating a study item.
// Create and update share the same rule set.
type StudyItemInput struct {
	Name     string
	Category string
}

func (in *StudyItemInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" || in.Category == "" {
		return ErrItemFieldsRequired
	}
	return nil
}

// List returns the user's study items, most recently created first
func (s *StudyItemService) List(userID uint64) ([]models.StudyItem, error) {
	items, err := s.itemRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list study items: %w", err)
	}
	return items, nil
}

// Create validates and persists a new study item. The same name and
// category may not appear twice for one user, compared case-insensitively.
func (s *StudyItemService) Create(userID uint64, input StudyItemInput) (*models.StudyItem, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}

	exists, err := s.itemRepo.FindDuplicate(userID, input.Name, input.Category, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicates: %w", err)
	}
	if exists {
		return nil, ErrDuplicateItem
	}

	item := &models.StudyItem{
		UserID:   userID,
		Name:     input.Name,
		Category: input.Category,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create study item: %w", err)
	}
	return item, nil
}

// Update replaces the name and category of an existing item. The
// duplicate check excludes the item itself, so saving unchanged values
// succeeds.
func (s *StudyItemService) Update(id, userID uint64, input StudyItemInput) (*models.StudyItem, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.FindByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find study item: %w", err)
	}

	exists, err := s.itemRepo.FindDuplicate(userID, input.Name, input.Category, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicates: %w", err)
	}
	if exists {
		return nil, ErrDuplicateItem
	}

	item.Name = input.Name
	item.Category = input.Category
	if err := s.itemRepo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update study item: %w", err)
	}
	return item, nil
}

// Delete removes the item and its logs for this user
func (s *StudyItemService) Delete(id, userID uint64) error {
	if err := s.itemRepo.Delete(id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete study item: %w", err)
	}
	return nil
}
