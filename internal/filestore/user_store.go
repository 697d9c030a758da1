package filestore

import (
	"time"

	"github.com/harukimori/study-log-api/internal/models"
	"github.com/harukimori/study-log-api/internal/repository"
)

// FileUserRepository is a JSON-file implementation of repository.UserRepository
type FileUserRepository struct {
	store *Store
}

// NewUserRepository creates a file-backed UserRepository
func NewUserRepository(store *Store) repository.UserRepository {
	return &FileUserRepository{store: store}
}

// Create creates a new user
func (r *FileUserRepository) Create(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var users []models.User
	if err := r.store.readCollection(usersFile, &users); err != nil {
		return err
	}

	user.ID = nextUserID(users)
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	users = append(users, *user)
	return r.store.writeCollection(usersFile, users)
}

// FindByID finds a user by ID
func (r *FileUserRepository) FindByID(id uint64) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var users []models.User
	if err := r.store.readCollection(usersFile, &users); err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			user := users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

// FindByEmail finds a user by email address
func (r *FileUserRepository) FindByEmail(email string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var users []models.User
	if err := r.store.readCollection(usersFile, &users); err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			user := users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func nextUserID(users []models.User) uint64 {
	var max uint64
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
