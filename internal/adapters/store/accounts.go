package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dentalflow/backend/internal/domain/entities"
	apperrors "github.com/dentalflow/backend/pkg/errors"
)

// UserStore implements repositories.UserRepository over the store
type UserStore struct {
	s *Store
}

// Users returns the user repository view of the store
func (s *Store) Users() *UserStore {
	return &UserStore{s: s}
}

// Create creates a new user, generating an ID when absent
func (r *UserStore) Create(ctx context.Context, user *entities.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.users {
		if r.s.users[i].Username == user.Username {
			return apperrors.NewConflictError("username already taken")
		}
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.LastAccess.IsZero() {
		user.LastAccess = time.Now()
	}
	r.s.users = append(r.s.users, *user)
	return r.s.persistLocked(ctx)
}

// GetByID retrieves a user by ID
func (r *UserStore) GetByID(ctx context.Context, id string) (*entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.users {
		if r.s.users[i].ID == id {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

// GetByUsername retrieves a user by username
func (r *UserStore) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.users {
		if r.s.users[i].Username == username {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

// Update updates a user
func (r *UserStore) Update(ctx context.Context, user *entities.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.users {
		if r.s.users[i].ID == user.ID {
			r.s.users[i] = *user
			return r.s.persistLocked(ctx)
		}
	}
	return apperrors.NewNotFoundError("user not found")
}

// Delete deletes a user
func (r *UserStore) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.users {
		if r.s.users[i].ID == id {
			r.s.users = append(r.s.users[:i], r.s.users[i+1:]...)
			return r.s.persistLocked(ctx)
		}
	}
	return apperrors.NewNotFoundError("user not found")
}

// List retrieves all users
func (r *UserStore) List(ctx context.Context) ([]entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]entities.User(nil), r.s.users...), nil
}

// ReminderStore implements repositories.ReminderRepository over the store
type ReminderStore struct {
	s *Store
}

// Reminders returns the reminder repository view of the store
func (s *Store) Reminders() *ReminderStore {
	return &ReminderStore{s: s}
}

// Create creates a new reminder, generating an ID when absent
func (r *ReminderStore) Create(ctx context.Context, reminder *entities.Reminder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if reminder.ID == "" {
		reminder.ID = uuid.New().String()
	}
	if reminder.CreatedAt.IsZero() {
		reminder.CreatedAt = time.Now()
	}
	r.s.reminders = append([]entities.Reminder{*reminder}, r.s.reminders...)
	return r.s.persistLocked(ctx)
}

// Toggle flips a reminder's completed flag
func (r *ReminderStore) Toggle(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.reminders {
		if r.s.reminders[i].ID == id {
			r.s.reminders[i].Completed = !r.s.reminders[i].Completed
			return r.s.persistLocked(ctx)
		}
	}
	return apperrors.NewNotFoundError("reminder not found")
}

// Delete deletes a reminder
func (r *ReminderStore) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.reminders {
		if r.s.reminders[i].ID == id {
			r.s.reminders = append(r.s.reminders[:i], r.s.reminders[i+1:]...)
			return r.s.persistLocked(ctx)
		}
	}
	return apperrors.NewNotFoundError("reminder not found")
}

// List retrieves all reminders, newest first
func (r *ReminderStore) List(ctx context.Context) ([]entities.Reminder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]entities.Reminder(nil), r.s.reminders...), nil
}
