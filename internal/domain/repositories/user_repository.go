package repositories

import (
	"context"

	"github.com/dentalflow/backend/internal/domain/entities"
)

// UserRepository defines the interface for clinic user account operations
type UserRepository interface {
	// Create creates a new user, generating an ID when absent
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*entities.User, error)

	// Update updates a user
	Update(ctx context.Context, user *entities.User) error

	// Delete deletes a user
	Delete(ctx context.Context, id string) error

	// List retrieves all users
	List(ctx context.Context) ([]entities.User, error)
}

// ReminderRepository defines the interface for dashboard reminder operations
type ReminderRepository interface {
	// Create creates a new reminder, generating an ID when absent
	Create(ctx context.Context, reminder *entities.Reminder) error

	// Toggle flips a reminder's completed flag
	Toggle(ctx context.Context, id string) error

	// Delete deletes a reminder
	Delete(ctx context.Context, id string) error

	// List retrieves all reminders, newest first
	List(ctx context.Context) ([]entities.Reminder, error)
}
