package services

import (
	"context"
	"strings"
	"time"

	"github.com/dentalflow/backend/internal/domain/entities"
	"github.com/dentalflow/backend/internal/domain/repositories"
	apperrors "github.com/dentalflow/backend/pkg/errors"
)

// UserService handles clinic user accounts and dashboard reminders
type UserService struct {
	users     repositories.UserRepository
	reminders repositories.ReminderRepository
	now       func() time.Time
}

// NewUserService creates a new user service
func NewUserService(users repositories.UserRepository, reminders repositories.ReminderRepository) *UserService {
	return &UserService{
		users:     users,
		reminders: reminders,
		now:       time.Now,
	}
}

// Login checks the credentials and, on success, updates the user's last
// access timestamp and returns the account.
func (s *UserService) Login(ctx context.Context, username, password string) (*entities.User, error) {
	if password == "" {
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}
	if user.Password != password {
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	user.LastAccess = s.now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AddUser creates a new user account
func (s *UserService) AddUser(ctx context.Context, user *entities.User) error {
	if strings.TrimSpace(user.Username) == "" || user.Password == "" {
		return apperrors.NewValidationError("username and password are required")
	}
	user.LastAccess = s.now()
	return s.users.Create(ctx, user)
}

// UpdateUser edits a user account. Fields left empty keep their stored
// value, so a partial update can never blank the password, and the last
// access timestamp stays owned by Login.
func (s *UserService) UpdateUser(ctx context.Context, user *entities.User) error {
	existing, err := s.users.GetByID(ctx, user.ID)
	if err != nil {
		return err
	}

	if user.Username == "" {
		user.Username = existing.Username
	}
	if user.Name == "" {
		user.Name = existing.Name
	}
	if user.Role == "" {
		user.Role = existing.Role
	}
	if user.Password == "" {
		user.Password = existing.Password
	}
	user.LastAccess = existing.LastAccess

	return s.users.Update(ctx, user)
}

// DeleteUser deletes a user account
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

// ListUsers retrieves all user accounts
func (s *UserService) ListUsers(ctx context.Context) ([]entities.User, error) {
	return s.users.List(ctx)
}

// AddReminder creates a dashboard reminder attributed to its author
func (s *UserService) AddReminder(ctx context.Context, text string, author *entities.User) (*entities.Reminder, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("reminder text is required")
	}

	reminder := &entities.Reminder{
		Text:        text,
		Completed:   false,
		CreatedAt:   s.now(),
		CreatedBy:   author.Name,
		CreatedByID: author.ID,
	}
	if err := s.reminders.Create(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// ToggleReminder flips a reminder's completed flag
func (s *UserService) ToggleReminder(ctx context.Context, id string) error {
	return s.reminders.Toggle(ctx, id)
}

// DeleteReminder deletes a reminder
func (s *UserService) DeleteReminder(ctx context.Context, id string) error {
	return s.reminders.Delete(ctx, id)
}

// ListReminders retrieves all reminders, newest first
func (s *UserService) ListReminders(ctx context.Context) ([]entities.Reminder, error) {
	return s.reminders.List(ctx)
}
