package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/yukikurage/backoffice-api/internal/models"
	"github.com/yukikurage/backoffice-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinPasswordLength is the shortest password accepted at user creation.
const MinPasswordLength = 6

var ErrFailedToHashPassword = errors.New("failed to hash password")

// UserService handles user records.
type UserService struct {
	repos *repository.Repositories
}

// NewUserService creates a new UserService.
func NewUserService(repos *repository.Repositories) *UserService {
	return &UserService{repos: repos}
}

// CreateUserInput represents the information required to create a user.
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
}

// CreateUser stores a user with a bcrypt password hash. The email must be
// unique.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, invalid("email", "must be a valid email")
	}
	if input.Name == "" {
		return nil, invalid("name", "is required")
	}
	if len(input.Password) < MinPasswordLength {
		return nil, invalid("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hashedPassword),
	}
	emailTaken := &UniquenessError{Entity: "user", Field: "email", Value: input.Email}

	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Users.FindByEmail(ctx, input.Email); err == nil {
			return emailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check email: %w", err)
		}

		if err := tx.Users.Create(ctx, user); err != nil {
			return writeError("create", "user", err, emailTaken)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
