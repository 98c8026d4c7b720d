package repository

import (
	"context"
	"errors"

	"github.com/609harsh/realtor-app/internal/models"
)

// ErrDuplicateEmail is returned by UserRepository.Create when the email is
// already taken. Uniqueness is enforced by the store, not checked up front.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	Create(ctx context.Context, email, name, phone string, role models.Role, passwordHash string) (*models.User, error)
	// GetByEmail returns (nil, "", nil) when no user exists for the email.
	GetByEmail(ctx context.Context, email string) (*models.User, string /*passwordHash*/, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type HomeRepository interface {
	List(ctx context.Context, f HomeFilter) ([]models.Home, error)
	Get(ctx context.Context, id string) (*models.Home, error)
	Create(ctx context.Context, h *models.Home) (*models.Home, error)
	Update(ctx context.Context, id string, u models.HomeUpdate) (*models.Home, error)
	Delete(ctx context.Context, id string) error
	// RealtorID returns "" when the home does not exist.
	RealtorID(ctx context.Context, homeID string) (string, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *models.Message) (*models.Message, error)
	ListByHome(ctx context.Context, homeID string) ([]models.Message, error)
}
