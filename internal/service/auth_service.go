package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/609harsh/realtor-app/internal/models"
	"github.com/609harsh/realtor-app/internal/repository"
	"github.com/609harsh/realtor-app/internal/utils"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// signin failures cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is returned when a privileged signup lacks a valid
	// product key.
	ErrUnauthorized = errors.New("unauthorized")
)

// SignupInput is the profile a new user registers with. ProductKey is
// required for any role other than BUYER.
type SignupInput struct {
	Name       string
	Phone      string
	Email      string
	Password   string
	ProductKey string
}

type AuthService struct {
	users            repository.UserRepository
	jwtSecret        string
	productKeySecret string
	tokenTTL         time.Duration
}

func NewAuthService(users repository.UserRepository, jwtSecret, productKeySecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:            users,
		jwtSecret:        jwtSecret,
		productKeySecret: productKeySecret,
		tokenTTL:         tokenTTL,
	}
}

// Signup registers a user. Roles other than BUYER must present a product key
// previously issued by GenerateProductKey for the same email and role; a
// missing or non-verifying key fails before anything is persisted.
func (a *AuthService) Signup(ctx context.Context, in SignupInput, role models.Role) (string, *models.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))

	if role != models.RoleBuyer {
		if !utils.VerifyProductKey(email, string(role), a.productKeySecret, in.ProductKey) {
			return "", nil, ErrUnauthorized
		}
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return "", nil, err
	}

	u, err := a.users.Create(ctx, email, strings.TrimSpace(in.Name), strings.TrimSpace(in.Phone), role, hash)
	if err != nil {
		return "", nil, err
	}

	tok, err := utils.SignJWT(a.jwtSecret, u.ID, u.Email, string(u.Role), a.tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}

// Signin verifies credentials and issues a token. The role baked into the
// token is the user's role at signin time and stays authoritative until the
// token expires.
func (a *AuthService) Signin(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	u, hash, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}
	if !utils.CheckPassword(hash, password) {
		return "", nil, ErrInvalidCredentials
	}

	tok, err := utils.SignJWT(a.jwtSecret, u.ID, u.Email, string(u.Role), a.tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}

// GenerateProductKey returns the opaque key a privileged-signup candidate
// must supply back at signup. The key is the bcrypt hash of the composite,
// so it is verified by re-hashing rather than decoding; nothing is stored.
func (a *AuthService) GenerateProductKey(email string, role models.Role) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	return utils.HashPassword(utils.ProductKeyString(email, string(role), a.productKeySecret))
}
