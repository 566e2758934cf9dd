// Package service implements the authentication flow: registration,
// login with token issuance, and the email-existence check. The service
// owns the single uniqueness check for emails; handlers only map its
// sentinel errors onto envelope responses.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/royalvilla/villa-catalog-api/internal/dto"
	"github.com/royalvilla/villa-catalog-api/internal/model"
	"github.com/royalvilla/villa-catalog-api/internal/repository"
	"github.com/royalvilla/villa-catalog-api/internal/utils"
)

// ErrInvalidCredentials is returned for an unknown email and for a wrong
// password alike, so callers cannot enumerate registered addresses.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailExists is re-exported so handlers depend on the service only.
var ErrEmailExists = repository.ErrEmailExists

// UserStore is the persistence surface the auth service needs. It is
// satisfied by *repository.UserRepo and mocked in tests.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// AuthService exposes the authentication operations used by the auth
// handler.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserDTO, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	IsEmailRegistered(ctx context.Context, email string) (bool, error)
}

type authService struct {
	users      UserStore
	jwtSecret  string
	tokenDays  int
	bcryptCost int
}

// NewAuthService wires the auth service with its user store, the
// process-wide signing secret, the token lifetime in days and the
// bcrypt cost.
func NewAuthService(users UserStore, jwtSecret string, tokenDays, bcryptCost int) AuthService {
	return &authService{
		users:      users,
		jwtSecret:  jwtSecret,
		tokenDays:  tokenDays,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user. The email uniqueness check lives here and
// only here; a duplicate surfaces as ErrEmailExists. The role defaults
// to "Customer" when blank and the password is stored as a bcrypt hash,
// never in plain form. The returned projection carries no password.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailExists
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = model.DefaultRole
	}
	hash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	out := dto.NewUserDTO(u)
	return &out, nil
}

// Login verifies the credentials and issues a signed bearer token. An
// unknown email and a wrong password both collapse into
// ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	tok, err := utils.NewAuthToken(s.jwtSecret, u, s.tokenDays)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &dto.LoginResponse{
		User:  dto.NewUserDTO(u),
		Token: tok.Token,
	}, nil
}

// IsEmailRegistered reports whether an email is already taken. It is a
// pure read with no side effects; Register reuses the same store call.
func (s *authService) IsEmailRegistered(ctx context.Context, email string) (bool, error) {
	return s.users.EmailExists(ctx, strings.ToLower(strings.TrimSpace(email)))
}
