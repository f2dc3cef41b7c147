package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"nexus_backend/internal/feature/auth/domain/entity"
)

// dummyHash is a valid bcrypt hash compared against when the email has no
// account, so login latency does not reveal whether the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailTaken if a user with
	// the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the given email address.
	// It returns ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the given ID.
	// It returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer issues signed access tokens.
// Defined here by the consumer; implemented by platform/token.
type TokenIssuer interface {
	Generate(subject string) (string, error)
}

// AuthUsecase implements registration and login.
type AuthUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

// Register creates a new user with a hashed password and returns the stored
// row. A duplicate email surfaces as ErrEmailTaken; the attempted insert is
// rolled back by the store.
func (u *AuthUsecase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:          email,
		HashedPassword: string(hashed),
		IsActive:       true,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns a signed access token.
// The bcrypt comparison always runs, even for unknown emails, and both
// credential failure modes return the identical ErrInvalidCredentials.
// Any other store failure propagates as-is; it is not a credentials problem.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	hash := dummyHash
	if err == nil {
		hash = user.HashedPassword
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.Generate(strconv.FormatUint(uint64(user.ID), 10))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
