package usecase

import (
	"context"
	"errors"
	"strings"

	"bengkel_pos/internal/domain/domainerr"
	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = domainerr.Validation("invalid username or password")
	ErrUsernameRequired   = domainerr.Validation("username is required")
	ErrPasswordTooShort   = domainerr.Validation("password must be at least 6 characters")
)

const minPasswordLength = 6

// IAuthUseCase checks shop staff credentials. No session is issued.
type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (entities.User, error)
	CreateUser(ctx context.Context, username, name, role, password string) (entities.User, error)
}

type AuthUseCase struct {
	repo interfaces.IUserRepository
	cost int
	log  *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(repo interfaces.IUserRepository) *AuthUseCase {
	return &AuthUseCase{repo: repo, cost: bcrypt.DefaultCost, log: zap.L().Named("auth")}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, ErrInvalidCredentials
	}
	user, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.User{}, domainerr.Backend("users.get", err)
	}
	if user.ID == "" {
		u.log.Info("login rejected", zap.String("username", username), zap.String("reason", "unknown user"))
		return entities.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			u.log.Warn("stored password hash unusable", zap.String("username", username), zap.Error(err))
		}
		return entities.User{}, ErrInvalidCredentials
	}
	u.log.Info("login accepted", zap.String("username", username))
	return user, nil
}

// CreateUser hashes password and stores the user, replacing any user with
// the same username.
func (u *AuthUseCase) CreateUser(ctx context.Context, username, name, role, password string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return entities.User{}, ErrUsernameRequired
	}
	if len(password) < minPasswordLength {
		return entities.User{}, ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if err != nil {
		return entities.User{}, err
	}
	if strings.TrimSpace(name) == "" {
		name = username
	}
	if strings.TrimSpace(role) == "" {
		role = entities.DefaultUserRole
	}
	user, err := u.repo.Upsert(ctx, entities.User{
		ID:           username,
		Username:     username,
		Name:         strings.TrimSpace(name),
		Role:         strings.TrimSpace(role),
		PasswordHash: string(hash),
	})
	if err != nil {
		return entities.User{}, domainerr.Backend("users.upsert", err)
	}
	u.log.Info("user saved", zap.String("username", username), zap.String("role", user.Role))
	return user, nil
}
