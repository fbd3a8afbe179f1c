package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Harshavarthini19/campus-connect/internal/models"
	"github.com/Harshavarthini19/campus-connect/internal/repository"
	"github.com/Harshavarthini19/campus-connect/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	users         repository.UserRepository
	sessionSecret string
}

func NewAuthService(users repository.UserRepository, sessionSecret string) *AuthService {
	return &AuthService{users: users, sessionSecret: sessionSecret}
}

// Register self-registers a reporter account. Staff and admin accounts
// are only created by an admin promoting an existing account.
func (a *AuthService) Register(ctx context.Context, email, name, password, department string) (*models.Account, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	department = strings.TrimSpace(department)
	if email == "" || name == "" {
		return nil, fmt.Errorf("%w: email and name are required", ErrValidation)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return a.users.Create(ctx, email, name, models.RoleReporter, department, hash)
}

func (a *AuthService) Login(ctx context.Context, email, password string) (token string, user *models.Account, err error) {
	u, hash, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !u.Active {
		return "", nil, ErrInvalidCredentials
	}
	if !utils.CheckPassword(hash, password) {
		return "", nil, ErrInvalidCredentials
	}
	tok, err := utils.SignJWT(a.sessionSecret, u.ID, u.Name, string(u.Role), 24*time.Hour)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}

// ChangePassword verifies the old password before storing a new hash.
func (a *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	u, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	_, hash, err := a.users.GetByEmail(ctx, u.Email)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(hash, oldPassword) {
		return ErrInvalidCredentials
	}
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return a.users.UpdatePasswordHash(ctx, userID, newHash)
}
