package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"trendkart/models"
	"trendkart/repositories"
	"trendkart/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	store repositories.Store
}

func NewAuthService(store repositories.Store) *AuthService {
	return &AuthService{store: store}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	user := &models.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     strings.ToLower(req.Email),
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hash

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.store.UpdateLastLogin(ctx, user.ID, now); err == nil {
		user.LastLogin = &now
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.AllUsers(ctx)
}

func (s *AuthService) UpdateRole(ctx context.Context, userID, role string) error {
	if role != models.RoleUser && role != models.RoleAdmin {
		return errors.New("invalid role")
	}
	return s.store.UpdateUserRole(ctx, userID, role)
}

func (s *AuthService) DeleteUser(ctx context.Context, userID string) error {
	return s.store.DeleteUser(ctx, userID)
}
