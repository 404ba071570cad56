// Package user manages council staff accounts (revenue officers and
// administrators).
package user

import (
	"context"
	"errors"
	"strings"

	"revas/internal/models"
	"revas/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidInput = errors.New("invalid user input")

// CreateRequest carries the fields for a new staff account.
type CreateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*models.User, error)
	Get(ctx context.Context, userID uint) (*models.User, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	UpdateStatus(ctx context.Context, userID uint, status string) error
}

type service struct {
	repo repositories.UserRepository
}

func NewService(repo repositories.UserRepository) Service {
	if repo == nil {
		panic("user repository is required")
	}
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*models.User, error) {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Phone) == "" || len(req.Password) < 8 {
		return nil, ErrInvalidInput
	}

	role := req.Role
	if role == "" {
		role = models.RoleOfficer
	}
	if role != models.RoleAdmin && role != models.RoleOfficer {
		return nil, ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, repositories.ErrEmailTaken
	}
	if _, err := s.repo.GetByPhone(req.Phone); err == nil {
		return nil, repositories.ErrPhoneTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Password:     string(hashed),
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         role,
		Status:       "active",
		TokenVersion: 1,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) Get(ctx context.Context, userID uint) (*models.User, error) {
	return s.repo.GetByID(userID)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	return s.repo.List(offset, limit)
}

func (s *service) UpdateStatus(ctx context.Context, userID uint, status string) error {
	if status != "active" && status != "suspended" {
		return ErrInvalidInput
	}
	return s.repo.UpdateStatus(userID, status)
}
