// Package revenuetype manages the council's revenue type catalogue.
package revenuetype

import (
	"context"
	"errors"
	"strings"

	"revas/internal/models"
	"revas/internal/repositories"
)

var ErrInvalidInput = errors.New("invalid revenue type input")

var validMethods = []string{
	models.CalculationFixed,
	models.CalculationPercentage,
	models.CalculationVariable,
}

var validFrequencies = []string{
	models.FrequencyOneTime,
	models.FrequencyMonthly,
	models.FrequencyQuarterly,
	models.FrequencyAnnual,
}

// Service defines revenue type catalogue operations.
type Service interface {
	Create(ctx context.Context, rt *models.RevenueType) error
	Get(ctx context.Context, id uint) (*models.RevenueType, error)
	Update(ctx context.Context, rt *models.RevenueType) error
	Deactivate(ctx context.Context, id uint) error
	List(ctx context.Context, activeOnly bool) ([]models.RevenueType, error)
}

type service struct {
	repo repositories.RevenueTypeRepository
}

// NewService creates a new revenue type service.
func NewService(repo repositories.RevenueTypeRepository) Service {
	if repo == nil {
		panic("revenue type repository is required")
	}
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, rt *models.RevenueType) error {
	if err := validate(rt); err != nil {
		return err
	}
	rt.IsActive = true
	return s.repo.Create(rt)
}

func (s *service) Get(ctx context.Context, id uint) (*models.RevenueType, error) {
	return s.repo.GetByID(id)
}

func (s *service) Update(ctx context.Context, rt *models.RevenueType) error {
	if err := validate(rt); err != nil {
		return err
	}
	return s.repo.Update(rt)
}

func (s *service) Deactivate(ctx context.Context, id uint) error {
	rt, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	rt.IsActive = false
	return s.repo.Update(rt)
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]models.RevenueType, error) {
	if activeOnly {
		return s.repo.ListActive()
	}
	return s.repo.List()
}

func validate(rt *models.RevenueType) error {
	if rt == nil || strings.TrimSpace(rt.Name) == "" || rt.BaseAmount < 0 {
		return ErrInvalidInput
	}
	if !contains(validMethods, rt.CalculationMethod) {
		return ErrInvalidInput
	}
	if !contains(validFrequencies, rt.Frequency) {
		return ErrInvalidInput
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
