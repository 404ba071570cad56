// Package shop manages shop registration and records for the council's
// revenue roll.
package shop

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"revas/internal/models"
	"revas/internal/repositories"
	"revas/internal/services/assessment"
	"revas/internal/services/compliance"
)

// Service errors
var (
	ErrShopInactive = errors.New("shop is not active")
	ErrInvalidInput = errors.New("invalid shop input")
)

// RegisterRequest carries the fields needed to put a shop on the roll.
type RegisterRequest struct {
	ShopNumber   string `json:"shop_number"`
	BusinessName string `json:"business_name"`
	BusinessType string `json:"business_type"`
	ShopSize     string `json:"shop_size_category"`
	Ward         string `json:"ward"`
	Address      string `json:"address"`
	OwnerName    string `json:"owner_name"`
	OwnerPhone   string `json:"owner_phone"`
	OwnerEmail   string `json:"owner_email"`
}

// Service defines shop management operations.
type Service interface {
	Register(ctx context.Context, req RegisterRequest, registeredBy uint) (*models.Shop, error)
	Get(ctx context.Context, shopID uint) (*models.Shop, error)
	Update(ctx context.Context, shop *models.Shop) error
	List(ctx context.Context, filter repositories.ShopFilter, offset, limit int) ([]models.Shop, int64, error)
	Deactivate(ctx context.Context, shopID uint) error
}

type service struct {
	repo       repositories.ShopRepository
	compliance compliance.Service
}

// NewService creates a new shop service.
func NewService(repo repositories.ShopRepository, compliance compliance.Service) Service {
	if repo == nil {
		panic("shop repository is required")
	}
	if compliance == nil {
		panic("compliance service is required")
	}
	return &service{repo: repo, compliance: compliance}
}

func (s *service) Register(ctx context.Context, req RegisterRequest, registeredBy uint) (*models.Shop, error) {
	// Size category is parsed once here so everything downstream works
	// with a validated value.
	size, err := assessment.ParseShopSize(req.ShopSize)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.BusinessType) == "" {
		return nil, assessment.ErrMissingBusinessType
	}
	if strings.TrimSpace(req.Ward) == "" {
		return nil, assessment.ErrMissingWard
	}
	if strings.TrimSpace(req.ShopNumber) == "" || strings.TrimSpace(req.BusinessName) == "" ||
		strings.TrimSpace(req.OwnerName) == "" {
		return nil, ErrInvalidInput
	}

	shop := &models.Shop{
		ShopNumber:       strings.TrimSpace(req.ShopNumber),
		BusinessName:     strings.TrimSpace(req.BusinessName),
		BusinessType:     strings.ToLower(strings.TrimSpace(req.BusinessType)),
		ShopSizeCategory: string(size),
		Ward:             strings.TrimSpace(req.Ward),
		Address:          strings.TrimSpace(req.Address),
		OwnerName:        strings.TrimSpace(req.OwnerName),
		OwnerPhone:       strings.TrimSpace(req.OwnerPhone),
		OwnerEmail:       strings.TrimSpace(req.OwnerEmail),
		ComplianceStatus: models.ComplianceNew,
		Status:           models.ShopStatusActive,
		RegisteredBy:     registeredBy,
	}

	if err := s.repo.Create(shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *service) Get(ctx context.Context, shopID uint) (*models.Shop, error) {
	return s.repo.GetByID(shopID)
}

func (s *service) Update(ctx context.Context, shop *models.Shop) error {
	if shop == nil {
		return ErrInvalidInput
	}
	if _, err := assessment.ParseShopSize(shop.ShopSizeCategory); err != nil {
		return err
	}
	if err := s.repo.Update(shop); err != nil {
		return fmt.Errorf("failed to update shop: %w", err)
	}
	s.refreshCompliance(ctx, shop.ID)
	return nil
}

func (s *service) List(ctx context.Context, filter repositories.ShopFilter, offset, limit int) ([]models.Shop, int64, error) {
	return s.repo.List(filter, offset, limit)
}

func (s *service) Deactivate(ctx context.Context, shopID uint) error {
	shop, err := s.repo.GetByID(shopID)
	if err != nil {
		return err
	}
	shop.Status = models.ShopStatusInactive
	if err := s.repo.Update(shop); err != nil {
		return fmt.Errorf("failed to deactivate shop: %w", err)
	}
	s.refreshCompliance(ctx, shopID)
	return nil
}

// refreshCompliance reclassifies a shop after a mutation. The write already
// succeeded, so a classification failure is logged rather than returned.
func (s *service) refreshCompliance(ctx context.Context, shopID uint) {
	if _, err := s.compliance.Refresh(ctx, shopID); err != nil {
		log.Printf("compliance refresh for shop %d failed: %v", shopID, err)
	}
}
