// Package permit issues and renews operating and signage permits, with fees
// quoted by the assessment calculator.
package permit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"revas/internal/models"
	"revas/internal/repositories"
	"revas/internal/services/assessment"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Service errors
var (
	ErrInvalidPermitType = errors.New("invalid permit type")
	ErrPermitNotActive   = errors.New("permit is not active")
)

// Default permit validity.
const validityMonths = 12

// IssueRequest asks for a new permit for a shop. SignageType is only
// consulted for signage permits.
type IssueRequest struct {
	ShopID      uint   `json:"shop_id"`
	PermitType  string `json:"permit_type"`
	SignageType string `json:"signage_type"`
}

// Service defines permit operations.
type Service interface {
	// Issue creates a permit for a shop, quoting the fee from the
	// assessment calculator.
	Issue(ctx context.Context, req IssueRequest, issuedBy uint) (*models.Permit, error)

	// Renew extends an existing permit for another validity period and
	// re-quotes the fee at current rates.
	Renew(ctx context.Context, permitID uint, renewedBy uint) (*models.Permit, error)

	Get(ctx context.Context, permitID uint) (*models.Permit, error)
	ListByShop(ctx context.Context, shopID uint) ([]models.Permit, error)

	// ExpireDue flips active permits past their expiry date to Expired.
	ExpireDue(ctx context.Context) (int64, error)
}

type service struct {
	repo  repositories.PermitRepository
	shops repositories.ShopRepository
	calc  *assessment.Calculator
	clock clockwork.Clock
}

// NewService creates a new permit service.
func NewService(
	repo repositories.PermitRepository,
	shops repositories.ShopRepository,
	calc *assessment.Calculator,
	clock clockwork.Clock,
) Service {
	if repo == nil {
		panic("permit repository is required")
	}
	if shops == nil {
		panic("shop repository is required")
	}
	if calc == nil {
		calc = assessment.NewCalculator(assessment.DefaultRateSchedule())
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &service{
		repo:  repo,
		shops: shops,
		calc:  calc,
		clock: clock,
	}
}

func (s *service) Issue(ctx context.Context, req IssueRequest, issuedBy uint) (*models.Permit, error) {
	shop, err := s.shops.GetByID(req.ShopID)
	if err != nil {
		return nil, err
	}

	size, err := assessment.ParseShopSize(shop.ShopSizeCategory)
	if err != nil {
		return nil, err
	}

	var fee float64
	permitType := strings.ToLower(strings.TrimSpace(req.PermitType))
	switch permitType {
	case models.PermitTypeOperation:
		fee, err = s.calc.AnnualPermitFee(size, shop.BusinessType, shop.Ward)
	case models.PermitTypeSignage:
		var signage assessment.SignageType
		signage, err = assessment.ParseSignageType(req.SignageType)
		if err == nil {
			fee, err = s.calc.SignagePermitFee(signage, size)
		}
	default:
		return nil, ErrInvalidPermitType
	}
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	permit := &models.Permit{
		ShopID:        req.ShopID,
		PermitType:    permitType,
		PermitNumber:  newPermitNumber(permitType),
		SignageType:   strings.ToLower(strings.TrimSpace(req.SignageType)),
		FeeAmount:     fee,
		IssueDate:     now,
		ExpiryDate:    now.AddDate(0, validityMonths, 0),
		PermitStatus:  models.PermitStatusActive,
		RenewalStatus: models.RenewalNotDue,
		IssuedBy:      issuedBy,
	}
	if err := s.repo.Create(permit); err != nil {
		return nil, fmt.Errorf("failed to create permit: %w", err)
	}
	return permit, nil
}

func (s *service) Renew(ctx context.Context, permitID uint, renewedBy uint) (*models.Permit, error) {
	permit, err := s.repo.GetByID(permitID)
	if err != nil {
		return nil, err
	}
	if permit.PermitStatus == models.PermitStatusSuspended {
		return nil, ErrPermitNotActive
	}

	shop, err := s.shops.GetByID(permit.ShopID)
	if err != nil {
		return nil, err
	}
	size, err := assessment.ParseShopSize(shop.ShopSizeCategory)
	if err != nil {
		return nil, err
	}

	// Re-quote at current rates; renewal is not locked to the fee paid at
	// first issue.
	var fee float64
	switch permit.PermitType {
	case models.PermitTypeOperation:
		fee, err = s.calc.AnnualPermitFee(size, shop.BusinessType, shop.Ward)
	case models.PermitTypeSignage:
		var signage assessment.SignageType
		signage, err = assessment.ParseSignageType(permit.SignageType)
		if err == nil {
			fee, err = s.calc.SignagePermitFee(signage, size)
		}
	default:
		return nil, ErrInvalidPermitType
	}
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	start := now
	if permit.ExpiryDate.After(now) {
		// Renewing early extends from the current expiry, not from today.
		start = permit.ExpiryDate
	}

	permit.FeeAmount = fee
	permit.IssueDate = now
	permit.ExpiryDate = start.AddDate(0, validityMonths, 0)
	permit.PermitStatus = models.PermitStatusActive
	permit.RenewalStatus = models.RenewalRenewed
	permit.IssuedBy = renewedBy

	if err := s.repo.Update(permit); err != nil {
		return nil, fmt.Errorf("failed to renew permit: %w", err)
	}
	return permit, nil
}

func (s *service) Get(ctx context.Context, permitID uint) (*models.Permit, error) {
	return s.repo.GetByID(permitID)
}

func (s *service) ListByShop(ctx context.Context, shopID uint) ([]models.Permit, error) {
	return s.repo.ListByShop(shopID)
}

func (s *service) ExpireDue(ctx context.Context) (int64, error) {
	return s.repo.MarkExpired(s.clock.Now())
}

func newPermitNumber(permitType string) string {
	prefix := "PMT"
	if permitType == models.PermitTypeSignage {
		prefix = "SGN"
	}
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}
