// Package payment raises assessments against shops and records collections,
// including online card payments through the gateway.
package payment

import (
	"context"
	"fmt"
	"strings"

	"revas/internal/models"
	"revas/internal/repositories"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Service defines payment and assessment operations.
type Service interface {
	// CreateAssessment raises a pending due amount against a shop.
	CreateAssessment(ctx context.Context, req AssessmentRequest, recordedBy uint) (*models.Payment, error)

	// RecordPayment records an offline collection (cash, transfer, POS)
	// against an assessment. Partial payments are accepted; a payment may
	// never exceed what is currently outstanding.
	RecordPayment(ctx context.Context, req RecordRequest, recordedBy uint) (*models.Payment, error)

	// PayOnline charges a card through the gateway and records the
	// collection on success.
	PayOnline(ctx context.Context, req OnlineRequest, recordedBy uint) (*models.Payment, error)

	Get(ctx context.Context, paymentID uint) (*models.Payment, error)
	ListByShop(ctx context.Context, shopID uint, offset, limit int) ([]models.Payment, int64, error)
}

type service struct {
	repo    repositories.PaymentRepository
	shops   repositories.ShopRepository
	gateway Gateway
	clock   clockwork.Clock
}

// NewService creates a new payment service. The gateway may be nil when
// online collections are disabled.
func NewService(
	repo repositories.PaymentRepository,
	shops repositories.ShopRepository,
	gateway Gateway,
	clock clockwork.Clock,
) Service {
	if repo == nil {
		panic("payment repository is required")
	}
	if shops == nil {
		panic("shop repository is required")
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &service{
		repo:    repo,
		shops:   shops,
		gateway: gateway,
		clock:   clock,
	}
}

func (s *service) CreateAssessment(ctx context.Context, req AssessmentRequest, recordedBy uint) (*models.Payment, error) {
	if req.AmountDue <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.DueDate.IsZero() {
		return nil, ErrInvalidDueDate
	}
	if _, err := s.shops.GetByID(req.ShopID); err != nil {
		return nil, err
	}

	p := &models.Payment{
		ShopID:         req.ShopID,
		RevenueTypeID:  req.RevenueTypeID,
		AssessmentYear: req.AssessmentYear,
		AmountDue:      req.AmountDue,
		DueDate:        req.DueDate,
		PaymentStatus:  models.PaymentStatusPending,
		ReceiptNumber:  newReceiptNumber(),
		RecordedBy:     recordedBy,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}
	return p, nil
}

func (s *service) RecordPayment(ctx context.Context, req RecordRequest, recordedBy uint) (*models.Payment, error) {
	return s.record(ctx, req.PaymentID, req.Amount, req.Method, "", recordedBy)
}

func (s *service) PayOnline(ctx context.Context, req OnlineRequest, recordedBy uint) (*models.Payment, error) {
	if s.gateway == nil {
		return nil, fmt.Errorf("online payments are not enabled")
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	p, err := s.repo.GetByID(req.PaymentID)
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Revenue payment %s (shop %d, %d)",
		p.ReceiptNumber, p.ShopID, p.AssessmentYear)
	reference, err := s.gateway.Charge(req.Amount, description, req.CardToken)
	if err != nil {
		return nil, err
	}

	return s.record(ctx, req.PaymentID, req.Amount, models.PaymentMethodOnline, reference, recordedBy)
}

func (s *service) Get(ctx context.Context, paymentID uint) (*models.Payment, error) {
	return s.repo.GetByID(paymentID)
}

func (s *service) ListByShop(ctx context.Context, shopID uint, offset, limit int) ([]models.Payment, int64, error) {
	return s.repo.ListByShop(shopID, offset, limit)
}

func (s *service) record(ctx context.Context, paymentID uint, amount float64, method, reference string, recordedBy uint) (*models.Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	p, err := s.repo.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if p.PaymentStatus == models.PaymentStatusPaid {
		return nil, ErrAlreadyPaid
	}

	// Immediate non-exceedance check: this update alone may not push the
	// collected amount past what is currently owed (due plus any accrued
	// penalty).
	owed := p.AmountDue + p.PenaltyAmount
	if p.AmountPaid+amount > owed {
		return nil, ErrOverpayment
	}

	p.AmountPaid += amount
	if method != "" {
		p.PaymentMethod = strings.ToLower(method)
	}
	if reference != "" {
		p.Reference = reference
	}
	p.RecordedBy = recordedBy

	now := s.clock.Now()
	if p.AmountPaid >= owed {
		p.PaymentStatus = models.PaymentStatusPaid
		p.PaymentDate = &now
	} else {
		p.PaymentStatus = models.PaymentStatusPartiallyPaid
	}

	if err := s.repo.Update(p); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return p, nil
}

func newReceiptNumber() string {
	return "RCP-" + strings.ToUpper(uuid.NewString()[:8])
}
