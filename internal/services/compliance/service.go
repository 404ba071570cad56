// Package compliance derives a shop's compliance status from its current
// payment and permit records. Classification is a stateless re-evaluation:
// no history is kept, and successive calls may move a shop between any two
// statuses as the underlying records change.
package compliance

import (
	"context"
	"fmt"

	"revas/internal/models"
	"revas/internal/repositories"

	"github.com/jonboulle/clockwork"
)

// Service classifies shops and optionally persists the derived status.
type Service interface {
	// Classify derives the shop's compliance status from a snapshot of its
	// payment and permit records. Read-only.
	Classify(ctx context.Context, shopID uint) (string, error)

	// Refresh classifies the shop and writes the result to the shop record.
	Refresh(ctx context.Context, shopID uint) (string, error)
}

type service struct {
	shops    repositories.ShopRepository
	payments repositories.PaymentRepository
	permits  repositories.PermitRepository
	clock    clockwork.Clock
}

// NewService creates a new compliance service.
func NewService(
	shops repositories.ShopRepository,
	payments repositories.PaymentRepository,
	permits repositories.PermitRepository,
	clock clockwork.Clock,
) Service {
	if shops == nil {
		panic("shop repository is required")
	}
	if payments == nil {
		panic("payment repository is required")
	}
	if permits == nil {
		panic("permit repository is required")
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &service{
		shops:    shops,
		payments: payments,
		permits:  permits,
		clock:    clock,
	}
}

func (s *service) Classify(ctx context.Context, shopID uint) (string, error) {
	if _, err := s.shops.GetByID(shopID); err != nil {
		return "", err
	}

	now := s.clock.Now()

	overduePayments, err := s.payments.List(repositories.PaymentFilter{
		ShopID: shopID,
		StatusIn: []string{
			models.PaymentStatusPending,
			models.PaymentStatusPartiallyPaid,
			models.PaymentStatusOverdue,
		},
		DueBefore: &now,
	})
	if err != nil {
		return "", fmt.Errorf("failed to load payments: %w", err)
	}

	expiredPermits, err := s.permits.List(repositories.PermitFilter{
		ShopID:       shopID,
		ExpiryBefore: &now,
	})
	if err != nil {
		return "", fmt.Errorf("failed to load permits: %w", err)
	}

	hasPendingOverdue := len(overduePayments) > 0
	hasExpiredPermit := len(expiredPermits) > 0

	switch {
	case hasPendingOverdue && hasExpiredPermit:
		return models.ComplianceNonCompliant, nil
	case hasPendingOverdue:
		return models.ComplianceOverduePayments, nil
	case hasExpiredPermit:
		return models.ComplianceExpiredPermits, nil
	default:
		return models.ComplianceCompliant, nil
	}
}

func (s *service) Refresh(ctx context.Context, shopID uint) (string, error) {
	status, err := s.Classify(ctx, shopID)
	if err != nil {
		return "", err
	}
	if err := s.shops.UpdateComplianceStatus(shopID, status); err != nil {
		return "", fmt.Errorf("failed to persist compliance status: %w", err)
	}
	return status, nil
}
