package assessment

import (
	"context"
	"fmt"
	"math"
	"time"

	"revas/internal/models"
	"revas/internal/repositories"

	"github.com/jonboulle/clockwork"
)

type service struct {
	shops        repositories.ShopRepository
	payments     repositories.PaymentRepository
	revenueTypes repositories.RevenueTypeRepository
	calc         *Calculator
	clock        clockwork.Clock
	metrics      MetricsCollector
}

// NewService creates a new assessment service.
func NewService(
	shops repositories.ShopRepository,
	payments repositories.PaymentRepository,
	revenueTypes repositories.RevenueTypeRepository,
	calc *Calculator,
	clock clockwork.Clock,
	metrics MetricsCollector,
) Service {
	if shops == nil {
		panic("shop repository is required")
	}
	if payments == nil {
		panic("payment repository is required")
	}
	if revenueTypes == nil {
		panic("revenue type repository is required")
	}
	if calc == nil {
		calc = NewCalculator(DefaultRateSchedule())
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		shops:        shops,
		payments:     payments,
		revenueTypes: revenueTypes,
		calc:         calc,
		clock:        clock,
		metrics:      metrics,
	}
}

func (s *service) Calculator() *Calculator {
	return s.calc
}

func (s *service) Fees(ctx context.Context, shopID uint) (*FeeBreakdown, error) {
	shop, err := s.shops.GetByID(shopID)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.annualFeesFor(shop)
	if err != nil {
		return nil, err
	}
	return &breakdown, nil
}

func (s *service) TotalDue(ctx context.Context, shopID uint, year int) (*TotalDueResult, error) {
	if year <= 0 {
		return nil, ErrInvalidYear
	}

	shop, err := s.shops.GetByID(shopID)
	if err != nil {
		s.metrics.RecordError("total_due", "shop_lookup")
		return nil, err
	}

	// The revenue type table is advisory here: current fee formulas are
	// driven by shop attributes, but a failing read still aborts the run
	// rather than producing a figure from a half-available data store.
	if _, err := s.revenueTypes.ListActive(); err != nil {
		s.metrics.RecordError("total_due", "revenue_types")
		return nil, fmt.Errorf("failed to load revenue types: %w", err)
	}

	fees, err := s.annualFeesFor(shop)
	if err != nil {
		s.metrics.RecordError("total_due", "calculator")
		return nil, err
	}

	payments, err := s.payments.List(repositories.PaymentFilter{
		ShopID:         shopID,
		AssessmentYear: &year,
		StatusIn: []string{
			models.PaymentStatusPaid,
			models.PaymentStatusPartiallyPaid,
			models.PaymentStatusPending,
			models.PaymentStatusOverdue,
		},
	})
	if err != nil {
		s.metrics.RecordError("total_due", "payment_lookup")
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	now := s.clock.Now()

	var totalPaid, totalPenalties float64
	for _, p := range payments {
		switch p.PaymentStatus {
		case models.PaymentStatusPaid, models.PaymentStatusPartiallyPaid:
			totalPaid += p.AmountPaid
		}

		if !accruesPenalty(&p, now) {
			continue
		}
		penalty, err := s.calc.Penalty(p.Outstanding(), daysOverdue(p.DueDate, now))
		if err != nil {
			s.metrics.RecordError("total_due", "penalty")
			return nil, err
		}
		totalPenalties += penalty
	}

	outstanding := fees.Total - totalPaid + totalPenalties

	result := &TotalDueResult{
		ShopID:         shopID,
		AssessmentYear: year,
		Fees:           fees,
		TotalPaid:      totalPaid,
		Penalties:      totalPenalties,
		TotalDue:       math.Round(outstanding),
	}
	s.metrics.RecordAssessment(shopID, result.TotalDue)
	return result, nil
}

func (s *service) ApplyPenalties(ctx context.Context, shopID uint, year int) (int, error) {
	if year <= 0 {
		return 0, ErrInvalidYear
	}

	// Existence check so a bad shop ID fails loudly instead of silently
	// updating nothing.
	if _, err := s.shops.GetByID(shopID); err != nil {
		return 0, err
	}

	payments, err := s.payments.List(repositories.PaymentFilter{
		ShopID:         shopID,
		AssessmentYear: &year,
		StatusIn: []string{
			models.PaymentStatusPending,
			models.PaymentStatusPartiallyPaid,
			models.PaymentStatusOverdue,
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to load payments: %w", err)
	}

	now := s.clock.Now()
	updated := 0
	for _, p := range payments {
		if !accruesPenalty(&p, now) {
			continue
		}
		penalty, err := s.calc.Penalty(p.Outstanding(), daysOverdue(p.DueDate, now))
		if err != nil {
			return updated, err
		}

		status := p.PaymentStatus
		if status == models.PaymentStatusPending {
			status = models.PaymentStatusOverdue
		}
		if err := s.payments.UpdatePenalty(p.ID, penalty, status); err != nil {
			return updated, fmt.Errorf("failed to update payment %d: %w", p.ID, err)
		}
		s.metrics.RecordPenalty(penalty)
		updated++
	}
	return updated, nil
}

func (s *service) annualFeesFor(shop *models.Shop) (FeeBreakdown, error) {
	size, err := ParseShopSize(shop.ShopSizeCategory)
	if err != nil {
		return FeeBreakdown{}, err
	}
	return s.calc.AnnualFees(size, shop.BusinessType, shop.Ward)
}

// accruesPenalty reports whether a payment record attracts a penalty at the
// given instant: any partial payment, or an unpaid assessment past its due
// date. Overdue records stay eligible so re-runs keep the accrual current.
func accruesPenalty(p *models.Payment, now time.Time) bool {
	switch p.PaymentStatus {
	case models.PaymentStatusPartiallyPaid:
		return daysOverdue(p.DueDate, now) > 0
	case models.PaymentStatusPending, models.PaymentStatusOverdue:
		return p.DueDate.Before(now)
	default:
		return false
	}
}

// daysOverdue returns whole days elapsed since the due date, rounded up,
// floored at zero.
func daysOverdue(dueDate, now time.Time) int {
	if !dueDate.Before(now) {
		return 0
	}
	return int(math.Ceil(now.Sub(dueDate).Hours() / 24))
}
