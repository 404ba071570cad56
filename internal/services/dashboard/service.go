package dashboard

import (
	"context"
	"fmt"
	"revas/internal/models"
	"time"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

type Service interface {
	GetRevenueSummary(ctx context.Context, year int) (*RevenueSummary, error)
	GetComplianceBreakdown(ctx context.Context) (map[string]int64, error)
	GetCollectionsOverTime(ctx context.Context, startDate, endDate time.Time) (map[string]float64, error)
}

type service struct {
	db    *gorm.DB
	clock clockwork.Clock
}

// RevenueSummary aggregates collections for a single assessment year.
type RevenueSummary struct {
	Year                int                `json:"year"`
	TotalAssessed       float64            `json:"total_assessed"`
	TotalCollected      float64            `json:"total_collected"`
	TotalPenalties      float64            `json:"total_penalties"`
	TotalOutstanding    float64            `json:"total_outstanding"`
	PaymentCount        int64              `json:"payment_count"`
	CollectionsByMethod map[string]float64 `json:"collections_by_method"`
	PermitsExpiringSoon int64              `json:"permits_expiring_soon"`
	RecentPayments      []models.Payment   `json:"recent_payments"`
}

func NewService(db *gorm.DB, clock clockwork.Clock) Service {
	if db == nil {
		panic("database handle is required")
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &service{db: db, clock: clock}
}

func (s *service) GetRevenueSummary(ctx context.Context, year int) (*RevenueSummary, error) {
	summary := &RevenueSummary{Year: year, CollectionsByMethod: make(map[string]float64)}

	err := s.db.WithContext(ctx).Model(&models.Payment{}).
		Where("assessment_year = ?", year).
		Select("COUNT(*) as payment_count, " +
			"COALESCE(SUM(amount_due), 0) as total_assessed, " +
			"COALESCE(SUM(amount_paid), 0) as total_collected, " +
			"COALESCE(SUM(penalty_amount), 0) as total_penalties").
		Row().Scan(&summary.PaymentCount, &summary.TotalAssessed,
		&summary.TotalCollected, &summary.TotalPenalties)
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue totals: %w", err)
	}
	summary.TotalOutstanding = summary.TotalAssessed + summary.TotalPenalties - summary.TotalCollected

	rows, err := s.db.WithContext(ctx).Model(&models.Payment{}).
		Select("payment_method, COALESCE(SUM(amount_paid), 0) as collected").
		Where("assessment_year = ? AND payment_status IN ?",
			year, []string{models.PaymentStatusPaid, models.PaymentStatusPartiallyPaid}).
		Group("payment_method").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to get collections by method: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var method string
		var collected float64
		if err := rows.Scan(&method, &collected); err != nil {
			return nil, err
		}
		summary.CollectionsByMethod[method] = collected
	}

	now := s.clock.Now()
	err = s.db.WithContext(ctx).Model(&models.Permit{}).
		Where("permit_status = ? AND expiry_date BETWEEN ? AND ?",
			models.PermitStatusActive, now, now.AddDate(0, 1, 0)).
		Count(&summary.PermitsExpiringSoon).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count expiring permits: %w", err)
	}

	err = s.db.WithContext(ctx).
		Where("assessment_year = ? AND payment_status IN ?",
			year, []string{models.PaymentStatusPaid, models.PaymentStatusPartiallyPaid}).
		Order("updated_at DESC").
		Limit(10).
		Find(&summary.RecentPayments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent payments: %w", err)
	}

	return summary, nil
}

func (s *service) GetComplianceBreakdown(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.WithContext(ctx).Model(&models.Shop{}).
		Select("compliance_status, COUNT(*) as count").
		Where("status = ?", models.ShopStatusActive).
		Group("compliance_status").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to get compliance breakdown: %w", err)
	}
	defer rows.Close()

	breakdown := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		breakdown[status] = count
	}
	return breakdown, nil
}

func (s *service) GetCollectionsOverTime(ctx context.Context, startDate, endDate time.Time) (map[string]float64, error) {
	rows, err := s.db.WithContext(ctx).Model(&models.Payment{}).
		Select("DATE(payment_date) as date, COALESCE(SUM(amount_paid), 0) as collected").
		Where("payment_date IS NOT NULL AND payment_date BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(payment_date)").
		Order("date").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to get collections over time: %w", err)
	}
	defer rows.Close()

	collections := make(map[string]float64)
	for rows.Next() {
		var date string
		var collected float64
		if err := rows.Scan(&date, &collected); err != nil {
			return nil, err
		}
		collections[date] = collected
	}
	return collections, nil
}
