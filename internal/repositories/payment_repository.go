package repositories

import (
	"errors"
	"time"

	"revas/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrDuplicateReceipt = errors.New("receipt number already exists")
)

// PaymentFilter narrows a payment listing. Zero-valued fields are ignored.
type PaymentFilter struct {
	ShopID         uint
	AssessmentYear *int
	StatusIn       []string
	DueBefore      *time.Time
}

// PaymentRepository defines the interface for payment-related database operations
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id uint) (*models.Payment, error)
	Update(payment *models.Payment) error
	List(filter PaymentFilter) ([]models.Payment, error)
	ListByShop(shopID uint, offset, limit int) ([]models.Payment, int64, error)

	// UpdatePenalty writes an accrued penalty and status back to a payment
	// record. Plain read-modify-write; last write wins.
	UpdatePenalty(paymentID uint, penaltyAmount float64, status string) error
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new instance of PaymentRepository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *models.Payment) error {
	if payment.ReceiptNumber != "" {
		var count int64
		r.db.Model(&models.Payment{}).Where("receipt_number = ?", payment.ReceiptNumber).Count(&count)
		if count > 0 {
			return ErrDuplicateReceipt
		}
	}

	if err := r.db.Create(payment).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *paymentRepository) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPaymentNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &payment, nil
}

func (r *paymentRepository) Update(payment *models.Payment) error {
	if err := r.db.Save(payment).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *paymentRepository) List(filter PaymentFilter) ([]models.Payment, error) {
	query := r.db.Model(&models.Payment{})
	if filter.ShopID != 0 {
		query = query.Where("shop_id = ?", filter.ShopID)
	}
	if filter.AssessmentYear != nil {
		query = query.Where("assessment_year = ?", *filter.AssessmentYear)
	}
	if len(filter.StatusIn) > 0 {
		query = query.Where("payment_status IN ?", filter.StatusIn)
	}
	if filter.DueBefore != nil {
		query = query.Where("due_date < ?", *filter.DueBefore)
	}

	var payments []models.Payment
	if err := query.Order("due_date ASC").Find(&payments).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return payments, nil
}

func (r *paymentRepository) ListByShop(shopID uint, offset, limit int) ([]models.Payment, int64, error) {
	query := r.db.Model(&models.Payment{}).Where("shop_id = ?", shopID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}

	var payments []models.Payment
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&payments).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}
	return payments, total, nil
}

func (r *paymentRepository) UpdatePenalty(paymentID uint, penaltyAmount float64, status string) error {
	result := r.db.Model(&models.Payment{}).Where("id = ?", paymentID).
		Updates(map[string]interface{}{
			"penalty_amount": penaltyAmount,
			"payment_status": status,
		})
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
