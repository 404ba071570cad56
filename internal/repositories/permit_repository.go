package repositories

import (
	"errors"
	"time"

	"revas/internal/models"

	"gorm.io/gorm"
)

var ErrPermitNotFound = errors.New("permit not found")

// PermitFilter narrows a permit listing. Zero-valued fields are ignored.
type PermitFilter struct {
	ShopID       uint
	PermitType   string
	StatusIn     []string
	ExpiryBefore *time.Time
}

// PermitRepository defines the interface for permit-related database operations
type PermitRepository interface {
	Create(permit *models.Permit) error
	GetByID(id uint) (*models.Permit, error)
	Update(permit *models.Permit) error
	List(filter PermitFilter) ([]models.Permit, error)
	ListByShop(shopID uint) ([]models.Permit, error)

	// MarkExpired flips active permits past their expiry date to Expired
	// and returns how many rows changed.
	MarkExpired(before time.Time) (int64, error)
}

type permitRepository struct {
	db *gorm.DB
}

// NewPermitRepository creates a new instance of PermitRepository
func NewPermitRepository(db *gorm.DB) PermitRepository {
	return &permitRepository{db: db}
}

func (r *permitRepository) Create(permit *models.Permit) error {
	if err := r.db.Create(permit).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *permitRepository) GetByID(id uint) (*models.Permit, error) {
	var permit models.Permit
	if err := r.db.First(&permit, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPermitNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &permit, nil
}

func (r *permitRepository) Update(permit *models.Permit) error {
	if err := r.db.Save(permit).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *permitRepository) List(filter PermitFilter) ([]models.Permit, error) {
	query := r.db.Model(&models.Permit{})
	if filter.ShopID != 0 {
		query = query.Where("shop_id = ?", filter.ShopID)
	}
	if filter.PermitType != "" {
		query = query.Where("permit_type = ?", filter.PermitType)
	}
	if len(filter.StatusIn) > 0 {
		query = query.Where("permit_status IN ?", filter.StatusIn)
	}
	if filter.ExpiryBefore != nil {
		query = query.Where("expiry_date < ?", *filter.ExpiryBefore)
	}

	var permits []models.Permit
	if err := query.Order("expiry_date ASC").Find(&permits).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return permits, nil
}

func (r *permitRepository) ListByShop(shopID uint) ([]models.Permit, error) {
	return r.List(PermitFilter{ShopID: shopID})
}

func (r *permitRepository) MarkExpired(before time.Time) (int64, error) {
	result := r.db.Model(&models.Permit{}).
		Where("permit_status = ? AND expiry_date < ?", models.PermitStatusActive, before).
		Update("permit_status", models.PermitStatusExpired)
	if result.Error != nil {
		return 0, ErrDatabaseOperation
	}
	return result.RowsAffected, nil
}
