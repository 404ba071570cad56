package repositories

import (
	"errors"

	"revas/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRevenueTypeNotFound = errors.New("revenue type not found")
	ErrRevenueTypeTaken    = errors.New("revenue type name already exists")
)

// RevenueTypeRepository defines the interface for revenue type database operations
type RevenueTypeRepository interface {
	Create(rt *models.RevenueType) error
	GetByID(id uint) (*models.RevenueType, error)
	Update(rt *models.RevenueType) error
	Delete(id uint) error
	List() ([]models.RevenueType, error)
	ListActive() ([]models.RevenueType, error)
}

type revenueTypeRepository struct {
	db *gorm.DB
}

// NewRevenueTypeRepository creates a new instance of RevenueTypeRepository
func NewRevenueTypeRepository(db *gorm.DB) RevenueTypeRepository {
	return &revenueTypeRepository{db: db}
}

func (r *revenueTypeRepository) Create(rt *models.RevenueType) error {
	var count int64
	r.db.Model(&models.RevenueType{}).Where("name = ?", rt.Name).Count(&count)
	if count > 0 {
		return ErrRevenueTypeTaken
	}
	if err := r.db.Create(rt).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *revenueTypeRepository) GetByID(id uint) (*models.RevenueType, error) {
	var rt models.RevenueType
	if err := r.db.First(&rt, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRevenueTypeNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &rt, nil
}

func (r *revenueTypeRepository) Update(rt *models.RevenueType) error {
	if err := r.db.Save(rt).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *revenueTypeRepository) Delete(id uint) error {
	result := r.db.Delete(&models.RevenueType{}, id)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrRevenueTypeNotFound
	}
	return nil
}

func (r *revenueTypeRepository) List() ([]models.RevenueType, error) {
	var types []models.RevenueType
	if err := r.db.Order("name ASC").Find(&types).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return types, nil
}

func (r *revenueTypeRepository) ListActive() ([]models.RevenueType, error) {
	var types []models.RevenueType
	if err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&types).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return types, nil
}
