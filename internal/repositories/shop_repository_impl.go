package repositories

import (
	"context"
	"log"

	"revas/internal/models"
	"revas/internal/repositories/cache"

	"gorm.io/gorm"
)

type shopRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewShopRepository creates a new instance of ShopRepository
func NewShopRepository(db *gorm.DB, cache *cache.CacheService) ShopRepository {
	return &shopRepository{
		db:    db,
		cache: cache,
	}
}

func (r *shopRepository) Create(shop *models.Shop) error {
	var count int64
	r.db.Model(&models.Shop{}).Where("shop_number = ?", shop.ShopNumber).Count(&count)
	if count > 0 {
		return ErrShopNumberTaken
	}

	if err := r.db.Create(shop).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *shopRepository) GetByID(id uint) (*models.Shop, error) {
	// Try cache first
	if r.cache != nil {
		key := r.cache.GenerateKey("shop", "id", id)
		if shop, err := r.cache.GetShop(context.Background(), key); err == nil {
			return shop, nil
		}
	}

	var shop models.Shop
	if err := r.db.First(&shop, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrShopNotFound
		}
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.CacheShop(context.Background(), &shop); err != nil {
			log.Printf("Failed to cache shop %d: %v", shop.ID, err)
		}
	}
	return &shop, nil
}

func (r *shopRepository) GetByShopNumber(shopNumber string) (*models.Shop, error) {
	var shop models.Shop
	result := r.db.Where("shop_number = ?", shopNumber).First(&shop)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, ErrShopNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &shop, nil
}

func (r *shopRepository) Update(shop *models.Shop) error {
	if err := r.db.Save(shop).Error; err != nil {
		return ErrDatabaseOperation
	}
	r.invalidate(shop.ID)
	return nil
}

func (r *shopRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Shop{}, id)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrShopNotFound
	}
	r.invalidate(id)
	return nil
}

func (r *shopRepository) List(filter ShopFilter, offset, limit int) ([]models.Shop, int64, error) {
	query := r.db.Model(&models.Shop{})
	if filter.Ward != "" {
		query = query.Where("ward = ?", filter.Ward)
	}
	if filter.BusinessType != "" {
		query = query.Where("business_type = ?", filter.BusinessType)
	}
	if filter.ComplianceStatus != "" {
		query = query.Where("compliance_status = ?", filter.ComplianceStatus)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}

	var shops []models.Shop
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&shops).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}
	return shops, total, nil
}

func (r *shopRepository) UpdateComplianceStatus(shopID uint, status string) error {
	result := r.db.Model(&models.Shop{}).Where("id = ?", shopID).
		Update("compliance_status", status)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrShopNotFound
	}
	r.invalidate(shopID)
	return nil
}

func (r *shopRepository) invalidate(shopID uint) {
	if r.cache == nil {
		return
	}
	if err := r.cache.InvalidateShop(context.Background(), shopID); err != nil {
		log.Printf("Warning: failed to invalidate shop cache %d: %v", shopID, err)
	}
}
