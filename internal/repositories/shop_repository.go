package repositories

import (
	"errors"

	"revas/internal/models"
)

var (
	ErrShopNotFound      = errors.New("shop not found")
	ErrShopNumberTaken   = errors.New("shop number already registered")
	ErrInvalidShopData   = errors.New("invalid shop data")
)

// ShopFilter narrows shop listings.
type ShopFilter struct {
	Ward             string
	BusinessType     string
	ComplianceStatus string
	Status           string
}

// ShopRepository defines the interface for shop-related database operations
type ShopRepository interface {
	// Create registers a new shop
	Create(shop *models.Shop) error

	// GetByID retrieves a shop by its ID
	GetByID(id uint) (*models.Shop, error)

	// GetByShopNumber retrieves a shop by its registration number
	GetByShopNumber(shopNumber string) (*models.Shop, error)

	// Update updates an existing shop record
	Update(shop *models.Shop) error

	// Delete soft-deletes a shop
	Delete(id uint) error

	// List retrieves shops matching the filter with pagination
	List(filter ShopFilter, offset, limit int) ([]models.Shop, int64, error)

	// UpdateComplianceStatus persists a derived compliance status
	UpdateComplianceStatus(shopID uint, status string) error
}
