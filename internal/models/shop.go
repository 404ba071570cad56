package models

import (
	"gorm.io/gorm"
)

// Shop size categories used by the assessment calculators.
const (
	ShopSizeSmall  = "small"
	ShopSizeMedium = "medium"
	ShopSizeLarge  = "large"
)

// Compliance statuses a shop can carry. The classifier derives the first
// four; "New" and "Defaulter" are assigned administratively.
const (
	ComplianceCompliant       = "Compliant"
	ComplianceOverduePayments = "Overdue Payments"
	ComplianceExpiredPermits  = "Expired Permits"
	ComplianceNonCompliant    = "Non-Compliant"
	ComplianceNew             = "New"
	ComplianceDefaulter       = "Defaulter"
)

// Operational statuses for a shop record.
const (
	ShopStatusActive   = "active"
	ShopStatusInactive = "inactive"
)

type Shop struct {
	gorm.Model
	ShopNumber       string `gorm:"uniqueIndex;not null"`
	BusinessName     string `gorm:"not null"`
	BusinessType     string `gorm:"not null"`
	ShopSizeCategory string `gorm:"default:'small'"`
	Ward             string `gorm:"not null"`
	Address          string
	OwnerName        string `gorm:"not null"`
	OwnerPhone       string
	OwnerEmail       string
	ComplianceStatus string `gorm:"default:'New'"`
	Status           string `gorm:"default:'active'"`
	RegisteredBy     uint
}
