package models

import "gorm.io/gorm"

// Calculation methods for revenue types
const (
	CalculationFixed      = "Fixed"
	CalculationPercentage = "Percentage"
	CalculationVariable   = "Variable"
)

// Billing frequencies for revenue types
const (
	FrequencyOneTime   = "One-time"
	FrequencyMonthly   = "Monthly"
	FrequencyQuarterly = "Quarterly"
	FrequencyAnnual    = "Annual"
)

// RevenueType describes a category of revenue collected by the council,
// e.g. business registration, annual permit, signage permit.
type RevenueType struct {
	gorm.Model
	Name              string  `gorm:"uniqueIndex;not null"`
	Description       string
	BaseAmount        float64 `gorm:"not null"`
	CalculationMethod string  `gorm:"default:'Fixed'"`
	Frequency         string  `gorm:"default:'Annual'"`
	IsActive          bool    `gorm:"default:true"`
}
