package models

import (
	"time"

	"gorm.io/gorm"
)

// Permit statuses
const (
	PermitStatusActive    = "Active"
	PermitStatusExpired   = "Expired"
	PermitStatusSuspended = "Suspended"
	PermitStatusPending   = "Pending"
)

// Permit types
const (
	PermitTypeOperation = "annual_operation"
	PermitTypeSignage   = "signage"
)

// Renewal statuses
const (
	RenewalNotDue  = "not_due"
	RenewalDue     = "due"
	RenewalRenewed = "renewed"
)

type Permit struct {
	gorm.Model
	ShopID        uint   `gorm:"index;not null"`
	PermitType    string `gorm:"not null"`
	PermitNumber  string `gorm:"uniqueIndex;not null"`
	SignageType   string
	FeeAmount     float64
	IssueDate     time.Time
	ExpiryDate    time.Time `gorm:"index"`
	PermitStatus  string    `gorm:"default:'Pending'"`
	RenewalStatus string    `gorm:"default:'not_due'"`
	IssuedBy      uint
}

// Expired reports whether the permit's expiry date has passed at the
// given instant.
func (p *Permit) Expired(at time.Time) bool {
	return p.ExpiryDate.Before(at)
}
