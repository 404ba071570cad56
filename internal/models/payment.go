package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment statuses
const (
	PaymentStatusPaid          = "paid"
	PaymentStatusPartiallyPaid = "partially_paid"
	PaymentStatusPending       = "pending"
	PaymentStatusOverdue       = "overdue"
)

// Payment methods
const (
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "bank_transfer"
	PaymentMethodPOS      = "pos"
	PaymentMethodOnline   = "online"
)

// Payment is an assessment raised against a shop for a fiscal year and the
// amounts collected against it. PenaltyAmount is accrued by the assessment
// service's penalty workflow and is mutable.
type Payment struct {
	gorm.Model
	ShopID         uint `gorm:"index;not null"`
	RevenueTypeID  uint `gorm:"index"`
	AssessmentYear int  `gorm:"index;not null"`
	AmountDue      float64
	AmountPaid     float64 `gorm:"default:0"`
	PenaltyAmount  float64 `gorm:"default:0"`
	DueDate        time.Time
	PaymentDate    *time.Time
	PaymentMethod  string `gorm:"default:'cash'"`
	PaymentStatus  string `gorm:"default:'pending'"`
	ReceiptNumber  string `gorm:"uniqueIndex"`
	Reference      string
	RecordedBy     uint
}

// Outstanding returns what is still owed on this assessment, before penalties.
func (p *Payment) Outstanding() float64 {
	return p.AmountDue - p.AmountPaid
}
