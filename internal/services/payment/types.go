package payment

import "time"

// AssessmentRequest raises a new assessment (a due amount) against a shop
// for a fiscal year.
type AssessmentRequest struct {
	ShopID         uint      `json:"shop_id"`
	RevenueTypeID  uint      `json:"revenue_type_id"`
	AssessmentYear int       `json:"assessment_year"`
	AmountDue      float64   `json:"amount_due"`
	DueDate        time.Time `json:"due_date"`
}

// RecordRequest records money collected against an existing assessment.
type RecordRequest struct {
	PaymentID uint    `json:"payment_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
}

// OnlineRequest pays an assessment through the card gateway.
type OnlineRequest struct {
	PaymentID uint    `json:"payment_id"`
	Amount    float64 `json:"amount"`
	CardToken string  `json:"card_token"`
}
