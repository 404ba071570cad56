package validation

import (
	"strings"

	"revas/internal/models"
	"revas/internal/services/payment"
	"revas/internal/services/permit"
	"revas/internal/services/shop"
)

// ShopRegistration validates a shop registration request
func (v *Validator) ShopRegistration(req *shop.RegisterRequest) {
	v.Required("shop_number", req.ShopNumber)
	v.Required("business_name", req.BusinessName)
	v.MaxLength("business_name", req.BusinessName, MaxBusinessNameLength)
	v.Required("business_type", req.BusinessType)
	v.Required("ward", req.Ward)
	v.Required("owner_name", req.OwnerName)
	v.MaxLength("address", req.Address, MaxAddressLength)
	v.OneOf("shop_size_category", strings.ToLower(strings.TrimSpace(req.ShopSize)),
		models.ShopSizeSmall, models.ShopSizeMedium, models.ShopSizeLarge)

	if req.OwnerEmail != "" {
		v.Email("owner_email", req.OwnerEmail)
	}
	if req.OwnerPhone != "" {
		v.Phone("owner_phone", req.OwnerPhone)
	}
}

// Assessment validates a new assessment request
func (v *Validator) Assessment(req *payment.AssessmentRequest) {
	v.Required("shop_id", req.ShopID)
	v.Required("revenue_type_id", req.RevenueTypeID)
	v.Range("assessment_year", float64(req.AssessmentYear), MinAssessmentYear, MaxAssessmentYear)
	v.Range("amount_due", req.AmountDue, MinPaymentAmount, MaxAssessmentAmount)
	v.Check(!req.DueDate.IsZero(), "due_date", "must be set")
}

// PaymentRecord validates money collected against an assessment
func (v *Validator) PaymentRecord(req *payment.RecordRequest) {
	v.Required("payment_id", req.PaymentID)
	v.Range("amount", req.Amount, MinPaymentAmount, MaxPaymentAmount)

	if req.Method != "" {
		v.OneOf("method", req.Method,
			models.PaymentMethodCash, models.PaymentMethodTransfer,
			models.PaymentMethodPOS, models.PaymentMethodOnline)
	}
}

// OnlinePayment validates a card payment request
func (v *Validator) OnlinePayment(req *payment.OnlineRequest) {
	v.Required("payment_id", req.PaymentID)
	v.Range("amount", req.Amount, MinPaymentAmount, MaxPaymentAmount)
	v.Required("card_token", req.CardToken)
	v.MaxLength("card_token", req.CardToken, MaxReferenceLength)
}

// PermitIssue validates a permit issuance request
func (v *Validator) PermitIssue(req *permit.IssueRequest) {
	v.Required("shop_id", req.ShopID)

	permitType := strings.ToLower(strings.TrimSpace(req.PermitType))
	v.OneOf("permit_type", permitType, models.PermitTypeOperation, models.PermitTypeSignage)
	if permitType == models.PermitTypeSignage {
		v.Required("signage_type", req.SignageType)
	}
}
