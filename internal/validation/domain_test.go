package validation

import (
	"testing"
	"time"

	"revas/internal/models"
	"revas/internal/services/payment"
	"revas/internal/services/permit"
	"revas/internal/services/shop"

	"github.com/stretchr/testify/assert"
)

func validRegistration() shop.RegisterRequest {
	return shop.RegisterRequest{
		ShopNumber:   "EFF-042",
		BusinessName: "Mama Peace Stores",
		BusinessType: "boutique",
		ShopSize:     "small",
		Ward:         "Effurun",
		OwnerName:    "P. Oghenekaro",
		OwnerPhone:   "+2348012345678",
		OwnerEmail:   "peace@example.com",
	}
}

func TestValidator_ShopRegistration(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := validRegistration()
		v := New()
		v.ShopRegistration(&req)
		assert.True(t, v.Valid())
	})

	t.Run("missing required fields", func(t *testing.T) {
		req := shop.RegisterRequest{ShopSize: "small"}
		v := New()
		v.ShopRegistration(&req)

		assert.False(t, v.Valid())
		assert.Contains(t, v.Errors, "shop_number")
		assert.Contains(t, v.Errors, "business_name")
		assert.Contains(t, v.Errors, "ward")
		assert.Contains(t, v.Errors, "owner_name")
	})

	t.Run("unknown size category", func(t *testing.T) {
		req := validRegistration()
		req.ShopSize = "huge"
		v := New()
		v.ShopRegistration(&req)

		assert.Contains(t, v.Errors, "shop_size_category")
	})

	t.Run("size category is normalized before matching", func(t *testing.T) {
		req := validRegistration()
		req.ShopSize = "  Medium "
		v := New()
		v.ShopRegistration(&req)

		assert.True(t, v.Valid())
	})

	t.Run("bad contact details", func(t *testing.T) {
		req := validRegistration()
		req.OwnerEmail = "not-an-email"
		req.OwnerPhone = "abc"
		v := New()
		v.ShopRegistration(&req)

		assert.Contains(t, v.Errors, "owner_email")
		assert.Contains(t, v.Errors, "owner_phone")
	})
}

func TestValidator_Assessment(t *testing.T) {
	valid := payment.AssessmentRequest{
		ShopID:         1,
		RevenueTypeID:  2,
		AssessmentYear: 2025,
		AmountDue:      10000,
		DueDate:        time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	t.Run("valid request passes", func(t *testing.T) {
		req := valid
		v := New()
		v.Assessment(&req)
		assert.True(t, v.Valid())
	})

	t.Run("year zero is rejected", func(t *testing.T) {
		req := valid
		req.AssessmentYear = 0
		v := New()
		v.Assessment(&req)

		assert.Contains(t, v.Errors, "assessment_year")
	})

	t.Run("year outside the bounds", func(t *testing.T) {
		req := valid
		req.AssessmentYear = 2150
		v := New()
		v.Assessment(&req)

		assert.Contains(t, v.Errors, "assessment_year")
	})

	t.Run("zero amount and missing due date", func(t *testing.T) {
		req := valid
		req.AmountDue = 0
		req.DueDate = time.Time{}
		v := New()
		v.Assessment(&req)

		assert.Contains(t, v.Errors, "amount_due")
		assert.Contains(t, v.Errors, "due_date")
	})
}

func TestValidator_PaymentRecord(t *testing.T) {
	t.Run("unknown method is rejected", func(t *testing.T) {
		v := New()
		v.PaymentRecord(&payment.RecordRequest{
			PaymentID: 3,
			Amount:    500,
			Method:    "cowries",
		})

		assert.Contains(t, v.Errors, "method")
	})

	t.Run("empty method falls back to the model default", func(t *testing.T) {
		v := New()
		v.PaymentRecord(&payment.RecordRequest{PaymentID: 3, Amount: 500})
		assert.True(t, v.Valid())
	})
}

func TestValidator_PermitIssue(t *testing.T) {
	t.Run("signage permits need a signage type", func(t *testing.T) {
		v := New()
		v.PermitIssue(&permit.IssueRequest{
			ShopID:     1,
			PermitType: models.PermitTypeSignage,
		})

		assert.Contains(t, v.Errors, "signage_type")
	})

	t.Run("operating permit passes", func(t *testing.T) {
		v := New()
		v.PermitIssue(&permit.IssueRequest{
			ShopID:     1,
			PermitType: models.PermitTypeOperation,
		})

		assert.True(t, v.Valid())
	})

	t.Run("unknown permit type", func(t *testing.T) {
		v := New()
		v.PermitIssue(&permit.IssueRequest{ShopID: 1, PermitType: "hawking"})
		assert.Contains(t, v.Errors, "permit_type")
	})
}

func TestHasSpecialChar(t *testing.T) {
	assert.True(t, HasSpecialChar("S3cret!pass"))
	assert.False(t, HasSpecialChar("plainpassword1"))
}
