package validation

const (
	// Amount limits
	MinPaymentAmount    = 0.01
	MaxPaymentAmount    = 10000000.00
	MaxAssessmentAmount = 10000000.00

	// Assessment year bounds
	MinAssessmentYear = 2000
	MaxAssessmentYear = 2100

	// Password requirements
	MinPasswordLength = 8
	MaxPasswordLength = 72

	// String lengths
	MaxBusinessNameLength = 200
	MaxAddressLength      = 500
	MaxReferenceLength    = 100
)
