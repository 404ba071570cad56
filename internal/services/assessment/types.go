package assessment

import (
	"strings"
)

// ShopSize is the closed set of shop size categories. Raw strings from the
// API or the database are parsed once with ParseShopSize; internal logic
// never re-validates free-form input.
type ShopSize string

const (
	SizeSmall  ShopSize = "small"
	SizeMedium ShopSize = "medium"
	SizeLarge  ShopSize = "large"
)

// ParseShopSize converts a raw size string (case-insensitive) into a
// ShopSize. Unrecognized values fail with ErrInvalidShopSize.
func ParseShopSize(raw string) (ShopSize, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "small":
		return SizeSmall, nil
	case "medium":
		return SizeMedium, nil
	case "large":
		return SizeLarge, nil
	default:
		return "", ErrInvalidShopSize
	}
}

// SignageType is the closed set of signage categories for signage permits.
type SignageType string

const (
	SignageSmall     SignageType = "small"
	SignageMedium    SignageType = "medium"
	SignageLarge     SignageType = "large"
	SignageBillboard SignageType = "billboard"
)

// ParseSignageType converts a raw signage string (case-insensitive) into a
// SignageType, failing with ErrInvalidSignageType on unrecognized values.
func ParseSignageType(raw string) (SignageType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "small":
		return SignageSmall, nil
	case "medium":
		return SignageMedium, nil
	case "large":
		return SignageLarge, nil
	case "billboard":
		return SignageBillboard, nil
	default:
		return "", ErrInvalidSignageType
	}
}

// AmountRange is a [Min, Max] clamp window in currency units.
type AmountRange struct {
	Min float64
	Max float64
}

// Clamp forces v into the range.
func (r AmountRange) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// RateSchedule is the immutable rate configuration driving every calculator.
// It is loaded once at process start and injected, so tests can substitute
// alternate schedules.
type RateSchedule struct {
	// Business registration fee
	GeneralRegistration map[ShopSize]float64
	// Special rates override the general table, keyed by lowercase business
	// type then size.
	SpecialRegistration map[string]map[ShopSize]float64
	// Business types grouped into size classes; when a type belongs to a
	// class and no special rate applied, the fee is clamped into the class
	// bucket.
	SizeClassTypes     map[ShopSize][]string
	RegistrationBucket map[ShopSize]AmountRange

	// Annual permit fee
	PermitBase       map[ShopSize]float64
	HighImpactTypes  []string
	HighImpactFactor float64
	PrimeWards       []string
	PrimeWardFactor  float64

	// Signage permit fee
	SignageBase       map[SignageType]float64
	SignageSizeFactor map[ShopSize]float64

	// Environmental levy
	LevyBase      map[ShopSize]float64
	HighEnvTypes  []string
	HighEnvFactor float64

	// Shop premises tax
	PremisesBase        map[ShopSize]float64
	PremisesPrimeFactor float64
	HighProfitTypes     []string
	HighProfitFactor    float64

	// Overdue penalties: flat late rate plus a monthly surcharge per whole
	// 30-day period overdue.
	LateFeeRate          float64
	MonthlySurchargeRate float64
}

// FeeBreakdown itemizes the annual shop-level fees that make up a year's
// base total due.
type FeeBreakdown struct {
	RegistrationFee   float64 `json:"registration_fee"`
	AnnualPermitFee   float64 `json:"annual_permit_fee"`
	EnvironmentalLevy float64 `json:"environmental_levy"`
	PremisesTax       float64 `json:"premises_tax"`
	Total             float64 `json:"total"`
}

// TotalDueResult carries the aggregate computation for a shop and year.
type TotalDueResult struct {
	ShopID         uint         `json:"shop_id"`
	AssessmentYear int          `json:"assessment_year"`
	Fees           FeeBreakdown `json:"fees"`
	TotalPaid      float64      `json:"total_paid"`
	Penalties      float64      `json:"penalties"`
	TotalDue       float64      `json:"total_due"`
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
