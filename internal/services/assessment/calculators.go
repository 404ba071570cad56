package assessment

import (
	"math"
	"strings"
)

// Calculator evaluates the council's fee formulas against an injected rate
// schedule. Every method is a pure function of its arguments; no method
// reads the clock or the database.
type Calculator struct {
	rates RateSchedule
}

func NewCalculator(rates RateSchedule) *Calculator {
	return &Calculator{rates: rates}
}

// BusinessRegistrationFee computes the one-time registration fee for a shop.
// Special per-business-type rates take precedence over the general per-size
// table. When the business type belongs to a named size class and no special
// rate applied, the result is clamped into that class's bucket. This fee
// keeps fractional precision from the rate tables.
func (c *Calculator) BusinessRegistrationFee(size ShopSize, businessType string) (float64, error) {
	businessType = strings.ToLower(strings.TrimSpace(businessType))
	if businessType == "" {
		return 0, ErrMissingBusinessType
	}
	base, ok := c.rates.GeneralRegistration[size]
	if !ok {
		return 0, ErrInvalidShopSize
	}

	if special, ok := c.rates.SpecialRegistration[businessType]; ok {
		if amount, ok := special[size]; ok {
			return amount, nil
		}
	}

	// The clamp only applies when no special rate matched. The general table
	// already sits inside the buckets in the usual cases; the clamp still
	// runs so a re-gazetted general rate cannot fall outside a class bucket.
	fee := base
	for class, types := range c.rates.SizeClassTypes {
		if containsFold(types, businessType) {
			if bucket, ok := c.rates.RegistrationBucket[class]; ok {
				fee = bucket.Clamp(fee)
			}
			break
		}
	}
	return fee, nil
}

// AnnualPermitFee computes the yearly operating permit fee: base by size,
// surcharged for high-impact business types and prime wards.
func (c *Calculator) AnnualPermitFee(size ShopSize, businessType, ward string) (float64, error) {
	if strings.TrimSpace(businessType) == "" {
		return 0, ErrMissingBusinessType
	}
	if strings.TrimSpace(ward) == "" {
		return 0, ErrMissingWard
	}
	base, ok := c.rates.PermitBase[size]
	if !ok {
		return 0, ErrInvalidShopSize
	}

	fee := base
	if containsFold(c.rates.HighImpactTypes, businessType) {
		fee *= c.rates.HighImpactFactor
	}
	if containsFold(c.rates.PrimeWards, ward) {
		fee *= c.rates.PrimeWardFactor
	}
	return math.Round(fee), nil
}

// SignagePermitFee computes the signage permit fee: base by signage type
// scaled by a shop-size factor.
func (c *Calculator) SignagePermitFee(signage SignageType, size ShopSize) (float64, error) {
	base, ok := c.rates.SignageBase[signage]
	if !ok {
		return 0, ErrInvalidSignageType
	}
	factor, ok := c.rates.SignageSizeFactor[size]
	if !ok {
		return 0, ErrInvalidShopSize
	}
	return math.Round(base * factor), nil
}

// EnvironmentalLevy computes the sanitation/environmental levy: base by
// size, surcharged for high-environmental-impact business types.
func (c *Calculator) EnvironmentalLevy(businessType string, size ShopSize) (float64, error) {
	if strings.TrimSpace(businessType) == "" {
		return 0, ErrMissingBusinessType
	}
	base, ok := c.rates.LevyBase[size]
	if !ok {
		return 0, ErrInvalidShopSize
	}

	levy := base
	if containsFold(c.rates.HighEnvTypes, businessType) {
		levy *= c.rates.HighEnvFactor
	}
	return math.Round(levy), nil
}

// ShopPremisesTax computes the premises tax: base by size, surcharged for
// prime wards and high-profit business types.
func (c *Calculator) ShopPremisesTax(size ShopSize, ward, businessType string) (float64, error) {
	if strings.TrimSpace(ward) == "" {
		return 0, ErrMissingWard
	}
	if strings.TrimSpace(businessType) == "" {
		return 0, ErrMissingBusinessType
	}
	base, ok := c.rates.PremisesBase[size]
	if !ok {
		return 0, ErrInvalidShopSize
	}

	tax := base
	if containsFold(c.rates.PrimeWards, ward) {
		tax *= c.rates.PremisesPrimeFactor
	}
	if containsFold(c.rates.HighProfitTypes, businessType) {
		tax *= c.rates.HighProfitFactor
	}
	return math.Round(tax), nil
}

// Penalty computes the overdue penalty on an outstanding amount: a flat
// late fee plus a surcharge per whole 30-day period overdue. Zero lateness
// accrues nothing.
func (c *Calculator) Penalty(outstanding float64, daysOverdue int) (float64, error) {
	if outstanding < 0 {
		return 0, ErrNegativeAmount
	}
	if daysOverdue < 0 {
		return 0, ErrNegativeDays
	}
	if daysOverdue == 0 {
		return 0, nil
	}

	months := float64(daysOverdue / 30)
	penalty := outstanding*c.rates.LateFeeRate + outstanding*c.rates.MonthlySurchargeRate*months
	return math.Round(penalty), nil
}

// AnnualFees sums the four shop-level annual fees that make up a year's
// base total due. Signage fees are billed per permit, not here.
func (c *Calculator) AnnualFees(size ShopSize, businessType, ward string) (FeeBreakdown, error) {
	var b FeeBreakdown
	var err error

	if b.RegistrationFee, err = c.BusinessRegistrationFee(size, businessType); err != nil {
		return FeeBreakdown{}, err
	}
	if b.AnnualPermitFee, err = c.AnnualPermitFee(size, businessType, ward); err != nil {
		return FeeBreakdown{}, err
	}
	if b.EnvironmentalLevy, err = c.EnvironmentalLevy(businessType, size); err != nil {
		return FeeBreakdown{}, err
	}
	if b.PremisesTax, err = c.ShopPremisesTax(size, ward, businessType); err != nil {
		return FeeBreakdown{}, err
	}
	b.Total = b.RegistrationFee + b.AnnualPermitFee + b.EnvironmentalLevy + b.PremisesTax
	return b, nil
}
