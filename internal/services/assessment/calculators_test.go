package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCalculator() *Calculator {
	return NewCalculator(DefaultRateSchedule())
}

func TestParseShopSize(t *testing.T) {
	tests := []struct {
		raw     string
		want    ShopSize
		wantErr bool
	}{
		{"small", SizeSmall, false},
		{"Medium", SizeMedium, false},
		{"  LARGE  ", SizeLarge, false},
		{"huge", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseShopSize(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidShopSize)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSignageType(t *testing.T) {
	got, err := ParseSignageType("Billboard")
	assert.NoError(t, err)
	assert.Equal(t, SignageBillboard, got)

	_, err = ParseSignageType("neon")
	assert.ErrorIs(t, err, ErrInvalidSignageType)
}

func TestBusinessRegistrationFee(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name         string
		size         ShopSize
		businessType string
		want         float64
		wantErr      error
	}{
		{"general small kiosk", SizeSmall, "kiosk", 7500, nil},
		{"special small restaurant", SizeSmall, "restaurant", 10000, nil},
		{"special medium restaurant", SizeMedium, "restaurant", 30000, nil},
		{"special beats bucket for bank", SizeSmall, "bank", 50000, nil},
		{"special pharmacy large", SizeLarge, "pharmacy", 70000, nil},
		{"general medium boutique", SizeMedium, "boutique", 25000, nil},
		{"general large supermarket", SizeLarge, "supermarket", 55000, nil},
		{"case insensitive type", SizeSmall, "  Restaurant ", 10000, nil},
		{"missing business type", SizeSmall, "", 0, ErrMissingBusinessType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.BusinessRegistrationFee(tt.size, tt.businessType)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBusinessRegistrationFee_ClampOnlyWithoutSpecialRate(t *testing.T) {
	// A re-gazetted general rate below the small bucket gets pulled up to
	// the bucket floor, but a special rate outside the bucket stands.
	rates := DefaultRateSchedule()
	rates.GeneralRegistration[SizeSmall] = 3000
	calc := NewCalculator(rates)

	fee, err := calc.BusinessRegistrationFee(SizeSmall, "kiosk")
	assert.NoError(t, err)
	assert.Equal(t, float64(5000), fee)

	fee, err = calc.BusinessRegistrationFee(SizeSmall, "bank")
	assert.NoError(t, err)
	assert.Equal(t, float64(50000), fee)
}

func TestAnnualPermitFee(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name         string
		size         ShopSize
		businessType string
		ward         string
		want         float64
		wantErr      error
	}{
		{"plain small shop", SizeSmall, "kiosk", "Ugborikoko", 10000, nil},
		{"high impact only", SizeMedium, "restaurant", "Ugborikoko", 30000, nil},
		{"prime ward only", SizeMedium, "boutique", "Effurun", 27500, nil},
		{"both surcharges", SizeMedium, "bank", "Effurun", 33000, nil},
		{"large hotel in Warri", SizeLarge, "hotel", "Warri", 66000, nil},
		{"missing ward", SizeSmall, "kiosk", "", 0, ErrMissingWard},
		{"missing business type", SizeSmall, "", "Effurun", 0, ErrMissingBusinessType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.AnnualPermitFee(tt.size, tt.businessType, tt.ward)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignagePermitFee(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name    string
		signage SignageType
		size    ShopSize
		want    float64
	}{
		{"small sign small shop", SignageSmall, SizeSmall, 1800},
		{"medium sign medium shop", SignageMedium, SizeMedium, 5000},
		{"billboard large shop", SignageBillboard, SizeLarge, 27500},
		{"large sign small shop", SignageLarge, SizeSmall, 9000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.SignagePermitFee(tt.signage, tt.size)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvironmentalLevy(t *testing.T) {
	calc := newTestCalculator()

	got, err := calc.EnvironmentalLevy("kiosk", SizeSmall)
	assert.NoError(t, err)
	assert.Equal(t, float64(1000), got)

	got, err = calc.EnvironmentalLevy("restaurant", SizeSmall)
	assert.NoError(t, err)
	assert.Equal(t, float64(1500), got)

	got, err = calc.EnvironmentalLevy("manufacturing", SizeLarge)
	assert.NoError(t, err)
	assert.Equal(t, float64(7500), got)

	_, err = calc.EnvironmentalLevy("", SizeSmall)
	assert.ErrorIs(t, err, ErrMissingBusinessType)
}

func TestShopPremisesTax(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name         string
		size         ShopSize
		ward         string
		businessType string
		want         float64
	}{
		{"plain premises", SizeSmall, "Ugborikoko", "kiosk", 5000},
		{"prime ward", SizeMedium, "Effurun", "boutique", 14400},
		{"high profit", SizeLarge, "Ugborikoko", "bank", 27500},
		{"prime and high profit", SizeLarge, "Effurun", "hotel", 33000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.ShopPremisesTax(tt.size, tt.ward, tt.businessType)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPenalty(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name        string
		outstanding float64
		daysOverdue int
		want        float64
		wantErr     error
	}{
		{"zero days accrues nothing", 10000, 0, 0, nil},
		{"under a month is flat fee only", 10000, 29, 500, nil},
		{"one whole month", 10000, 35, 600, nil},
		{"two whole months", 10000, 65, 700, nil},
		{"exactly thirty days", 10000, 30, 600, nil},
		{"zero outstanding", 0, 90, 0, nil},
		{"negative outstanding", -1, 10, 0, ErrNegativeAmount},
		{"negative days", 10000, -1, 0, ErrNegativeDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Penalty(tt.outstanding, tt.daysOverdue)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPenalty_MonotonicInDays(t *testing.T) {
	calc := newTestCalculator()

	prev := float64(-1)
	for days := 0; days <= 365; days += 15 {
		p, err := calc.Penalty(20000, days)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, p, prev)
		prev = p
	}
}

func TestAnnualFees(t *testing.T) {
	calc := newTestCalculator()

	b, err := calc.AnnualFees(SizeSmall, "kiosk", "Ugborikoko")
	assert.NoError(t, err)
	assert.Equal(t, float64(7500), b.RegistrationFee)
	assert.Equal(t, float64(10000), b.AnnualPermitFee)
	assert.Equal(t, float64(1000), b.EnvironmentalLevy)
	assert.Equal(t, float64(5000), b.PremisesTax)
	assert.Equal(t, float64(23500), b.Total)

	// Errors from any component surface unchanged.
	_, err = calc.AnnualFees(SizeSmall, "", "Effurun")
	assert.ErrorIs(t, err, ErrMissingBusinessType)
}
