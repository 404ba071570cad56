package assessment

// DefaultRateSchedule returns the council's gazetted rate schedule. Amounts
// are in naira. Callers needing a different schedule (another council, or a
// test fixture) construct their own RateSchedule.
func DefaultRateSchedule() RateSchedule {
	return RateSchedule{
		GeneralRegistration: map[ShopSize]float64{
			SizeSmall:  7500,
			SizeMedium: 25000,
			SizeLarge:  55000,
		},
		SpecialRegistration: map[string]map[ShopSize]float64{
			"restaurant": {SizeSmall: 10000, SizeMedium: 30000, SizeLarge: 65000},
			"pharmacy":   {SizeSmall: 12000, SizeMedium: 32000, SizeLarge: 70000},
			"bank":       {SizeSmall: 50000, SizeMedium: 85000, SizeLarge: 150000},
		},
		SizeClassTypes: map[ShopSize][]string{
			SizeSmall:  {"kiosk", "barbershop", "tailor", "vulcanizer", "viewing_center", "provisions"},
			SizeMedium: {"boutique", "eatery", "cybercafe", "electronics", "cold_room"},
			SizeLarge:  {"supermarket", "hotel", "filling_station", "manufacturing", "large_retail"},
		},
		RegistrationBucket: map[ShopSize]AmountRange{
			SizeSmall:  {Min: 5000, Max: 15000},
			SizeMedium: {Min: 15000, Max: 40000},
			SizeLarge:  {Min: 40000, Max: 100000},
		},

		PermitBase: map[ShopSize]float64{
			SizeSmall:  10000,
			SizeMedium: 25000,
			SizeLarge:  50000,
		},
		HighImpactTypes:  []string{"restaurant", "hotel", "bank"},
		HighImpactFactor: 1.2,
		PrimeWards:       []string{"Effurun", "Warri", "Enerhen", "Ekpan"},
		PrimeWardFactor:  1.1,

		SignageBase: map[SignageType]float64{
			SignageSmall:     2000,
			SignageMedium:    5000,
			SignageLarge:     10000,
			SignageBillboard: 25000,
		},
		SignageSizeFactor: map[ShopSize]float64{
			SizeSmall:  0.9,
			SizeMedium: 1.0,
			SizeLarge:  1.1,
		},

		LevyBase: map[ShopSize]float64{
			SizeSmall:  1000,
			SizeMedium: 2500,
			SizeLarge:  5000,
		},
		HighEnvTypes:  []string{"restaurant", "manufacturing", "hotel"},
		HighEnvFactor: 1.5,

		PremisesBase: map[ShopSize]float64{
			SizeSmall:  5000,
			SizeMedium: 12000,
			SizeLarge:  25000,
		},
		PremisesPrimeFactor: 1.2,
		HighProfitTypes:     []string{"bank", "hotel", "large_retail"},
		HighProfitFactor:    1.1,

		LateFeeRate:          0.05,
		MonthlySurchargeRate: 0.01,
	}
}
