package domain

// ParameterSet holds every input of one simulation scenario.
// Rates are fractions, amounts are euros.
type ParameterSet struct {
	// Acquisition
	PurchasePrice      float64 `json:"purchase_price" yaml:"purchase_price"`
	WindowsCost        float64 `json:"windows_cost" yaml:"windows_cost"`
	ElectricalCost     float64 `json:"electricity_cost" yaml:"electricity_cost"`
	SanitationCost     float64 `json:"sanitation_cost" yaml:"sanitation_cost"`
	PlasterPaintCost   float64 `json:"plaster_paint_cost" yaml:"plaster_paint_cost"`
	InsulationCost     float64 `json:"insulation_cost" yaml:"insulation_cost"`
	GasTankRemovalCost float64 `json:"gas_tank_removal_cost" yaml:"gas_tank_removal_cost"`
	HeatingCost        float64 `json:"heating_cost" yaml:"heating_cost"`

	// Annual fixed costs
	PropertyTax       float64 `json:"property_tax" yaml:"property_tax"`
	ElectricityAnnual float64 `json:"electricity_annual" yaml:"electricity_annual"`

	// Financing
	NotaryRate  float64 `json:"notary_rate" yaml:"notary_rate"`
	DownPayment float64 `json:"down_payment" yaml:"down_payment"`
	LoanYears   int     `json:"loan_years" yaml:"loan_years"`
	AnnualRate  float64 `json:"annual_rate" yaml:"annual_rate"`

	// Rental
	WeeklyRent      float64 `json:"weekly_rent" yaml:"weekly_rent"`
	WeeksRented     int     `json:"weeks_rented" yaml:"weeks_rented"`
	PlatformFeeRate float64 `json:"platform_fee_rate" yaml:"platform_fee_rate"`

	// Taxation
	MarginalTaxRate     float64 `json:"taxpayer_marginal_rate" yaml:"taxpayer_marginal_rate"`
	SocialContribRate   float64 `json:"social_contrib_rate" yaml:"social_contrib_rate"`
	CorporateTaxRate    float64 `json:"corporate_tax_rate" yaml:"corporate_tax_rate"`
	DividendFlatTaxRate float64 `json:"dividend_flat_tax_rate" yaml:"dividend_flat_tax_rate"`
}

// RenovationCosts returns the itemized works in a fixed order.
func (p ParameterSet) RenovationCosts() []float64 {
	return []float64{
		p.WindowsCost,
		p.ElectricalCost,
		p.SanitationCost,
		p.PlasterPaintCost,
		p.InsulationCost,
		p.GasTankRemovalCost,
		p.HeatingCost,
	}
}

// DefaultParameters returns the reference scenario: a 120 000 € house,
// no works, 20-year loan at 3.24%, six rented weeks.
func DefaultParameters() ParameterSet {
	return ParameterSet{
		PurchasePrice:       120_000,
		NotaryRate:          0.075,
		DownPayment:         30_000,
		LoanYears:           20,
		AnnualRate:          0.0324,
		WeeklyRent:          110,
		WeeksRented:         6,
		PlatformFeeRate:     0.03,
		MarginalTaxRate:     0.30,
		SocialContribRate:   0.172,
		CorporateTaxRate:    0.15,
		DividendFlatTaxRate: 0.30,
	}
}

// RecommendedWorst overlays pessimistic works and running-cost estimates on the defaults.
func RecommendedWorst() ParameterSet {
	p := DefaultParameters()
	p.WindowsCost = 5400
	p.ElectricalCost = 5000
	p.SanitationCost = 10000
	p.PlasterPaintCost = 21000
	p.InsulationCost = 4200
	p.GasTankRemovalCost = 1500
	p.HeatingCost = 12000
	p.PropertyTax = 600
	p.ElectricityAnnual = 1200
	return p
}

// RecommendedBest overlays optimistic works and running-cost estimates on the defaults.
func RecommendedBest() ParameterSet {
	p := DefaultParameters()
	p.WindowsCost = 3500
	p.ElectricalCost = 3000
	p.SanitationCost = 7000
	p.PlasterPaintCost = 14000
	p.InsulationCost = 2800
	p.GasTankRemovalCost = 1000
	p.HeatingCost = 8000
	p.PropertyTax = 400
	p.ElectricityAnnual = 800
	return p
}
