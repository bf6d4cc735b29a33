package service

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"rental-sim/domain"
)

// sharedFigures are computed once per simulation and fed to every regime.
type sharedFigures struct {
	TotalInvestment   float64
	LoanPrincipal     float64
	AnnualDebtService float64
	GrossRent         float64
	NetRent           float64
	AnnualFixedCosts  float64
}

// taxRule returns the tax due and the income left after tax.
type taxRule func(p domain.ParameterSet, s sharedFigures) (tax, netAfterTax float64)

var taxRules = map[domain.Regime]taxRule{
	domain.RegimeLMNPMicroBIC: microBICTax,
	domain.RegimeLMNPReel:     reelTax,
	domain.RegimeSCIIR:        sciIRTax,
	domain.RegimeSCIIS:        sciISTax,
}

func microBICTax(p domain.ParameterSet, s sharedFigures) (float64, float64) {
	taxable := MicroBICAllowance * s.NetRent
	tax := taxable * (p.MarginalTaxRate + p.SocialContribRate)
	return tax, s.NetRent - tax
}

// reelTax assumes depreciation wipes out the whole taxable income.
// Full real-regime accounting is intentionally not modelled.
func reelTax(_ domain.ParameterSet, s sharedFigures) (float64, float64) {
	return 0, s.NetRent
}

func sciIRTax(p domain.ParameterSet, s sharedFigures) (float64, float64) {
	tax := s.NetRent * (p.MarginalTaxRate + p.SocialContribRate)
	return tax, s.NetRent - tax
}

// sciISTax applies corporate tax, then the flat tax on the distributed remainder.
func sciISTax(p domain.ParameterSet, s sharedFigures) (float64, float64) {
	corporateTax := s.NetRent * p.CorporateTaxRate
	distributed := s.NetRent - corporateTax
	dividendTax := distributed * p.DividendFlatTaxRate
	return corporateTax + dividendTax, distributed - dividendTax
}

// Simulate computes the annual outcome of the scenario under every regime.
// Inputs are not checked for plausibility, only for being finite numbers
// that keep every computed figure finite.
func Simulate(params domain.ParameterSet) (domain.SimulationResult, error) {
	if err := checkFinite(params); err != nil {
		return nil, err
	}

	shared, err := computeShared(params)
	if err != nil {
		return nil, err
	}
	if err := checkShared(params, shared); err != nil {
		return nil, err
	}

	results := make(domain.SimulationResult, len(taxRules))
	for _, regime := range domain.Regimes() {
		tax, net := taxRules[regime](params, shared)
		result := domain.RegimeResult{
			Regime:            regime,
			Label:             regime.Label(),
			GrossRent:         shared.GrossRent,
			NetRent:           shared.NetRent,
			TaxDue:            tax,
			NetAfterTax:       net,
			AnnualDebtService: shared.AnnualDebtService,
			NetCashFlow:       net - shared.AnnualDebtService - shared.AnnualFixedCosts,
		}
		if !finite(result.TaxDue) || !finite(result.NetAfterTax) {
			return nil, overflowError(params, taxRateKeys...)
		}
		if !finite(result.NetCashFlow) {
			return nil, overflowError(params, cashFlowKeys...)
		}
		results[regime] = result
	}

	return results, nil
}

func computeShared(p domain.ParameterSet) (sharedFigures, error) {
	total := p.PurchasePrice + p.PurchasePrice*p.NotaryRate + floats.Sum(p.RenovationCosts())
	principal := total - p.DownPayment

	monthly, err := MonthlyPayment(principal, p.AnnualRate, p.LoanYears)
	if err != nil {
		return sharedFigures{}, fmt.Errorf("loan_years: %w", err)
	}

	gross := p.WeeklyRent * float64(p.WeeksRented)

	return sharedFigures{
		TotalInvestment:   total,
		LoanPrincipal:     principal,
		AnnualDebtService: monthly * MonthsPerYear,
		GrossRent:         gross,
		NetRent:           gross * (1 - p.PlatformFeeRate),
		AnnualFixedCosts:  p.PropertyTax + p.ElectricityAnnual,
	}, nil
}

func checkFinite(p domain.ParameterSet) error {
	for _, f := range domain.Fields {
		if !finite(f.Get(&p)) {
			return &InvalidParameterError{Field: f.Key, Reason: nonFiniteInput}
		}
	}
	return nil
}

var (
	investmentKeys = []string{
		"purchase_price", "notary_rate", "windows_cost", "electricity_cost", "sanitation_cost",
		"plaster_paint_cost", "insulation_cost", "gas_tank_removal_cost", "heating_cost", "down_payment",
	}
	taxRateKeys = []string{
		"taxpayer_marginal_rate", "social_contrib_rate", "corporate_tax_rate", "dividend_flat_tax_rate",
	}
	cashFlowKeys = []string{
		"weekly_rent", "purchase_price", "down_payment", "property_tax", "electricity_annual",
	}
)

// checkShared rejects inputs that are finite but overflow an intermediate figure.
func checkShared(p domain.ParameterSet, s sharedFigures) error {
	switch {
	case !finite(s.TotalInvestment) || !finite(s.LoanPrincipal):
		return overflowError(p, investmentKeys...)
	case !finite(s.AnnualDebtService):
		return overflowError(p, "annual_rate")
	case !finite(s.GrossRent):
		return overflowError(p, "weekly_rent", "weeks_rented")
	case !finite(s.NetRent):
		return overflowError(p, "platform_fee_rate")
	case !finite(s.AnnualFixedCosts):
		return overflowError(p, "property_tax", "electricity_annual")
	}
	return nil
}

// overflowError blames the candidate field with the largest magnitude.
func overflowError(p domain.ParameterSet, keys ...string) error {
	blamed, largest := keys[0], -1.0
	for _, key := range keys {
		f, ok := domain.FieldByKey(key)
		if !ok {
			continue
		}
		if v := math.Abs(f.Get(&p)); v > largest {
			blamed, largest = key, v
		}
	}
	return &InvalidParameterError{Field: blamed, Reason: nonFiniteResult}
}
