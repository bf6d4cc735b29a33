package domain

// Regime identifies one of the four supported tax treatments.
type Regime string

const (
	RegimeLMNPMicroBIC Regime = "LMNP_micro_BIC"
	RegimeLMNPReel     Regime = "LMNP_reel"
	RegimeSCIIR        Regime = "SCI_IR"
	RegimeSCIIS        Regime = "SCI_IS"
)

var regimeLabels = map[Regime]string{
	RegimeLMNPMicroBIC: "LMNP Micro-BIC",
	RegimeLMNPReel:     "LMNP Réel",
	RegimeSCIIR:        "SCI à l'IR",
	RegimeSCIIS:        "SCI à l'IS",
}

// Regimes returns the regimes in reporting order.
func Regimes() []Regime {
	return []Regime{RegimeLMNPMicroBIC, RegimeLMNPReel, RegimeSCIIR, RegimeSCIIS}
}

// Label is the human-readable name used in reports.
func (r Regime) Label() string {
	if l, ok := regimeLabels[r]; ok {
		return l
	}
	return string(r)
}

// RegimeResult is the annualized outcome of one regime.
type RegimeResult struct {
	Regime            Regime  `json:"regime"`
	Label             string  `json:"label"`
	GrossRent         float64 `json:"gross_rent"`
	NetRent           float64 `json:"net_rent"`
	TaxDue            float64 `json:"tax_due"`
	NetAfterTax       float64 `json:"net_after_tax"`
	AnnualDebtService float64 `json:"annual_debt_service"`
	NetCashFlow       float64 `json:"net_cash_flow"`
}

// MonthlyCashFlow spreads the annual cash flow over twelve months.
func (r RegimeResult) MonthlyCashFlow() float64 {
	return r.NetCashFlow / 12
}

// MonthlyEffort is what the owner must add each month when cash flow is negative.
func (r RegimeResult) MonthlyEffort() float64 {
	if r.NetCashFlow < 0 {
		return -r.NetCashFlow / 12
	}
	return 0
}

// SimulationResult maps every regime to its result.
type SimulationResult map[Regime]RegimeResult
