package domain

// LoanInput describes an amortizing loan. AnnualRate is a fraction (0.0324 for 3.24%).
type LoanInput struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	Years      int     `json:"years"`
}

type LoanResult struct {
	MonthlyPayment    float64 `json:"monthly_payment"`
	AnnualDebtService float64 `json:"annual_debt_service"`
	TotalPayment      float64 `json:"total_paid"`
	TotalInterest     float64 `json:"total_interest"`
}
