package domain

// Field describes one entry of a ParameterSet for form-style input and reporting.
type Field struct {
	Key     string
	Label   string
	Integer bool
	Rate    bool
	Get     func(p *ParameterSet) float64
	Set     func(p *ParameterSet, v float64)
}

func floatField(key, label string, ptr func(p *ParameterSet) *float64) Field {
	return Field{
		Key:   key,
		Label: label,
		Get:   func(p *ParameterSet) float64 { return *ptr(p) },
		Set:   func(p *ParameterSet, v float64) { *ptr(p) = v },
	}
}

func rateField(key, label string, ptr func(p *ParameterSet) *float64) Field {
	f := floatField(key, label, ptr)
	f.Rate = true
	return f
}

// intField truncates on Set; callers round beforehand when they need to.
func intField(key, label string, ptr func(p *ParameterSet) *int) Field {
	return Field{
		Key:     key,
		Label:   label,
		Integer: true,
		Get:     func(p *ParameterSet) float64 { return float64(*ptr(p)) },
		Set:     func(p *ParameterSet, v float64) { *ptr(p) = int(v) },
	}
}

// Fields lists the parameters in form order.
var Fields = []Field{
	floatField("purchase_price", "Prix d'achat net vendeur (€)", func(p *ParameterSet) *float64 { return &p.PurchasePrice }),
	floatField("windows_cost", "Huisseries / menuiseries (€)", func(p *ParameterSet) *float64 { return &p.WindowsCost }),
	floatField("electricity_cost", "Électricité mise aux normes (€)", func(p *ParameterSet) *float64 { return &p.ElectricalCost }),
	floatField("sanitation_cost", "Assainissement individuel (€)", func(p *ParameterSet) *float64 { return &p.SanitationCost }),
	floatField("plaster_paint_cost", "Plâtrerie / peintures (€)", func(p *ParameterSet) *float64 { return &p.PlasterPaintCost }),
	floatField("insulation_cost", "Isolation (combles/murs) (€)", func(p *ParameterSet) *float64 { return &p.InsulationCost }),
	floatField("gas_tank_removal_cost", "Retrait cuve gaz (€)", func(p *ParameterSet) *float64 { return &p.GasTankRemovalCost }),
	floatField("heating_cost", "Chauffage / PAC (€)", func(p *ParameterSet) *float64 { return &p.HeatingCost }),
	floatField("property_tax", "Taxe foncière annuelle (€)", func(p *ParameterSet) *float64 { return &p.PropertyTax }),
	floatField("electricity_annual", "Électricité annuelle (€)", func(p *ParameterSet) *float64 { return &p.ElectricityAnnual }),
	rateField("notary_rate", "Taux frais de notaire", func(p *ParameterSet) *float64 { return &p.NotaryRate }),
	floatField("down_payment", "Apport personnel (€)", func(p *ParameterSet) *float64 { return &p.DownPayment }),
	intField("loan_years", "Durée du prêt (années)", func(p *ParameterSet) *int { return &p.LoanYears }),
	rateField("annual_rate", "Taux nominal annuel", func(p *ParameterSet) *float64 { return &p.AnnualRate }),
	floatField("weekly_rent", "Loyer haute saison par semaine (€)", func(p *ParameterSet) *float64 { return &p.WeeklyRent }),
	intField("weeks_rented", "Semaines louées par an", func(p *ParameterSet) *int { return &p.WeeksRented }),
	rateField("platform_fee_rate", "Commission plateforme", func(p *ParameterSet) *float64 { return &p.PlatformFeeRate }),
	rateField("taxpayer_marginal_rate", "TMI", func(p *ParameterSet) *float64 { return &p.MarginalTaxRate }),
	rateField("social_contrib_rate", "Prélèvements sociaux", func(p *ParameterSet) *float64 { return &p.SocialContribRate }),
	rateField("corporate_tax_rate", "Taux IS", func(p *ParameterSet) *float64 { return &p.CorporateTaxRate }),
	rateField("dividend_flat_tax_rate", "Flat tax dividendes", func(p *ParameterSet) *float64 { return &p.DividendFlatTaxRate }),
}

// FieldByKey looks up a field by its snake_case key.
func FieldByKey(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
