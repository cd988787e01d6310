package finance

// RiskLevel selects the assumed annual nominal return for projections.
type RiskLevel string

const (
	RiskConservative RiskLevel = "conservative"
	RiskModerate     RiskLevel = "moderate"
	RiskAggressive   RiskLevel = "aggressive"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}

// CountryProfile is a static per-country record. Profiles are loaded once at
// init and never mutated; lookups fall back to the US profile for unknown
// codes.
type CountryProfile struct {
	Code               string                `json:"code"`
	Name               string                `json:"name"`
	Currency           string                `json:"currency"`
	Symbol             string                `json:"symbol"`
	TaxRate            float64               `json:"tax_rate"`
	AvgSalary          float64               `json:"avg_salary"`
	CostOfLivingIndex  float64               `json:"cost_of_living_index"`
	RetirementAge      int                   `json:"retirement_age"`
	EconomicStability  string                `json:"economic_stability"`
	InflationRate      float64               `json:"inflation_rate"`
	TypicalSavingsRate float64               `json:"typical_savings_rate"` // percent
	SocialSecurity     bool                  `json:"social_security"`
	Returns            map[RiskLevel]float64 `json:"investment_returns"`
	InsuranceMult      map[string]float64    `json:"insurance_multipliers"`
	InvestmentOptions  []string              `json:"investment_options"`
	TaxAdvantages      []string              `json:"tax_advantages"`
	FinancialPriorities []string             `json:"financial_priorities"`
}

// DefaultCountry is the fallback profile code for unknown country inputs.
const DefaultCountry = "US"

var countries = map[string]CountryProfile{
	"US": {
		Code: "US", Name: "United States", Currency: "USD", Symbol: "$",
		TaxRate: 0.25, AvgSalary: 75000, CostOfLivingIndex: 100,
		RetirementAge: 65, EconomicStability: "high", InflationRate: 3.2,
		TypicalSavingsRate: 13.0, SocialSecurity: true,
		Returns: map[RiskLevel]float64{
			RiskConservative: 0.04, RiskModerate: 0.07, RiskAggressive: 0.10,
		},
		InsuranceMult: map[string]float64{
			"health": 1.0, "property": 1.0, "life": 1.0, "auto": 1.0,
		},
		InvestmentOptions:   []string{"401k", "IRA", "Stocks", "Bonds", "Real Estate"},
		TaxAdvantages:       []string{"401k matching", "IRA deductions", "HSA benefits"},
		FinancialPriorities: []string{"retirement", "homeownership", "emergency_fund"},
	},
	"IN": {
		Code: "IN", Name: "India", Currency: "INR", Symbol: "₹",
		TaxRate: 0.20, AvgSalary: 800000, CostOfLivingIndex: 25,
		RetirementAge: 60, EconomicStability: "moderate_high", InflationRate: 5.8,
		TypicalSavingsRate: 30.0, SocialSecurity: false,
		Returns: map[RiskLevel]float64{
			RiskConservative: 0.06, RiskModerate: 0.12, RiskAggressive: 0.15,
		},
		InsuranceMult: map[string]float64{
			"health": 0.15, "property": 0.20, "life": 0.12, "auto": 0.18,
		},
		InvestmentOptions:   []string{"EPF", "PPF", "ELSS", "NSC", "Fixed Deposits"},
		TaxAdvantages:       []string{"80C deductions", "PPF tax-free", "ELSS benefits"},
		FinancialPriorities: []string{"family_security", "property", "education", "gold"},
	},
	"UK": {
		Code: "UK", Name: "United Kingdom", Currency: "GBP", Symbol: "£",
		TaxRate: 0.20, AvgSalary: 35000, CostOfLivingIndex: 85,
		RetirementAge: 66, EconomicStability: "high", InflationRate: 4.1,
		TypicalSavingsRate: 8.5, SocialSecurity: true,
		Returns: map[RiskLevel]float64{
			RiskConservative: 0.03, RiskModerate: 0.06, RiskAggressive: 0.08,
		},
		InsuranceMult: map[string]float64{
			"health": 0.30, "property": 0.80, "life": 0.85, "auto": 0.90,
		},
		InvestmentOptions:   []string{"ISA", "Pension", "Stocks", "Premium Bonds"},
		TaxAdvantages:       []string{"ISA allowance", "Pension relief", "CGT exemption"},
		FinancialPriorities: []string{"pension", "property", "ISA_savings"},
	},
	"CA": {
		Code: "CA", Name: "Canada", Currency: "CAD", Symbol: "C$",
		TaxRate: 0.26, AvgSalary: 65000, CostOfLivingIndex: 90,
		RetirementAge: 65, EconomicStability: "high", InflationRate: 3.5,
		TypicalSavingsRate: 11.0, SocialSecurity: true,
		Returns: map[RiskLevel]float64{
			RiskConservative: 0.035, RiskModerate: 0.065, RiskAggressive: 0.09,
		},
		InsuranceMult: map[string]float64{
			"health": 0.25, "property": 0.75, "life": 0.80, "auto": 0.85,
		},
		InvestmentOptions:   []string{"RRSP", "TFSA", "Stocks", "GIC"},
		TaxAdvantages:       []string{"RRSP deduction", "TFSA tax-free", "Capital gains"},
		FinancialPriorities: []string{"RRSP", "TFSA", "real_estate"},
	},
	"AU": {
		Code: "AU", Name: "Australia", Currency: "AUD", Symbol: "A$",
		TaxRate: 0.32, AvgSalary: 85000, CostOfLivingIndex: 95,
		RetirementAge: 67, EconomicStability: "high", InflationRate: 4.3,
		TypicalSavingsRate: 9.5, SocialSecurity: true,
		Returns: map[RiskLevel]float64{
			RiskConservative: 0.04, RiskModerate: 0.07, RiskAggressive: 0.095,
		},
		InsuranceMult: map[string]float64{
			"health": 0.40, "property": 0.85, "life": 0.90, "auto": 0.95,
		},
		InvestmentOptions:   []string{"Superannuation", "Shares", "Property", "Term Deposits"},
		TaxAdvantages:       []string{"Super contributions", "Franking credits", "CGT discount"},
		FinancialPriorities: []string{"superannuation", "property", "shares"},
	},
	"DE": {
		Code: "DE", Name: "Germany", Currency: "EUR", Symbol: "€",
		TaxRate: 0.42, AvgSalary: 55000, CostOfLivingIndex: 75,
		RetirementAge: 67, EconomicStability: "high", InflationRate: 3.8,
		TypicalSavingsRate: 17.0, SocialSecurity: true,
		Returns: map[RiskLevel]float64{
			RiskConservative: 0.025, RiskModerate: 0.05, RiskAggressive: 0.075,
		},
		InsuranceMult: map[string]float64{
			"health": 0.20, "property": 0.70, "life": 0.75, "auto": 0.80,
		},
		InvestmentOptions:   []string{"Riester", "ETFs", "Bausparvertrag", "Bonds"},
		TaxAdvantages:       []string{"Riester subsidy", "Bausparvertrag bonus", "ETF savings"},
		FinancialPriorities: []string{"security", "insurance", "conservative_growth"},
	},
}

// exchangeRates maps currency code to units per USD.
var exchangeRates = map[string]float64{
	"USD": 1.0,
	"INR": 83.15,
	"GBP": 0.79,
	"CAD": 1.35,
	"AUD": 1.52,
	"EUR": 0.92,
}

// Profile returns the country profile for code, falling back to the US
// profile for unknown codes.
func Profile(code string) CountryProfile {
	if p, ok := countries[code]; ok {
		return p
	}
	return countries[DefaultCountry]
}

// KnownCountry reports whether code is one of the supported country codes.
func KnownCountry(code string) bool {
	_, ok := countries[code]
	return ok
}

// Countries returns all supported country profiles keyed by code.
func Countries() map[string]CountryProfile {
	out := make(map[string]CountryProfile, len(countries))
	for k, v := range countries {
		out[k] = v
	}
	return out
}

// ExchangeRates returns the USD-based exchange-rate table.
func ExchangeRates() map[string]float64 {
	out := make(map[string]float64, len(exchangeRates))
	for k, v := range exchangeRates {
		out[k] = v
	}
	return out
}
