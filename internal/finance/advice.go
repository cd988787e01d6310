package finance

import "math"

// AdviceRequest carries the validated inputs for personalized financial
// advice.
type AdviceRequest struct {
	Country        string    `json:"country"`
	AnnualIncome   float64   `json:"annual_income"`
	Age            int       `json:"age"`
	Dependents     int       `json:"dependents"`
	CurrentSavings float64   `json:"current_savings"`
	RiskTolerance  RiskLevel `json:"risk_tolerance"`
}

// Allocation is a recommended stocks/bonds/cash split in whole percent.
type Allocation struct {
	Stocks int `json:"stocks"`
	Bonds  int `json:"bonds"`
	Cash   int `json:"cash"`
}

// FIREProjection summarizes the financial-independence outlook.
type FIREProjection struct {
	FireNumber               float64 `json:"fire_number"`
	CurrentSavings           float64 `json:"current_savings"`
	ProjectedRetirementFund  float64 `json:"projected_retirement_fund"`
	MonthlyInvestmentNeeded  float64 `json:"monthly_investment_needed"`
	YearsToRetirement        int     `json:"years_to_retirement"`
	TimelineYears            int     `json:"fire_timeline_years,omitempty"`
	Achieved                 bool    `json:"goal_achieved"`
	IndependenceAge          int     `json:"financial_independence_age,omitempty"`
	MonthlyPassiveAtHorizon  float64 `json:"monthly_passive_income_at_retirement"`
}

// Advice is the complete financial-advice package for one country profile.
type Advice struct {
	Country        string `json:"country"`
	CurrencySymbol string `json:"currency_symbol"`

	Recommendations struct {
		EmergencyFundTarget  float64 `json:"emergency_fund_target"`
		MonthlySavingsTarget float64 `json:"monthly_savings_target"`
		RetirementTarget     float64 `json:"retirement_target"`
		YearsToRetirement    int     `json:"years_to_retirement"`
	} `json:"recommendations"`

	CurrentStatus struct {
		SavingsRate           float64 `json:"savings_rate"`
		EmergencyFundCoverage float64 `json:"emergency_fund_coverage"`
	} `json:"current_status"`

	Allocation          Allocation     `json:"recommended_allocation"`
	FIRE                FIREProjection `json:"financial_independence"`
	Tips                []string       `json:"tips"`
	CulturalPriorities  []string       `json:"cultural_priorities"`
	TaxAdvantages       []string       `json:"recommended_tax_advantages"`
	InvestmentOptions   []string       `json:"investment_options"`

	EconomicContext struct {
		InflationRate      float64 `json:"inflation_rate"`
		EconomicStability  string  `json:"economic_stability"`
		TypicalSavingsRate float64 `json:"typical_savings_rate"`
	} `json:"economic_context"`
}

// FinancialAdvice derives the country-aware plan: emergency fund sizing by
// economic stability, a savings-rate target clamped to [15%,30%] around the
// country's typical rate, retirement targets scaled by social-security
// coverage, an age/risk allocation and the FIRE outlook.
func FinancialAdvice(req AdviceRequest) Advice {
	profile := Profile(req.Country)
	monthlyIncome := req.AnnualIncome / 12

	emergencyMonths := 9.0
	if profile.EconomicStability == "high" {
		emergencyMonths = 6.0
	}

	savingsRate := math.Max(0.15, math.Min(0.30, profile.TypicalSavingsRate/100))

	retirementMultiplier := 30.0
	if profile.SocialSecurity {
		retirementMultiplier = 25.0
	}

	yearsToRetirement := profile.RetirementAge - req.Age
	if yearsToRetirement < 0 {
		yearsToRetirement = 0
	}

	var a Advice
	a.Country = profile.Code
	a.CurrencySymbol = profile.Symbol
	a.Recommendations.EmergencyFundTarget = round2(monthlyIncome * emergencyMonths)
	a.Recommendations.MonthlySavingsTarget = round2(monthlyIncome * savingsRate)
	a.Recommendations.RetirementTarget = round2(req.AnnualIncome * retirementMultiplier)
	a.Recommendations.YearsToRetirement = yearsToRetirement

	if req.AnnualIncome > 0 {
		a.CurrentStatus.SavingsRate = round2(req.CurrentSavings / req.AnnualIncome * 100)
	}
	if monthlyIncome > 0 {
		a.CurrentStatus.EmergencyFundCoverage = math.Round(req.CurrentSavings/monthlyIncome*10) / 10
	}

	a.Allocation = allocationFor(req.Age, req.RiskTolerance)
	a.FIRE = fireProjection(req, profile, monthlyIncome, yearsToRetirement)
	a.Tips = countryTips(profile)
	a.CulturalPriorities = profile.FinancialPriorities
	a.TaxAdvantages = profile.TaxAdvantages
	a.InvestmentOptions = profile.InvestmentOptions
	a.EconomicContext.InflationRate = profile.InflationRate
	a.EconomicContext.EconomicStability = profile.EconomicStability
	a.EconomicContext.TypicalSavingsRate = profile.TypicalSavingsRate

	return a
}

// allocationFor maps age band and risk tolerance to a stocks/bonds/cash
// split.
func allocationFor(age int, risk RiskLevel) Allocation {
	switch {
	case age < 30:
		switch risk {
		case RiskAggressive:
			return Allocation{Stocks: 80, Bonds: 15, Cash: 5}
		case RiskConservative:
			return Allocation{Stocks: 60, Bonds: 30, Cash: 10}
		default:
			return Allocation{Stocks: 70, Bonds: 25, Cash: 5}
		}
	case age < 45:
		switch risk {
		case RiskAggressive:
			return Allocation{Stocks: 70, Bonds: 25, Cash: 5}
		case RiskConservative:
			return Allocation{Stocks: 50, Bonds: 40, Cash: 10}
		default:
			return Allocation{Stocks: 60, Bonds: 35, Cash: 5}
		}
	default:
		switch risk {
		case RiskAggressive:
			return Allocation{Stocks: 60, Bonds: 35, Cash: 5}
		case RiskConservative:
			return Allocation{Stocks: 40, Bonds: 50, Cash: 10}
		default:
			return Allocation{Stocks: 50, Bonds: 45, Cash: 5}
		}
	}
}

// fireProjection assumes 70% of income goes to living expenses; 70% of the
// remainder is investable. The FIRE number is 25x annual expenses.
func fireProjection(req AdviceRequest, profile CountryProfile, monthlyIncome float64, yearsToRetirement int) FIREProjection {
	annualReturn := profile.Returns[req.RiskTolerance]
	if annualReturn == 0 {
		annualReturn = profile.Returns[RiskModerate]
	}

	monthlyExpenses := monthlyIncome * 0.7
	monthlyInvestment := (monthlyIncome - monthlyExpenses) * 0.7
	fireNumber := monthlyExpenses * 12 * 25

	// Current savings grow at the annual rate; contributions compound monthly.
	futureValue := req.CurrentSavings * math.Pow(1+annualReturn, float64(yearsToRetirement))
	futureValue += FutureValue(monthlyInvestment, yearsToRetirement, annualReturn)

	p := FIREProjection{
		FireNumber:              round2(fireNumber),
		CurrentSavings:          req.CurrentSavings,
		ProjectedRetirementFund: round2(futureValue),
		MonthlyInvestmentNeeded: round2(monthlyInvestment),
		YearsToRetirement:       yearsToRetirement,
		MonthlyPassiveAtHorizon: round2(futureValue * annualReturn / 12),
	}

	years, ok := FIRETimeline(fireNumber, req.CurrentSavings, monthlyInvestment*12, annualReturn)
	if ok {
		p.TimelineYears = years
		p.IndependenceAge = req.Age + years
	} else if req.CurrentSavings >= fireNumber {
		p.Achieved = true
	}

	return p
}

// countryTips returns the per-country planning tips plus the generic leads.
func countryTips(profile CountryProfile) []string {
	tips := []string{
		"Start investing early to benefit from compound interest",
	}

	perCountry := map[string][]string{
		"US": {
			"Maximize your 401(k) employer match",
			"Consider a Roth IRA for tax-free retirement income",
			"Focus on index funds for long-term growth",
		},
		"IN": {
			"Start with PPF for tax-free long-term savings",
			"Consider ELSS mutual funds for tax savings under 80C",
			"Diversify beyond fixed deposits into equity mutual funds",
		},
		"UK": {
			"Use your ISA allowance every year",
			"Contribute to a workplace pension for the employer match",
			"Consider a LISA for a first home purchase",
		},
		"CA": {
			"Maximize RRSP contributions for tax deductions",
			"Use a TFSA for tax-free growth",
			"Consider dollar-cost averaging with ETFs",
		},
		"AU": {
			"Maximize superannuation contributions",
			"Use salary sacrificing to boost super",
			"Take advantage of franking credits",
		},
		"DE": {
			"Consider an ETF savings plan for steady investing",
			"Use Riester pension products for retirement planning",
			"Consider real estate as an inflation hedge",
		},
	}

	tips = append(tips, perCountry[profile.Code]...)
	tips = append(tips, "Review and adjust your financial plan annually")
	return tips
}
