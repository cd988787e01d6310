package finance

import (
	"math"
	"time"
)

// ProjectionRequest carries pre-validated projection inputs. Validation of
// ranges and enum values happens at the transport boundary; the engine
// assumes it receives only legal values.
type ProjectionRequest struct {
	MonthlyAmount float64   `json:"monthly_amount"`
	Years         int       `json:"years"`
	Country       string    `json:"country"`
	RiskLevel     RiskLevel `json:"risk_level"`
}

// Milestone is a cumulative value checkpoint at a five-year mark.
type Milestone struct {
	Year        int     `json:"year"`
	Value       float64 `json:"value"`
	Contributed float64 `json:"contributed"`
}

// ProjectionResult is the savings-projection contract. All monetary fields
// are rounded to two decimals.
type ProjectionResult struct {
	TotalValue                float64     `json:"total_value"`
	TotalContributed          float64     `json:"total_contributed"`
	TotalInterest             float64     `json:"total_interest"`
	MonthlyIncomeAtRetirement float64     `json:"monthly_income_at_retirement"`
	ROIPercentage             float64     `json:"roi_percentage"`
	Country                   string      `json:"country"`
	Currency                  string      `json:"currency"`
	CurrencySymbol            string      `json:"currency_symbol"`
	AnnualReturnRate          float64     `json:"annual_return_rate"`
	Milestones                []Milestone `json:"milestones"`
	Years                     int         `json:"years"`
	RiskLevel                 RiskLevel   `json:"risk_level"`
}

// ProjectionEnvelope wraps a projection with the echoed request and the
// calculation timestamp.
type ProjectionEnvelope struct {
	Projections     ProjectionResult  `json:"projections"`
	RequestDetails  ProjectionRequest `json:"request_details"`
	CalculationDate string            `json:"calculation_date"`
}

// MilestoneTarget is the solved time-to-reach for a wealth target.
type MilestoneTarget struct {
	Amount        float64 `json:"amount"`
	Years         float64 `json:"years"`
	Currency      string  `json:"currency"`
	Symbol        string  `json:"symbol"`
	MonthlyIncome float64 `json:"monthly_income"`
}

// PremiumQuote is a USD base premium converted into a local currency.
type PremiumQuote struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Symbol        string  `json:"symbol"`
	USDEquivalent float64 `json:"usd_equivalent"`
	Monthly       float64 `json:"monthly"`
	Quarterly     float64 `json:"quarterly"`
}

// milestoneYears are the checkpoint marks reported by SavingsProjection.
var milestoneYears = []int{5, 10, 15, 20, 25, 30}

// defaultWealthTargets are the wealth milestones solved by MilestoneTargets
// when the caller passes none.
var defaultWealthTargets = []float64{10000, 50000, 100000, 250000, 500000, 1000000}

// maxMilestoneYears caps reported milestone horizons; targets further out are
// omitted as unrealistic.
const maxMilestoneYears = 50

// FutureValue computes the future value of a fixed monthly contribution
// compounded monthly (ordinary annuity). A zero return degenerates to the
// linear sum, avoiding division by zero.
func FutureValue(monthlyAmount float64, years int, annualReturn float64) float64 {
	months := float64(years * 12)
	if annualReturn <= 0 {
		return monthlyAmount * months
	}
	monthlyReturn := annualReturn / 12
	return monthlyAmount * ((math.Pow(1+monthlyReturn, months) - 1) / monthlyReturn)
}

// MilestoneTargets solves the annuity formula for the time to reach each
// wealth target. Targets beyond the 50-year horizon are omitted, as are
// targets whose logarithm argument would be non-positive. An empty targets
// slice uses the default wealth ladder.
func MilestoneTargets(monthlyAmount, annualReturn float64, country string, targets []float64) []MilestoneTarget {
	if len(targets) == 0 {
		targets = defaultWealthTargets
	}
	profile := Profile(country)
	monthlyReturn := annualReturn / 12

	var out []MilestoneTarget
	for _, target := range targets {
		var years float64
		if monthlyReturn > 0 {
			if monthlyAmount <= 0 {
				continue
			}
			arg := 1 + target*monthlyReturn/monthlyAmount
			if arg <= 0 {
				continue
			}
			months := math.Log(arg) / math.Log(1+monthlyReturn)
			years = months / 12
		} else {
			if monthlyAmount <= 0 {
				continue
			}
			years = target / (monthlyAmount * 12)
		}

		if years > maxMilestoneYears {
			continue
		}

		out = append(out, MilestoneTarget{
			Amount:        target,
			Years:         math.Round(years*10) / 10,
			Currency:      profile.Currency,
			Symbol:        profile.Symbol,
			MonthlyIncome: round2(target * annualReturn / 12),
		})
	}
	return out
}

// FIRETimeline solves for the whole years until current savings plus yearly
// contributions reach fireNumber. The second return is false when the target
// is unreachable (no contributions) or the formula is undefined because the
// current trajectory already covers the target; callers treat the latter as
// goal already met. A computable result is never less than 1.
func FIRETimeline(fireNumber, currentSavings, annualInvestment, annualReturn float64) (int, bool) {
	if annualInvestment <= 0 {
		return 0, false
	}

	if annualReturn > 0 {
		num := fireNumber*annualReturn + annualInvestment
		den := currentSavings*annualReturn + annualInvestment
		if den <= 0 || num/den <= 0 {
			return 0, false
		}
		years := math.Log(num/den) / math.Log(1+annualReturn)
		return clampYears(years), true
	}

	years := (fireNumber - currentSavings) / annualInvestment
	if years <= 0 {
		return 0, false
	}
	return clampYears(years), true
}

func clampYears(years float64) int {
	n := int(years)
	if n < 1 {
		return 1
	}
	return n
}

// CountryPremium converts a USD base premium into the local currency of the
// given country, applying the per-category multiplier. Unknown country codes
// fall back to the US profile; unknown categories use a neutral multiplier.
func CountryPremium(baseUSD float64, country, category string) PremiumQuote {
	profile := Profile(country)

	multiplier := 1.0
	if m, ok := profile.InsuranceMult[category]; ok {
		multiplier = m
	}

	adjustedUSD := baseUSD * multiplier
	local := adjustedUSD * exchangeRates[profile.Currency]

	return PremiumQuote{
		Amount:        round2(local),
		Currency:      profile.Currency,
		Symbol:        profile.Symbol,
		USDEquivalent: round2(adjustedUSD),
		Monthly:       round2(local / 12),
		Quarterly:     round2(local / 4),
	}
}

// SavingsProjection computes the compounded projection for a validated
// request: total and per-checkpoint values, implied monthly passive income at
// the horizon (4% withdrawal rule) and the return on contributions.
func SavingsProjection(req ProjectionRequest) ProjectionResult {
	profile := Profile(req.Country)
	annualReturn := profile.Returns[req.RiskLevel]

	futureValue := FutureValue(req.MonthlyAmount, req.Years, annualReturn)
	contributed := req.MonthlyAmount * float64(req.Years*12)
	interest := futureValue - contributed

	milestones := make([]Milestone, 0, len(milestoneYears))
	for _, year := range milestoneYears {
		if year > req.Years {
			continue
		}
		milestones = append(milestones, Milestone{
			Year:        year,
			Value:       round2(FutureValue(req.MonthlyAmount, year, annualReturn)),
			Contributed: round2(req.MonthlyAmount * float64(year*12)),
		})
	}

	var roi float64
	if contributed > 0 {
		roi = round2(interest / contributed * 100)
	}

	return ProjectionResult{
		TotalValue:                round2(futureValue),
		TotalContributed:          round2(contributed),
		TotalInterest:             round2(interest),
		MonthlyIncomeAtRetirement: round2(futureValue * 0.04 / 12),
		ROIPercentage:             roi,
		Country:                   profile.Code,
		Currency:                  profile.Currency,
		CurrencySymbol:            profile.Symbol,
		AnnualReturnRate:          annualReturn * 100,
		Milestones:                milestones,
		Years:                     req.Years,
		RiskLevel:                 req.RiskLevel,
	}
}

// Project wraps SavingsProjection with the request echo and timestamp used by
// the HTTP response.
func Project(req ProjectionRequest) ProjectionEnvelope {
	return ProjectionEnvelope{
		Projections:     SavingsProjection(req),
		RequestDetails:  req,
		CalculationDate: time.Now().UTC().Format(time.RFC3339),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
