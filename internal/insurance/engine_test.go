package insurance

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"
)

func newTestEngine() *Engine {
	return NewEngine(zap.NewNop())
}

func TestAssessBMICardiovascularWarning(t *testing.T) {
	e := newTestEngine()

	cases := []struct {
		height, weight float64
		warning        bool
		category       string
	}{
		{175, 65, false, "Normal Weight"},
		{170, 75, false, "Overweight"},
		{175, 95, true, "Obese"},
		{160, 80, true, "Obese"},
		{175, 50, false, "Underweight"},
	}

	for _, c := range cases {
		a := e.AssessBMI(c.height, c.weight)
		if a.CardiovascularWarning != c.warning {
			t.Fatalf("%+v: expected warning %v, got %v (bmi %f)", c, c.warning, a.CardiovascularWarning, a.Value)
		}
		if a.Category != c.category {
			t.Fatalf("%+v: expected %s, got %s", c, c.category, a.Category)
		}
	}
}

func TestAssessBMIRoundsToTwoDecimals(t *testing.T) {
	a := newTestEngine().AssessBMI(175, 95)
	if a.Value != 31.02 {
		t.Fatalf("expected 31.02, got %f", a.Value)
	}
}

func TestAssessRisksScoring(t *testing.T) {
	e := newTestEngine()

	// Obese (+3) + smoking (+3) + age 50+ (+1) + diabetes (+2) = 9.
	p := HealthProfile{
		Age: 55, Gender: "male", Height: 175, Weight: 95,
		Smoking:           true,
		MedicalConditions: []string{"type 2 diabetes"},
	}
	a := e.AssessRisks(p)

	if a.RiskScore != 9 {
		t.Fatalf("expected score 9, got %d", a.RiskScore)
	}
	if a.OverallRisk != "High" {
		t.Fatalf("expected High, got %s", a.OverallRisk)
	}
	if !a.CardiovascularRisk {
		t.Fatal("expected cardiovascular risk flag")
	}
	if len(a.IndividualRisks) != 4 {
		t.Fatalf("expected 4 risk factors, got %d", len(a.IndividualRisks))
	}
}

func TestAssessRisksModerateBand(t *testing.T) {
	// Overweight (+1) + age 50+ (+1) = 2: still low. Add smoking (+3) = 5: moderate.
	e := newTestEngine()

	p := HealthProfile{Age: 52, Height: 170, Weight: 75}
	if a := e.AssessRisks(p); a.OverallRisk != "Low" {
		t.Fatalf("expected Low at score %d, got %s", a.RiskScore, a.OverallRisk)
	}

	p.Smoking = true
	if a := e.AssessRisks(p); a.OverallRisk != "Moderate" {
		t.Fatalf("expected Moderate at score %d, got %s", a.RiskScore, a.OverallRisk)
	}
}

func TestAssessRisksCleanProfile(t *testing.T) {
	a := newTestEngine().AssessRisks(HealthProfile{Age: 30, Height: 175, Weight: 65})
	if a.RiskScore != 0 || a.OverallRisk != "Low" {
		t.Fatalf("expected clean low risk, got score %d (%s)", a.RiskScore, a.OverallRisk)
	}
	if len(a.InsuranceRecommendations) != 2 {
		t.Fatalf("expected health+life recommendations only, got %d", len(a.InsuranceRecommendations))
	}
}

func TestLineRecommendationsEscalate(t *testing.T) {
	recs := lineRecommendations(6, 31.0)
	if len(recs) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(recs))
	}
	if recs[0].Priority != "Critical" || recs[1].Priority != "Critical" {
		t.Fatalf("expected critical health and life, got %s/%s", recs[0].Priority, recs[1].Priority)
	}
}

func TestBasePremiumMultipliers(t *testing.T) {
	e := newTestEngine()

	// Clean 30-year-old: base health 300 x 12.
	clean := HealthProfile{Age: 30, Height: 175, Weight: 65}
	if got := e.BasePremium(clean, LineHealth); got != 3600 {
		t.Fatalf("expected 3600, got %f", got)
	}

	// Smoker: 2.5x.
	smoker := clean
	smoker.Smoking = true
	if got := e.BasePremium(smoker, LineHealth); got != 9000 {
		t.Fatalf("expected 9000, got %f", got)
	}

	// Obese (1.5) + age 50 (1.4) + one condition (1.3): 300*12*2.73.
	loaded := HealthProfile{Age: 50, Height: 175, Weight: 95, MedicalConditions: []string{"hypertension"}}
	want := 300.0 * 1.5 * 1.4 * 1.3 * 12
	if got := e.BasePremium(loaded, LineHealth); math.Abs(got-want) > 0.01 {
		t.Fatalf("expected ~%f, got %f", want, got)
	}
}

func TestBasePremiumByLine(t *testing.T) {
	e := newTestEngine()
	clean := HealthProfile{Age: 30, Height: 175, Weight: 65}

	if got := e.BasePremium(clean, LineLife); got != 300 {
		t.Fatalf("life: expected 300, got %f", got)
	}
	if got := e.BasePremium(clean, LineDisability); got != 600 {
		t.Fatalf("disability: expected 600, got %f", got)
	}
	// Unknown lines fall back to the health base.
	if got := e.BasePremium(clean, "pet"); got != 3600 {
		t.Fatalf("fallback: expected 3600, got %f", got)
	}
}

func TestComprehensiveAssessment(t *testing.T) {
	e := newTestEngine()

	health := HealthProfile{Age: 42, Gender: "female", Height: 165, Weight: 85, Smoking: false}
	property := &PropertyProfile{
		PropertyType: "single-family", PropertyValue: 400000,
		YearBuilt: 1995, Mortgage: true,
	}
	financial := FinancialProfile{AnnualIncome: 90000, Dependents: 2, MonthlyExpenses: 4000, Savings: 30000}

	a := e.Comprehensive(health, property, financial)

	if len(a.Recommendations) < 3 {
		t.Fatalf("expected health, life and property recommendations, got %d", len(a.Recommendations))
	}

	var total, coverage float64
	for _, r := range a.Recommendations {
		total += r.AnnualPremium
		coverage += r.CoverageAmount
		if r.MonthlyPremium != round2(r.AnnualPremium/12) {
			t.Fatalf("%s: monthly premium does not reconcile", r.InsuranceType)
		}
	}
	if a.TotalAnnualPremium != round2(total) {
		t.Fatalf("total premium mismatch: %f vs %f", a.TotalAnnualPremium, total)
	}
	if a.TotalCoverage != coverage {
		t.Fatalf("total coverage mismatch: %f vs %f", a.TotalCoverage, coverage)
	}
	if a.CriticalRecommendations+a.RequiredRecommendations != len(a.Recommendations) {
		t.Fatal("priority counts do not reconcile")
	}
	if a.AssessmentDate == "" {
		t.Fatal("expected assessment date")
	}
}

func TestComprehensiveWithoutProperty(t *testing.T) {
	e := newTestEngine()
	a := e.Comprehensive(
		HealthProfile{Age: 30, Height: 175, Weight: 70},
		nil,
		FinancialProfile{AnnualIncome: 60000},
	)
	for _, r := range a.Recommendations {
		if r.InsuranceType == LineProperty {
			t.Fatal("expected no property recommendation without a property profile")
		}
	}
}

func TestQuickQuoteHealth(t *testing.T) {
	e := newTestEngine()

	q, err := e.QuickQuote(QuoteRequest{InsuranceType: "health", Age: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.EstimatedAnnualPremium != 3600 {
		t.Fatalf("expected 3600, got %f", q.EstimatedAnnualPremium)
	}
	if q.CoverageAmount != 36000 {
		t.Fatalf("expected coverage 36000, got %f", q.CoverageAmount)
	}

	if _, err := e.QuickQuote(QuoteRequest{InsuranceType: "health"}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestQuickQuoteLifeDefaultsAge(t *testing.T) {
	e := newTestEngine()

	q, err := e.QuickQuote(QuoteRequest{InsuranceType: "life", AnnualIncome: 80000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.CoverageAmount != 800000 {
		t.Fatalf("expected 10x income coverage, got %f", q.CoverageAmount)
	}

	if _, err := e.QuickQuote(QuoteRequest{InsuranceType: "life"}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestQuickQuoteProperty(t *testing.T) {
	e := newTestEngine()

	q, err := e.QuickQuote(QuoteRequest{InsuranceType: "property", PropertyValue: 500000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.EstimatedAnnualPremium != 2000 {
		t.Fatalf("expected 2000, got %f", q.EstimatedAnnualPremium)
	}
	if q.CoverageAmount != 500000 {
		t.Fatalf("expected coverage 500000, got %f", q.CoverageAmount)
	}
}

func TestQuickQuoteUnknownLine(t *testing.T) {
	if _, err := newTestEngine().QuickQuote(QuoteRequest{InsuranceType: "pet"}); !errors.Is(err, ErrUnknownLine) {
		t.Fatalf("expected ErrUnknownLine, got %v", err)
	}
}

func TestPropertyPremiumLoadings(t *testing.T) {
	base := propertyPremium(PropertyProfile{PropertyValue: 100000, YearBuilt: 2000})
	if math.Abs(base-400) > 0.01 {
		t.Fatalf("expected ~400, got %f", base)
	}

	old := propertyPremium(PropertyProfile{PropertyValue: 100000, YearBuilt: 1975})
	if math.Abs(old-500) > 0.01 {
		t.Fatalf("expected ~500 for pre-1980, got %f", old)
	}

	secured := propertyPremium(PropertyProfile{
		PropertyValue: 100000, YearBuilt: 2000,
		SecurityFeatures: []string{"alarm", "cameras", "deadbolts", "guard"},
	})
	// Discount caps at three features.
	if math.Abs(secured-340) > 0.01 {
		t.Fatalf("expected ~340, got %f", secured)
	}
}

func TestCatalogs(t *testing.T) {
	if len(Lines()) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(Lines()))
	}
	rf := RiskFactors()
	if len(rf.Health) != 5 || len(rf.Property) != 5 || len(rf.Financial) != 4 {
		t.Fatal("unexpected risk factor catalog shape")
	}
}
