package insurance

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrUnknownLine is returned for quote requests naming an unsupported
// insurance line.
var ErrUnknownLine = errors.New("unknown insurance type")

// ErrMissingField is returned when a quick quote lacks the input its line
// requires.
var ErrMissingField = errors.New("missing required field")

// highRiskConditions drive the +2 score per pre-existing condition. Matching
// is substring-based so "type 2 diabetes" counts.
var highRiskConditions = []string{"diabetes", "heart disease", "hypertension", "cancer"}

// monthlyBasePremiums are the unadjusted monthly rates per line.
var monthlyBasePremiums = map[string]float64{
	LineHealth:     300,
	LineLife:       25,
	LineDisability: 50,
}

// Engine prices insurance products from health, property and financial
// profiles.
type Engine struct {
	log *zap.Logger
}

func NewEngine(log *zap.Logger) *Engine {
	return &Engine{log: log}
}

// AssessBMI grades the BMI for underwriting. Inputs must be positive; the
// boundary validates.
func (e *Engine) AssessBMI(heightCm, weightKg float64) BMIAssessment {
	heightM := heightCm / 100
	bmi := math.Round(weightKg/(heightM*heightM)*100) / 100

	a := BMIAssessment{
		Value:                 bmi,
		CardiovascularWarning: bmi >= 30,
		Recommendations:       bmiRecommendations(bmi),
		InsuranceImpact:       insuranceImpact(bmi),
	}

	switch {
	case bmi < 18.5:
		a.Category = "Underweight"
		a.RiskLevel = "Moderate"
		a.HealthImpact = "May indicate malnutrition or underlying health issues"
	case bmi < 25:
		a.Category = "Normal Weight"
		a.RiskLevel = "Low"
		a.HealthImpact = "Optimal weight range for good health"
	case bmi < 30:
		a.Category = "Overweight"
		a.RiskLevel = "Moderate"
		a.HealthImpact = "Increased risk of cardiovascular disease and diabetes"
	default:
		a.Category = "Obese"
		a.RiskLevel = "High"
		a.HealthImpact = "HIGH CARDIOVASCULAR RISK: BMI > 30 indicates obesity, significantly increasing risk of heart disease, stroke, and diabetes"
	}

	return a
}

func bmiRecommendations(bmi float64) []string {
	switch {
	case bmi < 18.5:
		return []string{
			"Consult healthcare provider about healthy weight gain",
			"Consider nutritional counseling",
			"Evaluate for underlying health conditions",
			"Focus on nutrient-dense foods",
		}
	case bmi < 25:
		return []string{
			"Maintain current weight through balanced diet",
			"Continue regular physical activity",
			"Regular health check-ups",
			"Focus on overall wellness",
		}
	case bmi < 30:
		return []string{
			"Aim for gradual weight loss (1-2 lbs per week)",
			"Increase physical activity to 150+ minutes weekly",
			"Adopt portion control strategies",
			"Consider consulting a nutritionist",
		}
	default:
		return []string{
			"URGENT: Consult healthcare provider immediately",
			"Consider structured weight management program",
			"Increase physical activity gradually under supervision",
			"Adopt calorie-controlled, balanced diet",
			"Monitor blood pressure and blood sugar regularly",
			"Consider wellness plan with weight management support",
		}
	}
}

func insuranceImpact(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "May require additional health screening for life and health insurance"
	case bmi < 25:
		return "Qualifies for standard insurance rates"
	case bmi < 30:
		return "May result in slightly higher premiums (10-20% increase)"
	default:
		return "Significant impact on premiums (30-50% increase). May require medical examination"
	}
}

// AssessRisks builds the additive risk score: obesity +3 or overweight +1,
// smoking +3, age 50+ +1, each high-risk condition +2. Scores of 6 grade
// high, 3 grade moderate.
func (e *Engine) AssessRisks(p HealthProfile) RiskAssessment {
	bmiData := e.AssessBMI(p.Height, p.Weight)
	bmi := bmiData.Value

	var risks []RiskFactor
	var recs []string
	score := 0

	if bmi >= 30 {
		risks = append(risks, RiskFactor{
			Factor:      "Obesity (BMI ≥ 30)",
			Level:       "High",
			Description: "Significantly increased cardiovascular risk",
			Impact:      "Major impact on insurance premiums and health outcomes",
		})
		score += 3
		recs = append(recs,
			"Immediate medical consultation for weight management",
			"Structured diet and exercise program",
			"Regular cardiovascular monitoring")
	} else if bmi >= 25 {
		risks = append(risks, RiskFactor{
			Factor:      "Overweight (BMI 25-30)",
			Level:       "Moderate",
			Description: "Elevated risk of health complications",
			Impact:      "Moderate impact on insurance premiums",
		})
		score++
	}

	if p.Smoking {
		risks = append(risks, RiskFactor{
			Factor:      "Smoking",
			Level:       "High",
			Description: "Major risk factor for cancer, heart disease, and stroke",
			Impact:      "Significant increase in life and health insurance premiums",
		})
		score += 3
		recs = append(recs, "Smoking cessation program recommended")
	}

	if p.Age >= 50 {
		risks = append(risks, RiskFactor{
			Factor:      "Age (50+)",
			Level:       "Moderate",
			Description: "Natural increase in health risks with age",
			Impact:      "Age-based premium adjustments",
		})
		score++
	}

	for _, condition := range p.MedicalConditions {
		lower := strings.ToLower(condition)
		for _, risky := range highRiskConditions {
			if strings.Contains(lower, risky) {
				risks = append(risks, RiskFactor{
					Factor:      "Medical Condition: " + condition,
					Level:       "High",
					Description: "Pre-existing condition requiring ongoing management",
					Impact:      "Significant impact on insurance coverage and premiums",
				})
				score += 2
				recs = append(recs, "Regular monitoring and management of "+condition)
				break
			}
		}
	}

	overall := "Low"
	message := "Low overall health risk. Maintain current healthy lifestyle."
	switch {
	case score >= 6:
		overall = "High"
		message = "Multiple high-risk factors present. Immediate healthcare consultation recommended."
	case score >= 3:
		overall = "Moderate"
		message = "Some risk factors present. Regular health monitoring recommended."
	}

	return RiskAssessment{
		OverallRisk:              overall,
		RiskScore:                score,
		RiskMessage:              message,
		IndividualRisks:          risks,
		Recommendations:          recs,
		BMIAssessment:            bmiData,
		CardiovascularRisk:       bmi >= 30 || p.Smoking,
		InsuranceRecommendations: lineRecommendations(score, bmi),
	}
}

func lineRecommendations(score int, bmi float64) []LineRecommendation {
	var recs []LineRecommendation

	if score >= 3 || bmi >= 30 {
		recs = append(recs, LineRecommendation{
			Type:               "Health Insurance",
			Priority:           "Critical",
			Reason:             "High health risks require comprehensive coverage",
			CoverageSuggestion: "Maximum available coverage with wellness programs",
		})
	} else {
		recs = append(recs, LineRecommendation{
			Type:               "Health Insurance",
			Priority:           "Important",
			Reason:             "Essential coverage for unexpected medical costs",
			CoverageSuggestion: "Standard coverage with preventive care",
		})
	}

	if score >= 4 {
		recs = append(recs, LineRecommendation{
			Type:               "Life Insurance",
			Priority:           "Critical",
			Reason:             "High-risk profile requires immediate life coverage",
			CoverageSuggestion: "Term life insurance with accelerated underwriting",
		})
	} else {
		recs = append(recs, LineRecommendation{
			Type:               "Life Insurance",
			Priority:           "Important",
			Reason:             "Financial protection for dependents",
			CoverageSuggestion: "Term life insurance for income replacement",
		})
	}

	if score >= 2 {
		recs = append(recs, LineRecommendation{
			Type:               "Disability Insurance",
			Priority:           "Important",
			Reason:             "Health risks increase likelihood of disability",
			CoverageSuggestion: "Short and long-term disability coverage",
		})
	}

	return recs
}

// BasePremium prices an annual premium for a line by stacking multipliers on
// the monthly base: BMI, age, smoking and condition count.
func (e *Engine) BasePremium(p HealthProfile, line string) float64 {
	base, ok := monthlyBasePremiums[line]
	if !ok {
		base = monthlyBasePremiums[LineHealth]
	}

	bmi := e.AssessBMI(p.Height, p.Weight).Value

	multiplier := 1.0
	switch {
	case bmi >= 35:
		multiplier = 2.0
	case bmi >= 30:
		multiplier = 1.5
	case bmi >= 25:
		multiplier = 1.2
	}

	switch {
	case p.Age >= 60:
		multiplier *= 1.8
	case p.Age >= 50:
		multiplier *= 1.4
	case p.Age >= 40:
		multiplier *= 1.2
	}

	if p.Smoking {
		multiplier *= 2.5
	}

	switch n := len(p.MedicalConditions); {
	case n >= 2:
		multiplier *= 1.8
	case n >= 1:
		multiplier *= 1.3
	}

	return base * multiplier * 12
}

// Comprehensive runs the full assessment across health, property and
// financial profiles and totals the recommendations. The property profile is
// optional (nil when the customer has no property to cover).
func (e *Engine) Comprehensive(health HealthProfile, property *PropertyProfile, financial FinancialProfile) Assessment {
	assessment := e.AssessRisks(health)

	var recs []Recommendation

	healthPremium := e.BasePremium(health, LineHealth)
	recs = append(recs, Recommendation{
		InsuranceType:  LineHealth,
		ProductName:    "Comprehensive Health Plan",
		AnnualPremium:  round2(healthPremium),
		MonthlyPremium: round2(healthPremium / 12),
		CoverageAmount: round2(healthPremium * 10),
		Deductible:     1000,
		RiskLevel:      assessment.OverallRisk,
		Priority:       "critical",
		Features:       []string{"Comprehensive medical coverage", "Prescription drugs", "Preventive care"},
		Exclusions:     []string{"Cosmetic procedures", "Experimental treatments"},
		Explanation:    "Based on BMI assessment and health risk factors. " + assessment.RiskMessage,
	})

	// Life coverage sized to replace income for dependents.
	if financial.Dependents > 0 || financial.AnnualIncome > 0 {
		lifePremium := e.BasePremium(health, LineLife)
		coverage := financial.AnnualIncome * 10
		priority := "recommended"
		if financial.Dependents > 0 {
			priority = "required"
		}
		recs = append(recs, Recommendation{
			InsuranceType:  LineLife,
			ProductName:    "Term Life Protection",
			AnnualPremium:  round2(lifePremium),
			MonthlyPremium: round2(lifePremium / 12),
			CoverageAmount: round2(coverage),
			Deductible:     0,
			RiskLevel:      assessment.OverallRisk,
			Priority:       priority,
			Features:       []string{"Income replacement", "Fixed premiums", "Convertible term"},
			Exclusions:     []string{"Suicide within 2 years", "Fraudulent misrepresentation"},
			Explanation:    fmt.Sprintf("Coverage sized at 10x annual income for %d dependent(s).", financial.Dependents),
		})
	}

	if property != nil && property.PropertyValue > 0 {
		propertyPremium := propertyPremium(*property)
		recs = append(recs, Recommendation{
			InsuranceType:  LineProperty,
			ProductName:    "Homeowner Shield",
			AnnualPremium:  round2(propertyPremium),
			MonthlyPremium: round2(propertyPremium / 12),
			CoverageAmount: round2(property.PropertyValue),
			Deductible:     round2(property.PropertyValue * 0.01),
			RiskLevel:      propertyRiskLevel(*property),
			Priority:       propertyPriority(*property),
			Features:       []string{"Dwelling coverage", "Personal property", "Liability protection"},
			Exclusions:     []string{"Flood damage (separate policy)", "Earthquake (separate rider)"},
			Explanation:    "Premium reflects property value, age and claims history.",
		})
	}

	if assessment.RiskScore >= 2 {
		disabilityPremium := e.BasePremium(health, LineDisability)
		recs = append(recs, Recommendation{
			InsuranceType:  LineDisability,
			ProductName:    "Income Guard Disability",
			AnnualPremium:  round2(disabilityPremium),
			MonthlyPremium: round2(disabilityPremium / 12),
			CoverageAmount: round2(financial.AnnualIncome * 0.6),
			Deductible:     0,
			RiskLevel:      assessment.OverallRisk,
			Priority:       "recommended",
			Features:       []string{"60% income replacement", "Own-occupation coverage"},
			Exclusions:     []string{"Pre-existing conditions (first 12 months)"},
			Explanation:    "Health risks increase the likelihood of work interruption.",
		})
	}

	summary := Summarize(recs)

	e.log.Info("comprehensive assessment completed",
		zap.Float64("total_annual_premium", summary.TotalAnnualPremium),
		zap.Int("recommendations", len(recs)))

	return Assessment{
		Summary:         summary,
		Recommendations: recs,
		AssessmentDate:  time.Now().UTC().Format(time.RFC3339),
		UserProfileSummary: map[string]interface{}{
			"age":           health.Age,
			"bmi":           math.Round(assessment.BMIAssessment.Value*10) / 10,
			"bmi_category":  assessment.BMIAssessment.Category,
			"dependents":    financial.Dependents,
			"annual_income": financial.AnnualIncome,
			"risk_factors": map[string]interface{}{
				"smoking":            health.Smoking,
				"medical_conditions": len(health.MedicalConditions),
				"high_bmi":           assessment.BMIAssessment.Value >= 30,
			},
		},
	}
}

// Summarize totals a recommendation set.
func Summarize(recs []Recommendation) Summary {
	var s Summary
	for _, r := range recs {
		s.TotalAnnualPremium += r.AnnualPremium
		s.TotalCoverage += r.CoverageAmount
		if r.Priority == "critical" {
			s.CriticalRecommendations++
		} else {
			s.RequiredRecommendations++
		}
	}
	s.TotalAnnualPremium = round2(s.TotalAnnualPremium)
	s.TotalMonthlyPremium = round2(s.TotalAnnualPremium / 12)
	return s
}

// QuickQuote prices a single line from minimal inputs. Missing required
// fields return ErrMissingField.
func (e *Engine) QuickQuote(req QuoteRequest) (Quote, error) {
	const note = "Quote based on basic profile. Complete assessment for accurate pricing."

	switch strings.ToLower(req.InsuranceType) {
	case LineHealth:
		if req.Age <= 0 {
			return Quote{}, fmt.Errorf("%w: age required for health insurance quote", ErrMissingField)
		}
		profile := minimalProfile(req.Age, req.HealthConditions)
		premium := e.BasePremium(profile, LineHealth)
		return Quote{
			InsuranceType:           LineHealth,
			EstimatedAnnualPremium:  round2(premium),
			EstimatedMonthlyPremium: round2(premium / 12),
			CoverageAmount:          round2(premium * 10),
			RiskLevel:               e.AssessRisks(profile).OverallRisk,
			Note:                    note,
		}, nil

	case LineLife:
		if req.AnnualIncome <= 0 {
			return Quote{}, fmt.Errorf("%w: annual income required for life insurance quote", ErrMissingField)
		}
		age := req.Age
		if age <= 0 {
			age = 35
		}
		profile := minimalProfile(age, req.HealthConditions)
		premium := e.BasePremium(profile, LineLife)
		return Quote{
			InsuranceType:           LineLife,
			EstimatedAnnualPremium:  round2(premium),
			EstimatedMonthlyPremium: round2(premium / 12),
			CoverageAmount:          round2(req.AnnualIncome * 10),
			RiskLevel:               e.AssessRisks(profile).OverallRisk,
			Note:                    note,
		}, nil

	case LineProperty:
		if req.PropertyValue <= 0 {
			return Quote{}, fmt.Errorf("%w: property value required for property insurance quote", ErrMissingField)
		}
		property := PropertyProfile{
			PropertyType:  "single-family",
			PropertyValue: req.PropertyValue,
			YearBuilt:     2000,
			Mortgage:      true,
		}
		premium := propertyPremium(property)
		return Quote{
			InsuranceType:           LineProperty,
			EstimatedAnnualPremium:  round2(premium),
			EstimatedMonthlyPremium: round2(premium / 12),
			CoverageAmount:          round2(req.PropertyValue),
			RiskLevel:               propertyRiskLevel(property),
			Note:                    note,
		}, nil
	}

	return Quote{}, fmt.Errorf("%w: %s (use health, property, or life)", ErrUnknownLine, req.InsuranceType)
}

func minimalProfile(age int, conditions []string) HealthProfile {
	return HealthProfile{
		Age:               age,
		Gender:            "other",
		Height:            170,
		Weight:            70,
		ExerciseFrequency: "sometimes",
		MedicalConditions: conditions,
	}
}

// propertyPremium prices 0.4% of value annually, loaded 25% for pre-1980
// builds and 30% for prior claims, discounted 5% per security feature up to
// three.
func propertyPremium(p PropertyProfile) float64 {
	premium := p.PropertyValue * 0.004
	if p.YearBuilt < 1980 {
		premium *= 1.25
	}
	if p.PreviousClaims {
		premium *= 1.30
	}

	discounts := len(p.SecurityFeatures)
	if discounts > 3 {
		discounts = 3
	}
	premium *= 1 - 0.05*float64(discounts)

	return premium
}

func propertyRiskLevel(p PropertyProfile) string {
	if p.YearBuilt < 1980 || p.PreviousClaims {
		return "Moderate"
	}
	return "Low"
}

func propertyPriority(p PropertyProfile) string {
	if p.Mortgage {
		return "required"
	}
	return "recommended"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
