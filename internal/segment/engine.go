package segment

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var priorityRank = map[string]int{
	"critical":    4,
	"required":    3,
	"recommended": 2,
	"optional":    1,
}

// Engine derives customer profiles and prioritized product recommendations
// for sales staff.
type Engine struct {
	log *zap.Logger
}

func NewEngine(log *zap.Logger) *Engine {
	return &Engine{log: log}
}

// Analyze builds the full staff guidance package for one customer record.
func (e *Engine) Analyze(data CustomerData) Guidance {
	profile := e.profile(data)
	recs := e.recommendations(data, profile)

	g := Guidance{
		CustomerProfile:        profile,
		ProductRecommendations: recs,
		NextBestActions:        nextBestActions(profile, recs),
		FollowUpTimeline: map[string]string{
			"immediate": "Send personalized quote via email",
			"24_hours":  "Follow-up call to address questions",
			"3_days":    "Special offer deadline reminder",
			"1_week":    "Alternative product options if needed",
			"2_weeks":   "Check-in and needs reassessment",
		},
	}

	e.log.Info("customer analysis completed",
		zap.String("customer_id", profile.CustomerID),
		zap.String("segment", string(profile.Segment)),
		zap.Int("recommendations", len(recs)))

	return g
}

func (e *Engine) profile(data CustomerData) CustomerProfile {
	seg := classify(data)
	affordability := affordabilityLevel(data.Financial)
	risk := riskProfile(data)
	budget := monthlyBudget(data.Financial.AnnualIncome, affordability)

	id := data.CustomerID
	if id == "" {
		id = "CUST_" + uuid.NewString()
	}

	return CustomerProfile{
		CustomerID:            id,
		Segment:               seg,
		AffordabilityLevel:    affordability,
		RiskProfile:           risk,
		MonthlyBudget:         round2(budget),
		LifetimeValueEstimate: round2(budget * 12 * lifetimeValueMultipliers[seg]),
		ConversionProbability: conversionProbability(seg, data),
		KeyMotivators:         motivators(data),
		PainPoints:            painPoints(data, affordability),
		RecommendedApproach:   approach(seg, risk),
	}
}

// classify segments by wealth first, then life stage.
func classify(data CustomerData) Segment {
	age := data.Health.Age
	hasDependents := len(data.Health.FamilyMembers) > 0

	switch {
	case data.Financial.AnnualIncome >= 200000 || data.Property.PropertyValue >= 1000000:
		return HighNetWorth
	case age <= 30:
		return YoungProfessional
	case age <= 45 && hasDependents:
		return FamilyBuilder
	case age <= 55:
		return EstablishedFamily
	case age <= 65:
		return PreRetiree
	default:
		return Retiree
	}
}

func affordabilityLevel(f FinancialData) Affordability {
	switch {
	case f.AnnualIncome >= 150000 && f.DebtToIncomeRatio < 0.2:
		return AffordabilityLuxury
	case f.AnnualIncome >= 80000 && f.DebtToIncomeRatio < 0.3:
		return AffordabilityPremium
	case f.AnnualIncome >= 40000 && f.DebtToIncomeRatio < 0.4:
		return AffordabilityStandard
	default:
		return AffordabilityBasic
	}
}

func riskProfile(data CustomerData) RiskProfile {
	total := len(data.Health.MedicalConditions)*2 + lifestyleScore(data.Health) + propertyScore(data.Safety)

	switch {
	case total >= 15:
		return ProfileHighRisk
	case total >= 10:
		return ProfileAggressive
	case total >= 5:
		return ProfileModerate
	default:
		return ProfileConservative
	}
}

func lifestyleScore(h HealthData) int {
	score := 0
	if h.Smoking {
		score += 5
	}

	switch h.DrinkingFrequency {
	case "regularly", "heavy":
		score += 3
	case "occasionally":
		score++
	}

	switch h.ExerciseFrequency {
	case "never":
		score += 3
	case "light":
		score++
	}

	return score
}

func propertyScore(s SafetyData) int {
	score := 0
	score += hazardScore(s.FloodRisk)
	score += hazardScore(s.EarthquakeRisk)
	return score
}

func hazardScore(level string) int {
	switch level {
	case "high":
		return 4
	case "moderate":
		return 2
	case "low":
		return 1
	}
	return 0
}

func monthlyBudget(annualIncome float64, a Affordability) float64 {
	return annualIncome / 12 * affordabilityRates[a]
}

// conversionProbability starts from the segment base rate and adds 0.1 for
// each engagement signal, capped at 1.0.
func conversionProbability(seg Segment, data CustomerData) float64 {
	p := conversionRates[seg]

	if data.Health.Name != "" {
		p += 0.1
	}
	if len(data.Financial.FinancialGoals) > 3 {
		p += 0.1
	}
	if data.Property.PropertyValue > 0 {
		p += 0.1
	}

	return math.Min(1.0, math.Round(p*100)/100)
}

func motivators(data CustomerData) []string {
	var out []string

	if len(data.Health.FamilyMembers) > 0 {
		out = append(out, "Family protection and security")
	}

	goals := data.Financial.FinancialGoals
	if contains(goals, "retirement_planning") {
		out = append(out, "Long-term financial planning")
	}
	if contains(goals, "emergency_fund") {
		out = append(out, "Emergency preparedness")
	}

	if len(data.Health.MedicalConditions) > 0 {
		out = append(out, "Managing existing health conditions")
	}
	if data.Property.PropertyValue > 0 {
		out = append(out, "Asset protection")
	}

	if len(out) == 0 {
		out = []string{"Peace of mind", "Financial security"}
	}
	return out
}

func painPoints(data CustomerData, affordability Affordability) []string {
	var out []string

	if affordability == AffordabilityBasic {
		out = append(out, "Budget constraints and affordability")
	}
	if data.Health.Age >= 60 {
		out = append(out, "Complex insurance terms and conditions")
	}
	if len(data.Health.ExistingInsurance) == 0 {
		out = append(out, "Uncertainty about insurance value and claims process")
	}
	if len(data.Health.MedicalConditions) > 0 {
		out = append(out, "Pre-existing condition coverage concerns")
	}

	return out
}

func approach(seg Segment, risk RiskProfile) string {
	strategy := approachStrategies[seg]

	switch risk {
	case ProfileHighRisk:
		strategy += ". Address risk factors with specialized coverage options."
	case ProfileConservative:
		strategy += ". Build trust with transparent, straightforward products."
	}
	return strategy
}

func (e *Engine) recommendations(data CustomerData, profile CustomerProfile) []ProductRecommendation {
	var recs []ProductRecommendation

	if r := recommendHealth(data, profile); r != nil {
		recs = append(recs, *r)
	}
	if r := recommendLife(data, profile); r != nil {
		recs = append(recs, *r)
	}
	if r := recommendProperty(data, profile); r != nil {
		recs = append(recs, *r)
	}
	if r := recommendAuto(data, profile); r != nil {
		recs = append(recs, *r)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if priorityRank[recs[i].Priority] != priorityRank[recs[j].Priority] {
			return priorityRank[recs[i].Priority] > priorityRank[recs[j].Priority]
		}
		return recs[i].ConfidenceScore > recs[j].ConfidenceScore
	})

	return recs
}

func recommendHealth(data CustomerData, profile CustomerProfile) *ProductRecommendation {
	for _, ins := range data.Health.ExistingInsurance {
		if strings.Contains(strings.ToLower(ins), "health") {
			return nil
		}
	}

	hasConditions := len(data.Health.MedicalConditions) > 0

	tier := "basic"
	switch {
	case profile.AffordabilityLevel == AffordabilityLuxury ||
		profile.AffordabilityLevel == AffordabilityPremium || hasConditions:
		tier = "premium"
	case profile.AffordabilityLevel == AffordabilityStandard:
		tier = "standard"
	}

	p := productCatalog["health_insurance"][tier]
	premium := adjustedPremium(p.BasePremium, data)

	rationale := []string{
		fmt.Sprintf("Customer segment (%s) shows high need for health protection", profile.Segment),
		fmt.Sprintf("Affordability level (%s) matches %s tier pricing", profile.AffordabilityLevel, tier),
		fmt.Sprintf("Monthly premium ($%.0f) fits within budget ($%.0f)", premium, profile.MonthlyBudget),
	}
	if hasConditions {
		rationale = append(rationale, "Pre-existing conditions indicate immediate coverage need")
	}

	var upsells []string
	switch tier {
	case "basic":
		upsells = []string{"Dental and vision add-on coverage", "Wellness program enrollment"}
	case "standard":
		upsells = []string{"International coverage extension", "Alternative medicine coverage"}
	}

	priority := "required"
	if hasConditions || profile.Segment == FamilyBuilder || profile.Segment == EstablishedFamily {
		priority = "critical"
	}
	confidence := 0.7
	if premium <= profile.MonthlyBudget*0.6 {
		confidence = 0.9
	}

	return &ProductRecommendation{
		ProductType:         "health_insurance",
		ProductName:         p.Name,
		MonthlyPremium:      premium,
		CoverageAmount:      p.Coverage,
		Priority:            priority,
		ConfidenceScore:     confidence,
		BusinessRationale:   rationale,
		UpsellOpportunities: upsells,
		CompetitiveAdvantages: []string{
			"No waiting period for accidents",
			"24/7 telemedicine included",
			"Network of 50,000+ healthcare providers",
		},
	}
}

func recommendLife(data CustomerData, profile CustomerProfile) *ProductRecommendation {
	age := data.Health.Age
	dependents := len(data.Health.FamilyMembers)

	if age > 70 || dependents == 0 {
		return nil
	}

	tier := "term"
	if (profile.AffordabilityLevel == AffordabilityLuxury ||
		profile.AffordabilityLevel == AffordabilityPremium) && age < 50 {
		tier = "whole"
	}

	p := productCatalog["life_insurance"][tier]
	premium := adjustedPremium(p.BasePremium, data)

	// Dependents warrant 8x income coverage; 5x otherwise.
	coverage := data.Financial.AnnualIncome * 8

	var upsells []string
	if tier == "term" {
		upsells = []string{"Conversion option to whole life", "Accidental death benefit rider"}
	} else {
		upsells = []string{"Long-term care rider", "Disability waiver of premium"}
	}

	priority := "required"
	if dependents > 1 {
		priority = "critical"
	}
	confidence := 0.65
	if premium <= profile.MonthlyBudget*0.4 {
		confidence = 0.85
	}

	return &ProductRecommendation{
		ProductType:     "life_insurance",
		ProductName:     p.Name,
		MonthlyPremium:  premium,
		CoverageAmount:  coverage,
		Priority:        priority,
		ConfidenceScore: confidence,
		BusinessRationale: []string{
			fmt.Sprintf("Family protection need identified (%d dependents)", dependents),
			fmt.Sprintf("Recommended coverage: $%.0f (8x annual income)", coverage),
			fmt.Sprintf("Product type (%s) aligns with age (%d) and financial profile", tier, age),
		},
		UpsellOpportunities: upsells,
		CompetitiveAdvantages: []string{
			"No medical exam for qualified applicants",
			"Accelerated death benefit included",
			"Guaranteed renewable coverage",
		},
	}
}

func recommendProperty(data CustomerData, profile CustomerProfile) *ProductRecommendation {
	value := data.Property.PropertyValue
	if value == 0 || data.Property.PropertyType == "" {
		return nil
	}

	tier := "basic"
	if value >= 500000 ||
		profile.AffordabilityLevel == AffordabilityLuxury ||
		profile.AffordabilityLevel == AffordabilityPremium {
		tier = "comprehensive"
	}

	p := productCatalog["property_insurance"][tier]
	premium := math.Max(p.BasePremium, value*0.001)

	rationale := []string{
		fmt.Sprintf("Property value ($%.0f) requires adequate protection", value),
		fmt.Sprintf("Property type (%s) matches %s coverage level", data.Property.PropertyType, tier),
	}
	if data.Safety.FloodRisk != "" && data.Safety.FloodRisk != "none" {
		rationale = append(rationale, "Flood risk identified - flood coverage essential")
	}
	if data.Safety.EarthquakeRisk != "" && data.Safety.EarthquakeRisk != "none" {
		rationale = append(rationale, "Earthquake risk identified - seismic coverage recommended")
	}

	priority := "recommended"
	if value >= 200000 {
		priority = "required"
	}
	confidence := 0.6
	if premium <= profile.MonthlyBudget*0.3 {
		confidence = 0.8
	}

	return &ProductRecommendation{
		ProductType:       "property_insurance",
		ProductName:       p.Name,
		MonthlyPremium:    round2(premium),
		CoverageAmount:    p.Coverage,
		Priority:          priority,
		ConfidenceScore:   confidence,
		BusinessRationale: rationale,
		UpsellOpportunities: []string{
			"Personal property replacement cost coverage",
			"Additional living expenses coverage",
			"Identity theft protection",
		},
		CompetitiveAdvantages: []string{
			"Actual cash value to replacement cost upgrade available",
			"24/7 claims hotline with rapid response",
			"Preferred contractor network for repairs",
		},
	}
}

// recommendAuto infers vehicle ownership from the working-age segments.
func recommendAuto(data CustomerData, profile CustomerProfile) *ProductRecommendation {
	if data.Health.Age < 16 {
		return nil
	}

	switch profile.Segment {
	case YoungProfessional, FamilyBuilder, EstablishedFamily, HighNetWorth:
	default:
		return nil
	}

	tier := "liability"
	if profile.AffordabilityLevel == AffordabilityLuxury || profile.AffordabilityLevel == AffordabilityPremium {
		tier = "comprehensive"
	}

	p := productCatalog["auto_insurance"][tier]
	premium := adjustedPremium(p.BasePremium, data)

	var upsells []string
	if tier == "liability" {
		upsells = []string{"Comprehensive and collision coverage", "Rental car coverage"}
	} else {
		upsells = []string{"Gap coverage for financed vehicles", "Roadside assistance premium"}
	}

	return &ProductRecommendation{
		ProductType:     "auto_insurance",
		ProductName:     p.Name,
		MonthlyPremium:  premium,
		CoverageAmount:  p.Coverage,
		Priority:        "required",
		ConfidenceScore: 0.7, // ownership is inferred, not confirmed
		BusinessRationale: []string{
			fmt.Sprintf("Customer profile (%s) indicates vehicle ownership likelihood", profile.Segment),
			fmt.Sprintf("Coverage level (%s) matches affordability and needs", tier),
			fmt.Sprintf("Age group (%d) requires appropriate liability protection", data.Health.Age),
		},
		UpsellOpportunities: upsells,
		CompetitiveAdvantages: []string{
			"Multi-policy discount available",
			"Safe driver rewards program",
			"Mobile app for claims and policy management",
		},
	}
}

// adjustedPremium loads the base premium for age band, condition count
// (10% each) and lifestyle score (5% per point).
func adjustedPremium(base float64, data CustomerData) float64 {
	ageMultiplier := 1.0
	for _, band := range ageMultipliers {
		if data.Health.Age >= band.Min && data.Health.Age <= band.Max {
			ageMultiplier = band.Multiplier
			break
		}
	}

	healthMultiplier := 1.0 + float64(len(data.Health.MedicalConditions))*0.1
	lifestyleMultiplier := 1.0 + float64(lifestyleScore(data.Health))*0.05

	return round2(base * ageMultiplier * healthMultiplier * lifestyleMultiplier)
}

// nextBestActions lists the concrete follow-ups for the agent.
func nextBestActions(profile CustomerProfile, recs []ProductRecommendation) []string {
	actions := []string{"Offer to calculate exact premium with additional details"}

	if len(recs) > 0 {
		actions = append([]string{
			"Present " + recs[0].ProductName + " as the primary option",
		}, actions...)
	}

	if profile.Segment == FamilyBuilder || profile.Segment == EstablishedFamily {
		actions = append(actions, "Schedule follow-up appointment for family consultation")
	} else {
		actions = append(actions, "Provide digital enrollment options")
	}

	return actions
}

// Report totals a guidance package for management, including the estimated
// commission from the catalog rates.
func (e *Engine) Report(g Guidance) SalesReport {
	var r SalesReport

	r.CustomerSummary.Segment = g.CustomerProfile.Segment
	r.CustomerSummary.Affordability = g.CustomerProfile.AffordabilityLevel
	r.CustomerSummary.RiskProfile = g.CustomerProfile.RiskProfile
	r.CustomerSummary.LifetimeValue = g.CustomerProfile.LifetimeValueEstimate
	r.CustomerSummary.ConversionProbability = g.CustomerProfile.ConversionProbability

	var totalPremium, totalCoverage, totalCommission float64
	for _, rec := range g.ProductRecommendations {
		totalPremium += rec.MonthlyPremium
		totalCoverage += rec.CoverageAmount

		for _, p := range productCatalog[rec.ProductType] {
			if p.Name == rec.ProductName {
				totalCommission += rec.MonthlyPremium * 12 * p.Commission
				break
			}
		}

		r.Recommendations = append(r.Recommendations, ReportLine{
			Product:        rec.ProductName,
			Priority:       rec.Priority,
			Confidence:     rec.ConfidenceScore,
			MonthlyPremium: rec.MonthlyPremium,
			Coverage:       rec.CoverageAmount,
		})
	}

	r.SalesOpportunity.TotalMonthlyPremium = round2(totalPremium)
	r.SalesOpportunity.TotalAnnualPremium = round2(totalPremium * 12)
	r.SalesOpportunity.TotalCoverageAmount = round2(totalCoverage)
	r.SalesOpportunity.EstimatedAnnualCommission = round2(totalCommission)
	r.SalesOpportunity.NumberOfProducts = len(g.ProductRecommendations)

	r.SuccessFactors.KeyMotivators = g.CustomerProfile.KeyMotivators
	r.SuccessFactors.ApproachStrategy = g.CustomerProfile.RecommendedApproach
	r.SuccessFactors.PrimaryConcerns = g.CustomerProfile.PainPoints

	return r
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
