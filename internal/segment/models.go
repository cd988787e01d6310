package segment

// Segment buckets customers for targeted products.
type Segment string

const (
	YoungProfessional Segment = "young_professional"
	FamilyBuilder     Segment = "family_builder"
	EstablishedFamily Segment = "established_family"
	PreRetiree        Segment = "pre_retiree"
	Retiree           Segment = "retiree"
	HighNetWorth      Segment = "high_net_worth"
	BudgetConscious   Segment = "budget_conscious"
)

// Affordability grades what a customer can spend on coverage.
type Affordability string

const (
	AffordabilityBasic    Affordability = "basic"
	AffordabilityStandard Affordability = "standard"
	AffordabilityPremium  Affordability = "premium"
	AffordabilityLuxury   Affordability = "luxury"
)

// RiskProfile grades a customer's combined health, lifestyle and property
// risk.
type RiskProfile string

const (
	ProfileConservative RiskProfile = "conservative"
	ProfileModerate     RiskProfile = "moderate"
	ProfileAggressive   RiskProfile = "aggressive"
	ProfileHighRisk     RiskProfile = "high_risk"
)

// HealthData is the health slice of a customer record.
type HealthData struct {
	Name              string   `json:"name"`
	Age               int      `json:"age"`
	Smoking           bool     `json:"smoking"`
	DrinkingFrequency string   `json:"drinking_frequency"` // never, occasionally, regularly, heavy
	ExerciseFrequency string   `json:"exercise_frequency"` // never, light, moderate, active
	MedicalConditions []string `json:"medical_conditions"`
	FamilyMembers     []string `json:"family_members"`
	ExistingInsurance []string `json:"existing_insurance"`
}

// FinancialData is the financial slice of a customer record.
type FinancialData struct {
	AnnualIncome      float64  `json:"annual_income"`
	DebtToIncomeRatio float64  `json:"debt_to_income_ratio"`
	FinancialGoals    []string `json:"financial_goals"`
}

// PropertyData is the property slice of a customer record.
type PropertyData struct {
	PropertyType  string  `json:"property_type"`
	PropertyValue float64 `json:"property_value"`
}

// SafetyData carries location hazard exposure: none, low, moderate, high.
type SafetyData struct {
	FloodRisk      string `json:"flood_risk"`
	EarthquakeRisk string `json:"earthquake_risk"`
}

// CustomerData is the full customer record submitted for analysis.
type CustomerData struct {
	CustomerID string        `json:"customer_id"`
	Country    string        `json:"country"`
	Health     HealthData    `json:"health_data"`
	Financial  FinancialData `json:"financial_data"`
	Property   PropertyData  `json:"property_data"`
	Safety     SafetyData    `json:"safety_data"`
}

// CustomerProfile is the derived business view of a customer.
type CustomerProfile struct {
	CustomerID            string        `json:"customer_id"`
	Segment               Segment       `json:"segment"`
	AffordabilityLevel    Affordability `json:"affordability_level"`
	RiskProfile           RiskProfile   `json:"risk_profile"`
	MonthlyBudget         float64       `json:"monthly_budget"`
	LifetimeValueEstimate float64       `json:"lifetime_value_estimate"`
	ConversionProbability float64       `json:"conversion_probability"`
	KeyMotivators         []string      `json:"key_motivators"`
	PainPoints            []string      `json:"pain_points"`
	RecommendedApproach   string        `json:"recommended_approach"`
}

// ProductRecommendation is one prioritized product with its business case.
type ProductRecommendation struct {
	ProductType           string   `json:"product_type"`
	ProductName           string   `json:"product_name"`
	MonthlyPremium        float64  `json:"monthly_premium"`
	CoverageAmount        float64  `json:"coverage_amount"`
	Priority              string   `json:"priority"`
	ConfidenceScore       float64  `json:"confidence_score"`
	BusinessRationale     []string `json:"business_rationale"`
	UpsellOpportunities   []string `json:"upsell_opportunities"`
	CompetitiveAdvantages []string `json:"competitive_advantages"`
}

// Guidance is the complete package handed to sales staff.
type Guidance struct {
	CustomerProfile        CustomerProfile         `json:"customer_profile"`
	ProductRecommendations []ProductRecommendation `json:"product_recommendations"`
	NextBestActions        []string                `json:"next_best_actions"`
	FollowUpTimeline       map[string]string       `json:"follow_up_timeline"`
}

// SalesReport summarizes a guidance package for management.
type SalesReport struct {
	CustomerSummary struct {
		Segment               Segment       `json:"segment"`
		Affordability         Affordability `json:"affordability"`
		RiskProfile           RiskProfile   `json:"risk_profile"`
		LifetimeValue         float64       `json:"lifetime_value"`
		ConversionProbability float64       `json:"conversion_probability"`
	} `json:"customer_summary"`
	SalesOpportunity struct {
		TotalMonthlyPremium       float64 `json:"total_monthly_premium"`
		TotalAnnualPremium        float64 `json:"total_annual_premium"`
		TotalCoverageAmount       float64 `json:"total_coverage_amount"`
		EstimatedAnnualCommission float64 `json:"estimated_annual_commission"`
		NumberOfProducts          int     `json:"number_of_products"`
	} `json:"sales_opportunity"`
	Recommendations []ReportLine `json:"recommendations"`
	SuccessFactors  struct {
		KeyMotivators    []string `json:"key_motivators"`
		ApproachStrategy string   `json:"approach_strategy"`
		PrimaryConcerns  []string `json:"primary_concerns"`
	} `json:"success_factors"`
}

// ReportLine is one recommendation row in a sales report.
type ReportLine struct {
	Product        string  `json:"product"`
	Priority       string  `json:"priority"`
	Confidence     float64 `json:"confidence"`
	MonthlyPremium float64 `json:"monthly_premium"`
	Coverage       float64 `json:"coverage"`
}
