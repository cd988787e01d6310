package insurance

// Insurance lines quoted by the engine.
const (
	LineHealth     = "health"
	LineLife       = "life"
	LineProperty   = "property"
	LineAuto       = "auto"
	LineDisability = "disability"
)

// HealthProfile carries the health inputs for underwriting.
type HealthProfile struct {
	Age               int      `json:"age"`
	Gender            string   `json:"gender"`
	Height            float64  `json:"height"` // cm
	Weight            float64  `json:"weight"` // kg
	Smoking           bool     `json:"smoking"`
	Drinking          bool     `json:"drinking"`
	ExerciseFrequency string   `json:"exercise_frequency"` // never, rarely, sometimes, regularly, daily
	MedicalConditions []string `json:"medical_conditions"`
	FamilyHistory     []string `json:"family_history"`
	Medications       []string `json:"medications"`
}

// PropertyProfile carries the property inputs for underwriting.
type PropertyProfile struct {
	PropertyType     string   `json:"property_type"`
	PropertyValue    float64  `json:"property_value"`
	Location         string   `json:"location"`
	YearBuilt        int      `json:"year_built"`
	SecurityFeatures []string `json:"security_features"`
	PreviousClaims   bool     `json:"previous_claims"`
	Mortgage         bool     `json:"mortgage"`
}

// FinancialProfile carries the financial inputs for underwriting.
type FinancialProfile struct {
	AnnualIncome            float64  `json:"annual_income"`
	EmploymentType          string   `json:"employment_type"`
	Dependents              int      `json:"dependents"`
	ExistingInsurance       []string `json:"existing_insurance"`
	MonthlyExpenses         float64  `json:"monthly_expenses"`
	Savings                 float64  `json:"savings"`
	InvestmentRiskTolerance string   `json:"investment_risk_tolerance"`
}

// BMIAssessment grades a BMI value for insurance purposes.
type BMIAssessment struct {
	Value                 float64  `json:"value"`
	Category              string   `json:"category"`
	RiskLevel             string   `json:"risk_level"`
	HealthImpact          string   `json:"health_impact"`
	CardiovascularWarning bool     `json:"cardiovascular_warning"`
	Recommendations       []string `json:"recommendation"`
	InsuranceImpact       string   `json:"insurance_impact"`
}

// RiskFactor is one identified underwriting risk.
type RiskFactor struct {
	Factor      string `json:"factor"`
	Level       string `json:"level"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// LineRecommendation is a per-line coverage recommendation from a risk
// assessment.
type LineRecommendation struct {
	Type               string `json:"type"`
	Priority           string `json:"priority"`
	Reason             string `json:"reason"`
	CoverageSuggestion string `json:"coverage_suggestion"`
}

// RiskAssessment is the full output of AssessRisks.
type RiskAssessment struct {
	OverallRisk              string               `json:"overall_risk"`
	RiskScore                int                  `json:"risk_score"`
	RiskMessage              string               `json:"risk_message"`
	IndividualRisks          []RiskFactor         `json:"individual_risks"`
	Recommendations          []string             `json:"recommendations"`
	BMIAssessment            BMIAssessment        `json:"bmi_assessment"`
	CardiovascularRisk       bool                 `json:"cardiovascular_risk"`
	InsuranceRecommendations []LineRecommendation `json:"insurance_recommendations"`
}

// Recommendation is a priced product recommendation.
type Recommendation struct {
	InsuranceType  string   `json:"insurance_type"`
	ProductName    string   `json:"product_name"`
	AnnualPremium  float64  `json:"annual_premium"`
	MonthlyPremium float64  `json:"monthly_premium"`
	CoverageAmount float64  `json:"coverage_amount"`
	Deductible     float64  `json:"deductible"`
	RiskLevel      string   `json:"risk_level"`
	Priority       string   `json:"priority"`
	Features       []string `json:"features"`
	Exclusions     []string `json:"exclusions"`
	Explanation    string   `json:"explanation"`
}

// Summary totals a recommendation set.
type Summary struct {
	TotalAnnualPremium       float64 `json:"total_annual_premium"`
	TotalMonthlyPremium      float64 `json:"total_monthly_premium"`
	TotalCoverage            float64 `json:"total_coverage"`
	CriticalRecommendations  int     `json:"critical_recommendations"`
	RequiredRecommendations  int     `json:"required_recommendations"`
}

// Assessment is the comprehensive assessment response body.
type Assessment struct {
	Summary
	Recommendations    []Recommendation       `json:"recommendations"`
	AssessmentDate     string                 `json:"assessment_date"`
	UserProfileSummary map[string]interface{} `json:"user_profile_summary"`
}

// Quote is a quick single-line estimate.
type Quote struct {
	InsuranceType           string  `json:"insurance_type"`
	EstimatedAnnualPremium  float64 `json:"estimated_annual_premium"`
	EstimatedMonthlyPremium float64 `json:"estimated_monthly_premium"`
	CoverageAmount          float64 `json:"coverage_amount"`
	RiskLevel               string  `json:"risk_level"`
	Note                    string  `json:"note"`
}

// QuoteRequest carries the minimal inputs for a quick quote.
type QuoteRequest struct {
	InsuranceType    string   `json:"insurance_type"`
	Age              int      `json:"age"`
	PropertyValue    float64  `json:"property_value"`
	AnnualIncome     float64  `json:"annual_income"`
	HealthConditions []string `json:"health_conditions"`
}
