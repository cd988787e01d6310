package insurance

// LineInfo describes one insurance line for the catalog endpoint.
type LineInfo struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Lines returns the supported insurance lines.
func Lines() []LineInfo {
	return []LineInfo{
		{
			Type:        LineHealth,
			Name:        "Health Insurance",
			Description: "Comprehensive medical coverage including hospitalization, medications, and preventive care",
		},
		{
			Type:        LineLife,
			Name:        "Life Insurance",
			Description: "Financial protection for your family in case of unexpected death",
		},
		{
			Type:        LineProperty,
			Name:        "Property Insurance",
			Description: "Protection for your home and belongings against damage, theft, and natural disasters",
		},
		{
			Type:        LineAuto,
			Name:        "Auto Insurance",
			Description: "Vehicle protection including liability, collision, and comprehensive coverage",
		},
		{
			Type:        LineDisability,
			Name:        "Disability Insurance",
			Description: "Income protection if you become unable to work due to illness or injury",
		},
	}
}

// PlannedLines are lines not yet quotable.
func PlannedLines() []string {
	return []string{"travel", "business", "cyber", "umbrella"}
}

// FactorInfo explains how one factor moves premiums.
type FactorInfo struct {
	Factor string `json:"factor"`
	Impact string `json:"impact"`
}

// RiskFactorCatalog groups the premium drivers by profile area.
type RiskFactorCatalog struct {
	Health    []FactorInfo `json:"health_risk_factors"`
	Property  []FactorInfo `json:"property_risk_factors"`
	Financial []FactorInfo `json:"financial_risk_factors"`
}

// RiskFactors returns the static explanation of premium drivers.
func RiskFactors() RiskFactorCatalog {
	return RiskFactorCatalog{
		Health: []FactorInfo{
			{Factor: "Age", Impact: "Higher age increases premiums"},
			{Factor: "BMI", Impact: "BMI over 30 significantly increases health insurance costs"},
			{Factor: "Smoking", Impact: "Can increase premiums by 200-300%"},
			{Factor: "Medical conditions", Impact: "Chronic conditions increase risk assessment"},
			{Factor: "Family history", Impact: "Genetic predispositions affect long-term risk"},
		},
		Property: []FactorInfo{
			{Factor: "Property age", Impact: "Older properties (pre-1980) have higher premiums"},
			{Factor: "Location", Impact: "High-risk areas (coastal, earthquake zones) cost more"},
			{Factor: "Security features", Impact: "Security systems can reduce premiums"},
			{Factor: "Previous claims", Impact: "Claims history affects future rates"},
			{Factor: "Construction type", Impact: "Fire-resistant materials reduce costs"},
		},
		Financial: []FactorInfo{
			{Factor: "Income stability", Impact: "Stable employment reduces risk"},
			{Factor: "Debt-to-income ratio", Impact: "High debt increases life insurance needs"},
			{Factor: "Dependents", Impact: "More dependents increase coverage requirements"},
			{Factor: "Existing coverage", Impact: "Current insurance affects new policy needs"},
		},
	}
}
