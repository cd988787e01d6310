package health

import "strings"

// RiskLevel grades the cardiovascular risk assessment.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// ParseRiskLevel maps a path segment to a risk level, defaulting to low.
func ParseRiskLevel(s string) RiskLevel {
	switch strings.ToLower(s) {
	case "high":
		return RiskHigh
	case "moderate":
		return RiskModerate
	case "critical":
		return RiskCritical
	default:
		return RiskLow
	}
}

// Recommendation types.
const (
	TypeDiet         = "diet"
	TypeExercise     = "exercise"
	TypeMedical      = "medical"
	TypeLifestyle    = "lifestyle"
	TypeMentalHealth = "mental_health"
)

// Metrics are the raw inputs for a health assessment. Range validation
// happens at the transport boundary.
type Metrics struct {
	Weight            float64  `json:"weight"` // kg
	Height            float64  `json:"height"` // cm
	Age               int      `json:"age"`
	Gender            string   `json:"gender"`
	ActivityLevel     string   `json:"activity_level"` // sedentary, light, moderate, active, very_active
	MedicalConditions []string `json:"medical_conditions"`
}

// Recommendation is one actionable advice entry.
type Recommendation struct {
	Type        string   `json:"type"`
	Priority    string   `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ActionItems []string `json:"action_items,omitempty"`
}

// Phase is one block of a wellness plan.
type Phase struct {
	Phase      int      `json:"phase"`
	Duration   string   `json:"duration"`
	Focus      string   `json:"focus"`
	Activities []string `json:"activities"`
}

// WellnessPlan is the structured 12-week plan.
type WellnessPlan struct {
	Duration   string   `json:"duration"`
	Goals      []string `json:"goals"`
	Phases     []Phase  `json:"phases"`
	Monitoring []string `json:"monitoring"`
}

// Assessment is the complete result of one health analysis.
type Assessment struct {
	ID                 string           `json:"assessment_id"`
	BMI                float64          `json:"bmi"`
	BMICategory        string           `json:"bmi_category"`
	RiskLevel          RiskLevel        `json:"risk_level"`
	CardiovascularRisk string           `json:"cardiovascular_risk"`
	Recommendations    []Recommendation `json:"recommendations"`
	WellnessPlan       WellnessPlan     `json:"wellness_plan"`
	Insights           []string         `json:"insights"`
	Timestamp          string           `json:"timestamp"`
}
