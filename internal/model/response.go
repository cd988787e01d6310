package model

import (
	"advice-engine/internal/finance"
	"advice-engine/internal/health"
	"advice-engine/internal/insurance"
)

// ErrorResponse is the uniform error body returned on every failure.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Success   bool   `json:"success"`
}

// ServiceInfo is the root endpoint body.
type ServiceInfo struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
	Timestamp string            `json:"timestamp"`
}

// HealthStatus is the liveness body.
type HealthStatus struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// TipsResponse wraps the daily tips for one risk level.
type TipsResponse struct {
	Tips      []string `json:"tips"`
	RiskLevel string   `json:"risk_level"`
	Date      string   `json:"date"`
	Success   bool     `json:"success"`
}

// CategoryRecommendations wraps the short-form recommendations for one BMI
// category.
type CategoryRecommendations struct {
	BMICategory     string                  `json:"bmi_category"`
	Recommendations []health.Recommendation `json:"recommendations"`
	Count           int                     `json:"count"`
	Timestamp       string                  `json:"timestamp"`
	Success         bool                    `json:"success"`
}

// WellnessPlanResponse wraps a generated plan with the inputs it assumed.
type WellnessPlanResponse struct {
	RiskLevel string              `json:"risk_level"`
	BMI       float64             `json:"bmi"`
	Plan      health.WellnessPlan `json:"wellness_plan"`
	Timestamp string              `json:"timestamp"`
	Success   bool                `json:"success"`
}

// BMIReport is the insurance-oriented BMI calculation body.
type BMIReport struct {
	BMI             float64  `json:"bmi"`
	Category        string   `json:"category"`
	HealthRisk      string   `json:"health_risk"`
	InsuranceImpact string   `json:"insurance_impact"`
	Recommendation  []string `json:"recommendation"`
	Timestamp       string   `json:"timestamp"`
}

// InsuranceTypesResponse lists the supported and planned product lines.
type InsuranceTypesResponse struct {
	InsuranceTypes []insurance.LineInfo `json:"insurance_types"`
	ComingSoon     []string             `json:"coming_soon"`
}

// CountriesResponse lists the supported country profiles.
type CountriesResponse struct {
	Countries map[string]finance.CountryProfile `json:"countries"`
	Default   string                            `json:"default"`
	Count     int                               `json:"count"`
}

// ExchangeRatesResponse carries the USD-based conversion table.
type ExchangeRatesResponse struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	Timestamp string             `json:"timestamp"`
}
