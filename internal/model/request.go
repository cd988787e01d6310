package model

import "advice-engine/internal/insurance"

// ComprehensiveRequest bundles the three profiles a full insurance
// assessment needs. The property profile is optional.
type ComprehensiveRequest struct {
	HealthProfile    insurance.HealthProfile    `json:"health_profile"`
	PropertyProfile  *insurance.PropertyProfile `json:"property_profile,omitempty"`
	FinancialProfile insurance.FinancialProfile `json:"financial_profile"`
}

// PremiumRequest asks for a base premium localized to a country.
type PremiumRequest struct {
	BasePremium float64 `json:"base_premium"`
	Country     string  `json:"country"`
	Category    string  `json:"category"`
}
