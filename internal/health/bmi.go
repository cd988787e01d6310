package health

import "math"

// BMI categories per WHO thresholds.
const (
	CategoryUnderweight = "Underweight"
	CategoryNormal      = "Normal weight"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"
)

// BMI computes body mass index from weight in kg and height in cm, rounded
// to one decimal.
func BMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

// Category maps a BMI value to its WHO band.
func Category(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// QuickBMI is the lightweight check returned by the quick endpoint.
type QuickBMI struct {
	BMI            float64 `json:"bmi"`
	Category       string  `json:"category"`
	RiskAssessment string  `json:"risk_assessment"`
	Recommendation string  `json:"recommendation"`
}

// QuickCheck computes BMI with a one-line risk readout.
func QuickCheck(weightKg, heightCm float64) QuickBMI {
	bmi := BMI(weightKg, heightCm)
	category := Category(bmi)

	var risk string
	switch category {
	case CategoryUnderweight:
		risk = "May indicate malnutrition or other health issues"
	case CategoryNormal:
		risk = "Low health risk related to weight"
	case CategoryOverweight:
		risk = "Increased risk of cardiovascular disease"
	default:
		risk = "HIGH RISK: Significantly increased risk of cardiovascular disease, diabetes, and other health complications"
	}

	recommendation := "Maintain healthy lifestyle"
	if bmi >= 25 {
		recommendation = "Consider full health analysis for personalized recommendations"
	}

	return QuickBMI{
		BMI:            bmi,
		Category:       category,
		RiskAssessment: risk,
		Recommendation: recommendation,
	}
}
