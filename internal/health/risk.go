package health

import (
	"fmt"
	"strings"
)

// highRiskConditions are the medical conditions that force a high overall
// risk level on their own.
var highRiskConditions = map[string]struct{}{
	"diabetes":         {},
	"hypertension":     {},
	"heart_disease":    {},
	"high_cholesterol": {},
}

// AssessRisk collects cardiovascular risk factors from the metrics and BMI
// and grades the overall level. Any high-risk medical condition, or three or
// more factors, grades high; two factors grade moderate.
func AssessRisk(m Metrics, bmi float64) (string, RiskLevel) {
	var factors []string
	medical := false

	if bmi >= 30 {
		factors = append(factors, "obesity")
	} else if bmi >= 25 {
		factors = append(factors, "overweight")
	}

	gender := strings.ToLower(m.Gender)
	if (gender == "male" && m.Age >= 45) || (gender == "female" && m.Age >= 55) {
		factors = append(factors, "age")
	}

	if m.ActivityLevel == "sedentary" || m.ActivityLevel == "light" {
		factors = append(factors, "low_activity")
	}

	for _, condition := range m.MedicalConditions {
		if _, ok := highRiskConditions[strings.ToLower(condition)]; ok {
			factors = append(factors, "medical_"+strings.ToLower(condition))
			medical = true
		}
	}

	level := RiskLow
	switch {
	case len(factors) >= 3 || medical:
		level = RiskHigh
	case len(factors) >= 2:
		level = RiskModerate
	}

	if bmi >= 30 {
		return fmt.Sprintf(
			"HIGH CARDIOVASCULAR RISK: BMI of %.1f indicates obesity, significantly increasing risk of heart disease, stroke, and diabetes. Additional risk factors: %s",
			bmi, strings.Join(factors, ", "),
		), level
	}

	if len(factors) == 0 {
		return "Risk factors identified: None", level
	}
	return "Risk factors identified: " + strings.Join(factors, ", "), level
}
