package health

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Copilot orchestrates the health assessment pipeline.
type Copilot struct {
	log *zap.Logger
}

func NewCopilot(log *zap.Logger) *Copilot {
	return &Copilot{log: log}
}

// Analyze runs the full pipeline: BMI, cardiovascular risk, recommendations,
// wellness plan and the insight summary.
func (c *Copilot) Analyze(m Metrics) Assessment {
	bmi := BMI(m.Weight, m.Height)
	category := Category(bmi)
	cardioRisk, level := AssessRisk(m, bmi)

	assessment := Assessment{
		ID:                 uuid.NewString(),
		BMI:                bmi,
		BMICategory:        category,
		RiskLevel:          level,
		CardiovascularRisk: cardioRisk,
		Recommendations:    Recommendations(m, bmi, level),
		WellnessPlan:       Plan(m, bmi, level),
		Insights:           insights(m, bmi, level),
		Timestamp:          time.Now().UTC().Format(time.RFC3339),
	}

	c.log.Info("health analysis completed",
		zap.String("assessment_id", assessment.ID),
		zap.Float64("bmi", bmi),
		zap.String("risk_level", string(level)))

	return assessment
}

// insights distills the assessment into short headline findings.
func insights(m Metrics, bmi float64, risk RiskLevel) []string {
	var out []string

	if bmi >= 30 {
		out = append(out,
			"BMI indicates obesity, which significantly increases cardiovascular disease risk; immediate lifestyle intervention is essential",
			"A combined approach of medical supervision, structured nutrition and progressive exercise is recommended")
	} else if bmi >= 25 {
		out = append(out,
			"BMI is in the overweight range; early intervention can prevent progression to obesity and associated health risks")
	}

	if m.ActivityLevel == "sedentary" {
		out = append(out,
			"Sedentary lifestyle compounds health risks; even small increases in daily activity provide significant benefits")
	}

	if risk == RiskHigh {
		out = append(out,
			"High cardiovascular risk detected; regular medical monitoring may be necessary alongside lifestyle changes")
	}

	if len(out) == 0 {
		out = append(out, "Health metrics look good; continue maintaining healthy habits")
	}
	return out
}
