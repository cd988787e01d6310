package health

import "fmt"

// Plan builds the 12-week wellness plan for the metrics. Weight-loss goals
// target 10% for obesity, 5% for overweight, maintenance otherwise.
func Plan(m Metrics, bmi float64, risk RiskLevel) WellnessPlan {
	plan := WellnessPlan{Duration: "12 weeks"}

	switch {
	case bmi >= 30:
		plan.Goals = []string{
			fmt.Sprintf("Lose %.1f kg (10%% body weight)", m.Weight*0.1),
			"Reduce cardiovascular risk factors",
			"Improve metabolic health",
			"Establish sustainable lifestyle habits",
		}
	case bmi >= 25:
		plan.Goals = []string{
			fmt.Sprintf("Lose %.1f kg (5%% body weight)", m.Weight*0.05),
			"Prevent progression to obesity",
			"Improve fitness level",
		}
	default:
		plan.Goals = []string{
			"Maintain current weight",
			"Improve overall fitness",
			"Prevent future health issues",
		}
	}

	plan.Phases = phases(bmi, risk)
	plan.Monitoring = monitoring(risk)
	return plan
}

// phases returns three 4-week blocks for obesity or high risk, otherwise two
// 6-week blocks.
func phases(bmi float64, risk RiskLevel) []Phase {
	if bmi >= 30 || risk == RiskHigh {
		return []Phase{
			{
				Phase: 1, Duration: "4 weeks", Focus: "Foundation & Medical Clearance",
				Activities: []string{
					"Medical evaluation and clearance",
					"Nutritionist consultation",
					"Gentle exercise introduction (walking)",
					"Food diary establishment",
				},
			},
			{
				Phase: 2, Duration: "4 weeks", Focus: "Progressive Improvement",
				Activities: []string{
					"Structured exercise program",
					"Meal planning implementation",
					"Weekly progress tracking",
					"Stress management techniques",
				},
			},
			{
				Phase: 3, Duration: "4 weeks", Focus: "Optimization & Maintenance",
				Activities: []string{
					"Advanced fitness routines",
					"Long-term habit formation",
					"Social support integration",
					"Relapse prevention strategies",
				},
			},
		}
	}
	return []Phase{
		{
			Phase: 1, Duration: "6 weeks", Focus: "Health Optimization",
			Activities: []string{
				"Fitness assessment",
				"Nutrition optimization",
				"Regular exercise routine",
			},
		},
		{
			Phase: 2, Duration: "6 weeks", Focus: "Maintenance & Growth",
			Activities: []string{
				"Advanced fitness goals",
				"Preventive health measures",
				"Long-term planning",
			},
		},
	}
}

func monitoring(risk RiskLevel) []string {
	base := []string{
		"Weekly weight check",
		"Daily activity tracking",
		"Weekly progress photos",
	}

	switch risk {
	case RiskHigh, RiskCritical:
		return append(base,
			"Blood pressure monitoring (weekly)",
			"Heart rate tracking during exercise",
			"Monthly medical check-ups",
			"Blood work (monthly for first 3 months)",
		)
	case RiskModerate:
		return append(base,
			"Bi-weekly medical check-ins",
			"Blood work (quarterly)",
		)
	}
	return base
}

// DailyTips returns the actionable tip list for a BMI value. Callers that
// only know a risk level map it to a representative BMI first.
func DailyTips(bmi float64) []string {
	switch {
	case bmi >= 30:
		return []string{
			"Start your day with a protein-rich breakfast to control appetite",
			"Take a 10-minute walk after each meal to improve metabolism",
			"Drink water before meals to increase satiety",
			"Track everything you eat today - awareness is the first step",
		}
	case bmi >= 25:
		return []string{
			"Replace one sugary drink with water today",
			"Take the stairs instead of elevator when possible",
			"Include a vegetable with every meal",
			"Practice portion control by using smaller plates",
		}
	default:
		return []string{
			"Maintain your healthy habits with consistent meal timing",
			"Try a new physical activity to keep exercise interesting",
			"Focus on getting quality sleep tonight",
			"Practice gratitude for your health achievements",
		}
	}
}

// RepresentativeBMI maps a risk level to the BMI used when generating tips
// without a full assessment.
func RepresentativeBMI(risk RiskLevel) float64 {
	switch risk {
	case RiskHigh, RiskCritical:
		return 30
	case RiskModerate:
		return 25
	default:
		return 22
	}
}
