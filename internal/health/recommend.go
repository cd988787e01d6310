package health

import "strings"

// Recommendations builds the personalized advice list for the metrics. Rules
// stack: BMI band first, then age, activity level and overall risk.
func Recommendations(m Metrics, bmi float64, risk RiskLevel) []Recommendation {
	var recs []Recommendation

	if bmi >= 30 {
		recs = append(recs,
			Recommendation{
				Type:        TypeMedical,
				Priority:    "critical",
				Title:       "Immediate Medical Consultation",
				Description: "Schedule consultation with healthcare provider for obesity management",
				ActionItems: []string{
					"Book appointment with primary care physician",
					"Request comprehensive metabolic panel",
					"Discuss weight management medications if appropriate",
					"Consider referral to endocrinologist or bariatric specialist",
				},
			},
			Recommendation{
				Type:        TypeDiet,
				Priority:    "high",
				Title:       "Structured Weight Management Diet",
				Description: "Implement medically supervised caloric deficit diet",
				ActionItems: []string{
					"Reduce daily calories by 500-750 (consult nutritionist)",
					"Focus on whole foods, lean proteins, vegetables",
					"Eliminate processed foods and sugary beverages",
					"Consider meal replacement shakes (under supervision)",
					"Track all food intake with app or diary",
				},
			},
			Recommendation{
				Type:        TypeExercise,
				Priority:    "high",
				Title:       "Progressive Exercise Program",
				Description: "Start with low-impact activities and gradually increase intensity",
				ActionItems: []string{
					"Begin with 10-15 minutes daily walking",
					"Add strength training 2x/week (bodyweight exercises)",
					"Incorporate swimming or water aerobics if available",
					"Gradually increase to 150+ minutes moderate activity/week",
					"Work with certified trainer familiar with obesity",
				},
			},
		)
	} else if bmi >= 25 {
		recs = append(recs,
			Recommendation{
				Type:        TypeDiet,
				Priority:    "moderate",
				Title:       "Balanced Weight Loss Approach",
				Description: "Moderate caloric restriction with balanced nutrition",
				ActionItems: []string{
					"Reduce daily calories by 300-500",
					"Increase protein intake to 1.2g per kg body weight",
					"Fill half your plate with vegetables at each meal",
					"Limit refined carbohydrates and added sugars",
				},
			},
			Recommendation{
				Type:        TypeExercise,
				Priority:    "moderate",
				Title:       "Regular Physical Activity",
				Description: "Establish consistent exercise routine",
				ActionItems: []string{
					"Aim for 150 minutes moderate aerobic activity/week",
					"Add strength training 2-3 times per week",
					"Include flexibility and balance exercises",
					"Find activities you enjoy for long-term adherence",
				},
			},
		)
	}

	if m.Age >= 50 {
		recs = append(recs, Recommendation{
			Type:        TypeMedical,
			Priority:    "moderate",
			Title:       "Age-Appropriate Health Screening",
			Description: "Regular health screenings for age-related conditions",
			ActionItems: []string{
				"Annual comprehensive physical exam",
				"Cardiovascular screening (EKG, stress test if indicated)",
				"Cancer screenings (colonoscopy, mammography, etc.)",
				"Bone density screening",
				"Vision and hearing checks",
			},
		})
	}

	if m.ActivityLevel == "sedentary" {
		recs = append(recs, Recommendation{
			Type:        TypeLifestyle,
			Priority:    "high",
			Title:       "Combat Sedentary Lifestyle",
			Description: "Increase daily movement and reduce sitting time",
			ActionItems: []string{
				"Take 2-minute walking breaks every hour",
				"Use standing desk or treadmill desk if possible",
				"Park farther away or take stairs when available",
				"Set hourly movement reminders on phone/watch",
				"Consider desk exercises and stretching routines",
			},
		})
	}

	if risk == RiskHigh || risk == RiskCritical {
		recs = append(recs, Recommendation{
			Type:        TypeMentalHealth,
			Priority:    "high",
			Title:       "Stress Management & Mental Health",
			Description: "Address psychological aspects of health and weight management",
			ActionItems: []string{
				"Consider counseling or therapy for emotional eating",
				"Practice stress reduction techniques (meditation, yoga)",
				"Ensure adequate sleep (7-9 hours nightly)",
				"Build strong social support network",
				"Consider support groups for weight management",
			},
		})
	}

	return recs
}

// RecommendationsByCategory returns the short-form recommendation list for a
// BMI category name. The second return is false for unknown categories.
func RecommendationsByCategory(category string) ([]Recommendation, bool) {
	switch strings.ToLower(category) {
	case "obese":
		return []Recommendation{
			{Type: TypeMedical, Priority: "critical", Title: "Immediate Medical Consultation",
				Description: "Schedule consultation with healthcare provider for obesity management"},
			{Type: TypeDiet, Priority: "high", Title: "Structured Weight Management Diet",
				Description: "Implement medically supervised caloric deficit diet"},
			{Type: TypeExercise, Priority: "high", Title: "Progressive Exercise Program",
				Description: "Start with low-impact activities and gradually increase intensity"},
		}, true
	case "overweight":
		return []Recommendation{
			{Type: TypeDiet, Priority: "moderate", Title: "Balanced Weight Loss Approach",
				Description: "Moderate caloric restriction with balanced nutrition"},
			{Type: TypeExercise, Priority: "moderate", Title: "Regular Physical Activity",
				Description: "Establish consistent exercise routine"},
		}, true
	case "normal", "underweight":
		return []Recommendation{
			{Type: TypeLifestyle, Priority: "low", Title: "Maintain Healthy Habits",
				Description: "Continue current healthy lifestyle patterns"},
		}, true
	}
	return nil, false
}
