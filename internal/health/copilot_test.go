package health

import (
	"testing"

	"go.uber.org/zap"
)

func TestRecommendationsObese(t *testing.T) {
	m := Metrics{Weight: 95, Height: 175, Age: 35, Gender: "male", ActivityLevel: "sedentary"}
	recs := Recommendations(m, 31.0, RiskHigh)

	// Obese rules (3) + sedentary + high risk.
	if len(recs) != 5 {
		t.Fatalf("expected 5 recommendations, got %d", len(recs))
	}
	if recs[0].Priority != "critical" || recs[0].Type != TypeMedical {
		t.Fatalf("expected critical medical first, got %+v", recs[0])
	}
}

func TestRecommendationsNormalWeightQuiet(t *testing.T) {
	m := Metrics{Weight: 65, Height: 175, Age: 30, Gender: "female", ActivityLevel: "active"}
	recs := Recommendations(m, 21.2, RiskLow)
	if len(recs) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(recs))
	}
}

func TestRecommendationsAgeScreening(t *testing.T) {
	m := Metrics{Weight: 70, Height: 175, Age: 55, Gender: "female", ActivityLevel: "moderate"}
	recs := Recommendations(m, 22.9, RiskLow)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Title != "Age-Appropriate Health Screening" {
		t.Fatalf("unexpected title: %s", recs[0].Title)
	}
}

func TestRecommendationsByCategory(t *testing.T) {
	recs, ok := RecommendationsByCategory("Obese")
	if !ok || len(recs) != 3 {
		t.Fatalf("expected 3 obese recommendations, got %d (ok=%v)", len(recs), ok)
	}

	recs, ok = RecommendationsByCategory("normal")
	if !ok || len(recs) != 1 {
		t.Fatalf("expected 1 normal recommendation, got %d (ok=%v)", len(recs), ok)
	}

	if _, ok = RecommendationsByCategory("gigantic"); ok {
		t.Fatal("expected unknown category to be rejected")
	}
}

func TestPlanGoalsByBMI(t *testing.T) {
	m := Metrics{Weight: 100, Height: 180}

	obese := Plan(m, 30.9, RiskHigh)
	if obese.Goals[0] != "Lose 10.0 kg (10% body weight)" {
		t.Fatalf("unexpected goal: %s", obese.Goals[0])
	}
	if len(obese.Phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(obese.Phases))
	}

	overweight := Plan(m, 27.0, RiskModerate)
	if overweight.Goals[0] != "Lose 5.0 kg (5% body weight)" {
		t.Fatalf("unexpected goal: %s", overweight.Goals[0])
	}
	if len(overweight.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(overweight.Phases))
	}

	normal := Plan(m, 22.0, RiskLow)
	if normal.Goals[0] != "Maintain current weight" {
		t.Fatalf("unexpected goal: %s", normal.Goals[0])
	}
}

func TestPlanHighRiskForcesPhasedRamp(t *testing.T) {
	// High risk triggers the 3x4-week plan even at normal BMI.
	p := Plan(Metrics{Weight: 70}, 23.0, RiskHigh)
	if len(p.Phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(p.Phases))
	}
}

func TestPlanMonitoringByRisk(t *testing.T) {
	if got := len(monitoring(RiskLow)); got != 3 {
		t.Fatalf("low: expected 3 entries, got %d", got)
	}
	if got := len(monitoring(RiskModerate)); got != 5 {
		t.Fatalf("moderate: expected 5 entries, got %d", got)
	}
	if got := len(monitoring(RiskHigh)); got != 7 {
		t.Fatalf("high: expected 7 entries, got %d", got)
	}
}

func TestDailyTipsByBand(t *testing.T) {
	if tips := DailyTips(31.0); tips[0] != "Start your day with a protein-rich breakfast to control appetite" {
		t.Fatalf("unexpected obese tip: %s", tips[0])
	}
	if tips := DailyTips(26.0); tips[0] != "Replace one sugary drink with water today" {
		t.Fatalf("unexpected overweight tip: %s", tips[0])
	}
	if tips := DailyTips(22.0); tips[0] != "Maintain your healthy habits with consistent meal timing" {
		t.Fatalf("unexpected normal tip: %s", tips[0])
	}
}

func TestRepresentativeBMI(t *testing.T) {
	if RepresentativeBMI(RiskHigh) != 30 || RepresentativeBMI(RiskModerate) != 25 || RepresentativeBMI(RiskLow) != 22 {
		t.Fatal("unexpected representative BMI mapping")
	}
}

func TestAnalyzePipeline(t *testing.T) {
	c := NewCopilot(zap.NewNop())
	a := c.Analyze(Metrics{
		Weight:            95,
		Height:            175,
		Age:               35,
		Gender:            "male",
		ActivityLevel:     "sedentary",
		MedicalConditions: []string{"hypertension"},
	})

	if a.BMI != 31.0 {
		t.Fatalf("expected BMI 31.0, got %f", a.BMI)
	}
	if a.BMICategory != CategoryObese {
		t.Fatalf("expected obese, got %s", a.BMICategory)
	}
	if a.RiskLevel != RiskHigh {
		t.Fatalf("expected high risk, got %s", a.RiskLevel)
	}
	if a.ID == "" || a.Timestamp == "" {
		t.Fatal("expected assessment id and timestamp")
	}
	if len(a.Recommendations) == 0 || len(a.WellnessPlan.Phases) != 3 {
		t.Fatal("expected recommendations and a phased plan")
	}
	if len(a.Insights) == 0 {
		t.Fatal("expected insights")
	}
}

func TestParseRiskLevel(t *testing.T) {
	if ParseRiskLevel("HIGH") != RiskHigh {
		t.Fatal("expected high")
	}
	if ParseRiskLevel("nonsense") != RiskLow {
		t.Fatal("expected low default")
	}
}
