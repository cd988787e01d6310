package handler

import (
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"advice-engine/internal/config"
	"advice-engine/internal/finance"
	"advice-engine/internal/health"
	"advice-engine/internal/insurance"
	"advice-engine/internal/model"
	"advice-engine/internal/ratelimit"
	"advice-engine/internal/recorder"
	"advice-engine/internal/segment"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "advice-engine"
	cfg.App.Version = "test"
	cfg.Server.CORSOrigins = []string{"*"}
	cfg.Finance.MaxProjectionYears = 50
	cfg.Finance.MaxMonthlyAmount = 1000000
	return cfg
}

func newTestHandler() *Handler {
	return New(testConfig(), zap.NewNop(), recorder.NewNoopRecorder(), nil)
}

func serve(t *testing.T, h *Handler, method, uri, body string) *fasthttp.RequestCtx {
	t.Helper()

	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if body != "" {
		req.SetBodyString(body)
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	h.Router()(ctx)
	return ctx
}

func decode(t *testing.T, ctx *fasthttp.RequestCtx, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(ctx.Response.Body(), v); err != nil {
		t.Fatalf("decode response %q: %v", ctx.Response.Body(), err)
	}
}

func expectBadRequest(t *testing.T, ctx *fasthttp.RequestCtx) {
	t.Helper()
	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	var e model.ErrorResponse
	decode(t, ctx, &e)
	if e.Success || e.Message == "" || e.Timestamp == "" {
		t.Fatalf("malformed error body: %+v", e)
	}
}

func TestServiceInfo(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodGet, "/", "")
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}

	var info model.ServiceInfo
	decode(t, ctx, &info)
	if info.Service != "advice-engine" || info.Status != "operational" {
		t.Fatalf("unexpected service info: %+v", info)
	}
	if len(info.Endpoints) == 0 {
		t.Fatal("expected endpoint listing")
	}
}

func TestLiveness(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodGet, "/health", "")

	var status model.HealthStatus
	decode(t, ctx, &status)
	if status.Status != "healthy" || status.Timestamp == "" {
		t.Fatalf("unexpected liveness body: %+v", status)
	}
}

func TestUnknownPathIs404(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodGet, "/nope", "")
	if ctx.Response.StatusCode() != fasthttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", ctx.Response.StatusCode())
	}
}

func TestAnalyze(t *testing.T) {
	body := `{"weight":95,"height":175,"age":35,"gender":"male","activity_level":"sedentary","medical_conditions":["hypertension"]}`
	ctx := serve(t, newTestHandler(), fasthttp.MethodPost, "/analyze", body)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var a health.Assessment
	decode(t, ctx, &a)
	if a.BMI != 31.0 || a.BMICategory != health.CategoryObese {
		t.Fatalf("unexpected assessment: bmi %f %s", a.BMI, a.BMICategory)
	}
	if a.RiskLevel != health.RiskHigh {
		t.Fatalf("expected high risk, got %s", a.RiskLevel)
	}
	if a.ID == "" || a.Timestamp == "" {
		t.Fatal("expected assessment id and timestamp")
	}
}

func TestAnalyzeRejectsBadInput(t *testing.T) {
	h := newTestHandler()

	expectBadRequest(t, serve(t, h, fasthttp.MethodPost, "/analyze", "{not json"))
	expectBadRequest(t, serve(t, h, fasthttp.MethodPost, "/analyze", `{"weight":0,"height":175,"age":30}`))
	expectBadRequest(t, serve(t, h, fasthttp.MethodPost, "/analyze", `{"weight":70,"height":175,"age":150}`))
}

func TestQuickBMI(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodPost, "/quick-bmi?weight=70&height=170", "")

	var q health.QuickBMI
	decode(t, ctx, &q)
	if q.BMI != 24.2 {
		t.Fatalf("expected 24.2, got %f", q.BMI)
	}

	expectBadRequest(t, serve(t, newTestHandler(), fasthttp.MethodPost, "/quick-bmi?height=170", ""))
}

func TestDailyTips(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodGet, "/daily-tips/high", "")

	var tips model.TipsResponse
	decode(t, ctx, &tips)
	if len(tips.Tips) != 4 || !tips.Success {
		t.Fatalf("unexpected tips body: %+v", tips)
	}
	if len(tips.Date) != len("2006-01-02") {
		t.Fatalf("unexpected date format: %s", tips.Date)
	}

	expectBadRequest(t, serve(t, newTestHandler(), fasthttp.MethodGet, "/daily-tips/extreme", ""))
}

func TestRecommendationsByCategory(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodGet, "/recommendations/obese", "")

	var recs model.CategoryRecommendations
	decode(t, ctx, &recs)
	if recs.Count != 3 || len(recs.Recommendations) != 3 {
		t.Fatalf("expected 3 recommendations, got %+v", recs)
	}

	expectBadRequest(t, serve(t, newTestHandler(), fasthttp.MethodGet, "/recommendations/gigantic", ""))
}

func TestWellnessPlan(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodGet, "/wellness-plan/high?bmi=32", "")

	var plan model.WellnessPlanResponse
	decode(t, ctx, &plan)
	if plan.BMI != 32 || len(plan.Plan.Phases) != 3 {
		t.Fatalf("expected 3-phase plan at bmi 32, got %+v", plan)
	}

	// Default BMI is 25, which with low risk yields the two-phase plan.
	ctx = serve(t, newTestHandler(), fasthttp.MethodGet, "/wellness-plan/low", "")
	decode(t, ctx, &plan)
	if plan.BMI != 25 || len(plan.Plan.Phases) != 2 {
		t.Fatalf("expected default two-phase plan, got %+v", plan)
	}
}

func TestCalculateBMI(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodPost, "/calculate-bmi?weight=95&height=175", "")

	var report model.BMIReport
	decode(t, ctx, &report)
	if report.BMI != 31.02 || report.Category != "Obese" {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.InsuranceImpact == "" || len(report.Recommendation) == 0 {
		t.Fatal("expected impact and recommendation text")
	}
}

func TestAssessComprehensive(t *testing.T) {
	body := `{
		"health_profile": {"age":42,"gender":"female","height":165,"weight":85},
		"property_profile": {"property_type":"single-family","property_value":400000,"year_built":1995,"mortgage":true},
		"financial_profile": {"annual_income":90000,"dependents":2,"monthly_expenses":4000,"savings":30000}
	}`
	ctx := serve(t, newTestHandler(), fasthttp.MethodPost, "/assess-comprehensive", body)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var a insurance.Assessment
	decode(t, ctx, &a)
	if len(a.Recommendations) < 3 {
		t.Fatalf("expected at least 3 recommendations, got %d", len(a.Recommendations))
	}
	if a.TotalAnnualPremium <= 0 {
		t.Fatal("expected a positive total premium")
	}

	expectBadRequest(t, serve(t, newTestHandler(), fasthttp.MethodPost, "/assess-comprehensive",
		`{"health_profile":{"age":42,"weight":85},"financial_profile":{}}`))
}

func TestQuickQuote(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodPost, "/quick-quote", `{"insurance_type":"health","age":30}`)

	var q insurance.Quote
	decode(t, ctx, &q)
	if q.EstimatedAnnualPremium != 3600 {
		t.Fatalf("expected 3600, got %f", q.EstimatedAnnualPremium)
	}

	expectBadRequest(t, serve(t, newTestHandler(), fasthttp.MethodPost, "/quick-quote", `{"insurance_type":"pet"}`))
	expectBadRequest(t, serve(t, newTestHandler(), fasthttp.MethodPost, "/quick-quote", `{"insurance_type":"health"}`))
}

func TestInsuranceTypes(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodGet, "/insurance-types", "")

	var types model.InsuranceTypesResponse
	decode(t, ctx, &types)
	if len(types.InsuranceTypes) != 5 || len(types.ComingSoon) != 4 {
		t.Fatalf("unexpected catalog: %+v", types)
	}
}

func TestRiskFactors(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodGet, "/risk-factors", "")

	var rf insurance.RiskFactorCatalog
	decode(t, ctx, &rf)
	if len(rf.Health) != 5 || len(rf.Property) != 5 || len(rf.Financial) != 4 {
		t.Fatalf("unexpected risk factor catalog: %+v", rf)
	}
}

func TestSavingsProjection(t *testing.T) {
	body := `{"monthly_amount":500,"years":30,"country":"US","risk_level":"moderate"}`
	ctx := serve(t, newTestHandler(), fasthttp.MethodPost, "/calculate-savings-projection", body)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var env finance.ProjectionEnvelope
	decode(t, ctx, &env)
	if env.Projections.TotalValue <= env.Projections.TotalContributed {
		t.Fatalf("expected growth over contributions: %+v", env.Projections)
	}
	if env.RequestDetails.MonthlyAmount != 500 || env.RequestDetails.Years != 30 {
		t.Fatalf("request not echoed: %+v", env.RequestDetails)
	}
}

func TestSavingsProjectionDefaults(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodPost, "/calculate-savings-projection",
		`{"monthly_amount":500,"years":10}`)

	var env finance.ProjectionEnvelope
	decode(t, ctx, &env)
	if env.Projections.Country != "US" || env.Projections.RiskLevel != finance.RiskModerate {
		t.Fatalf("expected US/moderate defaults, got %+v", env.Projections)
	}
}

func TestSavingsProjectionValidation(t *testing.T) {
	h := newTestHandler()

	expectBadRequest(t, serve(t, h, fasthttp.MethodPost, "/calculate-savings-projection",
		`{"monthly_amount":0,"years":10}`))
	expectBadRequest(t, serve(t, h, fasthttp.MethodPost, "/calculate-savings-projection",
		`{"monthly_amount":500,"years":0}`))
	expectBadRequest(t, serve(t, h, fasthttp.MethodPost, "/calculate-savings-projection",
		`{"monthly_amount":500,"years":51}`))
	expectBadRequest(t, serve(t, h, fasthttp.MethodPost, "/calculate-savings-projection",
		`{"monthly_amount":500,"years":10,"country":"XX"}`))
	expectBadRequest(t, serve(t, h, fasthttp.MethodPost, "/calculate-savings-projection",
		`{"monthly_amount":500,"years":10,"risk_level":"yolo"}`))
}

func TestCountryPremium(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodPost, "/country-premium",
		`{"base_premium":100,"country":"IN","category":"health"}`)

	var q finance.PremiumQuote
	decode(t, ctx, &q)
	if q.Currency != "INR" || q.Amount <= 0 {
		t.Fatalf("unexpected quote: %+v", q)
	}

	expectBadRequest(t, serve(t, newTestHandler(), fasthttp.MethodPost, "/country-premium",
		`{"base_premium":0,"country":"IN"}`))
}

func TestFinancialAdvice(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodGet,
		"/financial-advice/US?annual_income=120000&age=30&dependents=1&current_savings=50000", "")
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var advice finance.Advice
	decode(t, ctx, &advice)
	if advice.Country != "US" {
		t.Fatalf("expected US advice, got %s", advice.Country)
	}
	if advice.Recommendations.EmergencyFundTarget != 60000 {
		t.Fatalf("expected 6-month emergency fund of 60000, got %f", advice.Recommendations.EmergencyFundTarget)
	}
	if len(advice.Tips) != 5 {
		t.Fatalf("expected 5 tips, got %d", len(advice.Tips))
	}

	expectBadRequest(t, serve(t, newTestHandler(), fasthttp.MethodGet, "/financial-advice/US", ""))
	expectBadRequest(t, serve(t, newTestHandler(), fasthttp.MethodGet,
		"/financial-advice/US?annual_income=120000&risk_tolerance=reckless", ""))
}

func TestCountriesAndRates(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodGet, "/countries", "")

	var countries model.CountriesResponse
	decode(t, ctx, &countries)
	if countries.Count != 6 || countries.Default != "US" {
		t.Fatalf("unexpected countries body: count %d default %s", countries.Count, countries.Default)
	}

	ctx = serve(t, newTestHandler(), fasthttp.MethodGet, "/exchange-rates", "")

	var rates model.ExchangeRatesResponse
	decode(t, ctx, &rates)
	if rates.Base != "USD" || rates.Rates["USD"] != 1.0 {
		t.Fatalf("unexpected rates body: %+v", rates)
	}
}

func TestAnalyzeCustomer(t *testing.T) {
	body := `{
		"health_data": {"age":40,"family_members":["spouse","child"]},
		"financial_data": {"annual_income":90000,"debt_to_income_ratio":0.25},
		"property_data": {"property_type":"condo","property_value":300000}
	}`
	ctx := serve(t, newTestHandler(), fasthttp.MethodPost, "/analyze-customer", body)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var g segment.Guidance
	decode(t, ctx, &g)
	if g.CustomerProfile.Segment != segment.FamilyBuilder {
		t.Fatalf("expected family_builder, got %s", g.CustomerProfile.Segment)
	}
	if len(g.ProductRecommendations) == 0 || len(g.FollowUpTimeline) != 5 {
		t.Fatalf("unexpected guidance: %+v", g)
	}

	expectBadRequest(t, serve(t, newTestHandler(), fasthttp.MethodPost, "/analyze-customer",
		`{"health_data":{"age":0}}`))
}

func TestSalesReport(t *testing.T) {
	body := `{
		"health_data": {"age":40,"family_members":["spouse"]},
		"financial_data": {"annual_income":90000,"debt_to_income_ratio":0.25}
	}`
	ctx := serve(t, newTestHandler(), fasthttp.MethodPost, "/sales-report", body)

	var r segment.SalesReport
	decode(t, ctx, &r)
	if r.SalesOpportunity.NumberOfProducts != len(r.Recommendations) {
		t.Fatalf("report does not reconcile: %+v", r.SalesOpportunity)
	}
	if r.CustomerSummary.Segment == "" {
		t.Fatal("expected a customer summary")
	}
}

func TestCORSPreflight(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodOptions, "/analyze", "")
	if ctx.Response.StatusCode() != fasthttp.StatusNoContent {
		t.Fatalf("expected 204, got %d", ctx.Response.StatusCode())
	}
	if got := string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}

func TestCORSRestrictedOrigin(t *testing.T) {
	cfg := testConfig()
	cfg.Server.CORSOrigins = []string{"https://app.example.com"}
	h := New(cfg, zap.NewNop(), recorder.NewNoopRecorder(), nil)

	var req fasthttp.Request
	req.Header.SetMethod(fasthttp.MethodGet)
	req.SetRequestURI("/health")
	req.Header.Set("Origin", "https://evil.example.com")

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	h.Router()(ctx)

	if got := string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")); got != "" {
		t.Fatalf("expected no CORS header for disallowed origin, got %q", got)
	}
}

func TestRateLimitedRequestsRejected(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := ratelimit.New(config.RateLimitConfig{Requests: 1, WindowSeconds: 60}, client, zap.NewNop())
	h := New(testConfig(), zap.NewNop(), recorder.NewNoopRecorder(), limiter)

	if ctx := serve(t, h, fasthttp.MethodGet, "/health", ""); ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("first request should pass, got %d", ctx.Response.StatusCode())
	}
	ctx := serve(t, h, fasthttp.MethodGet, "/health", "")
	if ctx.Response.StatusCode() != fasthttp.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", ctx.Response.StatusCode())
	}
	var e model.ErrorResponse
	decode(t, ctx, &e)
	if e.Success {
		t.Fatal("expected error body")
	}
}

func TestErrorBodyShape(t *testing.T) {
	ctx := serve(t, newTestHandler(), fasthttp.MethodGet, "/nope", "")

	var e model.ErrorResponse
	decode(t, ctx, &e)
	if e.Error == "" || !strings.Contains(e.Message, "/nope") || e.Success {
		t.Fatalf("malformed 404 body: %+v", e)
	}
}
