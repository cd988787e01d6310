package handler

import (
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"advice-engine/internal/config"
	"advice-engine/internal/finance"
	"advice-engine/internal/health"
	"advice-engine/internal/insurance"
	"advice-engine/internal/metrics"
	"advice-engine/internal/model"
	"advice-engine/internal/ratelimit"
	"advice-engine/internal/recorder"
	"advice-engine/internal/segment"
)

// Handler routes API requests to the advice engines.
type Handler struct {
	cfg     *config.Config
	log     *zap.Logger
	copilot *health.Copilot
	insurer *insurance.Engine
	sales   *segment.Engine
	rec     recorder.Recorder
	limiter *ratelimit.Limiter

	promHandler fasthttp.RequestHandler
}

func New(cfg *config.Config, log *zap.Logger, rec recorder.Recorder, limiter *ratelimit.Limiter) *Handler {
	return &Handler{
		cfg:         cfg,
		log:         log,
		copilot:     health.NewCopilot(log),
		insurer:     insurance.NewEngine(log),
		sales:       segment.NewEngine(log),
		rec:         rec,
		limiter:     limiter,
		promHandler: fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
}

func (h *Handler) route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	switch {
	case path == "/" && method == fasthttp.MethodGet:
		h.serviceInfo(ctx)
	case path == "/health" && method == fasthttp.MethodGet:
		h.liveness(ctx)
	case path == "/metrics" && method == fasthttp.MethodGet:
		h.promHandler(ctx)

	case path == "/analyze" && method == fasthttp.MethodPost:
		h.analyze(ctx)
	case path == "/quick-bmi" && method == fasthttp.MethodPost:
		h.quickBMI(ctx)
	case strings.HasPrefix(path, "/daily-tips/") && method == fasthttp.MethodGet:
		h.dailyTips(ctx, strings.TrimPrefix(path, "/daily-tips/"))
	case strings.HasPrefix(path, "/recommendations/") && method == fasthttp.MethodGet:
		h.recommendations(ctx, strings.TrimPrefix(path, "/recommendations/"))
	case strings.HasPrefix(path, "/wellness-plan/") && method == fasthttp.MethodGet:
		h.wellnessPlan(ctx, strings.TrimPrefix(path, "/wellness-plan/"))

	case path == "/calculate-bmi" && method == fasthttp.MethodPost:
		h.calculateBMI(ctx)
	case path == "/assess-comprehensive" && method == fasthttp.MethodPost:
		h.assessComprehensive(ctx)
	case path == "/quick-quote" && method == fasthttp.MethodPost:
		h.quickQuote(ctx)
	case path == "/insurance-types" && method == fasthttp.MethodGet:
		h.insuranceTypes(ctx)
	case path == "/risk-factors" && method == fasthttp.MethodGet:
		h.riskFactors(ctx)

	case path == "/calculate-savings-projection" && method == fasthttp.MethodPost:
		h.savingsProjection(ctx)
	case path == "/country-premium" && method == fasthttp.MethodPost:
		h.countryPremium(ctx)
	case strings.HasPrefix(path, "/financial-advice/") && method == fasthttp.MethodGet:
		h.financialAdvice(ctx, strings.TrimPrefix(path, "/financial-advice/"))
	case path == "/countries" && method == fasthttp.MethodGet:
		h.countries(ctx)
	case path == "/exchange-rates" && method == fasthttp.MethodGet:
		h.exchangeRates(ctx)

	case path == "/analyze-customer" && method == fasthttp.MethodPost:
		h.analyzeCustomer(ctx)
	case path == "/sales-report" && method == fasthttp.MethodPost:
		h.salesReport(ctx)

	default:
		writeError(ctx, fasthttp.StatusNotFound, "endpoint not found: "+path)
	}
}

func (h *Handler) serviceInfo(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, model.ServiceInfo{
		Service: h.cfg.App.Name,
		Version: h.cfg.App.Version,
		Status:  "operational",
		Endpoints: map[string]string{
			"POST /analyze":                      "Full health analysis from body metrics",
			"POST /quick-bmi":                    "BMI with a one-line risk readout",
			"GET /daily-tips/{risk}":             "Daily tips for a risk level",
			"GET /recommendations/{category}":    "Recommendations for a BMI category",
			"GET /wellness-plan/{risk}":          "Wellness plan for a risk level",
			"POST /calculate-bmi":                "Insurance-oriented BMI report",
			"POST /assess-comprehensive":         "Multi-line insurance assessment",
			"POST /quick-quote":                  "Single-line premium quote",
			"GET /insurance-types":               "Supported insurance lines",
			"GET /risk-factors":                  "Premium risk factor catalog",
			"POST /calculate-savings-projection": "Compound savings projection",
			"POST /country-premium":              "Premium localized to a country",
			"GET /financial-advice/{country}":    "Country-aware financial advice",
			"GET /countries":                     "Supported country profiles",
			"GET /exchange-rates":                "USD exchange rate table",
			"POST /analyze-customer":             "Customer segmentation and product guidance",
			"POST /sales-report":                 "Sales opportunity report",
		},
		Timestamp: now(),
	})
}

func (h *Handler) liveness(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, model.HealthStatus{
		Status:    "healthy",
		Service:   h.cfg.App.Name,
		Timestamp: now(),
	})
}

func (h *Handler) analyze(ctx *fasthttp.RequestCtx) {
	var m health.Metrics
	if err := json.Unmarshal(ctx.PostBody(), &m); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if m.Weight <= 0 || m.Height <= 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "weight and height must be positive")
		return
	}
	if m.Age <= 0 || m.Age > 120 {
		writeError(ctx, fasthttp.StatusBadRequest, "age must be between 1 and 120")
		return
	}

	a := h.copilot.Analyze(m)
	metrics.AssessmentsTotal.WithLabelValues("health").Inc()
	h.persist(h.rec.RecordHealth(&recorder.HealthRecord{
		AssessmentID: a.ID,
		BMI:          a.BMI,
		BMICategory:  a.BMICategory,
		RiskLevel:    string(a.RiskLevel),
	}))

	writeJSON(ctx, fasthttp.StatusOK, a)
}

func (h *Handler) quickBMI(ctx *fasthttp.RequestCtx) {
	weight, height, ok := weightHeightArgs(ctx)
	if !ok {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, health.QuickCheck(weight, height))
}

func (h *Handler) dailyTips(ctx *fasthttp.RequestCtx, risk string) {
	level, ok := parseRisk(risk)
	if !ok {
		writeError(ctx, fasthttp.StatusBadRequest, "unknown risk level: "+risk)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, model.TipsResponse{
		Tips:      health.DailyTips(health.RepresentativeBMI(level)),
		RiskLevel: string(level),
		Date:      time.Now().UTC().Format("2006-01-02"),
		Success:   true,
	})
}

func (h *Handler) recommendations(ctx *fasthttp.RequestCtx, category string) {
	recs, ok := health.RecommendationsByCategory(category)
	if !ok {
		writeError(ctx, fasthttp.StatusBadRequest, "unknown BMI category: "+category)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, model.CategoryRecommendations{
		BMICategory:     category,
		Recommendations: recs,
		Count:           len(recs),
		Timestamp:       now(),
		Success:         true,
	})
}

func (h *Handler) wellnessPlan(ctx *fasthttp.RequestCtx, risk string) {
	level, ok := parseRisk(risk)
	if !ok {
		writeError(ctx, fasthttp.StatusBadRequest, "unknown risk level: "+risk)
		return
	}

	bmi := 25.0
	if ctx.QueryArgs().Has("bmi") {
		v, err := ctx.QueryArgs().GetUfloat("bmi")
		if err != nil || v <= 0 {
			writeError(ctx, fasthttp.StatusBadRequest, "bmi must be a positive number")
			return
		}
		bmi = v
	}

	// Plan phrasing needs representative metrics, not a full assessment.
	m := health.Metrics{Weight: 70, Height: 170, Age: 30}
	writeJSON(ctx, fasthttp.StatusOK, model.WellnessPlanResponse{
		RiskLevel: string(level),
		BMI:       bmi,
		Plan:      health.Plan(m, bmi, level),
		Timestamp: now(),
		Success:   true,
	})
}

func (h *Handler) calculateBMI(ctx *fasthttp.RequestCtx) {
	weight, height, ok := weightHeightArgs(ctx)
	if !ok {
		return
	}
	a := h.insurer.AssessBMI(height, weight)
	writeJSON(ctx, fasthttp.StatusOK, model.BMIReport{
		BMI:             a.Value,
		Category:        a.Category,
		HealthRisk:      a.RiskLevel,
		InsuranceImpact: a.InsuranceImpact,
		Recommendation:  a.Recommendations,
		Timestamp:       now(),
	})
}

func (h *Handler) assessComprehensive(ctx *fasthttp.RequestCtx) {
	var req model.ComprehensiveRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.HealthProfile.Height <= 0 || req.HealthProfile.Weight <= 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "health_profile height and weight must be positive")
		return
	}
	if req.HealthProfile.Age <= 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "health_profile age must be positive")
		return
	}

	a := h.insurer.Comprehensive(req.HealthProfile, req.PropertyProfile, req.FinancialProfile)
	metrics.AssessmentsTotal.WithLabelValues("insurance").Inc()
	h.persist(h.rec.RecordQuote(&recorder.QuoteRecord{
		InsuranceType: "comprehensive",
		AnnualPremium: a.TotalAnnualPremium,
		Coverage:      a.TotalCoverage,
	}))

	writeJSON(ctx, fasthttp.StatusOK, a)
}

func (h *Handler) quickQuote(ctx *fasthttp.RequestCtx) {
	var req insurance.QuoteRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	q, err := h.insurer.QuickQuote(req)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	h.persist(h.rec.RecordQuote(&recorder.QuoteRecord{
		InsuranceType: req.InsuranceType,
		AnnualPremium: q.EstimatedAnnualPremium,
		Coverage:      q.CoverageAmount,
	}))

	writeJSON(ctx, fasthttp.StatusOK, q)
}

func (h *Handler) insuranceTypes(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, model.InsuranceTypesResponse{
		InsuranceTypes: insurance.Lines(),
		ComingSoon:     insurance.PlannedLines(),
	})
}

func (h *Handler) riskFactors(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, insurance.RiskFactors())
}

func (h *Handler) savingsProjection(ctx *fasthttp.RequestCtx) {
	var req finance.ProjectionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Country == "" {
		req.Country = finance.DefaultCountry
	}
	if req.RiskLevel == "" {
		req.RiskLevel = finance.RiskModerate
	}

	if req.MonthlyAmount <= 0 || req.MonthlyAmount > h.cfg.Finance.MaxMonthlyAmount {
		writeError(ctx, fasthttp.StatusBadRequest, "monthly_amount must be positive and within limits")
		return
	}
	if req.Years < 1 || req.Years > h.cfg.Finance.MaxProjectionYears {
		writeError(ctx, fasthttp.StatusBadRequest, "years must be between 1 and 50")
		return
	}
	if !finance.KnownCountry(req.Country) {
		writeError(ctx, fasthttp.StatusBadRequest, "unsupported country: "+req.Country)
		return
	}
	if !req.RiskLevel.Valid() {
		writeError(ctx, fasthttp.StatusBadRequest, "risk_level must be conservative, moderate or aggressive")
		return
	}

	env := finance.Project(req)
	metrics.AssessmentsTotal.WithLabelValues("finance").Inc()
	h.persist(h.rec.RecordProjection(&recorder.ProjectionRecord{
		Country:       req.Country,
		MonthlyAmount: req.MonthlyAmount,
		Years:         req.Years,
		TotalValue:    env.Projections.TotalValue,
	}))

	writeJSON(ctx, fasthttp.StatusOK, env)
}

func (h *Handler) countryPremium(ctx *fasthttp.RequestCtx) {
	var req model.PremiumRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.BasePremium <= 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "base_premium must be positive")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, finance.CountryPremium(req.BasePremium, req.Country, req.Category))
}

func (h *Handler) financialAdvice(ctx *fasthttp.RequestCtx, country string) {
	args := ctx.QueryArgs()

	income, err := args.GetUfloat("annual_income")
	if err != nil || income <= 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "annual_income must be a positive number")
		return
	}

	age := args.GetUintOrZero("age")
	if age == 0 {
		age = 30
	}
	if age > 120 {
		writeError(ctx, fasthttp.StatusBadRequest, "age must be between 1 and 120")
		return
	}

	risk := finance.RiskModerate
	if v := string(args.Peek("risk_tolerance")); v != "" {
		risk = finance.RiskLevel(v)
		if !risk.Valid() {
			writeError(ctx, fasthttp.StatusBadRequest, "risk_tolerance must be conservative, moderate or aggressive")
			return
		}
	}

	advice := finance.FinancialAdvice(finance.AdviceRequest{
		Country:        country,
		AnnualIncome:   income,
		Age:            age,
		Dependents:     args.GetUintOrZero("dependents"),
		CurrentSavings: args.GetUfloatOrZero("current_savings"),
		RiskTolerance:  risk,
	})
	writeJSON(ctx, fasthttp.StatusOK, advice)
}

func (h *Handler) countries(ctx *fasthttp.RequestCtx) {
	all := finance.Countries()
	writeJSON(ctx, fasthttp.StatusOK, model.CountriesResponse{
		Countries: all,
		Default:   finance.DefaultCountry,
		Count:     len(all),
	})
}

func (h *Handler) exchangeRates(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, model.ExchangeRatesResponse{
		Base:      "USD",
		Rates:     finance.ExchangeRates(),
		Timestamp: now(),
	})
}

func (h *Handler) analyzeCustomer(ctx *fasthttp.RequestCtx) {
	data, ok := customerBody(ctx)
	if !ok {
		return
	}

	g := h.sales.Analyze(data)
	metrics.AssessmentsTotal.WithLabelValues("segment").Inc()
	h.persist(h.rec.RecordCustomer(&recorder.CustomerRecord{
		CustomerID:            g.CustomerProfile.CustomerID,
		Segment:               string(g.CustomerProfile.Segment),
		ConversionProbability: g.CustomerProfile.ConversionProbability,
		MonthlyBudget:         g.CustomerProfile.MonthlyBudget,
	}))

	writeJSON(ctx, fasthttp.StatusOK, g)
}

func (h *Handler) salesReport(ctx *fasthttp.RequestCtx) {
	data, ok := customerBody(ctx)
	if !ok {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, h.sales.Report(h.sales.Analyze(data)))
}

func customerBody(ctx *fasthttp.RequestCtx) (segment.CustomerData, bool) {
	var data segment.CustomerData
	if err := json.Unmarshal(ctx.PostBody(), &data); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return data, false
	}
	if data.Health.Age <= 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "health_data.age must be positive")
		return data, false
	}
	return data, true
}

// weightHeightArgs pulls the weight/height query pair shared by the BMI
// endpoints. It writes the error response itself on bad input.
func weightHeightArgs(ctx *fasthttp.RequestCtx) (weight, height float64, ok bool) {
	args := ctx.QueryArgs()

	weight, err := args.GetUfloat("weight")
	if err != nil || weight <= 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "weight must be a positive number")
		return 0, 0, false
	}
	height, err = args.GetUfloat("height")
	if err != nil || height <= 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "height must be a positive number")
		return 0, 0, false
	}
	return weight, height, true
}

func parseRisk(s string) (health.RiskLevel, bool) {
	switch strings.ToLower(s) {
	case "low":
		return health.RiskLow, true
	case "moderate":
		return health.RiskModerate, true
	case "high":
		return health.RiskHigh, true
	case "critical":
		return health.RiskCritical, true
	default:
		return "", false
	}
}

// persist logs storage failures without failing the request.
func (h *Handler) persist(err error) {
	if err != nil {
		h.log.Warn("failed to persist record", zap.Error(err))
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
