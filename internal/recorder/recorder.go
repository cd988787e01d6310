package recorder

// HealthRecord is one persisted health assessment.
type HealthRecord struct {
	AssessmentID string
	BMI          float64
	BMICategory  string
	RiskLevel    string
}

// QuoteRecord is one persisted insurance quote or assessment total.
type QuoteRecord struct {
	InsuranceType string
	AnnualPremium float64
	Coverage      float64
}

// CustomerRecord is one persisted customer segmentation result.
type CustomerRecord struct {
	CustomerID            string
	Segment               string
	ConversionProbability float64
	MonthlyBudget         float64
}

// ProjectionRecord is one persisted savings projection.
type ProjectionRecord struct {
	Country       string
	MonthlyAmount float64
	Years         int
	TotalValue    float64
}

// Recorder persists engine results for later analysis.
type Recorder interface {
	RecordHealth(rec *HealthRecord) error
	RecordQuote(rec *QuoteRecord) error
	RecordCustomer(rec *CustomerRecord) error
	RecordProjection(rec *ProjectionRecord) error
	Close() error
}
