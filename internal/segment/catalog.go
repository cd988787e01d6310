package segment

// product is one sellable tier of an insurance product line.
type product struct {
	Name        string
	BasePremium float64
	Coverage    float64
	Commission  float64
}

// productCatalog maps product line -> tier -> product.
var productCatalog = map[string]map[string]product{
	"health_insurance": {
		"basic":    {Name: "Essential Health Protection", BasePremium: 150, Coverage: 100000, Commission: 0.12},
		"standard": {Name: "Complete Health Coverage", BasePremium: 300, Coverage: 500000, Commission: 0.15},
		"premium":  {Name: "Elite Health Protection", BasePremium: 600, Coverage: 1000000, Commission: 0.18},
	},
	"life_insurance": {
		"term":  {Name: "Term Life Protection", BasePremium: 100, Coverage: 500000, Commission: 0.20},
		"whole": {Name: "Whole Life Investment", BasePremium: 500, Coverage: 1000000, Commission: 0.25},
	},
	"property_insurance": {
		"basic":         {Name: "Essential Property Cover", BasePremium: 80, Coverage: 200000, Commission: 0.10},
		"comprehensive": {Name: "Complete Property Protection", BasePremium: 200, Coverage: 800000, Commission: 0.15},
	},
	"auto_insurance": {
		"liability":     {Name: "Basic Auto Coverage", BasePremium: 120, Coverage: 100000, Commission: 0.08},
		"comprehensive": {Name: "Full Auto Protection", BasePremium: 250, Coverage: 500000, Commission: 0.12},
	},
}

// ageBand maps an inclusive age range to a premium multiplier.
type ageBand struct {
	Min, Max   int
	Multiplier float64
}

var ageMultipliers = []ageBand{
	{18, 25, 1.2},
	{26, 35, 1.0},
	{36, 45, 1.1},
	{46, 55, 1.3},
	{56, 65, 1.6},
	{66, 100, 2.0},
}

// affordabilityRates are the share of monthly income a customer at each
// level can commit to premiums.
var affordabilityRates = map[Affordability]float64{
	AffordabilityBasic:    0.05,
	AffordabilityStandard: 0.08,
	AffordabilityPremium:  0.12,
	AffordabilityLuxury:   0.20,
}

// conversionRates are baseline close rates per segment.
var conversionRates = map[Segment]float64{
	YoungProfessional: 0.25,
	FamilyBuilder:     0.35,
	EstablishedFamily: 0.45,
	PreRetiree:        0.40,
	Retiree:           0.30,
	HighNetWorth:      0.60,
	BudgetConscious:   0.20,
}

// lifetimeValueMultipliers scale annual budget into an LTV estimate.
var lifetimeValueMultipliers = map[Segment]float64{
	YoungProfessional: 15,
	FamilyBuilder:     20,
	EstablishedFamily: 25,
	PreRetiree:        18,
	Retiree:           12,
	HighNetWorth:      35,
	BudgetConscious:   10,
}

// approachStrategies are the per-segment sales angles.
var approachStrategies = map[Segment]string{
	YoungProfessional: "Focus on affordability, future planning, and digital convenience",
	FamilyBuilder:     "Emphasize family protection, comprehensive coverage, and value for money",
	EstablishedFamily: "Highlight premium benefits, lifestyle protection, and wealth preservation",
	PreRetiree:        "Stress security, healthcare coverage, and retirement protection",
	Retiree:           "Focus on healthcare, simple terms, and legacy planning",
	HighNetWorth:      "Present exclusive benefits, personalized service, and comprehensive coverage",
	BudgetConscious:   "Emphasize essential coverage, competitive pricing, and clear value proposition",
}
