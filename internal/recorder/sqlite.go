package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists engine results to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	log *zap.Logger
	mu  sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string, log *zap.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so reporting reads do not block API writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("sqlite recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS health_assessments (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			assessment_id TEXT,
			bmi           REAL,
			bmi_category  TEXT,
			risk_level    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_health_ts ON health_assessments(timestamp)`,

		`CREATE TABLE IF NOT EXISTS insurance_quotes (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			insurance_type TEXT,
			annual_premium REAL,
			coverage       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_ts ON insurance_quotes(timestamp)`,

		`CREATE TABLE IF NOT EXISTS customer_analyses (
			id                     INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp              INTEGER NOT NULL,
			customer_id            TEXT,
			segment                TEXT,
			conversion_probability REAL,
			monthly_budget         REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_customers_ts ON customer_analyses(timestamp)`,

		`CREATE TABLE IF NOT EXISTS savings_projections (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			country        TEXT,
			monthly_amount REAL,
			years          INTEGER,
			total_value    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_projections_ts ON savings_projections(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordHealth(rec *HealthRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO health_assessments
		(timestamp, assessment_id, bmi, bmi_category, risk_level)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), rec.AssessmentID, rec.BMI, rec.BMICategory, rec.RiskLevel,
	)
	return err
}

func (r *SQLiteRecorder) RecordQuote(rec *QuoteRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO insurance_quotes
		(timestamp, insurance_type, annual_premium, coverage)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), rec.InsuranceType, rec.AnnualPremium, rec.Coverage,
	)
	return err
}

func (r *SQLiteRecorder) RecordCustomer(rec *CustomerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO customer_analyses
		(timestamp, customer_id, segment, conversion_probability, monthly_budget)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), rec.CustomerID, rec.Segment, rec.ConversionProbability, rec.MonthlyBudget,
	)
	return err
}

func (r *SQLiteRecorder) RecordProjection(rec *ProjectionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO savings_projections
		(timestamp, country, monthly_amount, years, total_value)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), rec.Country, rec.MonthlyAmount, rec.Years, rec.TotalValue,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}
