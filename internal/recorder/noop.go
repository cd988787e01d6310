package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordHealth(_ *HealthRecord) error         { return nil }
func (n *NoopRecorder) RecordQuote(_ *QuoteRecord) error           { return nil }
func (n *NoopRecorder) RecordCustomer(_ *CustomerRecord) error     { return nil }
func (n *NoopRecorder) RecordProjection(_ *ProjectionRecord) error { return nil }
func (n *NoopRecorder) Close() error                               { return nil }
