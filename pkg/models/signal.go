package models

// SignalStatus classifies the outcome of one verification check.
type SignalStatus string

const (
	SignalOK         SignalStatus = "ok"
	SignalSuspicious SignalStatus = "suspicious"
	SignalMismatch   SignalStatus = "mismatch"
	SignalFailed     SignalStatus = "failed"
)

// SignalSeverity ranks how strongly a signal should draw operator attention.
type SignalSeverity string

const (
	SeverityLow    SignalSeverity = "low"
	SeverityMedium SignalSeverity = "medium"
	SeverityHigh   SignalSeverity = "high"
)

// Signal is one normalized finding produced by comparing declared company
// data against discovered data. The weight feeds the rule engine; ok signals
// carry weight 0 but are kept as the audit trail.
type Signal struct {
	Field    string         `json:"field"`
	Status   SignalStatus   `json:"status"`
	Value    string         `json:"value"`
	Weight   int            `json:"weight"`
	Severity SignalSeverity `json:"severity"`
}
