package models

import (
	"fmt"
	"time"
)

// RetryMode selects which probe stages a verification job runs.
type RetryMode string

const (
	// RetryFull runs every probe stage from scratch.
	RetryFull RetryMode = "full"

	// RetryFailedOnly re-runs only the stages listed in the job's
	// failed_checks, reusing previous results for the rest.
	RetryFailedOnly RetryMode = "failed_only"
)

// IsValid checks if the retry mode is a known value.
func (m RetryMode) IsValid() bool {
	return m == RetryFull || m == RetryFailedOnly
}

// RetryModeValues returns the retry modes for schema enums.
func RetryModeValues() []string {
	return []string{string(RetryFull), string(RetryFailedOnly)}
}

// ParseRetryMode validates a raw retry mode at a boundary. An empty value
// defaults to a full run, matching the message contract.
func ParseRetryMode(raw string) (RetryMode, error) {
	if raw == "" {
		return RetryFull, nil
	}
	m := RetryMode(raw)
	if !m.IsValid() {
		return "", fmt.Errorf("unknown retry mode %q", raw)
	}
	return m, nil
}

// JobMessage is the decoded verification job: which company to verify, which
// stages to run, and the correlation identifier binding every downstream log
// and metric back to this message.
type JobMessage struct {
	CompanyID     string    `json:"company_id"`
	RetryMode     RetryMode `json:"retry_mode"`
	FailedChecks  []Step    `json:"failed_checks"`
	CorrelationID string    `json:"correlation_id"`
	Timestamp     time.Time `json:"timestamp"`
}

// Validate checks the message invariants at the intake boundary.
func (j *JobMessage) Validate() error {
	if j.CompanyID == "" {
		return fmt.Errorf("missing company_id")
	}
	if !j.RetryMode.IsValid() {
		return fmt.Errorf("unknown retry mode %q", j.RetryMode)
	}
	for _, s := range j.FailedChecks {
		if !s.IsValid() {
			return fmt.Errorf("unknown stage tag %q in failed_checks", s)
		}
	}
	return nil
}
