// Package metrics defines the Prometheus instrumentation for the
// verification pipeline. Metric and label names mirror the dashboards
// fed by the previous deployment, so they stay CamelCase.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "verification"

var (
	// AnalysisSuccess counts completed analysis runs.
	AnalysisSuccess = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "AnalysisSuccess",
		Help:      "Analysis runs that finished complete.",
	})

	// AnalysisIncomplete counts runs persisted with failed checks.
	AnalysisIncomplete = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "AnalysisIncomplete",
		Help:      "Analysis runs persisted incomplete with failed checks.",
	})

	// AnalysisFailure counts runs that could not be persisted at all.
	AnalysisFailure = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "AnalysisFailure",
		Help:      "Analysis runs that failed terminally.",
	}, []string{"ErrorType"})

	// FailedChecksCount accumulates how many stage checks failed per run.
	FailedChecksCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "FailedChecksCount",
		Help:      "Total failed stage checks across incomplete runs.",
	})

	// IntegrationCheck counts every probe invocation by outcome.
	IntegrationCheck = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "IntegrationCheck",
		Help:      "Integration probe invocations by integration and status.",
	}, []string{"Integration", "Status", "ErrorType"})

	// ReanalysisEnqueued counts reanalysis requests by retry mode.
	ReanalysisEnqueued = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ReanalysisEnqueued",
		Help:      "Reanalysis jobs enqueued, labeled by retry mode.",
	}, []string{"RetryMode"})

	// CompanyCreated counts company registrations by outcome.
	CompanyCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "CompanyCreated",
		Help:      "Company creation requests by outcome.",
	}, []string{"Status"})

	// AnalysisDuration observes wall time of the analysis pipeline.
	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "AnalysisDuration",
		Help:      "Analysis pipeline duration in seconds.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	})

	// WorkerExecutionDuration observes wall time of one queue job.
	WorkerExecutionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "WorkerExecutionDuration",
		Help:      "Queue job execution duration in seconds.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	})
)

// RecordIntegration tags one probe outcome. errType is empty on success.
func RecordIntegration(integration string, success bool, errType string) {
	status := "success"
	if !success {
		status = "failed"
		if errType == "" {
			errType = "error"
		}
	}
	IntegrationCheck.WithLabelValues(integration, status, errType).Inc()
}
