package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics.
const (
	MetricTransactionCreated  = "transaction.created"
	MetricTransactionDeleted  = "transaction.deleted"
	MetricSavingsAllocated    = "savings.allocated"
	MetricSavingGoalReached   = "savings.goal_reached"
	MetricLimitReached        = "limit.reached"
	MetricRecurringProcessed  = "recurring.processed"
	MetricRecurringFailed     = "recurring.failed"
	MetricRecurringRun        = "recurring.run"
	MetricReceiptScanned      = "receipt.scanned"
	MetricReceiptExtraction   = "receipt.extraction"
	MetricInsightRequest      = "insight.request"
	MetricInsightLatency      = "insight.latency"
	MetricCircuitBreakerState = "circuit_breaker.state"
	MetricAuthEvent           = "authentication_event"
	MetricEventPublishFailed  = "event.publish_failed"
)

type PrometheusMetrics struct {
	transactionsTotal         *prometheus.CounterVec
	savingsAllocatedTotal     prometheus.Counter
	savingGoalsReachedTotal   prometheus.Counter
	limitReachedTotal         *prometheus.CounterVec
	recurringTotal            *prometheus.CounterVec
	recurringRunDuration      prometheus.Histogram
	receiptsTotal             *prometheus.CounterVec
	receiptExtractionDuration prometheus.Histogram
	insightRequestsTotal      *prometheus.CounterVec
	insightDuration           prometheus.Histogram
	circuitBreakerState       *prometheus.GaugeVec
	authenticationEventsTotal *prometheus.CounterVec
	publishFailuresTotal      *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors with reg. A nil reg means the
// default registry.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracklytic_transactions_total",
				Help: "Total number of transactions by operation and type",
			},
			[]string{"operation", "type"},
		),
		savingsAllocatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "tracklytic_savings_allocated_amount_total",
				Help: "Sum of amounts moved into saving plans",
			},
		),
		savingGoalsReachedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "tracklytic_saving_goals_reached_total",
				Help: "Total number of saving plans that reached their target",
			},
		),
		limitReachedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracklytic_spending_limit_reached_total",
				Help: "Total number of Debit transactions recorded at or past a limit",
			},
			[]string{"scope", "plan"},
		),
		recurringTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracklytic_recurring_occurrences_total",
				Help: "Total number of recurring occurrences processed",
			},
			[]string{"status"},
		),
		recurringRunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tracklytic_recurring_run_duration_milliseconds",
				Help:    "Duration of a recurring transaction sweep in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		receiptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracklytic_receipts_scanned_total",
				Help: "Total number of receipts scanned by detected bank and outcome",
			},
			[]string{"bank", "status"},
		),
		receiptExtractionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tracklytic_receipt_extraction_duration_seconds",
				Help:    "Receipt text extraction duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		insightRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracklytic_insight_requests_total",
				Help: "Total number of insight requests by outcome",
			},
			[]string{"status"},
		),
		insightDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tracklytic_insight_duration_seconds",
				Help:    "Latency of the insights model in seconds",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tracklytic_circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracklytic_authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		publishFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracklytic_event_publish_failures_total",
				Help: "Total number of domain events that could not be published",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricTransactionCreated:
		m.transactionsTotal.WithLabelValues("create", tags["type"]).Inc()
	case MetricTransactionDeleted:
		m.transactionsTotal.WithLabelValues("delete", tags["type"]).Inc()
	case MetricSavingGoalReached:
		m.savingGoalsReachedTotal.Inc()
	case MetricLimitReached:
		m.limitReachedTotal.WithLabelValues(tags["scope"], tags["plan"]).Inc()
	case MetricRecurringProcessed:
		m.recurringTotal.WithLabelValues("success").Inc()
	case MetricRecurringFailed:
		m.recurringTotal.WithLabelValues("failed").Inc()
	case MetricReceiptScanned:
		m.receiptsTotal.WithLabelValues(tags["bank"], tags["status"]).Inc()
	case MetricInsightRequest:
		m.insightRequestsTotal.WithLabelValues(tags["status"]).Inc()
	case MetricAuthEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	case MetricEventPublishFailed:
		m.publishFailuresTotal.WithLabelValues(tags["event_type"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricRecurringRun:
		m.recurringRunDuration.Observe(float64(duration.Milliseconds()))
	case MetricReceiptExtraction:
		m.receiptExtractionDuration.Observe(duration.Seconds())
	case MetricInsightLatency:
		m.insightDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricSavingsAllocated:
		m.savingsAllocatedTotal.Add(value)
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
