package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) (MetricsRecorderInterface, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewPrometheusMetrics(reg), reg
}

// sampleValue returns the counter, gauge or histogram count of the series in
// family name whose labels include want. Missing series read as -1.
func sampleValue(t *testing.T, reg *prometheus.Registry, name string, want map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			matched := true
			for k, v := range want {
				if labels[k] != v {
					matched = false
					break
				}
			}
			if !matched {
				continue
			}
			switch {
			case m.GetCounter() != nil:
				return m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				return m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				return float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return -1
}

func TestPrometheusMetrics_TransactionCounters(t *testing.T) {
	m, reg := newTestMetrics(t)

	m.IncrementCounter(MetricTransactionCreated, map[string]string{"type": "Debit"})
	m.IncrementCounter(MetricTransactionCreated, map[string]string{"type": "Debit"})
	m.IncrementCounter(MetricTransactionDeleted, map[string]string{"type": "Credit"})

	assert.Equal(t, 2.0, sampleValue(t, reg, "tracklytic_transactions_total", map[string]string{"operation": "create", "type": "Debit"}))
	assert.Equal(t, 1.0, sampleValue(t, reg, "tracklytic_transactions_total", map[string]string{"operation": "delete", "type": "Credit"}))
}

func TestPrometheusMetrics_SavingsAndLimits(t *testing.T) {
	m, reg := newTestMetrics(t)

	m.RecordGauge(MetricSavingsAllocated, 250.5, nil)
	m.RecordGauge(MetricSavingsAllocated, 49.5, nil)
	m.IncrementCounter(MetricSavingGoalReached, nil)
	m.IncrementCounter(MetricLimitReached, map[string]string{"scope": "general", "plan": "Daily"})

	assert.Equal(t, 300.0, sampleValue(t, reg, "tracklytic_savings_allocated_amount_total", nil))
	assert.Equal(t, 1.0, sampleValue(t, reg, "tracklytic_saving_goals_reached_total", nil))
	assert.Equal(t, 1.0, sampleValue(t, reg, "tracklytic_spending_limit_reached_total", map[string]string{"scope": "general", "plan": "Daily"}))
}

func TestPrometheusMetrics_RecurringAndCircuitBreaker(t *testing.T) {
	m, reg := newTestMetrics(t)

	m.IncrementCounter(MetricRecurringProcessed, nil)
	m.IncrementCounter(MetricRecurringFailed, nil)
	m.RecordProcessingTime(MetricRecurringRun, 40*time.Millisecond)
	m.RecordGauge(MetricCircuitBreakerState, float64(StateOpen), map[string]string{"service": "gemini"})

	assert.Equal(t, 1.0, sampleValue(t, reg, "tracklytic_recurring_occurrences_total", map[string]string{"status": "success"}))
	assert.Equal(t, 1.0, sampleValue(t, reg, "tracklytic_recurring_occurrences_total", map[string]string{"status": "failed"}))
	assert.Equal(t, 1.0, sampleValue(t, reg, "tracklytic_recurring_run_duration_milliseconds", nil))
	assert.Equal(t, 1.0, sampleValue(t, reg, "tracklytic_circuit_breaker_state", map[string]string{"service": "gemini"}))
}

func TestPrometheusMetrics_AuthEventWithoutTypeIsIgnored(t *testing.T) {
	m, reg := newTestMetrics(t)

	m.IncrementCounter(MetricAuthEvent, map[string]string{})
	m.IncrementCounter("unknown.metric", nil)
	assert.Equal(t, -1.0, sampleValue(t, reg, "tracklytic_authentication_events_total", nil))

	m.IncrementCounter(MetricAuthEvent, map[string]string{"event_type": "login"})
	assert.Equal(t, 1.0, sampleValue(t, reg, "tracklytic_authentication_events_total", map[string]string{"event_type": "login"}))
}
