// Package metrics defines the Prometheus instruments exported by finapi.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "finapi"

// LedgerMetrics records ledger activity and RPC latency.
// A nil *LedgerMetrics is valid and records nothing.
type LedgerMetrics struct {
	statementsCreated  *prometheus.CounterVec
	operationsRejected *prometheus.CounterVec
	rpcDuration        *prometheus.HistogramVec
}

// NewLedgerMetrics registers the ledger metrics on the provided registerer.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	if reg == nil {
		return &LedgerMetrics{}
	}
	statementsCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "statements_created_total",
		Help:      "Statements appended to the ledger.",
	}, []string{"type"})
	operationsRejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_rejected_total",
		Help:      "Ledger operations rejected before any write.",
	}, []string{"operation", "reason"})
	rpcDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rpc_duration_seconds",
		Help:      "Duration of RPC calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"procedure", "code"})
	reg.MustRegister(statementsCreated, operationsRejected, rpcDuration)
	return &LedgerMetrics{
		statementsCreated:  statementsCreated,
		operationsRejected: operationsRejected,
		rpcDuration:        rpcDuration,
	}
}

// IncStatementCreated counts one appended statement of the given type.
func (m *LedgerMetrics) IncStatementCreated(statementType string) {
	if m == nil || m.statementsCreated == nil {
		return
	}
	m.statementsCreated.WithLabelValues(normalizeLabel(statementType)).Inc()
}

// IncRejected counts an operation that failed validation.
func (m *LedgerMetrics) IncRejected(operation, reason string) {
	if m == nil || m.operationsRejected == nil {
		return
	}
	m.operationsRejected.WithLabelValues(normalizeLabel(operation), normalizeLabel(reason)).Inc()
}

// ObserveRPC records the duration of one RPC.
func (m *LedgerMetrics) ObserveRPC(procedure, code string, duration time.Duration) {
	if m == nil || m.rpcDuration == nil {
		return
	}
	m.rpcDuration.WithLabelValues(normalizeLabel(procedure), normalizeLabel(code)).Observe(duration.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
