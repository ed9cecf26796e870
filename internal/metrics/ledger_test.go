package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestLedgerMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLedgerMetrics(reg)

	m.IncStatementCreated("deposit")
	m.IncStatementCreated("deposit")
	m.IncStatementCreated("transfer")
	m.IncRejected("withdraw", "insufficient_funds")
	m.IncRejected("", "")

	if got := testutil.ToFloat64(m.statementsCreated.WithLabelValues("deposit")); got != 2 {
		t.Fatalf("expected 2 deposits, got %v", got)
	}
	if got := testutil.ToFloat64(m.statementsCreated.WithLabelValues("transfer")); got != 1 {
		t.Fatalf("expected 1 transfer, got %v", got)
	}
	if got := testutil.ToFloat64(m.operationsRejected.WithLabelValues("withdraw", "insufficient_funds")); got != 1 {
		t.Fatalf("expected 1 rejection, got %v", got)
	}
	if got := testutil.ToFloat64(m.operationsRejected.WithLabelValues("unknown", "unknown")); got != 1 {
		t.Fatalf("expected empty labels to normalize to unknown, got %v", got)
	}
}

func TestLedgerMetrics_ObserveRPC(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLedgerMetrics(reg)

	m.ObserveRPC("/finapi.v1.StatementService/Deposit", "ok", 15*time.Millisecond)

	if got := testutil.CollectAndCount(m.rpcDuration); got != 1 {
		t.Fatalf("expected 1 histogram series, got %d", got)
	}
}

func TestLedgerMetrics_NilSafe(t *testing.T) {
	var m *LedgerMetrics
	m.IncStatementCreated("deposit")
	m.IncRejected("withdraw", "insufficient_funds")
	m.ObserveRPC("proc", "ok", time.Second)

	empty := NewLedgerMetrics(nil)
	empty.IncStatementCreated("deposit")
	empty.ObserveRPC("proc", "ok", time.Second)
}
