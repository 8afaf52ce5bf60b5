package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserve_IncrementsCounter(t *testing.T) {
	counter := FlowsTotal.WithLabelValues(FlowAdd, OutcomeInvalid)
	before := testutil.ToFloat64(counter)

	Observe(FlowAdd, OutcomeInvalid, time.Now())

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("expected counter delta 1, got %v", got)
	}
}

func TestObserve_RecordsDuration(t *testing.T) {
	Observe(FlowLoad, OutcomeSuccess, time.Now().Add(-time.Second))

	if n := testutil.CollectAndCount(FlowDuration, "tasksync_flow_duration_seconds"); n == 0 {
		t.Error("expected duration histogram to have samples")
	}
}
