package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecorderObservesAnswers(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(reg)

	rec.ObserveAnswer("route", "found", false, time.Millisecond)
	rec.ObserveAnswer("route", "found", false, time.Millisecond)
	rec.ObserveAnswer("hod", "ambiguous", true, time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(rec.answers.WithLabelValues("route", "found")))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.answers.WithLabelValues("hod", "ambiguous")))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.fallbacks))
	require.Equal(t, 2, testutil.CollectAndCount(rec.latency))
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *Recorder
	require.NotPanics(t, func() {
		rec.ObserveAnswer("hod", "found", false, time.Second)
	})
}
