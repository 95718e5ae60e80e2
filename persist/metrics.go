package persist

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// operationsTotal counts Save and Load calls by codec and outcome.
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shadowmap_persist_operations_total",
		Help: "Total number of persist operations by op (save or load), codec, and outcome (success or error)",
	}, []string{"op", "codec", "outcome"})

	// hooksTotal counts hook invocations by hook name.
	hooksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shadowmap_persist_hooks_total",
		Help: "Total number of synchronization hook invocations by hook (prepare or restore)",
	}, []string{"hook"})
)

func outcome(err error) string {
	if err != nil {
		return "error"
	}

	return "success"
}

func recordOperation(op string, codec Codec, err error) {
	operationsTotal.WithLabelValues(op, codec.Name(), outcome(err)).Inc()
}

func recordHooks(hook string, n int) {
	hooksTotal.WithLabelValues(hook).Add(float64(n))
}
