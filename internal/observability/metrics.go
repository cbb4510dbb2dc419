package observability

import (
	"errors"
	"sync"
	"time"

	"github.com/danmuck/dapvar/internal/dap"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OpEncode = "encode"
	OpDecode = "decode"

	OutcomeOK        = "ok"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

var (
	registerOnce sync.Once

	codecOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dapvar",
			Subsystem: "codec",
			Name:      "operations_total",
			Help:      "Serialize and deserialize calls by outcome.",
		},
		[]string{"dataset", "op", "outcome"},
	)
	codecBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dapvar",
			Subsystem: "codec",
			Name:      "bytes_total",
			Help:      "Body bytes written or read.",
		},
		[]string{"dataset", "op"},
	)
	codecDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dapvar",
			Subsystem: "codec",
			Name:      "duration_seconds",
			Help:      "Serialize and deserialize duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"dataset", "op", "outcome"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(codecOperations, codecBytes, codecDuration)
	})
}

// Outcome classifies a codec error for metric labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, dap.ErrUserCancelled):
		return OutcomeCancelled
	default:
		return OutcomeError
	}
}

func RecordCodec(dataset, op string, bytes int64, duration time.Duration, err error) {
	RegisterMetrics()
	outcome := Outcome(err)
	codecOperations.WithLabelValues(dataset, op, outcome).Inc()
	codecBytes.WithLabelValues(dataset, op).Add(float64(bytes))
	codecDuration.WithLabelValues(dataset, op, outcome).Observe(duration.Seconds())
}
