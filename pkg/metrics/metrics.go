package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SubmissionsTotal counts handled submissions by outcome.
var SubmissionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "audit_submissions_total",
		Help: "Audit form submissions by outcome.",
	},
	[]string{"outcome"},
)

// DeliveryDuration times relay delivery attempts.
var DeliveryDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "audit_delivery_duration_seconds",
		Help:    "Duration of mail relay delivery attempts.",
		Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30},
	},
	[]string{"result"},
)

// RequestDuration is keyed by route pattern, not raw path, to bound cardinality.
var RequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: []float64{0.01, 0.1, 0.3, 1.2, 5},
	},
	[]string{"path", "method", "status"},
)

// RegisterDefault registers runtime, process and application collectors.
// Calling it more than once is harmless.
func RegisterDefault(logger *zap.Logger) {
	mustRegister(logger, "Go collector", collectors.NewGoCollector())
	mustRegister(logger, "process collector", collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	mustRegister(logger, "submission counter", SubmissionsTotal)
	mustRegister(logger, "delivery histogram", DeliveryDuration)
	mustRegister(logger, "HTTP request histogram", RequestDuration)
}

func mustRegister(logger *zap.Logger, name string, c prometheus.Collector) {
	if err := prometheus.Register(c); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return
		}
		if logger != nil {
			logger.Fatal("failed to register "+name, zap.Error(err))
		}
		panic("metrics: failed to register " + name + ": " + err.Error())
	}
}

func ObserveSubmission(outcome string) {
	SubmissionsTotal.WithLabelValues(outcome).Inc()
}

func ObserveDelivery(err error, d time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	DeliveryDuration.WithLabelValues(result).Observe(d.Seconds())
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
