package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	Namespace    = "qmc"
	OutcomeLabel = "outcome"
	KindLabel    = "kind"
	Succeeded    = "succeeded"
	Failed       = "failed"
)

// Recorder holds the simplification metrics of one server.
type Recorder struct {
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration prometheus.Histogram
	primes   prometheus.Histogram
}

func NewRecorder() *Recorder {
	return &Recorder{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "simplify_requests_total",
				Help:      "Number of simplification requests by outcome",
			},
			[]string{OutcomeLabel},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "simplify_errors_total",
				Help:      "Number of failed simplifications by error kind",
			},
			[]string{KindLabel},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "simplify_duration_seconds",
				Help:      "Time spent simplifying one expression",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
		),
		primes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "simplify_prime_implicants",
				Help:      "Number of prime implicants returned per successful simplification",
				Buckets:   prometheus.LinearBuckets(1, 2, 8),
			},
		),
	}
}

// Register adds the recorder's collectors to reg.
func (r *Recorder) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{r.requests, r.errors, r.duration, r.primes} {
		if err := reg.Register(c); err != nil {
			return errors.Wrap(err, "registering simplify metrics")
		}
	}
	return nil
}

func (r *Recorder) Succeeded(primes int, d time.Duration) {
	r.requests.WithLabelValues(Succeeded).Inc()
	r.primes.Observe(float64(primes))
	r.duration.Observe(d.Seconds())
}

func (r *Recorder) Failed(kind string, d time.Duration) {
	r.requests.WithLabelValues(Failed).Inc()
	r.errors.WithLabelValues(kind).Inc()
	r.duration.Observe(d.Seconds())
}
