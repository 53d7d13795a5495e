package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives operation outcomes from the document and store layers.
type Recorder interface {
	Observe(operation string, success bool, duration time.Duration)
	AddElements(n int)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Observe(string, bool, time.Duration) {}
func (Nop) AddElements(int)                     {}

// Prometheus records into its own registry so that a run can be dumped to a
// node_exporter textfile.
type Prometheus struct {
	registry  *prometheus.Registry
	results   *prometheus.CounterVec
	durations *prometheus.HistogramVec
	elements  prometheus.Counter
}

func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ppl_operations_total",
			Help: "Document operations by outcome.",
		}, []string{"operation", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ppl_operation_duration_seconds",
			Help:    "Document operation latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		elements: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ppl_elements_exported_total",
			Help: "Element nodes written to documents.",
		}),
	}
	p.registry.MustRegister(p.results, p.durations, p.elements)
	return p
}

func (p *Prometheus) Observe(operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	status := "error"
	if success {
		status = "success"
	}
	p.results.WithLabelValues(operation, status).Inc()
	p.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

func (p *Prometheus) AddElements(n int) {
	if n > 0 {
		p.elements.Add(float64(n))
	}
}

func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// WriteTextfile dumps the registry in the text exposition format.
func (p *Prometheus) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}
