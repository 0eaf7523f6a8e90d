package metrics

import (
	"io"
	"os"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

type Metrics interface {
	AddOperation(op string)
	AddOperationFailed(op, reason string)
	AddLookupMiss(op string)
	AddOperationDuration(op string, seconds float64)
	SetLength(n int)
}

type EmptyMetrics struct{}

func (m *EmptyMetrics) AddOperation(string)                  {}
func (m *EmptyMetrics) AddOperationFailed(string, string)    {}
func (m *EmptyMetrics) AddLookupMiss(string)                 {}
func (m *EmptyMetrics) AddOperationDuration(string, float64) {}
func (m *EmptyMetrics) SetLength(int)                        {}

// Counter is replaced once at startup, before any runner is started.
var Counter Metrics = &EmptyMetrics{}

type Prometheus struct {
	OperationTotal           *prometheus.CounterVec
	OperationFailedTotal     *prometheus.CounterVec
	LookupMissTotal          *prometheus.CounterVec
	OperationDurationSeconds *prometheus.HistogramVec
	Length                   prometheus.Gauge
}

func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	hostname, _ := os.Hostname()
	labels := prometheus.Labels{
		"hostname": hostname,
		"os":       runtime.GOOS,
		"arch":     runtime.GOARCH,
	}

	factory := promauto.With(reg)

	return &Prometheus{
		OperationTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "dlist_operation_total",
			Help:        "The total number of list operations",
			ConstLabels: labels,
		}, []string{"op"}),
		OperationFailedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "dlist_operation_failed_total",
			Help:        "The total number of rejected list operations",
			ConstLabels: labels,
		}, []string{"op", "reason"}),
		LookupMissTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "dlist_lookup_miss_total",
			Help:        "The total number of lookups that found no element",
			ConstLabels: labels,
		}, []string{"op"}),
		OperationDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "dlist_operation_duration_seconds",
			Help:        "The duration of list operations",
			Buckets:     prometheus.ExponentialBuckets(1e-7, 4, 12),
			ConstLabels: labels,
		}, []string{"op"}),
		Length: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "dlist_length",
			Help:        "The number of elements after the last operation",
			ConstLabels: labels,
		}),
	}
}

func (p *Prometheus) AddOperation(op string) {
	p.OperationTotal.WithLabelValues(op).Inc()
}

func (p *Prometheus) AddOperationFailed(op, reason string) {
	p.OperationFailedTotal.WithLabelValues(op, reason).Inc()
}

func (p *Prometheus) AddLookupMiss(op string) {
	p.LookupMissTotal.WithLabelValues(op).Inc()
}

func (p *Prometheus) AddOperationDuration(op string, seconds float64) {
	p.OperationDurationSeconds.WithLabelValues(op).Observe(seconds)
}

func (p *Prometheus) SetLength(n int) {
	p.Length.Set(float64(n))
}

// WriteText dumps everything g gathers in the text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}

	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
