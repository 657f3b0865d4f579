package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	promhttppkg "github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	FieldErrorCode = "error_code"

	ValueNoError = ""

	Namespace      = "trade_analytics"
	SubIngestion   = "ingestion"
	SubAggregation = "aggregation"
	SubPipeline    = "pipeline"
	SubEmitter     = "emitter"
	SubHTTP        = "http"
)

// CounterOpts is a type alias for prometheus.CounterOpts.
type CounterOpts = prometheus.CounterOpts

// HistogramOpts is a type alias for prometheus.HistogramOpts.
type HistogramOpts = prometheus.HistogramOpts

// GaugeOpts is a type alias for prometheus.GaugeOpts.
type GaugeOpts = prometheus.GaugeOpts

// DefBuckets is a re-export of prometheus.DefBuckets.
var DefBuckets = prometheus.DefBuckets

// NewCounterVec creates a new CounterVec registered with the default registry.
var NewCounterVec = promauto.NewCounterVec

// NewHistogramVec creates a new HistogramVec registered with the default registry.
var NewHistogramVec = promauto.NewHistogramVec

// NewGauge creates a new Gauge registered with the default registry.
var NewGauge = promauto.NewGauge

type promHTTP struct{}

// Handler returns an http.Handler for the Prometheus metrics endpoint.
func (promHTTP) Handler() http.Handler {
	return promhttppkg.Handler()
}

// PromHTTP exposes the promhttp handler as metrics.PromHTTP.Handler().
var PromHTTP = promHTTP{}
