package prometheus

import (
	"context"
	"strconv"
	"time"

	"github.com/turtacn/DevFolio/pkg/client"
)

// Acquisition outcome label values.
const (
	OutcomeSuccess         = "success"
	OutcomeHealthFailed    = "health_failed"
	OutcomeFetchFailed     = "fetch_failed"
	OutcomeTransformFailed = "transform_failed"
	OutcomeSuperseded      = "superseded"
)

// Client request outcome label values.
const (
	RequestOK    = "ok"
	RequestError = "error"
)

var (
	DefaultHTTPDurationBuckets   = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultClientDurationBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10}
)

// AppMetrics holds every DevFolio metric.
type AppMetrics struct {
	// Outgoing API calls
	ClientRequestsTotal   CounterVec
	ClientRequestDuration HistogramVec

	// Acquisition
	AcquisitionAttemptsTotal CounterVec
	AcquisitionDuration      HistogramVec
	BackendOnline            GaugeVec

	// HTTP surface
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
}

// NewAppMetrics registers all metrics on collector.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	return &AppMetrics{
		ClientRequestsTotal: collector.RegisterCounter("client_requests_total",
			"Requests issued to the portfolio API", "method", "endpoint", "outcome"),
		ClientRequestDuration: collector.RegisterHistogram("client_request_duration_seconds",
			"Portfolio API request duration", DefaultClientDurationBuckets, "method", "endpoint"),

		AcquisitionAttemptsTotal: collector.RegisterCounter("acquisition_attempts_total",
			"Completed acquisition attempts by outcome", "outcome"),
		AcquisitionDuration: collector.RegisterHistogram("acquisition_duration_seconds",
			"Duration of acquisition attempts", DefaultClientDurationBuckets, "outcome"),
		BackendOnline: collector.RegisterGauge("backend_online",
			"1 when the latest attempt used live backend data, 0 when it fell back"),

		HTTPRequestsTotal: collector.RegisterCounter("http_requests_total",
			"HTTP requests served", "method", "route", "status"),
		HTTPRequestDuration: collector.RegisterHistogram("http_request_duration_seconds",
			"HTTP request duration", DefaultHTTPDurationBuckets, "method", "route"),
	}
}

// RecordAttempt counts one acquisition attempt.
func (m *AppMetrics) RecordAttempt(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.AcquisitionAttemptsTotal.WithLabelValues(outcome).Inc()
	m.AcquisitionDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// SetBackendOnline updates the online gauge.
func (m *AppMetrics) SetBackendOnline(online bool) {
	if m == nil {
		return
	}
	v := 0.0
	if online {
		v = 1
	}
	m.BackendOnline.WithLabelValues().Set(v)
}

// RecordHTTPRequest counts one served request.  route is the matched route
// template, not the raw path.
func (m *AppMetrics) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ─────────────────────────────────────────────────────────────────────────────
// client.Observer
// ─────────────────────────────────────────────────────────────────────────────

type clientObserver struct {
	m *AppMetrics
}

// ClientObserver returns a client.Observer recording request counts and
// latencies.
func ClientObserver(m *AppMetrics) client.Observer {
	return clientObserver{m: m}
}

func (clientObserver) BeforeRequest(context.Context, client.RequestInfo) {}

func (o clientObserver) AfterResponse(_ context.Context, req client.RequestInfo, resp client.ResponseInfo) {
	if o.m == nil {
		return
	}
	outcome := RequestOK
	if resp.Err != nil {
		outcome = RequestError
	}
	o.m.ClientRequestsTotal.WithLabelValues(req.Method, req.Path, outcome).Inc()
	o.m.ClientRequestDuration.WithLabelValues(req.Method, req.Path).Observe(resp.Duration.Seconds())
}
