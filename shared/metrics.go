package shared

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	sessionsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docpicker_sessions_started_total",
			Help: "Total number of pick sessions started",
		},
		[]string{"mode"},
	)

	filesDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docpicker_files_delivered_total",
			Help: "Total number of files delivered by the browser",
		},
		[]string{"mode"},
	)

	bytesDelivered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docpicker_bytes_delivered_total",
			Help: "Total bytes of file content delivered by the browser",
		},
	)

	sessionsCancelled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docpicker_sessions_cancelled_total",
			Help: "Total number of sessions the browser ended without a file",
		},
		[]string{"mode"},
	)

	lateCallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docpicker_late_callbacks_total",
			Help: "Callbacks that arrived after their session was closed",
		},
	)

	presentersRetained = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "docpicker_presenters_retained",
			Help: "Number of dialog presenters currently retained",
		},
	)
)

// RecordSessionStarted counts a new pick session.
func RecordSessionStarted(mode string) {
	sessionsStarted.WithLabelValues(mode).Inc()
}

// RecordFileDelivered counts one delivered file of the given size.
func RecordFileDelivered(mode string, size int) {
	filesDelivered.WithLabelValues(mode).Inc()
	bytesDelivered.Add(float64(size))
}

// RecordSessionCancelled counts a session ended by a nil delivery.
func RecordSessionCancelled(mode string) {
	sessionsCancelled.WithLabelValues(mode).Inc()
}

// RecordLateCallback counts a callback for a session nobody listens to anymore.
func RecordLateCallback() {
	lateCallbacks.Inc()
}

func PresenterRetained() { presentersRetained.Inc() }
func PresenterReleased() { presentersRetained.Dec() }

// MetricsHandler returns the Prometheus metrics HTTP handler.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
