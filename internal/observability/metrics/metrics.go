package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "location_remind"

// Metrics holds the Prometheus collectors for geofencing and location
// acquisition.
type Metrics struct {
	GeofenceRegistrations *prometheus.CounterVec // labels: outcome
	GeofenceTriggers      prometheus.Counter
	GeofenceActive        prometheus.Gauge

	LocationAcquisitions *prometheus.CounterVec // labels: outcome
	LocationAttempts     prometheus.Histogram

	HTTP *HTTPMetrics
}

type HTTPMetrics struct {
	RequestDuration *prometheus.HistogramVec // labels: method, path, status
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GeofenceRegistrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geofence_registrations_total",
			Help:      "Geofence registrations by outcome.",
		}, []string{"outcome"}),
		GeofenceTriggers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geofence_triggers_total",
			Help:      "Geofence entries resolved to a stored reminder.",
		}),
		GeofenceActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "geofence_active",
			Help:      "Geofences currently registered with the provider.",
		}),
		LocationAcquisitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "location_acquisitions_total",
			Help:      "Location acquisition sequences by outcome.",
		}, []string{"outcome"}),
		LocationAttempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "location_attempts",
			Help:      "Provider calls made per acquisition sequence.",
			Buckets:   []float64{0, 1, 2, 3, 5, 10},
		}),
		HTTP: &HTTPMetrics{
			RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"method", "path", "status"}),
		},
	}

	reg.MustRegister(
		m.GeofenceRegistrations,
		m.GeofenceTriggers,
		m.GeofenceActive,
		m.LocationAcquisitions,
		m.LocationAttempts,
		m.HTTP.RequestDuration,
	)

	return m
}

func (m *Metrics) ObserveRegistration(outcome string) {
	m.GeofenceRegistrations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveTrigger() {
	m.GeofenceTriggers.Inc()
}

func (m *Metrics) SetActiveGeofences(n int) {
	m.GeofenceActive.Set(float64(n))
}

func (m *Metrics) ObserveAcquisition(outcome string, tries int) {
	m.LocationAcquisitions.WithLabelValues(outcome).Inc()
	m.LocationAttempts.Observe(float64(tries))
}

func (h *HTTPMetrics) Record(_ context.Context, method, path string, status int, duration time.Duration) {
	h.RequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}
