package monitoring

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sarchlab/tsvcost/estimator"
)

var propertyDesc = prometheus.NewDesc(
	"tsvcost_estimator_property",
	"Latest result of an estimator, in the unit given by the unit label.",
	[]string{"component", "property", "unit"},
	nil,
)

// propertyCollector exports the properties of the registered estimators at
// scrape time.
type propertyCollector struct {
	m *Monitor
}

func (c propertyCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- propertyDesc
}

func (c propertyCollector) Collect(ch chan<- prometheus.Metric) {
	c.m.lock.Lock()
	estimators := append([]estimator.Reportable(nil), c.m.estimators...)
	c.m.lock.Unlock()

	for _, e := range estimators {
		for _, p := range e.Properties() {
			ch <- prometheus.MustNewConstMetric(
				propertyDesc, prometheus.GaugeValue, p.Value,
				e.Name(), p.Name, p.Unit)
		}
	}
}

type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

func newMetrics(m *Monitor) *metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(propertyCollector{m: m})

	return &metrics{
		registry: registry,
		requests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "tsvcost_monitor_requests_total",
			Help: "Requests served by the monitor, by endpoint.",
		}, []string{"endpoint"}),
	}
}

func (mt *metrics) handler() http.Handler {
	return promhttp.HandlerFor(mt.registry, promhttp.HandlerOpts{})
}

// countRequests is a middleware that counts the API requests.
func (mt *metrics) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			mt.requests.WithLabelValues(endpoint(r.URL.Path)).Inc()
		}

		next.ServeHTTP(w, r)
	})
}

// endpoint trims the variable part of an API path.
func endpoint(path string) string {
	parts := strings.SplitN(strings.TrimPrefix(path, "/api/"), "/", 2)
	return parts[0]
}
