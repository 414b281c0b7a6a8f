package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics держит реестр Prometheus и метрики сервиса.
type Metrics struct {
	registry           *prometheus.Registry
	FreeActiveTrainers prometheus.Gauge
}

// New регистрирует метрики сервиса и стандартные коллекторы процесса.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	freeActiveTrainers := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "free_active_trainers",
		Help: "Number of active trainers without assigned trainees, as of the last listing.",
	})

	registry.MustRegister(
		freeActiveTrainers,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:           registry,
		FreeActiveTrainers: freeActiveTrainers,
	}
}

// Handler отдает метрики в формате Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
