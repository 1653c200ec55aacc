package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas Prometheus de la aplicación. Se registran en el registry global
// al importar el paquete; el endpoint /metrics las expone.
var (
	// HTTPRequestsTotal contador de peticiones HTTP por método, ruta y status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bodega_http_requests_total",
			Help: "Total de peticiones HTTP procesadas",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration histograma de latencia por método y ruta.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bodega_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// DocumentsInserted contador de documentos insertados por colección.
	DocumentsInserted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bodega_documents_inserted_total",
			Help: "Documentos insertados en el almacén por colección",
		},
		[]string{"collection"},
	)

	// StockReports contador de reportes de stock calculados.
	StockReports = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bodega_stock_reports_total",
			Help: "Reportes de stock calculados",
		},
	)
)
