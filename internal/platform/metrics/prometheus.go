package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Manager holds the service's Prometheus metrics.
type Manager struct {
	Registry              *prometheus.Registry
	ListingsCreatedTotal  prometheus.Counter
	ListingsVerifiedTotal prometheus.Counter
	FavoritesAddedTotal   prometheus.Counter
	APIErrorsTotal        *prometheus.CounterVec
	RequestLatency        *prometheus.HistogramVec
}

func NewManager(namespace string) *Manager {
	registry := prometheus.NewRegistry()

	listingsCreatedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of listings created.",
	})
	listingsVerifiedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_verified_total",
		Help:      "Total number of listings verified by an admin.",
	})
	favoritesAddedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorites_added_total",
		Help:      "Total number of favorites added.",
	})
	apiErrorsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_errors_total",
		Help:      "Total number of API errors by route and status code.",
	}, []string{"route", "code"})
	requestLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_latency_seconds",
		Help:      "Latency of HTTP requests by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	registry.MustRegister(
		listingsCreatedTotal,
		listingsVerifiedTotal,
		favoritesAddedTotal,
		apiErrorsTotal,
		requestLatency,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return &Manager{
		Registry:              registry,
		ListingsCreatedTotal:  listingsCreatedTotal,
		ListingsVerifiedTotal: listingsVerifiedTotal,
		FavoritesAddedTotal:   favoritesAddedTotal,
		APIErrorsTotal:        apiErrorsTotal,
		RequestLatency:        requestLatency,
	}
}

// StartServer exposes the registry on its own port so the API port stays clean.
func StartServer(port string, log *zap.Logger, registry *prometheus.Registry) error {
	if port == "" {
		log.Info("metrics server port not configured, server will not start")
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	log.Info("metrics server starting", zap.String("port", port))
	server := &http.Server{Addr: ":" + port, Handler: mux}
	return server.ListenAndServe()
}
