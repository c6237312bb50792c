package handlerset

import (
	"net/http"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/vitalapp/vital-api/handlers"
)

var log = logrus.WithField("package", "handlerset")

// ServiceInfo identifies the running service in the health check response.
type ServiceInfo struct {
	Name    string
	Version string
}

// HandlerSet represents the complete set of HTTP handlers served by the API. Additional collectors may be
// registered with Registry; they're exposed at /metrics.
type HandlerSet struct {
	handler  http.Handler
	metrics  *requestMetrics
	Registry *prometheus.Registry
}

// New creates a new handler set backed by the given database client.
func New(db handlers.DatabaseClient, info ServiceInfo) *HandlerSet {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := newRequestMetrics(registry)
	instrument := metrics.middleware

	appointments := handlers.NewAppointments(db)
	results := handlers.NewResults(db)
	notifications := handlers.NewNotifications(db)

	// Set up the router.
	router := mux.NewRouter()
	router.Use(instrument)
	router.NotFoundHandler = instrument(http.HandlerFunc(notFound))
	router.MethodNotAllowedHandler = instrument(http.HandlerFunc(methodNotAllowed))

	router.HandleFunc("/", handlers.Health(info.Name, info.Version)).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	router.HandleFunc("/appointments", appointments.List).Methods(http.MethodGet)
	router.HandleFunc("/appointments", appointments.Create).Methods(http.MethodPost)
	router.HandleFunc("/appointments/{id}", appointments.Delete).Methods(http.MethodDelete)

	router.HandleFunc("/results", results.List).Methods(http.MethodGet)
	router.HandleFunc("/results", results.Create).Methods(http.MethodPost)

	router.HandleFunc("/notifications", notifications.List).Methods(http.MethodGet)
	router.HandleFunc("/notifications", notifications.Create).Methods(http.MethodPost)
	router.HandleFunc("/notifications/{id}", notifications.MarkRead).Methods(http.MethodPatch)
	router.HandleFunc("/notifications/{id}", notifications.Delete).Methods(http.MethodDelete)

	// Requests from every origin are permitted.
	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return &HandlerSet{
		handler:  cors(router),
		metrics:  metrics,
		Registry: registry,
	}
}

// ServeHTTP dispatches a request to the matching handler.
func (hs *HandlerSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	hs.handler.ServeHTTP(w, r)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusNotFound, handlers.Envelope{
		Success: false,
		Message: "Route not found",
	})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusMethodNotAllowed, handlers.Envelope{
		Success: false,
		Message: "Method not allowed",
	})
}
