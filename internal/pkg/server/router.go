package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Vodeneev/easybets/internal/pkg/performance"
	"github.com/Vodeneev/easybets/internal/pkg/server/handlers"
)

// NewRouter wires every endpoint. CORS and panic recovery wrap the whole
// router so preflight requests are answered for any path.
func NewRouter(svc handlers.OddsService, tracker *performance.Tracker) http.Handler {
	r := mux.NewRouter()
	r.Use(metricsMiddleware(tracker))

	r.HandleFunc("/health", handlers.HandleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", tracker.Handler()).Methods(http.MethodGet)

	h := handlers.NewOdds(svc)
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/odds", h.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/odds/{id}", h.HandleMatch).Methods(http.MethodGet)
	api.HandleFunc("/predictions", h.HandlePredictions).Methods(http.MethodGet)

	return recoverMiddleware(corsMiddleware(r))
}
