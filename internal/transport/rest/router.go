package rest

import "net/http"

// NewRouter builds the HTTP route table. Method patterns keep dispatch in the
// mux, so handlers never check r.Method themselves.
func NewRouter(elements *ElementsHandler, events *EventsHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", Index)
	mux.HandleFunc("GET /elements", elements.List)
	mux.HandleFunc("POST /events", events.Create)

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	return mux
}
