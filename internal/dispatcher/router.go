package dispatcher

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter exposes the action endpoint on both GET and POST; the original
// clients call either with the action in the query or the body.
func NewRouter(d *Dispatcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/api", d.Handle)
	r.Post("/api", d.Handle)
	r.Get("/", d.Handle)
	r.Post("/", d.Handle)
	return r
}
