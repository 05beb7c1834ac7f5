package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bankocr/internal/domain"
	"bankocr/pkg/errcodes"
	"bankocr/pkg/httpx/reply"
	"bankocr/pkg/middlewarex"
)

// Router собирает chi-роутер со служебными ручками.
func (s Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middlewarex.TraceID, middlewarex.Logger, middlewarex.Recovery)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", s.probe.Healthz)
	r.Get("/ready", handler(s.getReady))
	r.Handle("/metrics", s.metrics)
}

func (s Server) getReady(w http.ResponseWriter, r *http.Request) error {
	if s.ready != nil && !s.ready() {
		return domain.NewError(errcodes.NotReady, "inbox has not been scanned yet")
	}

	s.probe.Healthz(w, r)

	return nil
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
