// Package httpapi serves the optional debug listener. It only exists
// while a run is in flight and is off unless --metrics-addr is set.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Server struct {
	Logger *zap.Logger
}

func NewServer(l *zap.Logger) *Server {
	return &Server{Logger: l}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Serve runs the listener until the process exits. Errors are logged,
// not fatal: a broken debug listener must not kill the run.
func (s *Server) Serve(addr string) {
	s.Logger.Info("metrics_listen", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, s.Router()); err != nil {
		s.Logger.Warn("metrics_listener_stopped", zap.Error(err))
	}
}
