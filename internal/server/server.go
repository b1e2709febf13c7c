// Package server implements the WaterTrack status endpoint: a minimal HTTP
// surface with a health route and an echo route that logs whatever body it
// receives. The data-access layer is not exposed here; clients own their
// local store.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mlagunovs/watertrack/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server is the status HTTP server.
type Server struct {
	addr   string
	logger logging.Logger
}

// New returns a Server that will bind to addr.
func New(addr string, logger logging.Logger) *Server {
	return &Server{addr: addr, logger: logger}
}

// routes builds the handler: GET / (status) and GET /data (echo).
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleStatus)
	mux.HandleFunc("GET /data", s.handleData)
	return s.withRequestLog(mux)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("Status: Ok"))
}

// handleData logs the incoming request body and acknowledges it. It has no
// relation to the client-side data layer.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	s.logger.Info(r.Context(), "data received", "body", string(body))

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"Received"}`))
}

// withRequestLog tags each request with an id and logs method, path, and
// duration after it is served.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := s.logger.With("request_id", uuid.NewString())
		next.ServeHTTP(w, r)
		log.Info(r.Context(), "request",
			"method", r.Method, "path", r.URL.Path, "duration", time.Since(start).String())
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
