package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jfarabee/signon/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// HTTPServer wraps the standard http.Server with structured startup and
// shutdown logging.
type HTTPServer struct {
	server *http.Server
	log    *logger.Logger
}

func NewHTTPServer(address string, handler http.Handler, log *logger.Logger) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:    address,
			Handler: handler,
		},
		log: log,
	}
}

// Run blocks until the listener fails or Shutdown is called.
func (s *HTTPServer) Run() error {
	s.log.Info().Str("address", s.server.Addr).Msg("starting http server")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *HTTPServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.log.Err(err).Msg("http server shutdown")
		return
	}
	s.log.Info().Msg("http server stopped")
}
