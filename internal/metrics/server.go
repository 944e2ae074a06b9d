package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Server exposes /metrics over HTTP.
type Server struct {
	log      logrus.FieldLogger
	listener net.Listener
	srv      *http.Server
}

// Listen binds addr and prepares a server for the metrics in g.
func Listen(log logrus.FieldLogger, addr string, g prometheus.Gatherer) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(g))

	return &Server{
		log:      log.WithField("component", "metrics_server"),
		listener: ln,
		srv: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Addr reports the bound address.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Serve blocks serving requests until ctx is canceled, then shuts down.
func (s *Server) Serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.WithField("addr", s.Addr()).Info("serving metrics")

		if err := s.srv.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.log.Debug("shutting down metrics server")

		return s.srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
