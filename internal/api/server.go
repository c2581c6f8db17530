package api

import (
	"context"
	"net"

	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/config"
	"github.com/valyala/fasthttp"
)

// Server wraps a fasthttp server configured from ServerConfig
type Server struct {
	Config config.ServerConfig
	logger calculation.Logger
	srv    *fasthttp.Server
}

// NewServer creates a server dispatching to handler
func NewServer(cfg config.ServerConfig, handler *Handler) *Server {
	return &Server{
		Config: cfg,
		logger: handler.Logger,
		srv: &fasthttp.Server{
			Handler:            handler.Handle,
			Name:               "ley73",
			ReadTimeout:        cfg.ReadTimeout,
			WriteTimeout:       cfg.WriteTimeout,
			MaxRequestBodySize: cfg.MaxBodyBytes,
		},
	}
}

// ListenAndServe blocks serving requests until Shutdown is called
func (s *Server) ListenAndServe() error {
	s.logger.Infof("ley73 API listening on %s", s.Config.Addr)
	return s.srv.ListenAndServe(s.Config.Addr)
}

// Serve serves requests from an existing listener
func (s *Server) Serve(ln net.Listener) error {
	return s.srv.Serve(ln)
}

// Shutdown stops accepting connections and waits for open ones until ctx ends
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Infof("ley73 API shutting down")
	return s.srv.ShutdownWithContext(ctx)
}
