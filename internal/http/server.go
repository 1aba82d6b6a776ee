package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jaekwang-park/todo-rest-api/internal/config"
	"github.com/jaekwang-park/todo-rest-api/internal/middleware"
)

type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

func NewServer(port string, cfg config.HTTPConfig, logger *slog.Logger, deps Deps) (*Server, error) {
	if deps.Logger == nil {
		deps.Logger = logger
	}
	router := NewRouter(deps)

	gzip, err := middleware.Gzip(cfg.GzipMinSize)
	if err != nil {
		return nil, err
	}

	// recovery -> logging -> cors -> security headers -> gzip -> body limit -> router
	chain := middleware.Chain(router,
		middleware.Recovery(logger),
		middleware.Logging(logger),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.SecureHeaders,
		gzip,
		middleware.BodyLimit(cfg.MaxBodyBytes),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      chain,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		logger: logger,
	}, nil
}

// Handler returns the fully wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.httpServer.Shutdown(ctx)
}
